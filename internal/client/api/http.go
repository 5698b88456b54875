package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/dmitrijs2005/gophauth/internal/netx"
)

type sendCodeRequest struct {
	Identifier string `json:"identifier"`
}

type registerRequest struct {
	Identifier string `json:"identifier"`
	Name       string `json:"name"`
	Password   string `json:"password"`
	Code       uint32 `json:"code"`
}

type loginRequest struct {
	Identifier string `json:"identifier"`
	Password   string `json:"password"`
}

type errorReply struct {
	Error string `json:"error"`
}

type HTTPClient struct {
	baseURL string
	client  *http.Client
}

func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}
}

func (c *HTTPClient) SendCode(ctx context.Context, identifier string) error {
	return c.post(ctx, "/send_code", sendCodeRequest{Identifier: identifier})
}

func (c *HTTPClient) Register(ctx context.Context, identifier, name, password string, code uint32) error {
	return c.post(ctx, "/register", registerRequest{
		Identifier: identifier,
		Name:       name,
		Password:   password,
		Code:       code,
	})
}

func (c *HTTPClient) Login(ctx context.Context, identifier, password string) error {
	return c.post(ctx, "/login", loginRequest{Identifier: identifier, Password: password})
}

func (c *HTTPClient) Close() error {
	c.client.CloseIdleConnections()
	return nil
}

func (c *HTTPClient) post(ctx context.Context, path string, payload any) error {
	err := netx.PostJSON(ctx, c.client, c.baseURL+path, payload, nil)

	var se *netx.StatusError
	if errors.As(err, &se) {
		return &Error{
			Reason:      reason(se.Body),
			ServerFault: se.StatusCode >= http.StatusInternalServerError,
		}
	}
	return err
}

// reason extracts the server's message from an {"error": ...} body. Bodies
// in any other shape are returned as is.
func reason(body string) string {
	var reply errorReply
	if err := json.Unmarshal([]byte(body), &reply); err == nil && reply.Error != "" {
		return reply.Error
	}
	return body
}
