package transport

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/dmitrijs2005/gophauth/internal/netx"
)

type smsRequest struct {
	To      string `json:"to"`
	Message string `json:"message"`
}

// SMSSender posts the message as JSON to an SMS gateway. Any non-2xx
// response is a delivery failure.
type SMSSender struct {
	endpoint string
	token    string
	client   *http.Client
}

// NewSMSSender uses client, or a client with a 10s timeout when nil.
func NewSMSSender(endpoint, token string, client *http.Client) *SMSSender {
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	return &SMSSender{endpoint: endpoint, token: token, client: client}
}

func (s *SMSSender) Send(ctx context.Context, message, destination string) error {
	header := http.Header{}
	if s.token != "" {
		header.Set("Authorization", "Bearer "+s.token)
	}

	if err := netx.PostJSON(ctx, s.client, s.endpoint, smsRequest{To: destination, Message: message}, header); err != nil {
		return fmt.Errorf("sms gateway: %w", err)
	}
	return nil
}
