package cli

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/gophauth/internal/client/api"
	"github.com/dmitrijs2005/gophauth/internal/client/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClient struct {
	err error

	sent       []string
	registered []string
	code       uint32
	password   string
	closed     bool
}

func (f *fakeClient) SendCode(_ context.Context, identifier string) error {
	f.sent = append(f.sent, identifier)
	return f.err
}

func (f *fakeClient) Register(ctx context.Context, identifier, name, password string, code uint32) error {
	if _, ok := ctx.Deadline(); !ok {
		return errors.New("no deadline")
	}
	f.registered = append(f.registered, identifier+"/"+name)
	f.password, f.code = password, code
	return f.err
}

func (f *fakeClient) Login(_ context.Context, identifier, password string) error {
	f.password = password
	return f.err
}

func (f *fakeClient) Close() error {
	f.closed = true
	return nil
}

func stubPassword(t *testing.T, pw string) {
	t.Helper()
	old := readPassword
	readPassword = func(int) ([]byte, error) { return []byte(pw), nil }
	t.Cleanup(func() { readPassword = old })
}

func newTestApp(client api.Client, input string) (*App, *bytes.Buffer) {
	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.RequestTimeout = time.Second
	out := &bytes.Buffer{}
	return newApp(cfg, client, strings.NewReader(input), out), out
}

func TestApp_FullSession(t *testing.T) {
	stubPassword(t, "secret1")
	client := &fakeClient{}

	input := strings.Join([]string{
		"sendcode",
		"user@example.com",
		"register",
		"", // reuse the identifier from sendcode
		"alice",
		"004211",
		"login",
		"",
		"exit",
	}, "\n") + "\n"

	app, out := newTestApp(client, input)
	app.Run(context.Background())

	assert.Equal(t, []string{"user@example.com"}, client.sent)
	assert.Equal(t, []string{"user@example.com/alice"}, client.registered)
	assert.Equal(t, uint32(4211), client.code)
	assert.Equal(t, "secret1", client.password)
	assert.True(t, client.closed)
	assert.Contains(t, out.String(), "gophauth [user@example.com]> ")
}

func TestApp_ReportsServerRejection(t *testing.T) {
	stubPassword(t, "wrong")
	client := &fakeClient{err: &api.Error{Reason: "wrong credentials"}}

	app, out := newTestApp(client, "user@example.com\n")
	err := app.Login(context.Background())

	require.Error(t, err)
	assert.Contains(t, out.String(), "Error: wrong credentials")
	assert.Equal(t, "guest", app.status())
}

func TestApp_RegisterRejectsBadCode(t *testing.T) {
	stubPassword(t, "secret1")
	client := &fakeClient{}

	app, out := newTestApp(client, "user@example.com\nalice\nnot-a-code\n")
	err := app.Register(context.Background())

	require.Error(t, err)
	assert.Empty(t, client.registered)
	assert.Contains(t, out.String(), "code must be a number")
}
