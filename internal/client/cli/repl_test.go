package cli

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeExec struct {
	calls []string
}

func (f *fakeExec) SendCode(ctx context.Context) error {
	f.calls = append(f.calls, "sendcode")
	return nil
}
func (f *fakeExec) Register(ctx context.Context) error {
	f.calls = append(f.calls, "register")
	return nil
}
func (f *fakeExec) Login(ctx context.Context) error {
	f.calls = append(f.calls, "login")
	return nil
}

func TestRunREPL_DispatchesCommands(t *testing.T) {
	input := strings.Join([]string{
		"help",
		"",
		"sendcode",
		"register",
		"login",
		"dance",
		"exit",
		"login",
	}, "\n") + "\n"

	f := &fakeExec{}
	p, out := promptOver(input)
	runREPL(context.Background(), f, func() string { return "guest" }, p)

	assert.Equal(t, []string{"sendcode", "register", "login"}, f.calls)
	assert.Contains(t, out.String(), "Unknown command: dance")
	assert.Contains(t, out.String(), "gophauth [guest]> ")
	assert.Contains(t, out.String(), "Bye!")
}

func TestRunREPL_StopsOnEOF(t *testing.T) {
	f := &fakeExec{}
	p, _ := promptOver("login")
	runREPL(context.Background(), f, func() string { return "guest" }, p)

	assert.Equal(t, []string{"login"}, f.calls)
}

func TestRunREPL_StopsOnCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	f := &fakeExec{}
	p, _ := promptOver("login\n")
	runREPL(ctx, f, func() string { return "guest" }, p)

	assert.Empty(t, f.calls)
}
