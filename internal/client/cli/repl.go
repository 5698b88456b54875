package cli

import (
	"context"
	"fmt"
	"strings"
)

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	SendCode(ctx context.Context) error
	Register(ctx context.Context) error
	Login(ctx context.Context) error
}

const helpText = "Available commands: sendcode, register, login, help, exit"

// runREPL reads one command per line and dispatches it to a. The loop
// exits on EOF, on "exit" or "quit", or when ctx is cancelled.
//
// Errors returned by command handlers are ignored here; handlers print
// their own errors.
func runREPL(ctx context.Context, a execIface, statusFn func() string, p *prompter) {
	w := p.w
	fmt.Fprintln(w, helpText)
	for {
		if ctx.Err() != nil {
			return
		}
		fmt.Fprintf(w, "gophauth [%s]> ", statusFn())

		line, err := p.line()
		if err != nil {
			fmt.Fprintln(w)
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		switch cmd := parts[0]; cmd {
		case "help":
			fmt.Fprintln(w, helpText)

		case "sendcode", "send_code":
			_ = a.SendCode(ctx)

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "exit", "quit":
			fmt.Fprintln(w, "Bye!")
			return

		default:
			fmt.Fprintln(w, "Unknown command:", cmd)
		}
	}
}
