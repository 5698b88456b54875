// Package cli is the interactive gophauth client: it asks for a
// verification code, registers an account and logs in.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/gophauth/internal/client/api"
	"github.com/dmitrijs2005/gophauth/internal/client/config"
	"github.com/dmitrijs2005/gophauth/internal/shared"
)

type App struct {
	config *config.Config
	client api.Client
	prompt *prompter
	out    io.Writer

	// identifier remembered from the last sendcode, offered as default
	lastIdentifier string
	loggedInAs     string
}

func NewApp(c *config.Config) (*App, error) {
	client, err := api.New(c)
	if err != nil {
		return nil, err
	}
	return newApp(c, client, os.Stdin, os.Stdout), nil
}

func newApp(c *config.Config, client api.Client, in io.Reader, out io.Writer) *App {
	return &App{config: c, client: client, prompt: newPrompter(in, out), out: out}
}

// Run starts the REPL and closes the server connection when it returns.
func (a *App) Run(ctx context.Context) {
	defer a.client.Close()
	runREPL(ctx, a, a.status, a.prompt)
}

func (a *App) status() string {
	if a.loggedInAs != "" {
		return a.loggedInAs
	}
	return "guest"
}

func (a *App) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, a.config.RequestTimeout)
}

func (a *App) readIdentifier() (string, error) {
	prompt := "Enter email or phone number"
	if a.lastIdentifier != "" {
		prompt += fmt.Sprintf(" (empty for %s)", a.lastIdentifier)
	}
	id, err := a.prompt.Text(prompt)
	if err != nil {
		return "", err
	}
	if id == "" {
		id = a.lastIdentifier
	}
	return id, nil
}

func (a *App) report(err error) error {
	if err != nil {
		fmt.Fprintln(a.out, "Error:", err.Error())
		return err
	}
	fmt.Fprintln(a.out, "Success!")
	return nil
}

// SendCode asks the server to deliver a verification code.
func (a *App) SendCode(ctx context.Context) error {
	id, err := a.readIdentifier()
	if err != nil {
		return a.report(err)
	}

	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	if err := a.client.SendCode(ctx, id); err != nil {
		return a.report(err)
	}
	a.lastIdentifier = id
	fmt.Fprintln(a.out, "A code was sent to", id)
	return nil
}

// Register redeems a code and creates the account.
func (a *App) Register(ctx context.Context) error {
	id, err := a.readIdentifier()
	if err != nil {
		return a.report(err)
	}
	name, err := a.prompt.Text("Enter user name")
	if err != nil {
		return a.report(err)
	}
	password, err := a.prompt.Password()
	if err != nil {
		return a.report(err)
	}
	defer shared.WipeByteArray(password)

	code, err := a.prompt.Code()
	if err != nil {
		return a.report(err)
	}

	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	return a.report(a.client.Register(ctx, id, name, string(password), code))
}

// Login checks credentials against the server.
func (a *App) Login(ctx context.Context) error {
	id, err := a.readIdentifier()
	if err != nil {
		return a.report(err)
	}
	password, err := a.prompt.Password()
	if err != nil {
		return a.report(err)
	}
	defer shared.WipeByteArray(password)

	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	if err := a.client.Login(ctx, id, string(password)); err != nil {
		return a.report(err)
	}
	a.loggedInAs = id
	return a.report(nil)
}
