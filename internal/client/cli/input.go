package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"
)

// readPassword is a test seam for term.ReadPassword.
var readPassword = term.ReadPassword

// prompter asks questions on w and reads the answers from r, one line each.
type prompter struct {
	r *bufio.Reader
	w io.Writer
}

func newPrompter(in io.Reader, out io.Writer) *prompter {
	return &prompter{r: bufio.NewReader(in), w: out}
}

// line reads one trimmed line. A final line without a newline still counts;
// a bare EOF is returned as io.EOF.
func (p *prompter) line() (string, error) {
	s, err := p.r.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && s != "") {
		return "", err
	}
	return strings.TrimSpace(s), nil
}

// Text shows "<question>\n> " and returns the answer.
func (p *prompter) Text(question string) (string, error) {
	if _, err := fmt.Fprintf(p.w, "%s\n> ", question); err != nil {
		return "", err
	}
	return p.line()
}

// Password reads a password from the terminal without echo. The caller
// should wipe the result.
func (p *prompter) Password() ([]byte, error) {
	fmt.Fprint(p.w, "Enter password: ")
	pw, err := readPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(p.w)
	return pw, err
}

// Code reads the verification code. Leading zeros are allowed, so "004211"
// is 4211.
func (p *prompter) Code() (uint32, error) {
	s, err := p.Text("Enter the code you received")
	if err != nil {
		return 0, err
	}
	n, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("code must be a number: %q", s)
	}
	return uint32(n), nil
}
