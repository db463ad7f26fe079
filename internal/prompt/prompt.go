// Package prompt implements the interactive questions asked on the console:
// device address, credentials, device-group choice and confirmations.
package prompt

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"

	"github.com/agentstation/addrename/internal/validation"
	"github.com/agentstation/addrename/pkg/errors"
	"github.com/agentstation/addrename/pkg/reconcile"
)

const retryMessage = "\nThere was something wrong with your entry. Please try again...\n"

// Prompter reads answers from in and writes questions to out.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
	// fd is the terminal file descriptor used for hidden input, or -1.
	fd int
}

// New creates a Prompter. When in is a terminal, passwords are read without
// echo.
func New(in io.Reader, out io.Writer) *Prompter {
	fd := -1
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		fd = int(f.Fd())
	}
	return &Prompter{in: bufio.NewReader(in), out: out, fd: fd}
}

// Host asks for the device address until a valid IPv4 address or FQDN is
// given.
func (p *Prompter) Host() (string, error) {
	return p.ask("\nPlease enter Panorama/firewall IP or FQDN: ", validation.Host)
}

// Username asks for the login name.
func (p *Prompter) Username() (string, error) {
	return p.ask("Please enter your user name: ", validation.Username)
}

// Password asks for the password without echo when possible.
func (p *Prompter) Password() (string, error) {
	for {
		p.printf("Please enter your password: ")
		pw, err := p.readSecret()
		if err != nil {
			return "", err
		}
		if validation.Password(pw) == nil {
			return pw, nil
		}
		p.printf(retryMessage)
	}
}

// Credentials asks for username and password.
func (p *Prompter) Credentials() (string, string, error) {
	user, err := p.Username()
	if err != nil {
		return "", "", err
	}
	pw, err := p.Password()
	if err != nil {
		return "", "", err
	}
	return user, pw, nil
}

// BadCredentials tells the user keygen was refused.
func (p *Prompter) BadCredentials() {
	p.printf("\nYou have entered an incorrect username or password. Please try again...\n\n")
}

// ChooseDeviceGroup shows a numbered menu and returns the chosen group.
func (p *Prompter) ChooseDeviceGroup(groups []string) (string, error) {
	if len(groups) == 0 {
		return "", fmt.Errorf("no device groups to choose from: %w", errors.ErrNotFound)
	}
	for {
		p.printf("\n\nHere's a list of device groups found in Panorama...\n\n")
		for i, g := range groups {
			p.printf("%d) %s\n", i+1, g)
		}
		p.printf("\nChoose a number for the device-group:\n\nAnswer is: ")
		line, err := p.readLine()
		if err != nil {
			return "", err
		}
		n, err := strconv.Atoi(line)
		if err == nil && n >= 1 && n <= len(groups) {
			p.printf("\n")
			return groups[n-1], nil
		}
		p.printf("\n\nThat's not a number in the list, try again...\n")
	}
}

// Another asks whether to run against another device group. Empty input
// means yes.
func (p *Prompter) Another() (bool, error) {
	for {
		p.printf("\n\nWould you like to run this against another device group? [Y/n]  ")
		line, err := p.readLine()
		if err != nil {
			return false, err
		}
		switch strings.ToLower(line) {
		case "", "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
		p.printf("\n\nAnswer 'y' or 'n', try again...\n")
	}
}

// ListPath asks for a replacement list. Empty input keeps the current one.
func (p *Prompter) ListPath() (string, error) {
	p.printf("\n\nEnter the name of the address list for this device group, (leave blank to use the same list): ")
	return p.readLine()
}

// ConfirmPush waits for Enter before renames are pushed. Typing "n" declines.
// It satisfies renamer.ConfirmFunc.
func (p *Prompter) ConfirmPush(ctx context.Context, plan reconcile.Plan) (bool, error) {
	p.printf("\n\n%d rename(s) planned for %s.\nPress Enter to push API calls to Panorama/firewall (type 'n' or CTRL+C to abort)... ",
		len(plan.Entries), plan.Scope)

	type answer struct {
		line string
		err  error
	}
	ch := make(chan answer, 1)
	go func() {
		line, err := p.readLine()
		ch <- answer{line, err}
	}()

	select {
	case <-ctx.Done():
		return false, fmt.Errorf("%w: %w", errors.ErrCanceled, ctx.Err())
	case a := <-ch:
		if a.err != nil {
			return false, a.err
		}
		p.printf("\n")
		l := strings.ToLower(a.line)
		return l != "n" && l != "no", nil
	}
}

// Goodbye prints the closing line.
func (p *Prompter) Goodbye() {
	p.printf("\n\nHave a great day!!\n\n")
}

func (p *Prompter) ask(question string, valid func(string) error) (string, error) {
	for {
		p.printf("%s", question)
		line, err := p.readLine()
		if err != nil {
			return "", err
		}
		if valid(line) == nil {
			return line, nil
		}
		p.printf(retryMessage)
	}
}

// readLine returns the next line without its terminator. EOF with no input
// is reported as cancellation.
func (p *Prompter) readLine() (string, error) {
	line, err := p.in.ReadString('\n')
	if err != nil {
		if err == io.EOF && line != "" {
			return strings.TrimSpace(line), nil
		}
		if err == io.EOF {
			return "", fmt.Errorf("%w: input closed", errors.ErrCanceled)
		}
		return "", errors.WrapIO("read", "stdin", err)
	}
	return strings.TrimSpace(line), nil
}

func (p *Prompter) readSecret() (string, error) {
	if p.fd < 0 {
		return p.readLine()
	}
	b, err := term.ReadPassword(p.fd)
	p.printf("\n")
	if err != nil {
		return "", errors.WrapIO("read", "terminal", err)
	}
	return string(b), nil
}

func (p *Prompter) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(p.out, format, args...)
}
