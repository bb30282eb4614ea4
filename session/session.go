// Package session applies textual commands to a string stack and renders the results.
//
// It backs both the interactive prompt and script execution of the CLI.
package session

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/lifo-cli/lifo/key"
	"github.com/lifo-cli/lifo/log"
	"github.com/lifo-cli/lifo/stack"
	"github.com/spf13/viper"
)

var (
	// ErrUnknownCommand is returned for a command name that is not registered.
	ErrUnknownCommand = errors.New("unknown command")

	// ErrUsage is returned when a command receives missing or malformed arguments.
	ErrUsage = errors.New("usage")
)

// MaxLineSize bounds the length of a single script line read by Run.
const MaxLineSize = 1 << 20

// Session owns one stack and writes command output to out.
type Session struct {
	stack *stack.Stack[string]
	out   io.Writer
}

// New returns a session with an empty stack.
func New(out io.Writer) *Session {
	return &Session{
		stack: stack.New[string](),
		out:   out,
	}
}

// Stack exposes the underlying stack.
func (s *Session) Stack() *stack.Stack[string] {
	return s.stack
}

// Exec parses and executes a single command line. Blank lines and comments are ignored.
func (s *Session) Exec(line string) error {
	name, arg := parse(line)
	if name == "" {
		return nil
	}

	cmd, ok := commands[name]
	if !ok {
		return errUnknownCommand(name)
	}

	if cmd.arg && arg == "" {
		return fmt.Errorf("%s: %w: %s %s", name, ErrUsage, name, cmd.usage)
	}
	if !cmd.arg && arg != "" {
		return fmt.Errorf("%s: %w: %s takes no argument, got %q", name, ErrUsage, name, arg)
	}

	entry := log.WithFields(log.Fields{"command": name, "arg": arg, "size": s.stack.Size()})
	if err := cmd.run(s, arg); err != nil {
		entry.WithError(err).Debug("command failed")
		return err
	}
	entry.WithField("after", s.stack.Size()).Debug("command executed")
	return nil
}

// Run executes every line read from r. With exec.stop_on_error set it stops at the first
// failure; otherwise failures are reported to out and joined into the returned error.
// Lines longer than MaxLineSize abort the script.
func (s *Session) Run(r io.Reader) error {
	var (
		errs        []error
		stopOnError = viper.GetBool(key.ExecStopOnError)
		echo        = viper.GetBool(key.ExecEcho)
		scanner     = bufio.NewScanner(r)
		lineNo      int
	)
	scanner.Buffer(make([]byte, 0, 64*1024), MaxLineSize)

	for scanner.Scan() {
		lineNo++
		line := scanner.Text()

		if echo {
			if name, _ := parse(line); name != "" {
				s.printf("%s\n", renderEcho(strings.TrimSpace(line)))
			}
		}

		if err := s.Exec(line); err != nil {
			err = fmt.Errorf("line %d: %w", lineNo, err)
			if stopOnError {
				return err
			}
			s.printf("%s\n", renderError(err))
			errs = append(errs, err)
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read script: %w", err)
	}

	return errors.Join(errs...)
}

func (s *Session) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(s.out, format, args...)
}

// parse splits a line into a lowercase command name and the remaining argument text.
func parse(line string) (name, arg string) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return "", ""
	}

	name, arg, _ = strings.Cut(line, " ")
	return strings.ToLower(name), strings.TrimSpace(arg)
}
