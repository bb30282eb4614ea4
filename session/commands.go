package session

import (
	"fmt"
	"sort"
	"strconv"

	levenshtein "github.com/ka-weihe/fast-levenshtein"
	"github.com/lifo-cli/lifo/color"
	"github.com/lifo-cli/lifo/style"
	"github.com/samber/lo"
)

// command describes a single session instruction.
type command struct {
	usage       string
	description string
	arg         bool
	run         func(s *Session, arg string) error
}

var commands map[string]command

func init() {
	commands = map[string]command{
		"push": {
			usage:       "<value>",
			description: "Place a value on top of the stack",
			arg:         true,
			run: func(s *Session, arg string) error {
				if err := s.stack.Push(arg); err != nil {
					return err
				}
				s.printf("%s\n", renderSuccess("pushed "+renderValue(arg)))
				return nil
			},
		},
		"pop": {
			description: "Remove and print the top value",
			run: func(s *Session, _ string) error {
				item, err := s.stack.Pop()
				if err != nil {
					return err
				}
				s.printf("%s\n", renderValue(item))
				return nil
			},
		},
		"peek": {
			description: "Print the top value without removing it",
			run: func(s *Session, _ string) error {
				item, ok := s.stack.Peek().Get()
				if !ok {
					s.printf("%s\n", renderEmpty())
					return nil
				}
				s.printf("%s\n", renderValue(item))
				return nil
			},
		},
		"peekn": {
			usage:       "<index>",
			description: "Print the value at index, counted from the bottom starting at 1",
			arg:         true,
			run: func(s *Session, arg string) error {
				index, err := strconv.Atoi(arg)
				if err != nil {
					return fmt.Errorf("peekn: %w: index %q is not an integer", ErrUsage, arg)
				}

				item, err := s.stack.PeekN(index)
				if err != nil {
					return err
				}
				s.printf("%s\n", renderValue(item))
				return nil
			},
		},
		"contains": {
			usage:       "<value>",
			description: "Report whether the stack holds value",
			arg:         true,
			run: func(s *Session, arg string) error {
				found, err := s.stack.Contains(arg)
				if err != nil {
					return err
				}
				s.printf("%s\n", renderBool(found))
				return nil
			},
		},
		"size": {
			description: "Print the number of values",
			run: func(s *Session, _ string) error {
				s.printf("%d\n", s.stack.Size())
				return nil
			},
		},
		"empty": {
			description: "Report whether the stack is empty",
			run: func(s *Session, _ string) error {
				s.printf("%s\n", renderBool(s.stack.IsEmpty()))
				return nil
			},
		},
		"clear": {
			description: "Remove every value",
			run: func(s *Session, _ string) error {
				s.stack.Clear()
				s.printf("%s\n", renderSuccess("cleared"))
				return nil
			},
		},
		"show": {
			description: "Draw the stack from top to bottom",
			run: func(s *Session, _ string) error {
				s.printf("%s\n", renderStack(s.stack))
				return nil
			},
		},
		"help": {
			description: "List the available commands",
			run: func(s *Session, _ string) error {
				s.printf("%s", renderHelp())
				return nil
			},
		},
	}
}

// Names returns the sorted list of command names.
func Names() []string {
	names := lo.Keys(commands)
	sort.Strings(names)
	return names
}

func errUnknownCommand(name string) error {
	closest := Suggest(name)
	msg := fmt.Sprintf(
		"%s, did you mean %s?",
		style.Fg(color.Red)(name),
		style.Fg(color.Yellow)(closest),
	)

	return fmt.Errorf("%w %s", ErrUnknownCommand, msg)
}

// Suggest returns the registered command closest to name.
func Suggest(name string) string {
	return lo.MinBy(Names(), func(a string, b string) bool {
		return levenshtein.Distance(name, a) < levenshtein.Distance(name, b)
	})
}
