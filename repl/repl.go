// Package repl runs an interactive prompt on top of a session.
package repl

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/lifo-cli/lifo/color"
	"github.com/lifo-cli/lifo/icon"
	"github.com/lifo-cli/lifo/key"
	"github.com/lifo-cli/lifo/log"
	"github.com/lifo-cli/lifo/session"
	"github.com/lifo-cli/lifo/style"
	"github.com/spf13/viper"
)

// Asker reads one line of input after showing prompt.
type Asker func(prompt string) (string, error)

// Options configures a prompt loop.
type Options struct {
	Out io.Writer
	Ask Asker
}

// SurveyAsker prompts through survey on the controlling terminal.
func SurveyAsker(prompt string) (string, error) {
	var line string
	input := survey.Input{Message: prompt}
	err := survey.AskOne(&input, &line, survey.WithShowCursor(true))
	return line, err
}

// Run reads commands until quit, exit, an interrupt or end of input. Command failures are
// printed and the loop goes on.
func Run(options *Options) error {
	ask := options.Ask
	if ask == nil {
		ask = SurveyAsker
	}

	s := session.New(options.Out)
	prompt := strings.TrimSpace(viper.GetString(key.ReplPrompt))
	log.Info("interactive session started")

	for {
		line, err := ask(prompt)
		if err != nil {
			if errors.Is(err, terminal.InterruptErr) || errors.Is(err, io.EOF) {
				log.Info("interactive session ended")
				return nil
			}
			return fmt.Errorf("read command: %w", err)
		}

		switch strings.ToLower(strings.TrimSpace(line)) {
		case "quit", "exit":
			log.Info("interactive session ended")
			return nil
		}

		if err := s.Exec(line); err != nil {
			_, _ = fmt.Fprintf(options.Out, "%s %s\n", style.Fg(color.Red)(icon.Get(icon.Fail)), err)
			if errors.Is(err, session.ErrUnknownCommand) {
				_, _ = fmt.Fprintf(options.Out, "%s %s\n", icon.Get(icon.Question), style.Faint("type help to list commands"))
			}
		}
	}
}
