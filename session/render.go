package session

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lifo-cli/lifo/color"
	"github.com/lifo-cli/lifo/icon"
	"github.com/lifo-cli/lifo/stack"
	"github.com/lifo-cli/lifo/style"
	"github.com/lifo-cli/lifo/util"
)

func renderValue(v string) string {
	return style.Fg(color.Yellow)(strconv.Quote(v))
}

func renderBool(b bool) string {
	s := strconv.FormatBool(b)
	if b {
		return style.Fg(color.Green)(s)
	}
	return style.Fg(color.Red)(s)
}

func renderEmpty() string {
	return style.Faint(icon.Get(icon.Empty) + " empty")
}

func renderSuccess(msg string) string {
	return fmt.Sprintf("%s %s", style.Fg(color.Green)(icon.Get(icon.Success)), msg)
}

func renderError(err error) string {
	return fmt.Sprintf("%s %s", style.Fg(color.Red)(icon.Get(icon.Fail)), err)
}

func renderEcho(line string) string {
	return style.Faint("$ " + line)
}

// drain pops every value, top first, and pushes them back so the stack ends up unchanged.
func drain(s *stack.Stack[string]) []string {
	items := make([]string, 0, s.Size())
	for !s.IsEmpty() {
		item, err := s.Pop()
		if err != nil {
			break
		}
		items = append(items, item)
	}

	for i := len(items) - 1; i >= 0; i-- {
		_ = s.Push(items[i])
	}
	return items
}

// renderStack draws the stack top to bottom inside a rounded border. Positions count down
// from Size, so the numbering matches what peekn expects.
func renderStack(s *stack.Stack[string]) string {
	if s.IsEmpty() {
		return renderEmpty()
	}

	size := s.Size()
	width := len(strconv.Itoa(size))
	lines := make([]string, 0, size)
	for i, item := range drain(s) {
		pos := size - i

		marker := " "
		if pos == size {
			marker = icon.Get(icon.Top)
		}
		lines = append(lines, fmt.Sprintf("%s %s %s", marker, style.Faint(fmt.Sprintf("%*d", width, pos)), renderValue(item)))
	}

	box := style.New().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(color.Purple).
		Padding(0, 1).
		Render(strings.Join(lines, "\n"))

	return box + "\n" + style.Faint(util.Quantify(size, "value", "values"))
}

func renderHelp() string {
	var b strings.Builder
	for _, name := range Names() {
		cmd := commands[name]
		usage := name
		if cmd.usage != "" {
			usage += " " + cmd.usage
		}
		fmt.Fprintf(&b, "  %s %s\n", style.Bold(fmt.Sprintf("%-16s", usage)), style.Faint(cmd.description))
	}
	return b.String()
}
