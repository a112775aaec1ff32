package interact

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"refa/internal/casestyle"
)

// Terminal implements Prompter over a reader/writer pair, normally stdin and
// stdout. EOF or a blank answer at any prompt is a cancellation.
type Terminal struct {
	in  *bufio.Scanner
	out io.Writer
}

// NewTerminal creates a terminal prompter.
func NewTerminal(in io.Reader, out io.Writer) *Terminal {
	return &Terminal{in: bufio.NewScanner(in), out: out}
}

func (t *Terminal) readLine() (string, bool) {
	if !t.in.Scan() {
		return "", false
	}
	line := strings.TrimSpace(t.in.Text())
	if line == "" {
		return "", false
	}
	return line, true
}

func (t *Terminal) ChooseStyle() (casestyle.Style, bool) {
	fmt.Fprintln(t.out, "Target style: [1] camelCase  [2] PascalCase  [3] snake_case")
	fmt.Fprint(t.out, "> ")
	line, ok := t.readLine()
	if !ok {
		return "", false
	}
	switch line {
	case "1":
		return casestyle.Camel, true
	case "2":
		return casestyle.Pascal, true
	case "3":
		return casestyle.Snake, true
	}
	if style, err := casestyle.ParseStyle(line); err == nil {
		return style, true
	}
	return "", false
}

func (t *Terminal) ChooseMode() (Mode, bool) {
	fmt.Fprintln(t.out, "Apply mode: [a] all at once  [r] review individually")
	fmt.Fprint(t.out, "> ")
	line, ok := t.readLine()
	if !ok {
		return "", false
	}
	switch strings.ToLower(line) {
	case "a", "all":
		return ModeApplyAll, true
	case "r", "review":
		return ModeReview, true
	}
	return "", false
}

func (t *Terminal) Confirm(prompt string) (bool, bool) {
	fmt.Fprintf(t.out, "%s [y/n] ", prompt)
	line, ok := t.readLine()
	if !ok {
		return false, false
	}
	switch strings.ToLower(line) {
	case "y", "yes":
		return true, true
	case "n", "no":
		return false, true
	}
	return false, false
}

func (t *Terminal) ReviewCandidate(original, suggestion, preview string) (ReviewAnswer, bool) {
	fmt.Fprintf(t.out, "\nRename %s -> %s\n", original, suggestion)
	if preview != "" {
		fmt.Fprintln(t.out, preview)
	}
	fmt.Fprint(t.out, "[y] apply  [n] skip  [c <name>] custom  [q] stop > ")
	line, ok := t.readLine()
	if !ok {
		return ReviewAnswer{}, false
	}
	lower := strings.ToLower(line)
	switch {
	case lower == "y" || lower == "yes":
		return ReviewAnswer{Decision: DecisionApply}, true
	case lower == "n" || lower == "no":
		return ReviewAnswer{Decision: DecisionSkip}, true
	case lower == "q" || lower == "quit" || lower == "stop":
		return ReviewAnswer{Decision: DecisionStop}, true
	case strings.HasPrefix(lower, "c "):
		custom := strings.TrimSpace(line[2:])
		if custom == "" {
			return ReviewAnswer{}, false
		}
		return ReviewAnswer{Decision: DecisionApply, CustomName: custom}, true
	}
	return ReviewAnswer{}, false
}

func (t *Terminal) Notify(message string) {
	fmt.Fprintln(t.out, message)
}
