package model

import (
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/logrusorgru/aurora"
	"github.com/pkg/errors"
)

const macosClearCmd = "clear"

// TerminalRenderer implements basic terminal rendering
type TerminalRenderer struct {
	Out   io.Writer
	Color bool
}

// NewTerminalRenderer returns a renderer writing to stdout
func NewTerminalRenderer(color bool) *TerminalRenderer {
	return &TerminalRenderer{Out: os.Stdout, Color: color}
}

// Display renders the grid followed by a newline
func (r *TerminalRenderer) Display(g *Grid) error {
	text := g.String()
	if r.Color {
		alive := string(cellCharAlive)
		text = strings.ReplaceAll(text, alive, aurora.Green(alive).Bold().String())
	}
	if _, err := io.WriteString(r.out(), text+"\n"); err != nil {
		return errors.Wrap(err, "[Display] failed to write grid")
	}
	return nil
}

// Clear clears the terminal screen
func (r *TerminalRenderer) Clear() error {
	cmd := exec.Command(macosClearCmd)
	cmd.Stdout = r.out()
	if err := cmd.Run(); err != nil {
		return errors.Wrap(err, "[Clear] failed to clear terminal")
	}
	return nil
}

func (r *TerminalRenderer) out() io.Writer {
	if r.Out == nil {
		return os.Stdout
	}
	return r.Out
}
