// Package console is the text interaction layer of the recipe book: a
// line-oriented terminal and the menu flows that drive the recipe store.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// IO is the primitive text channel the menus are written against.
type IO interface {
	// ReadLine writes prompt and returns the next input line without its
	// line ending. It returns io.EOF once input is exhausted.
	ReadLine(prompt string) (string, error)
	// Print writes text followed by a newline.
	Print(text string)
	// Clear wipes the screen when the output supports it.
	Clear()
}

// clearSequence moves the cursor home and erases the display.
const clearSequence = "\033[H\033[J"

// Terminal implements IO over a reader and a writer.
type Terminal struct {
	in    *bufio.Reader
	out   io.Writer
	clear bool
}

// NewTerminal creates a terminal. Screen clearing happens only when
// clearScreen is set and out is an interactive terminal.
func NewTerminal(in io.Reader, out io.Writer, clearScreen bool) *Terminal {
	return &Terminal{
		in:    bufio.NewReader(in),
		out:   out,
		clear: clearScreen && isTerminal(out),
	}
}

// ReadLine implements IO.
func (t *Terminal) ReadLine(prompt string) (string, error) {
	fmt.Fprint(t.out, prompt)
	line, err := t.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// Print implements IO.
func (t *Terminal) Print(text string) {
	fmt.Fprintln(t.out, text)
}

// Clear implements IO.
func (t *Terminal) Clear() {
	if t.clear {
		fmt.Fprint(t.out, clearSequence)
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// Styles holds the Lip Gloss styles used by the menus.
type Styles struct {
	Title   lipgloss.Style
	Error   lipgloss.Style
	Success lipgloss.Style
	Muted   lipgloss.Style
}

// NewStyles builds styles bound to out. With color disabled every style
// renders plain text.
func NewStyles(out io.Writer, color bool) Styles {
	r := lipgloss.NewRenderer(out)
	if !color {
		r.SetColorProfile(termenv.Ascii)
	}
	return Styles{
		Title:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("#7C3AED")),
		Error:   r.NewStyle().Foreground(lipgloss.Color("#EF4444")),
		Success: r.NewStyle().Foreground(lipgloss.Color("#10B981")),
		Muted:   r.NewStyle().Foreground(lipgloss.Color("#6B7280")),
	}
}
