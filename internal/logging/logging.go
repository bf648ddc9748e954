// Package logging writes one access line per served request.
package logging

import (
	"fmt"
	"io"
	"log"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// Entry describes one handled request.
type Entry struct {
	Method   string
	Target   string
	Resolved string
	Status   int
	Elapsed  time.Duration
}

// Logger records handled requests and server-level errors.
type Logger interface {
	Request(e Entry)
	Errorf(format string, args ...any)
}

// Plain provides basic logging without colors.
type Plain struct {
	l *log.Logger
}

// NewPlain logs to w with the standard log flags.
func NewPlain(w io.Writer) *Plain {
	return &Plain{l: log.New(w, "", log.LstdFlags)}
}

func (p *Plain) Request(e Entry) {
	p.l.Printf("%s %s -> %s %d in %s\n", e.Method, e.Target, e.Resolved, e.Status, e.Elapsed)
}

func (p *Plain) Errorf(format string, args ...any) {
	p.l.Printf(format, args...)
}

// Colored provides colored logging.
type Colored struct {
	l           *log.Logger
	methodStyle lipgloss.Style
	errorStyle  lipgloss.Style
}

// NewColored logs to w, styling the method and status code.
func NewColored(w io.Writer) *Colored {
	return &Colored{
		l:           log.New(w, "", log.LstdFlags),
		methodStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Bold(true).Background(lipgloss.Color("12")).Width(8).Align(lipgloss.Center),
		errorStyle:  lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
	}
}

func (c *Colored) Request(e Entry) {
	styledMethod := c.methodStyle.Render(e.Method)
	styledStatus := getStatusCodeStyle(e.Status).Render(fmt.Sprintf("%d", e.Status))

	c.l.Printf("%s %s -> %s %s in %s\n", styledMethod, e.Target, e.Resolved, styledStatus, e.Elapsed)
}

func (c *Colored) Errorf(format string, args ...any) {
	c.l.Print(c.errorStyle.Render(fmt.Sprintf(format, args...)))
}

// getStatusCodeStyle returns a lipgloss style for HTTP status codes
func getStatusCodeStyle(statusCode int) lipgloss.Style {
	switch {
	case statusCode >= 200 && statusCode < 300:
		// 2xx Success - Green
		return lipgloss.NewStyle().Foreground(lipgloss.Color("46")).Bold(true)
	case statusCode >= 400 && statusCode < 500:
		// 4xx Client Error - Orange/Red
		return lipgloss.NewStyle().Foreground(lipgloss.Color("208")).Bold(true)
	default:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Bold(true)
	}
}
