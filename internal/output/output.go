package output

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Printer handles formatted output to a writer.
// It supports both JSON and human-readable output modes.
type Printer struct {
	w      io.Writer
	errW   io.Writer
	json   bool
	isTTY  bool
	styles *Styles
}

// Styles holds lipgloss styles for human-readable output.
type Styles struct {
	Error   lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Bold    lipgloss.Style
	Dim     lipgloss.Style
	Key     lipgloss.Style
}

// NewPrinter creates a new Printer.
// If jsonMode is true, output will be JSON formatted.
// If isTTY is true, colors will be enabled for human output.
func NewPrinter(writer io.Writer, jsonMode bool, isTTY bool) *Printer {
	styles := &Styles{
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true), // Red
		Success: lipgloss.NewStyle().Foreground(lipgloss.Color("10")),           // Green
		Warning: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),           // Yellow
		Bold:    lipgloss.NewStyle().Bold(true),
		Dim:     lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Key:     lipgloss.NewStyle().Foreground(lipgloss.Color("14")), // Cyan
	}

	if !isTTY {
		styles = &Styles{
			Error:   lipgloss.NewStyle(),
			Success: lipgloss.NewStyle(),
			Warning: lipgloss.NewStyle(),
			Bold:    lipgloss.NewStyle(),
			Dim:     lipgloss.NewStyle(),
			Key:     lipgloss.NewStyle(),
		}
	}

	return &Printer{
		w:      writer,
		errW:   writer,
		json:   jsonMode,
		isTTY:  isTTY,
		styles: styles,
	}
}

// WithStderr sets a separate writer for errors and warnings in human mode.
// In JSON mode, errors still go to the main writer.
// Returns the printer for chaining.
func (p *Printer) WithStderr(w io.Writer) *Printer {
	p.errW = w
	return p
}

// IsJSON returns true if the printer is in JSON mode.
func (p *Printer) IsJSON() bool {
	return p.json
}

// IsTTY returns true if the printer output is a TTY.
func (p *Printer) IsTTY() bool {
	return p.isTTY
}

// Success outputs a success result.
// For JSON mode, outputs the data as JSON.
// For human mode, prints the "message" key if present.
func (p *Printer) Success(data map[string]any) error {
	if p.json {
		return p.writeJSON(data)
	}

	if msg, ok := data["message"].(string); ok {
		mustWrite(fmt.Fprintln(p.w, p.styles.Success.Render(msg)))
		return nil
	}

	for key, val := range data {
		mustWrite(fmt.Fprintf(p.w, "%s: %v\n", p.styles.Bold.Render(key), val))
	}
	return nil
}

// Error outputs an error.
// For JSON mode, outputs {"error": "...", "code": N} to the main writer.
// For human mode, outputs a styled error message to the error writer.
func (p *Printer) Error(err error) {
	exitErr := &ExitError{}
	if !errors.As(err, &exitErr) {
		exitErr = &ExitError{
			Code:    ExitUserError,
			Message: err.Error(),
		}
	}

	if p.json {
		mustWrite(p.w.Write(ErrorJSON(exitErr.Message, exitErr.Code)))
		mustWrite(fmt.Fprintln(p.w))
		return
	}

	mustWrite(fmt.Fprintf(p.errW, "%s: %s\n", p.styles.Error.Render("Error"), exitErr.Message))
}

// Warn outputs a warning message.
func (p *Printer) Warn(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if p.json {
		_ = p.writeJSON(map[string]any{"warning": msg})
		return
	}
	mustWrite(fmt.Fprintf(p.errW, "%s: %s\n", p.styles.Warning.Render("Warning"), msg))
}

// Print formats and writes to the output without a newline.
func (p *Printer) Print(format string, args ...any) {
	mustWrite(fmt.Fprintf(p.w, format, args...))
}

// Println writes a line to the output.
func (p *Printer) Println(args ...any) {
	mustWrite(fmt.Fprintln(p.w, args...))
}

// KeyValue renders a "Key: Value" line with styles applied.
func (p *Printer) KeyValue(key string, value string) {
	mustWrite(fmt.Fprintf(p.w, "%s %s\n", p.styles.Key.Render(key+":"), value))
}

// Dim renders a line in the muted style.
func (p *Printer) Dim(format string, args ...any) {
	mustWrite(fmt.Fprintln(p.w, p.styles.Dim.Render(fmt.Sprintf(format, args...))))
}

// WriteJSON encodes any data as JSON and writes it.
func (p *Printer) WriteJSON(data any) error {
	return p.writeJSON(data)
}

func (p *Printer) writeJSON(data any) error {
	enc := json.NewEncoder(p.w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(data); err != nil {
		return fmt.Errorf("encoding JSON: %w", err)
	}
	return nil
}

// ErrorJSON returns JSON-formatted error bytes.
// Format: {"error": "message", "code": N}
func ErrorJSON(message string, code int) []byte {
	result, _ := json.Marshal(map[string]any{
		"error": message,
		"code":  code,
	})
	return result
}

// mustWrite panics if a write to stdout, stderr or a buffer fails.
func mustWrite(_ int, err error) {
	if err != nil {
		panic(fmt.Sprintf("write failed: %v", err))
	}
}
