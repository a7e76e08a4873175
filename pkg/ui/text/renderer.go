// Package text provides plain text output without any styling
package text

import (
	"fmt"
	"io"

	"github.com/arthur-debert/dotstash/pkg/types"
	"github.com/arthur-debert/dotstash/pkg/ui/display"
)

// Renderer provides plain text output without colors or styling
type Renderer struct {
	output io.Writer
}

// New creates a new text renderer
func New(output io.Writer) (*Renderer, error) {
	return &Renderer{output: output}, nil
}

// RenderResult renders any result type as plain text
func (r *Renderer) RenderResult(result interface{}) error {
	switch v := result.(type) {
	case *types.RunResult:
		return r.renderView(display.FromRunResult(v))
	case *types.StatusResult:
		return r.renderView(display.FromStatus(v))
	case *types.InitResult:
		return r.renderView(display.FromInit(v))
	case *types.GenConfigResult:
		if v.Path != "" {
			_, err := fmt.Fprintf(r.output, "wrote %s\n", v.Path)
			return err
		}
		_, err := io.WriteString(r.output, v.Content)
		return err
	default:
		// For unknown types, just print them
		_, err := fmt.Fprintf(r.output, "%+v\n", result)
		return err
	}
}

func (r *Renderer) renderView(v display.View) error {
	if v.Title != "" {
		if _, err := fmt.Fprintf(r.output, "%s\n\n", v.Title); err != nil {
			return err
		}
	}
	for _, line := range v.Lines {
		if _, err := fmt.Fprintf(r.output, "  %-14s %-28s %s\n", line.Label, line.Name, line.Detail); err != nil {
			return err
		}
	}
	if v.Summary != "" {
		if _, err := fmt.Fprintf(r.output, "\n%s\n", v.Summary); err != nil {
			return err
		}
	}
	return nil
}

// RenderError renders an error as plain text
func (r *Renderer) RenderError(err error) error {
	_, err2 := fmt.Fprintf(r.output, "Error: %v\n", err)
	return err2
}

// RenderMessage renders a simple message
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, msg)
	return err
}
