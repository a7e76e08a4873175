// Package terminal provides rich terminal output with colors and styling
package terminal

import (
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/dotstash/pkg/types"
	"github.com/arthur-debert/dotstash/pkg/ui/display"
	"github.com/arthur-debert/dotstash/pkg/ui/styles"
)

// Renderer provides rich terminal output using the registered lipgloss styles
type Renderer struct {
	output io.Writer
}

// New creates a new terminal renderer
func New(w io.Writer) (*Renderer, error) {
	return &Renderer{output: w}, nil
}

var kindStyle = map[display.Kind]string{
	display.KindDone:     "Success",
	display.KindPlanned:  "Planned",
	display.KindSkipped:  "Skipped",
	display.KindFailed:   "Error",
	display.KindCritical: "Critical",
	display.KindInfo:     "Muted",
}

// RenderResult renders any result type with rich terminal formatting
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
			_, err := fmt.Fprintf(r.output, "%s %s\n", styles.Render("Success", "wrote"), styles.Render("FilePath", v.Path))
			return err
		}
		_, err := io.WriteString(r.output, v.Content)
		return err
	default:
		_, err := fmt.Fprintf(r.output, "%+v\n", result)
		return err
	}
}

func (r *Renderer) renderView(v display.View) error {
	var b strings.Builder
	if v.Title != "" {
		b.WriteString(styles.Render("Header", v.Title))
		b.WriteString("\n")
	}
	for _, line := range v.Lines {
		label := styles.Render("Label", line.Label)
		if name, ok := kindStyle[line.Kind]; ok {
			label = styles.Render(name, styles.Render("Label", line.Label))
		}
		fmt.Fprintf(&b, "  %s %s  %s\n",
			label,
			styles.Render("Name", line.Name),
			detailText(line))
	}
	if v.Summary != "" {
		b.WriteString("\n")
		b.WriteString(styles.Render("Muted", v.Summary))
		b.WriteString("\n")
	}
	_, err := io.WriteString(r.output, b.String())
	return err
}

func detailText(line display.Line) string {
	switch line.Kind {
	case display.KindFailed, display.KindCritical:
		return styles.Render("Error", line.Detail)
	case display.KindSkipped:
		return styles.Render("Muted", line.Detail)
	default:
		return styles.Render("FilePath", line.Detail)
	}
}

// RenderError renders an error with appropriate formatting
func (r *Renderer) RenderError(err error) error {
	_, err2 := fmt.Fprintf(r.output, "%s %v\n", styles.Render("Error", "Error:"), err)
	return err2
}

// RenderMessage renders a simple message
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, msg)
	return err
}
