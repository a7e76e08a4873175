// Package json provides machine-readable JSON output
package json

import (
	"encoding/json"
	"io"

	"github.com/arthur-debert/dotstash/pkg/types"
)

// Renderer provides JSON output for machine consumption
type Renderer struct {
	output  io.Writer
	encoder *json.Encoder
}

// New creates a new JSON renderer
func New(output io.Writer) (*Renderer, error) {
	encoder := json.NewEncoder(output)
	encoder.SetIndent("", "  ")
	return &Renderer{
		output:  output,
		encoder: encoder,
	}, nil
}

// outcomeJSON adds the error text that Outcome hides from encoding/json
type outcomeJSON struct {
	types.Outcome
	Error string `json:"error,omitempty"`
}

type runResultJSON struct {
	Action   types.Action  `json:"action"`
	Root     string        `json:"root"`
	DryRun   bool          `json:"dryRun"`
	Outcomes []outcomeJSON `json:"outcomes"`
}

// RenderResult renders any result type as JSON
func (r *Renderer) RenderResult(result interface{}) error {
	if v, ok := result.(*types.RunResult); ok {
		out := runResultJSON{Action: v.Action, Root: v.Root, DryRun: v.DryRun, Outcomes: []outcomeJSON{}}
		for _, o := range v.Outcomes {
			oj := outcomeJSON{Outcome: o}
			if o.Err != nil {
				oj.Error = o.Err.Error()
			}
			out.Outcomes = append(out.Outcomes, oj)
		}
		return r.encoder.Encode(out)
	}
	return r.encoder.Encode(result)
}

// RenderError renders an error as JSON
func (r *Renderer) RenderError(err error) error {
	errorObj := map[string]string{
		"error": err.Error(),
	}
	return r.encoder.Encode(errorObj)
}

// RenderMessage renders a simple message as JSON
func (r *Renderer) RenderMessage(msg string) error {
	messageObj := map[string]string{
		"message": msg,
	}
	return r.encoder.Encode(messageObj)
}
