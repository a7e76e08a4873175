// Package display turns command results into a format-neutral view: a
// title, one line per entry and a summary. The text and terminal renderers
// only decide how a view looks.
package display

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/dotstash/pkg/errors"
	"github.com/arthur-debert/dotstash/pkg/types"
)

// Kind classifies a line so renderers can style it
type Kind string

const (
	KindDone     Kind = "done"
	KindPlanned  Kind = "planned"
	KindSkipped  Kind = "skipped"
	KindFailed   Kind = "failed"
	KindCritical Kind = "critical"
	KindInfo     Kind = "info"
)

// Line is one entry in a view
type Line struct {
	Kind   Kind
	Label  string
	Name   string
	Detail string
}

// View is a format-neutral command result
type View struct {
	Title   string
	Lines   []Line
	Summary string
}

var skipText = map[types.SkipReason]string{
	types.SkipOriginalAbsent: "nothing at original path",
	types.SkipAlreadyLinked:  "already a symlink",
	types.SkipBackupAbsent:   "no backup to restore from",
	types.SkipNeedsForce:     "plain file in the way (use --force)",
}

// SkipText returns a human description of a skip reason
func SkipText(reason types.SkipReason) string {
	if text, ok := skipText[reason]; ok {
		return text
	}
	return string(reason)
}

// FromRunResult builds the view of a collect or restore run
func FromRunResult(r *types.RunResult) View {
	title := fmt.Sprintf("%s %s", titleCase(string(r.Action)), r.Root)
	if r.DryRun {
		title += " (dry run)"
	}

	v := View{Title: title}
	for _, o := range r.Outcomes {
		v.Lines = append(v.Lines, outcomeLine(o, r.Action))
	}

	parts := []string{
		fmt.Sprintf("%d %s", r.Count(types.OutcomeDone), pastTense(r.Action)),
		fmt.Sprintf("%d skipped", r.Count(types.OutcomeSkipped)),
	}
	if n := r.Count(types.OutcomePlanned); n > 0 {
		parts = append(parts, fmt.Sprintf("%d planned", n))
	}
	if n := r.Count(types.OutcomeFailed); n > 0 {
		parts = append(parts, fmt.Sprintf("%d failed", n))
	}
	v.Summary = strings.Join(parts, ", ")
	return v
}

// FromStatus builds the view of the status command
func FromStatus(r *types.StatusResult) View {
	v := View{Title: fmt.Sprintf("Status %s", r.Root)}
	for _, s := range r.Entries {
		line := Line{
			Kind:  stateKind(s.State),
			Label: s.State.String(),
			Name:  s.Entry.Name(),
		}

		switch {
		case s.Collect.Status == types.OutcomePlanned:
			line.Detail = "collect would back up " + s.Entry.OriginalPath
		case s.Restore.Failed():
			line.Kind = KindFailed
			line.Detail = errorText(s.Restore.Err)
		case s.State == types.StateLinkedCurrent:
			line.Detail = s.Entry.OriginalPath + " -> " + s.Entry.BackupPath
		case s.Restore.Status == types.OutcomePlanned:
			line.Detail = "restore would recreate " + s.Entry.OriginalPath
		default:
			line.Detail = SkipText(s.Collect.Reason)
			if !s.BackupExists {
				line.Detail += ", no backup"
			}
		}
		v.Lines = append(v.Lines, line)
	}
	v.Summary = fmt.Sprintf("%d tracked", len(r.Entries))
	return v
}

// FromInit builds the view of the init command
func FromInit(r *types.InitResult) View {
	if r.Created {
		return View{Lines: []Line{{Kind: KindDone, Label: "created", Name: r.ConfigPath}}}
	}
	return View{Lines: []Line{{Kind: KindSkipped, Label: "exists", Name: r.ConfigPath}}}
}

func outcomeLine(o types.Outcome, action types.Action) Line {
	line := Line{Name: o.Entry.Name()}
	switch o.Status {
	case types.OutcomeDone:
		line.Kind = KindDone
		line.Label = pastTense(action)
		line.Detail = o.Entry.OriginalPath
	case types.OutcomePlanned:
		line.Kind = KindPlanned
		line.Label = "would " + string(action)
		line.Detail = o.Entry.OriginalPath
	case types.OutcomeSkipped:
		line.Kind = KindSkipped
		line.Label = "skipped"
		line.Detail = SkipText(o.Reason)
	case types.OutcomeFailed:
		line.Kind = KindFailed
		line.Label = "failed"
		line.Detail = fmt.Sprintf("%s: %s", o.Step, errorText(o.Err))
		if o.Critical {
			line.Kind = KindCritical
			line.Detail += "; content is only in " + o.Entry.BackupPath
		}
	}
	return line
}

func stateKind(s types.LinkState) Kind {
	switch s {
	case types.StateLinkedCurrent:
		return KindDone
	case types.StateLinkedStale:
		return KindFailed
	case types.StatePlainFile:
		return KindPlanned
	default:
		return KindSkipped
	}
}

// errorText spells out integrity failures; other errors print as is
func errorText(err error) string {
	if err == nil {
		return ""
	}
	if errors.IsErrorCode(err, errors.ErrIntegrity) {
		if target, ok := errors.GetErrorDetails(err)["target"].(string); ok {
			return "links to " + target + ", not to its backup"
		}
	}
	return err.Error()
}

func pastTense(a types.Action) string {
	switch a {
	case types.ActionCollect:
		return "collected"
	case types.ActionRestore:
		return "restored"
	default:
		return string(a)
	}
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
