// Copyright © 2018 One Concern

// Package report aggregates per-route outcomes of an update run and renders
// the human-readable summary.
package report

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/oneconcern/sitemod/pkg/model"
)

// Status of a single route after the run
type Status string

const (
	// StatusUpdated means at least one sitemap field changed for the route
	StatusUpdated Status = "updated"

	// StatusUnchanged means all fields already carried the resolved values
	StatusUnchanged Status = "unchanged"

	// StatusWarning flags a non-fatal condition (untracked file, unmatched route)
	StatusWarning Status = "warning"

	// StatusError means the route could not be processed (e.g. template file missing)
	StatusError Status = "error"
)

// Outcome is one reported line
type Outcome struct {
	Path    string
	Status  Status
	Old     string
	New     string
	Source  model.DateSource
	Message string
}

// Report collects outcomes in route order
type Report struct {
	outcomes []Outcome
}

// New empty report
func New() *Report {
	return &Report{}
}

// Updated records a route whose entry was modified
func (r *Report) Updated(path, old, new string, source model.DateSource) {
	r.outcomes = append(r.outcomes, Outcome{Path: path, Status: StatusUpdated, Old: old, New: new, Source: source})
}

// Unchanged records a route whose entry already matched
func (r *Report) Unchanged(path, date string) {
	r.outcomes = append(r.outcomes, Outcome{Path: path, Status: StatusUnchanged, Old: date, New: date})
}

// Warning records a non-fatal condition for a route
func (r *Report) Warning(path, msg string) {
	r.outcomes = append(r.outcomes, Outcome{Path: path, Status: StatusWarning, Message: msg})
}

// Error records a failed route
func (r *Report) Error(path, msg string) {
	r.outcomes = append(r.outcomes, Outcome{Path: path, Status: StatusError, Message: msg})
}

// Outcomes in the order they were recorded
func (r *Report) Outcomes() []Outcome {
	return r.outcomes
}

// Modified counts routes whose entry changed
func (r *Report) Modified() int {
	return r.count(StatusUpdated)
}

// Errored counts routes that failed
func (r *Report) Errored() int {
	return r.count(StatusError)
}

func (r *Report) count(s Status) (n int) {
	for _, o := range r.outcomes {
		if o.Status == s {
			n++
		}
	}
	return
}

// Summary renders one line per outcome plus the aggregate count
func (r *Report) Summary(w io.Writer) {
	table := uitable.New()
	table.AddRow("STATUS", "ROUTE", "DETAIL")
	for _, o := range r.outcomes {
		table.AddRow(colorize(o.Status), o.Path, detail(o))
	}
	fmt.Fprintln(w, table)
	fmt.Fprintf(w, "\n%d entries modified\n", r.Modified())
}

func detail(o Outcome) string {
	switch o.Status {
	case StatusUpdated:
		return fmt.Sprintf("%s -> %s (%s)", o.Old, o.New, o.Source)
	case StatusUnchanged:
		return fmt.Sprintf("already up to date (%s)", o.Old)
	default:
		return o.Message
	}
}

func colorize(s Status) string {
	switch s {
	case StatusUpdated:
		return color.GreenString(string(s))
	case StatusWarning:
		return color.YellowString(string(s))
	case StatusError:
		return color.RedString(string(s))
	default:
		return color.HiBlackString(string(s))
	}
}
