// Package journal records every render run and the outcome of each section
// in the SQLite build journal.
package journal

import (
	"time"

	"github.com/srikarvechalapu/folio/internal/bootstrap"
)

// Trigger identifies what started a run.
type Trigger string

const (
	TriggerBuild Trigger = "build"
	TriggerServe Trigger = "serve"
	TriggerWatch Trigger = "watch"
)

// Run is one recorded render.
type Run struct {
	ID             string           `json:"id"`
	StartedAt      time.Time        `json:"started_at"`
	Duration       time.Duration    `json:"duration"`
	Source         string           `json:"source"`
	OutputDir      string           `json:"output_dir"`
	Trigger        Trigger          `json:"trigger"`
	FailedSections int              `json:"failed_sections"`
	Sections       []SectionOutcome `json:"sections,omitempty"`
}

// SectionOutcome is the recorded result of one section in a run.
type SectionOutcome struct {
	Seq      int           `json:"seq"`
	Section  string        `json:"section"`
	Status   string        `json:"status"`
	Error    string        `json:"error,omitempty"`
	Duration time.Duration `json:"duration"`
}

// FromReport converts a bootstrap report into a Run.
func FromReport(rep *bootstrap.Report, source, outputDir string, trigger Trigger) Run {
	run := Run{
		ID:        rep.RunID,
		StartedAt: rep.StartedAt,
		Duration:  rep.Duration,
		Source:    source,
		OutputDir: outputDir,
		Trigger:   trigger,
	}
	for _, o := range rep.Outcomes {
		so := SectionOutcome{
			Seq:      o.Seq,
			Section:  o.Section,
			Status:   string(o.Status),
			Duration: o.Duration,
		}
		if o.Err != nil {
			so.Error = o.Err.Error()
			run.FailedSections++
		}
		run.Sections = append(run.Sections, so)
	}
	return run
}
