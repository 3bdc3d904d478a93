package controllers

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"github.com/rios0rios0/classrepos/internal/domain/entities"
)

// Theme holds the styles of the end-of-run summary.
type Theme struct {
	Header  lipgloss.Style
	Success lipgloss.Style
	Warn    lipgloss.Style
	Error   lipgloss.Style
	Muted   lipgloss.Style
}

// DefaultTheme returns the summary colours.
func DefaultTheme() Theme {
	return Theme{
		Header:  lipgloss.NewStyle().Bold(true),
		Success: lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		Warn:    lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
		Muted:   lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
	}
}

// SummaryRenderer prints one line per roster entry after a run.
type SummaryRenderer struct {
	out      io.Writer
	theme    Theme
	useColor bool
}

// NewSummaryRenderer creates a renderer writing to out.
func NewSummaryRenderer(out io.Writer, theme Theme, useColor bool) *SummaryRenderer {
	return &SummaryRenderer{out: out, theme: theme, useColor: useColor}
}

// NewStdoutSummaryRenderer renders to stdout, with colour only on a terminal.
func NewStdoutSummaryRenderer() *SummaryRenderer {
	return NewSummaryRenderer(os.Stdout, DefaultTheme(), isatty.IsTerminal(os.Stdout.Fd()))
}

// Render writes the summary of report.
func (r *SummaryRenderer) Render(report *entities.Report) {
	title := fmt.Sprintf("Summary for %s-%s", report.Namespace, report.Designation)
	if report.DryRun {
		title += " (dry run)"
	}
	fmt.Fprintln(r.out, r.style(title, r.theme.Header))

	for _, entry := range report.Entries {
		name := entry.Name
		if len(entry.Identities) == 0 && entry.State == entities.StateSkippedNoIdentities {
			name = "(empty row)"
		}
		line := fmt.Sprintf("  %3d  %-40s  %s", entry.Index+1, name, r.style(string(entry.State), r.stateStyle(entry)))
		if entry.ProjectID != 0 {
			line += r.style(fmt.Sprintf("  id=%d members=%d", entry.ProjectID, entry.MembersAdded), r.theme.Muted)
		}
		fmt.Fprintln(r.out, line)
		for _, step := range entry.FailedSteps() {
			fmt.Fprintln(r.out, "       "+r.style(step.Err.Error(), r.theme.Warn))
		}
	}

	fmt.Fprintf(
		r.out, "%d of %d entries set up, %d skipped\n",
		report.Completed(), len(report.Entries), report.Skipped(),
	)
}

func (r *SummaryRenderer) stateStyle(entry entities.EntryOutcome) lipgloss.Style {
	switch entry.State {
	case entities.StateDone:
		if len(entry.FailedSteps()) > 0 {
			return r.theme.Warn
		}
		return r.theme.Success
	case entities.StatePlanned:
		return r.theme.Muted
	case entities.StateSkippedCreateFailed:
		return r.theme.Error
	default:
		return r.theme.Warn
	}
}

func (r *SummaryRenderer) style(text string, style lipgloss.Style) string {
	if !r.useColor {
		return text
	}
	return style.Render(text)
}
