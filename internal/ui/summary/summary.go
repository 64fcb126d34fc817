// Package summary renders the end-of-run report printed by the CLI.
package summary

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/imamik/oneliner/internal/provisioning"
	"github.com/imamik/oneliner/internal/util/prerequisites"
)

// Report is everything known about a run when it ends.
type Report struct {
	RunID    string
	Region   string
	Duration time.Duration

	// Entries are the recorded identifiers, in the order they were created.
	Entries []provisioning.Entry

	// FailedPhase and Err are set when the run aborted.
	FailedPhase string
	Err         error

	// Missing lists client tools that were not found on PATH.
	Missing []prerequisites.Tool
}

// styleFunc is a single-string styling function.
type styleFunc func(string) string

// sf wraps a lipgloss.Style into a styleFunc.
func sf(s lipgloss.Style) styleFunc {
	return func(str string) string { return s.Render(str) }
}

func plain(str string) string { return str }

type palette struct {
	title, subtitle, section, ready, failed, warning, dim styleFunc
}

func newPalette(styled bool) palette {
	if !styled {
		return palette{plain, plain, plain, plain, plain, plain, plain}
	}
	return palette{
		title:    sf(titleStyle),
		subtitle: sf(subtitleStyle),
		section:  sf(sectionStyle),
		ready:    sf(readyStyle),
		failed:   sf(failedStyle),
		warning:  sf(warningStyle),
		dim:      sf(dimStyle),
	}
}

// Render formats r. With styled false the output contains no escape codes.
func Render(r Report, styled bool) string {
	p := newPalette(styled)
	var b strings.Builder

	renderHeader(&b, r, p)
	renderResources(&b, r, p)
	if r.Err != nil {
		renderFailure(&b, r, p)
	}
	if len(r.Missing) > 0 {
		renderMissing(&b, r, p)
	}

	return b.String()
}

func renderHeader(b *strings.Builder, r Report, p palette) {
	status := p.ready("completed")
	if r.Err != nil {
		status = p.failed("failed")
	}
	fmt.Fprintf(b, "%s %s\n", p.title("oneliner run"), status)

	var meta []string
	if r.RunID != "" {
		meta = append(meta, "run "+r.RunID)
	}
	if r.Region != "" {
		meta = append(meta, "region "+r.Region)
	}
	if r.Duration > 0 {
		meta = append(meta, "took "+formatDuration(r.Duration))
	}
	if len(meta) > 0 {
		fmt.Fprintf(b, "%s\n", p.subtitle(strings.Join(meta, " | ")))
	}
}

func renderResources(b *strings.Builder, r Report, p palette) {
	fmt.Fprintf(b, "\n%s\n", p.section("Resources"))
	if len(r.Entries) == 0 {
		fmt.Fprintf(b, "  %s\n", p.dim("none created"))
		return
	}

	width := 0
	for _, e := range r.Entries {
		width = max(width, len(e.Key))
	}
	for _, e := range r.Entries {
		fmt.Fprintf(b, "  %s %-*s %s\n", p.ready(checkMark), width, e.Key, strings.Join(e.Values, ", "))
	}
}

func renderFailure(b *strings.Builder, r Report, p palette) {
	fmt.Fprintf(b, "\n%s\n", p.section("Error"))
	phase := r.FailedPhase
	if phase == "" {
		phase = "setup"
	}
	fmt.Fprintf(b, "  %s %s: %s\n", p.failed(crossMark), phase, r.Err)
	fmt.Fprintf(b, "  %s\n", p.dim("Resources listed above were not removed."))
}

func renderMissing(b *strings.Builder, r Report, p palette) {
	fmt.Fprintf(b, "\n%s\n", p.section("Missing tools"))
	for _, tool := range r.Missing {
		fmt.Fprintf(b, "  %s %s: %s\n", p.warning(warnMark), tool.Name, tool.Description)
		if tool.InstallURL != "" {
			fmt.Fprintf(b, "       %s\n", p.dim(tool.InstallURL))
		}
	}
}

// formatDuration formats d as a compact human-readable string.
func formatDuration(d time.Duration) string {
	d = d.Round(time.Second)
	if d < time.Minute {
		return fmt.Sprintf("%ds", int(d.Seconds()))
	}
	if d < time.Hour {
		return fmt.Sprintf("%dm%ds", int(d.Minutes()), int(d.Seconds())%60)
	}
	return fmt.Sprintf("%dh%dm", int(d.Hours()), int(d.Minutes())%60)
}
