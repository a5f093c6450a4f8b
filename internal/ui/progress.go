package ui

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/schollz/progressbar/v3"
)

// ProgressBar renders live scenario progress.
type ProgressBar struct {
	bar *progressbar.ProgressBar
}

// NewProgressBar creates a progress bar for the given scenario count.
func NewProgressBar(count int) *ProgressBar {
	bar := progressbar.NewOptions(count,
		progressbar.OptionSetDescription(
			color.CyanString("Running scenarios: ")+
				color.GreenString("[passed: 0")+
				" | "+
				color.RedString("failed: 0")+
				" | "+
				color.YellowString("skipped: 0]"),
		),
		progressbar.OptionSetWidth(50),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        color.CyanString("█"),
			SaucerHead:    color.CyanString("█"),
			SaucerPadding: "░",
			BarStart:      "│",
			BarEnd:        "│",
		}),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprint(os.Stderr, "\n")
		}),
		progressbar.OptionSetRenderBlankState(true),
	)

	return &ProgressBar{bar: bar}
}

// Update advances the bar with the current counters.
func (p *ProgressBar) Update(passed, failed, skipped int) {
	p.bar.Set(passed + failed + skipped)
	p.bar.Describe(
		color.CyanString("Running scenarios: ") +
			color.GreenString("[passed: %d", passed) +
			" | " +
			color.RedString("failed: %d", failed) +
			" | " +
			color.YellowString("skipped: %d]", skipped),
	)
}

// Finish completes the progress bar.
func (p *ProgressBar) Finish() {
	p.bar.Finish()
}
