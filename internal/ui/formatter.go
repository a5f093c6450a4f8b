package ui

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"

	"utb/internal/config"
	"utb/internal/domain"
	"utb/internal/trace"
)

// Formatter formats and displays run output.
type Formatter struct {
	config *config.Config
}

// NewFormatter creates a new Formatter.
func NewFormatter(cfg *config.Config) *Formatter {
	if cfg.NoColor {
		color.NoColor = true
	}
	return &Formatter{config: cfg}
}

// PrintReport displays the run summary table followed by failure
// details.
func (f *Formatter) PrintReport(report *domain.Report) {
	fmt.Println()

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetTitle("Scenario Run " + report.RunID)
	t.AppendRow(table.Row{"Total", report.Total})
	t.AppendRow(table.Row{"Passed", report.Passed})
	t.AppendRow(table.Row{"Failed", report.Failed})
	t.AppendRow(table.Row{"Skipped", report.Skipped})
	t.AppendRow(table.Row{"Duration", fmt.Sprintf("%.2fs", report.Duration.Seconds())})
	t.Render()

	fmt.Println()
	if report.Failed == 0 {
		color.Green("✓ All scenarios passed!")
	} else {
		color.Red("✗ %d scenario(s) failed", report.Failed)
		fmt.Println()
		for _, res := range report.Failures() {
			f.printFailure(res)
		}
	}

	// Pass-with-note results (expected failures) still deserve their
	// notes in the text report.
	for _, res := range report.Results {
		if res.Status == domain.StatusPass && len(res.ExtraDetails()) > 0 {
			color.Yellow("• %s", res.Scenario.Subject)
			for _, detail := range res.ExtraDetails() {
				fmt.Printf("    %s\n", detail)
			}
		}
	}
}

// printFailure renders one failed scenario with its details and
// filtered traceback.
func (f *Formatter) printFailure(res *domain.ScenarioResult) {
	color.Red("✗ %s", res.Scenario.Subject)
	color.Cyan("  %s (%s)", res.Scenario.Name, res.Scenario.File)
	if res.Err != nil {
		for _, line := range strings.Split(res.Err.Error(), "\n") {
			fmt.Printf("    %s\n", line)
		}
		if frames := FramesOf(res.Err); len(frames) > 0 {
			fmt.Print(trace.FormatFrames(frames))
		}
	}
	for _, detail := range res.ExtraDetails() {
		color.Yellow("    %s", detail)
	}
	fmt.Println()
}

// PrintScenarioList prints the discovered scenarios grouped by module
// path, marking build-time skips.
func (f *Formatter) PrintScenarioList(groups []domain.ScenarioGroup) {
	total := 0
	for _, g := range groups {
		total += len(g.Scenarios)
	}
	color.Green("Found %d scenario(s) in %d module(s):\n", total, len(groups))

	for i, group := range groups {
		last := i == len(groups)-1
		if last {
			color.Cyan("└── %s", group.Path)
		} else {
			color.Cyan("├── %s", group.Path)
		}

		for j, scn := range group.Scenarios {
			prefix := "│   ├── "
			if last {
				prefix = "    ├── "
			}
			if j == len(group.Scenarios)-1 {
				if last {
					prefix = "    └── "
				} else {
					prefix = "│   └── "
				}
			}
			marker := ""
			if scn.Skipped {
				marker = " " + color.YellowString("[skip]")
			}
			fmt.Printf("%s%s%s\n", prefix, color.YellowString(scn.Subject), marker)
		}
		if !last {
			fmt.Println()
		}
	}
}

// FramesOf returns the displayable traceback of err: the filtered
// frames when traceback filtering ran, the raw captured stack
// otherwise.
func FramesOf(err error) []trace.Frame {
	var filtered *trace.FilteredError
	if errors.As(err, &filtered) {
		return filtered.Frames()
	}
	return trace.StackOf(err)
}
