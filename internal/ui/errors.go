package ui

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"utb/internal/config"
	"utb/internal/domain"
)

// ErrorViewer displays failed scenarios in an interactive TUI. It works
// on the in-memory report of the run that just finished; nothing is
// persisted.
type ErrorViewer struct {
	config *config.Config
}

// NewErrorViewer creates a new ErrorViewer.
func NewErrorViewer(cfg *config.Config) *ErrorViewer {
	return &ErrorViewer{config: cfg}
}

// View displays the report's failures.
func (ev *ErrorViewer) View(report *domain.Report) error {
	failures := report.Failures()
	if len(failures) == 0 {
		color.Green("✓ No scenario failures found!")
		return nil
	}

	app := tview.NewApplication()

	list := tview.NewList().
		ShowSecondaryText(false).
		SetHighlightFullLine(true)
	for i, res := range failures {
		list.AddItem(fmt.Sprintf("[yellow]%d.[white] %s", i+1, res.Scenario.Name), "", 0, nil)
	}
	list.SetMainTextColor(tview.Styles.PrimaryTextColor).
		SetSelectedTextColor(tcell.ColorWhite).
		SetSelectedBackgroundColor(tcell.ColorDarkCyan)

	statsView := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(false)
	detailsView := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(true).
		SetWordWrap(true)

	rightSide := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(statsView, 3, 0, false).
		AddItem(detailsView, 0, 1, false)

	flex := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(list, 0, 1, true).
		AddItem(rightSide, 0, 2, false)

	headerView := tview.NewTextView().
		SetTextAlign(tview.AlignCenter).
		SetDynamicColors(true)
	headerView.SetText(fmt.Sprintf(
		" Scenario Failures (%d) | Use ↑↓ to navigate, → to view details, ← to go back, Ctrl+C to exit ",
		len(failures),
	))

	updateDetails := func() {
		index := list.GetCurrentItem()
		if index >= 0 && index < len(failures) {
			res := failures[index]
			statsView.SetText(fmt.Sprintf(
				"[cyan]scenario:[white] [yellow]%s[white]::[yellow]%s[white]\n",
				res.Scenario.File, res.Scenario.Name,
			))
			detailsView.SetText(ev.formatFailureDetails(res))
		}
	}

	list.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyEnter, tcell.KeyRight:
			app.SetFocus(detailsView)
			return nil
		case tcell.KeyCtrlC:
			app.Stop()
			return nil
		}
		return event
	})
	detailsView.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyLeft, tcell.KeyEsc:
			app.SetFocus(list)
			return nil
		case tcell.KeyCtrlC:
			app.Stop()
			return nil
		}
		return event
	})
	list.SetChangedFunc(func(int, string, string, rune) {
		updateDetails()
	})
	updateDetails()

	mainLayout := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(headerView, 1, 0, false).
		AddItem(flex, 0, 1, true)

	if err := app.SetRoot(mainLayout, true).SetFocus(list).Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

// formatFailureDetails formats one failed scenario using tview color
// tags.
func (ev *ErrorViewer) formatFailureDetails(res *domain.ScenarioResult) string {
	var builder strings.Builder
	w := tabwriter.NewWriter(&builder, 0, 0, 2, ' ', 0)

	fmt.Fprintf(w, "[red]✗ %s[white]\n\n", res.Scenario.Subject)
	fmt.Fprintf(w, "[cyan]File: %s[white]\n", res.Scenario.File)
	fmt.Fprintf(w, "[cyan]Duration: %.3fs[white]\n\n", res.Duration.Seconds())

	if res.Err != nil {
		fmt.Fprintf(w, "[yellow]Error:[white]\n%s\n\n", res.Err.Error())
		if frames := FramesOf(res.Err); len(frames) > 0 {
			fmt.Fprintf(w, "[yellow]Traceback:[white]\n")
			for i, frame := range frames {
				if i >= 10 {
					fmt.Fprintf(w, "  [gray]... and %d more frames[white]\n", len(frames)-10)
					break
				}
				fmt.Fprintf(w, "  %s\n", frame.String())
			}
		}
	}

	if details := res.ExtraDetails(); len(details) > 0 {
		fmt.Fprintf(w, "\n[yellow]Details:[white]\n")
		for _, d := range details {
			fmt.Fprintf(w, "  %s\n", d)
		}
	}

	w.Flush()
	return builder.String()
}

var _ Viewer = (*ErrorViewer)(nil)
