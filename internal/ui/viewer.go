package ui

import "utb/internal/domain"

// Viewer displays a run's failures in an interactive TUI.
type Viewer interface {
	View(report *domain.Report) error
}
