// Package ui provides shared UI constants and utilities.
package ui

// Layout constants for consistent sizing across UI components.
const (
	// ScrollMargin is the number of items to keep visible above/below the cursor.
	ScrollMargin = 3

	// BorderHeight is the vertical space consumed by a standard panel border.
	BorderHeight = 2

	// HeaderHeight is the space for header + separator in panels.
	HeaderHeight = 2

	// PanelOverhead is the total vertical overhead (border + header + separator).
	PanelOverhead = BorderHeight + HeaderHeight

	// MinProgressBarWidth is the minimum width for a usable progress bar.
	MinProgressBarWidth = 5

	// QueueWidthDivisor gives the queue panel 1/QueueWidthDivisor of the width.
	QueueWidthDivisor = 3
)
