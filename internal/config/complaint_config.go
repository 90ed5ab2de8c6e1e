package config

import "time"

const (
	// Submission validation
	TitleMaxLen       = 100
	DescriptionMaxLen = 1000
	PasswordMinLen    = 6

	// Submission rate limiting (Redis-backed, per user)
	SubmissionRateLimit  = 10
	SubmissionRateWindow = time.Hour

	// Map display
	// BoundingRegionPadding expands the point bounding box by this fraction of
	// the span on each side before it is handed to the map view.
	BoundingRegionPadding = 0.5

	// HoursPerDay converts resolution durations into the fractional days the
	// dashboards report.
	HoursPerDay = 24
)
