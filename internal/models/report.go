package models

// Report is one recorded attendance run.
// It stores the rendered report text so history shows exactly what was copied.
type Report struct {
	// ID is the unique identifier for the report (UUID format).
	ID string

	// Title is the report heading (e.g., "Liste de présence de Bloom").
	Title string

	// TakenOn is the attendance day in YYYY-MM-DD form.
	TakenOn string

	// Text is the rendered, copyable report.
	Text string

	// Present is the grand total of people present.
	Present int

	// Absent is the grand total of people absent.
	Absent int

	// Unmatched lists the raw entries that matched no roster.
	Unmatched []string

	// CreatedAt is the Unix timestamp when the report was recorded.
	CreatedAt int64
}

// ReportSummary is the list view of a Report, without its text.
type ReportSummary struct {
	ID        string
	Title     string
	TakenOn   string
	Present   int
	Absent    int
	CreatedAt int64
}
