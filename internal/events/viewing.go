package events

// EntityReport is the entity type of report events.
const EntityReport = "report"

// Event type constants
const (
	EventItemConsumed    = "item.consumed"
	EventSeriesCompleted = "series.completed"
	EventReportWritten   = "report.written"
)

// ItemConsumed is emitted after a movie, chapter, book or magazine is
// consumed and the record is stored.
type ItemConsumed struct {
	BaseEvent
	Kind  string `json:"kind"`
	Title string `json:"title"`
}

// SeriesCompleted is emitted when the last unviewed chapter of a series is
// consumed.
type SeriesCompleted struct {
	BaseEvent
	Title    string `json:"title"`
	Chapters int    `json:"chapters"`
}

// ReportWritten is emitted after a report file is saved.
type ReportWritten struct {
	BaseEvent
	Path    string `json:"path"`
	Dated   bool   `json:"dated"`
	Entries int    `json:"entries"`
}
