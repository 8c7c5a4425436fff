package entities

// PipelineState tracks a single report run.
type PipelineState string

const (
	StateIdle      PipelineState = "idle"
	StateRunning   PipelineState = "running"
	StateCompleted PipelineState = "completed"
	StateFailed    PipelineState = "failed"
)

// ReportFileName is the name under which the document is offered for download.
const ReportFileName = "GitHub_Profile_Report.pdf"

// ReportResult is what a report run hands back to the presentation layer.
// Document is only set when Generated is true.
type ReportResult struct {
	State      PipelineState
	Generated  bool
	Identifier string
	Artifacts  []ArtifactSummary
	FileName   string
	Document   []byte
}

// NewFailedResult returns the result of a run that was aborted.
func NewFailedResult(identifier string) ReportResult {
	return ReportResult{State: StateFailed, Identifier: identifier}
}
