package request

// WorkSubmitRequest carries the deliverable files for a submission version.

type SubmissionFilePayload struct {
	Filename string `json:"filename" binding:"required"`
	URL      string `json:"url" binding:"required"`
	Size     int64  `json:"size"`
}

type WorkSubmitRequest struct {
	Files []SubmissionFilePayload `json:"files" binding:"required,min=1,dive"`
	Notes string                  `json:"notes"`
}

// RevisionRequest carries the client feedback that sends the project back to
// in_progress.

type RevisionRequest struct {
	Feedback string `json:"feedback"`
}

// ApproveWorkRequest names the submission being approved. The id must match
// the latest version or approval is rejected.

type ApproveWorkRequest struct {
	SubmissionID string `json:"submission_id" binding:"required"`
}
