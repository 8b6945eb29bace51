package entities

import "time"

// EventType identifies a fire-and-forget notification emitted by the core.

type EventType string

const (
	EventBidSubmitted          EventType = "BidSubmitted"
	EventBidWithdrawn          EventType = "BidWithdrawn"
	EventBidAccepted           EventType = "BidAccepted"
	EventBidRejected           EventType = "BidRejected"
	EventWorkSubmitted         EventType = "WorkSubmitted"
	EventRevisionRequested     EventType = "RevisionRequested"
	EventWorkApproved          EventType = "WorkApproved"
	EventProjectCompleted      EventType = "ProjectCompleted"
	EventProjectCancelled      EventType = "ProjectCancelled"
	EventDisputed              EventType = "Disputed"
	EventReviewPromptRequested EventType = "ReviewPromptRequested"
)

// Event is the payload handed to the notification dispatcher. The core never
// reads notifications back; delivery is the dispatcher's problem.

type Event struct {
	Type        EventType         `json:"type"`
	ProjectID   string            `json:"project_id"`
	ActorID     string            `json:"actor_id,omitempty"`
	RecipientID string            `json:"recipient_id,omitempty"`
	Data        map[string]string `json:"data,omitempty"`
	At          time.Time         `json:"at"`
}
