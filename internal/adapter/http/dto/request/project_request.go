package request

import "time"

// ProjectCreateRequest is the payload for posting a new project.
//
// Deadline is optional RFC3339; tags are free-form labels used for discovery.

type ProjectCreateRequest struct {
	Title       string     `json:"title" binding:"required"`
	Description string     `json:"description"`
	Budget      float64    `json:"budget" binding:"required,gt=0"`
	Deadline    *time.Time `json:"deadline"`
	Tags        []string   `json:"tags"`
}
