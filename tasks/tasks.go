// Package tasks implements the per-user task collection: mutations against
// the document-store seam and a live, cancellable subscription delivering
// full snapshots of the owner's task set.
package tasks

import "time"

// Task is one to-do entry. The ID is assigned by the store on insert.
type Task struct {
	ID        string    `json:"id"`
	OwnerID   string    `json:"owner_id"`
	Text      string    `json:"text"`
	Done      bool      `json:"done"`
	CreatedAt time.Time `json:"created_at,omitempty"`
}
