package tasks

// Store is the seam to the remote document store holding the task
// collection. Ownership is an equality filter on OwnerID, not referential
// integrity. ListByOwner returns tasks in arrival order; that order is not
// guaranteed stable across store restarts.
type Store interface {
	// Insert stores a new task, assigning its ID.
	Insert(t *Task) error
	Get(id string) (*Task, error)
	UpdateText(id, text string) error
	SetDone(id string, done bool) error
	Delete(id string) error
	ListByOwner(ownerID string) ([]Task, error)
}
