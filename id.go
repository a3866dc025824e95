package overlay

import "github.com/google/uuid"

// NewID returns a fresh layer id. Ids only need to be unique within a
// stack's lifetime; UUIDv4 gives that without any coordination.
func NewID() string {
	return uuid.NewString()
}
