package state

import (
	"github.com/google/uuid"
)

// NewID returns a fresh shape id. Ids are random so shapes created by drawing,
// importing and erasing never collide.
func NewID() string {
	return uuid.NewString()
}
