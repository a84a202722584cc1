package store

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// NewID generates a recipe identifier from a millisecond timestamp and a
// random suffix. The random component is what keeps identifiers distinct
// when a bulk import creates several recipes within the same millisecond.
func NewID() string {
	return fmt.Sprintf("%d-%s", time.Now().UnixMilli(), uuid.NewString()[:8])
}
