package coherence

import "time"

// Clock supplies the timestamps embedded in Evidence Notes.
type Clock interface {
	Now() time.Time
}

// Hasher computes the hex content hash embedded in Evidence Notes.
type Hasher interface {
	Sum(payload []byte) (string, error)
}
