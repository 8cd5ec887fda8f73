package records

import (
	"strconv"
	"time"
)

// idSequence hands out unique record ids derived from the current time in
// milliseconds. Two adds in the same millisecond still get distinct ids: the
// sequence never re-issues a value lower than or equal to the last one.
// Callers must hold their store's lock.
type idSequence struct {
	last int64
}

func (s *idSequence) next(now time.Time) string {
	id := now.UnixMilli()
	if id <= s.last {
		id = s.last + 1
	}
	s.last = id
	return strconv.FormatInt(id, 10)
}
