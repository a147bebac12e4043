package interfaces

import "context"

// ICounterRepository issues monotonically increasing sequence numbers from
// the single shared counter record.
//
// NextSequence must be a database-level atomic increment (never
// read-then-write): no two calls may observe the same value, even under
// concurrent invocation. The counter record is lazily created on first use.
type ICounterRepository interface {
	NextSequence(ctx context.Context, field string) (int64, error)
}
