package dualstore

// Outcome tags a dual-store result. Callers pattern-match on it instead of
// inspecting nested error state.
type Outcome int

const (
	// OutcomeOK: the operation fully succeeded against the remote store.
	OutcomeOK Outcome = iota
	// OutcomeSoft: the remote store failed but the operation was absorbed
	// by the local cache tier. Value is usable; Warning explains what
	// happened and should surface as a non-blocking notice.
	OutcomeSoft
	// OutcomeHard: both tiers failed. Value is the zero value; Err is the
	// blocking error.
	OutcomeHard
)

// Result is the tagged outcome of every dual-store operation:
// Ok(value) | Soft(value, warning) | Hard(err).
type Result[T any] struct {
	Value   T
	Outcome Outcome
	Warning error
	Err     error
}

// Ok wraps a fully successful result.
func Ok[T any](v T) Result[T] {
	return Result[T]{Value: v, Outcome: OutcomeOK}
}

// Soft wraps a result absorbed by the cache tier.
func Soft[T any](v T, warning error) Result[T] {
	return Result[T]{Value: v, Outcome: OutcomeSoft, Warning: warning}
}

// Hard wraps a blocking failure.
func Hard[T any](err error) Result[T] {
	return Result[T]{Outcome: OutcomeHard, Err: err}
}

// Usable reports whether the result carries a usable value (OK or soft).
func (r Result[T]) Usable() bool {
	return r.Outcome != OutcomeHard
}
