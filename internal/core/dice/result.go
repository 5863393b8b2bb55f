package dice

import (
	"strconv"
	"strings"
)

// totalState tracks whether the cached total still reflects the history.
type totalState int

const (
	// stateStale means the history changed since the last computation.
	stateStale totalState = iota
	// stateFresh means total is current for the last applied modifier.
	stateFresh
)

// RollResult carries the total of a roll and the trace that produced it.
//
// A RollResult is owned by whoever built it. Combining two results through
// Add, Sub, Mul or Div consumes both operands.
type RollResult struct {
	total   int64
	history []HistoryEntry
	reason  *string
	state   totalState
}

// New returns an empty result waiting for rolls.
func New() *RollResult {
	return &RollResult{state: stateStale}
}

// WithTotal returns a result carrying a constant value.
//
// The constant is recorded as a single Value entry and the total is already
// computed.
func WithTotal(total int64) *RollResult {
	return &RollResult{
		total:   total,
		history: []HistoryEntry{ValueEntry(uint64(total))},
		state:   stateFresh,
	}
}

// RecordRoll appends one group of dice faces to the history.
//
// Faces are stored sorted descending. The cached total becomes stale.
func (r *RollResult) RecordRoll(values []uint64, fudge bool) {
	entry := RollEntry(values)
	if fudge {
		entry.Kind = KindFudge
	}
	r.history = append(r.history, entry)
	r.state = stateStale
}

// PushValue appends a constant to the history. The cached total becomes stale.
func (r *RollResult) PushValue(v uint64) {
	r.history = append(r.history, ValueEntry(v))
	r.state = stateStale
}

// AddReason attaches a user comment to the result.
func (r *RollResult) AddReason(reason string) {
	r.reason = &reason
}

// Reason returns the user comment, if any.
func (r *RollResult) Reason() (string, bool) {
	if r.reason == nil {
		return "", false
	}
	return *r.reason, true
}

// History returns a copy of the trace.
func (r *RollResult) History() []HistoryEntry {
	out := make([]HistoryEntry, len(r.history))
	for i, entry := range r.history {
		out[i] = entry.clone()
	}
	return out
}

// Total returns the cached total.
func (r *RollResult) Total() int64 {
	return r.total
}

// Stale reports whether the history changed since the total was computed.
func (r *RollResult) Stale() bool {
	return r.state == stateStale
}

// PoolSize returns the number of values ComputeTotal would consider.
func (r *RollResult) PoolSize() int {
	size := 0
	for _, entry := range r.history {
		switch entry.Kind {
		case KindRoll, KindFudge:
			size += len(entry.Values)
		case KindValue:
			size++
		}
	}
	return size
}

// String renders the trace between backticks followed by the bold total and
// the reason when one is set.
func (r *RollResult) String() string {
	var b strings.Builder
	b.WriteByte('`')
	if len(r.history) == 0 {
		b.WriteString(strconv.FormatInt(r.total, 10))
	} else {
		for _, entry := range r.history {
			entry.writeTo(&b)
		}
	}
	b.WriteString("` Result: **")
	b.WriteString(strconv.FormatInt(r.total, 10))
	b.WriteString("**")
	if r.reason != nil {
		b.WriteString(", Reason: `")
		b.WriteString(*r.reason)
		b.WriteByte('`')
	}
	return b.String()
}
