package dice

import (
	"slices"
	"strconv"
	"strings"
)

// Operator is the arithmetic symbol joining two roll results.
type Operator string

const (
	OpAdd Operator = "+"
	OpSub Operator = "-"
	OpMul Operator = "*"
	OpDiv Operator = "/"
)

// Valid reports whether o is one of the four supported operators.
func (o Operator) Valid() bool {
	switch o {
	case OpAdd, OpSub, OpMul, OpDiv:
		return true
	default:
		return false
	}
}

// EntryKind tags the variant held by a HistoryEntry.
type EntryKind int

const (
	KindRoll EntryKind = iota
	KindFudge
	KindValue
	KindSeparator
)

func (k EntryKind) String() string {
	switch k {
	case KindRoll:
		return "Roll"
	case KindFudge:
		return "Fudge"
	case KindValue:
		return "Value"
	case KindSeparator:
		return "Separator"
	default:
		return "Unknown"
	}
}

// Fudge face symbols.
const (
	fudgeMinus = "-"
	fudgeBlank = "▢"
	fudgePlus  = "+"
)

// HistoryEntry is one step of a roll trace.
//
// Values is set for KindRoll and KindFudge and is always sorted descending.
// Value is set for KindValue and Op for KindSeparator.
type HistoryEntry struct {
	Kind   EntryKind
	Values []uint64
	Value  uint64
	Op     Operator
}

// RollEntry returns a Roll entry holding a descending copy of values.
func RollEntry(values []uint64) HistoryEntry {
	return HistoryEntry{Kind: KindRoll, Values: sortedDesc(values)}
}

// FudgeEntry returns a Fudge entry holding a descending copy of values.
func FudgeEntry(values []uint64) HistoryEntry {
	return HistoryEntry{Kind: KindFudge, Values: sortedDesc(values)}
}

// ValueEntry returns a constant entry.
func ValueEntry(v uint64) HistoryEntry {
	return HistoryEntry{Kind: KindValue, Value: v}
}

// SeparatorEntry returns an operator entry.
func SeparatorEntry(op Operator) HistoryEntry {
	return HistoryEntry{Kind: KindSeparator, Op: op}
}

// Equal reports whether two entries hold the same variant and payload.
func (e HistoryEntry) Equal(other HistoryEntry) bool {
	if e.Kind != other.Kind {
		return false
	}
	switch e.Kind {
	case KindRoll, KindFudge:
		return slices.Equal(e.Values, other.Values)
	case KindValue:
		return e.Value == other.Value
	case KindSeparator:
		return e.Op == other.Op
	default:
		return true
	}
}

// String renders the entry the way it appears inside a roll trace.
func (e HistoryEntry) String() string {
	var b strings.Builder
	e.writeTo(&b)
	return b.String()
}

func (e HistoryEntry) writeTo(b *strings.Builder) {
	switch e.Kind {
	case KindRoll:
		b.WriteByte('[')
		for i, v := range e.Values {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(strconv.FormatUint(v, 10))
		}
		b.WriteByte(']')
	case KindFudge:
		b.WriteByte('[')
		for i, v := range e.Values {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(fudgeSymbol(v))
		}
		b.WriteByte(']')
	case KindValue:
		b.WriteString(strconv.FormatUint(e.Value, 10))
	case KindSeparator:
		b.WriteByte(' ')
		b.WriteString(string(e.Op))
		b.WriteByte(' ')
	}
}

func (e HistoryEntry) clone() HistoryEntry {
	if e.Values != nil {
		e.Values = slices.Clone(e.Values)
	}
	return e
}

// fudgeSymbol collapses a d6 face to its fudge symbol.
func fudgeSymbol(face uint64) string {
	switch {
	case face <= 2:
		return fudgeMinus
	case face <= 4:
		return fudgeBlank
	default:
		return fudgePlus
	}
}

func sortedDesc(values []uint64) []uint64 {
	out := slices.Clone(values)
	if out == nil {
		out = []uint64{}
	}
	slices.SortFunc(out, func(a, b uint64) int {
		switch {
		case a > b:
			return -1
		case a < b:
			return 1
		default:
			return 0
		}
	})
	return out
}
