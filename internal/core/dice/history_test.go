package dice

import "testing"

func TestHistoryEntryString(t *testing.T) {
	tests := []struct {
		name  string
		entry HistoryEntry
		want  string
	}{
		{"roll", RollEntry([]uint64{1, 10, 4}), "[10, 4, 1]"},
		{"single roll", RollEntry([]uint64{6}), "[6]"},
		{"fudge thresholds", FudgeEntry([]uint64{2, 3, 4, 5}), "[+, ▢, ▢, -]"},
		{"value", ValueEntry(42), "42"},
		{"separator", SeparatorEntry(OpDiv), " / "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.entry.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestHistoryEntryEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b HistoryEntry
		want bool
	}{
		{"same roll", RollEntry([]uint64{1, 2}), RollEntry([]uint64{2, 1}), true},
		{"roll vs fudge", RollEntry([]uint64{1, 2}), FudgeEntry([]uint64{1, 2}), false},
		{"different values", ValueEntry(1), ValueEntry(2), false},
		{"same separator", SeparatorEntry(OpAdd), SeparatorEntry(OpAdd), true},
		{"different separator", SeparatorEntry(OpAdd), SeparatorEntry(OpSub), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Equal(tt.b); got != tt.want {
				t.Errorf("Equal() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestOperatorValid(t *testing.T) {
	for _, op := range []Operator{OpAdd, OpSub, OpMul, OpDiv} {
		if !op.Valid() {
			t.Errorf("%q should be valid", op)
		}
	}
	for _, op := range []Operator{"", "%", "x"} {
		if op.Valid() {
			t.Errorf("%q should be invalid", op)
		}
	}
}
