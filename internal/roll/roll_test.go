package roll

import (
	"math"
	"strings"
	"testing"

	"github.com/louisbranch/dicetrace/internal/core/cde"
	"github.com/louisbranch/dicetrace/internal/core/dice"
	apperrors "github.com/louisbranch/dicetrace/internal/platform/errors"
)

func constant(v uint64) *uint64 { return &v }

func diceTerm(count int, sides uint64) *DiceTerm {
	return &DiceTerm{Count: count, Sides: sides}
}

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name      string
		request   Request
		faces     []uint64
		wantTotal int64
		wantTrace string
	}{
		{
			name:      "single group",
			request:   Request{Terms: []Term{{Dice: diceTerm(3, 6)}}},
			faces:     []uint64{2, 6, 4},
			wantTotal: 12,
			wantTrace: "`[6, 4, 2]` Result: **12**",
		},
		{
			name: "keep highest",
			request: Request{Terms: []Term{
				{Dice: &DiceTerm{Count: 4, Sides: 6, Modifier: ModifierSpec{KeepHighest: 3}}},
			}},
			faces:     []uint64{3, 6, 1, 5},
			wantTotal: 14,
			wantTrace: "`[6, 5, 3, 1]` Result: **14**",
		},
		{
			name: "drop lowest",
			request: Request{Terms: []Term{
				{Dice: &DiceTerm{Count: 4, Sides: 6, Modifier: ModifierSpec{DropLowest: 1}}},
			}},
			faces:     []uint64{3, 6, 1, 5},
			wantTotal: 14,
		},
		{
			name: "target and failure",
			request: Request{Terms: []Term{
				{Dice: &DiceTerm{Count: 5, Sides: 10, Modifier: ModifierSpec{Target: 8, Failure: 2}}},
			}},
			faces:     []uint64{1, 8, 9, 2, 5},
			wantTotal: 0,
		},
		{
			name:      "fudge",
			request:   Request{Terms: []Term{{Dice: &DiceTerm{Count: 3, Fudge: true}}}},
			faces:     []uint64{1, 3, 6},
			wantTotal: 0,
			wantTrace: "`[+, ▢, -]` Result: **0**",
		},
		{
			name: "two groups",
			request: Request{Terms: []Term{
				{Dice: diceTerm(2, 10)},
				{Op: dice.OpAdd, Dice: diceTerm(1, 10)},
			}},
			faces:     []uint64{3, 4, 7},
			wantTotal: 14,
			wantTrace: "`[4, 3] + [7]` Result: **14**",
		},
		{
			name: "default operator is addition",
			request: Request{Terms: []Term{
				{Dice: diceTerm(1, 6)},
				{Constant: constant(2)},
			}},
			faces:     []uint64{5},
			wantTotal: 7,
			wantTrace: "`[5] + 2` Result: **7**",
		},
		{
			name: "constant first",
			request: Request{Terms: []Term{
				{Constant: constant(10)},
				{Op: dice.OpSub, Dice: diceTerm(1, 4)},
			}},
			faces:     []uint64{3},
			wantTotal: 7,
			wantTrace: "`10 - [3]` Result: **7**",
		},
		{
			name: "negative total",
			request: Request{Terms: []Term{
				{Constant: constant(1)},
				{Op: dice.OpSub, Dice: diceTerm(2, 6)},
			}},
			faces:     []uint64{6, 6},
			wantTotal: -11,
		},
		{
			name: "multiply then divide",
			request: Request{Terms: []Term{
				{Dice: diceTerm(2, 6)},
				{Op: dice.OpMul, Constant: constant(3)},
				{Op: dice.OpDiv, Constant: constant(4)},
			}},
			faces:     []uint64{2, 3},
			wantTotal: 3,
			wantTrace: "`[3, 2] * 3 / 4` Result: **3**",
		},
		{
			name:      "largest constant",
			request:   Request{Terms: []Term{{Constant: constant(math.MaxInt64)}}},
			wantTotal: math.MaxInt64,
			wantTrace: "`9223372036854775807` Result: **9223372036854775807**",
		},
		{
			name: "reason",
			request: Request{
				Terms:  []Term{{Dice: diceTerm(1, 20)}},
				Reason: "perception",
			},
			faces:     []uint64{17},
			wantTotal: 17,
			wantTrace: "`[17]` Result: **17**, Reason: `perception`",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Evaluate(tt.request, dice.NewSequenceSource(tt.faces...))
			if err != nil {
				t.Fatalf("Evaluate() error = %v", err)
			}
			if got.Total() != tt.wantTotal {
				t.Errorf("Total() = %d, want %d", got.Total(), tt.wantTotal)
			}
			if tt.wantTrace != "" && got.String() != tt.wantTrace {
				t.Errorf("String() = %q, want %q", got.String(), tt.wantTrace)
			}
		})
	}
}

func TestEvaluateErrors(t *testing.T) {
	tests := []struct {
		name    string
		request Request
		faces   []uint64
		want    apperrors.Code
	}{
		{"no terms", Request{}, nil, apperrors.CodeDiceMissing},
		{
			"operator on first term",
			Request{Terms: []Term{{Op: dice.OpAdd, Dice: diceTerm(1, 6)}}},
			[]uint64{1}, apperrors.CodeDiceInvalidSpec,
		},
		{
			"unknown operator",
			Request{Terms: []Term{{Dice: diceTerm(1, 6)}, {Op: "%", Constant: constant(2)}}},
			[]uint64{1}, apperrors.CodeDiceInvalidSpec,
		},
		{
			"dice and constant",
			Request{Terms: []Term{{Dice: diceTerm(1, 6), Constant: constant(2)}}},
			[]uint64{1}, apperrors.CodeDiceInvalidSpec,
		},
		{
			"constant above int64",
			Request{Terms: []Term{{Constant: constant(math.MaxUint64)}}},
			nil, apperrors.CodeDiceInvalidSpec,
		},
		{
			"empty term",
			Request{Terms: []Term{{}}},
			nil, apperrors.CodeDiceInvalidSpec,
		},
		{
			"zero count",
			Request{Terms: []Term{{Dice: diceTerm(0, 6)}}},
			nil, apperrors.CodeDiceInvalidSpec,
		},
		{
			"zero sides",
			Request{Terms: []Term{{Dice: diceTerm(2, 0)}}},
			nil, apperrors.CodeDiceInvalidSpec,
		},
		{
			"negative keep",
			Request{Terms: []Term{{Dice: &DiceTerm{Count: 2, Sides: 6, Modifier: ModifierSpec{KeepLowest: -1}}}}},
			nil, apperrors.CodeDiceInvalidSpec,
		},
		{
			"failure without target",
			Request{Terms: []Term{{Dice: &DiceTerm{Count: 2, Sides: 6, Modifier: ModifierSpec{Failure: 1}}}}},
			nil, apperrors.CodeDiceInvalidSpec,
		},
		{
			"keep and drop",
			Request{Terms: []Term{{Dice: &DiceTerm{Count: 4, Sides: 6, Modifier: ModifierSpec{KeepHighest: 3, DropLowest: 1}}}}},
			nil, apperrors.CodeModifierConflict,
		},
		{
			"fudge with keep",
			Request{Terms: []Term{{Dice: &DiceTerm{Count: 4, Fudge: true, Modifier: ModifierSpec{KeepHighest: 2}}}}},
			nil, apperrors.CodeModifierConflict,
		},
		{
			"keep more than rolled",
			Request{Terms: []Term{{Dice: &DiceTerm{Count: 4, Sides: 6, Modifier: ModifierSpec{KeepHighest: 5}}}}},
			[]uint64{1, 2, 3, 4}, apperrors.CodeModifierOutOfRange,
		},
		{
			"drop more than rolled",
			Request{Terms: []Term{{Dice: &DiceTerm{Count: 2, Sides: 6, Modifier: ModifierSpec{DropHighest: 3}}}}},
			[]uint64{1, 2}, apperrors.CodeModifierOutOfRange,
		},
		{
			"divide by zero constant",
			Request{Terms: []Term{{Dice: diceTerm(1, 6)}, {Op: dice.OpDiv, Constant: constant(0)}}},
			[]uint64{4}, apperrors.CodeDivisionByZero,
		},
		{
			"divide by zero successes",
			Request{Terms: []Term{
				{Constant: constant(10)},
				{Op: dice.OpDiv, Dice: &DiceTerm{Count: 2, Sides: 10, Modifier: ModifierSpec{Target: 10}}},
			}},
			[]uint64{3, 4}, apperrors.CodeDivisionByZero,
		},
		{
			"source runs dry",
			Request{Terms: []Term{{Dice: diceTerm(3, 6)}}},
			[]uint64{1, 2}, apperrors.CodeDiceDrawIncomplete,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Evaluate(tt.request, dice.NewSequenceSource(tt.faces...))
			if err == nil {
				t.Fatal("expected error")
			}
			if got := apperrors.GetCode(err); got != tt.want {
				t.Errorf("error code = %s, want %s (%v)", got, tt.want, err)
			}
		})
	}
}

func TestEvaluateRequiresSource(t *testing.T) {
	_, err := Evaluate(Request{Terms: []Term{{Dice: diceTerm(1, 6)}}}, nil)
	if got := apperrors.GetCode(err); got != apperrors.CodeDiceSourceMissing {
		t.Fatalf("error code = %s, want %s (%v)", got, apperrors.CodeDiceSourceMissing, err)
	}
	if got := apperrors.UserMessage(err, "fr-FR"); got != "aucune source de dés n'est configurée" {
		t.Fatalf("UserMessage(fr-FR) = %q", got)
	}
}

func TestEvaluateSeededIsDeterministic(t *testing.T) {
	req := Request{Terms: []Term{{Dice: diceTerm(6, 10)}, {Op: dice.OpAdd, Dice: diceTerm(2, 4)}}}

	first, err := Evaluate(req, dice.NewSeededSource(99))
	if err != nil {
		t.Fatalf("Evaluate() error = %v", err)
	}
	second, err := Evaluate(req, dice.NewSeededSource(99))
	if err != nil {
		t.Fatalf("Evaluate() error = %v", err)
	}
	if first.String() != second.String() {
		t.Errorf("seeded results differ: %q vs %q", first.String(), second.String())
	}
}

func TestEvaluateFeedsInterpreter(t *testing.T) {
	single := Request{Terms: []Term{{Dice: diceTerm(8, 10)}}}
	res, err := Evaluate(single, dice.NewSequenceSource(1, 2, 3, 4, 5, 7, 10, 5))
	if err != nil {
		t.Fatalf("Evaluate() error = %v", err)
	}
	got, err := cde.Interpret(res, "fire")
	if err != nil {
		t.Fatalf("Interpret() error = %v", err)
	}
	want := cde.Result{Success: 2, Lucky: 3, Ill: 1, Loksyu: cde.Loksyu{Yang: 1}, TinJi: 1}
	if !got.Equal(want) {
		t.Errorf("Interpret() = %+v, want %+v", got, want)
	}

	composite := Request{Terms: []Term{{Dice: diceTerm(2, 10)}, {Op: dice.OpAdd, Dice: diceTerm(1, 10)}}}
	res, err = Evaluate(composite, dice.NewSequenceSource(3, 4, 7))
	if err != nil {
		t.Fatalf("Evaluate() error = %v", err)
	}
	if _, err := cde.Interpret(res, "fire"); apperrors.GetCode(err) != apperrors.CodeCdeNotSingleRoll {
		t.Errorf("Interpret(composite) error = %v, want %s", err, apperrors.CodeCdeNotSingleRoll)
	}
}

func TestDecodeRequest(t *testing.T) {
	input := `
reason: attack
difficulty: 12
terms:
  - dice:
      count: 4
      sides: 6
      modifier:
        keep_highest: 3
  - op: "-"
    constant: 1
  - op: "*"
    dice:
      count: 2
      fudge: true
`
	req, err := DecodeRequest(strings.NewReader(input))
	if err != nil {
		t.Fatalf("DecodeRequest() error = %v", err)
	}
	if req.Reason != "attack" {
		t.Errorf("Reason = %q, want attack", req.Reason)
	}
	if req.Difficulty == nil || *req.Difficulty != 12 {
		t.Errorf("Difficulty = %v, want 12", req.Difficulty)
	}
	if len(req.Terms) != 3 {
		t.Fatalf("got %d terms, want 3", len(req.Terms))
	}
	if req.Terms[0].Dice == nil || req.Terms[0].Dice.Modifier.KeepHighest != 3 {
		t.Errorf("term 1 = %+v, want 4d6 keep highest 3", req.Terms[0])
	}
	if req.Terms[1].Op != dice.OpSub || req.Terms[1].Constant == nil || *req.Terms[1].Constant != 1 {
		t.Errorf("term 2 = %+v, want - 1", req.Terms[1])
	}
	if req.Terms[2].Op != dice.OpMul || req.Terms[2].Dice == nil || !req.Terms[2].Dice.Fudge {
		t.Errorf("term 3 = %+v, want * 2dF", req.Terms[2])
	}
}

func TestDecodeRequestErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  apperrors.Code
	}{
		{"empty", "", apperrors.CodeDiceMissing},
		{"unknown field", "terms:\n  - dice: {count: 1, sides: 6, explode: true}\n", apperrors.CodeRequestMalformed},
		{"not yaml", "terms: [\n", apperrors.CodeRequestMalformed},
		{"invalid term", "terms:\n  - constant: 1\n    dice: {count: 1, sides: 6}\n", apperrors.CodeDiceInvalidSpec},
		{"constant above int64", "terms:\n  - constant: 18446744073709551615\n", apperrors.CodeDiceInvalidSpec},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeRequest(strings.NewReader(tt.input))
			if got := apperrors.GetCode(err); got != tt.want {
				t.Errorf("error code = %s, want %s (%v)", got, tt.want, err)
			}
		})
	}
}

func TestCheck(t *testing.T) {
	difficulty := int64(10)
	req := Request{Terms: []Term{{Dice: diceTerm(2, 6)}}, Difficulty: &difficulty}
	res, err := Evaluate(req, dice.NewSequenceSource(6, 5))
	if err != nil {
		t.Fatalf("Evaluate() error = %v", err)
	}

	got, ok := Check(req, res)
	if !ok {
		t.Fatal("expected a check result")
	}
	if !got.Success || got.Margin != 1 {
		t.Errorf("Check() = %+v, want success with margin 1", got)
	}

	if _, ok := Check(Request{}, res); ok {
		t.Error("expected no check without difficulty")
	}
}
