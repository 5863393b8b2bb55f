// Package roll evaluates structured roll requests against a dice source.
//
// A Request is what an expression parser would produce: a list of terms
// folded left to right. The package enforces the preconditions the dice core
// leaves to its caller, modifier bounds and division by zero, and reports
// them as domain errors.
package roll

import (
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/louisbranch/dicetrace/internal/core/dice"
	apperrors "github.com/louisbranch/dicetrace/internal/platform/errors"
	"gopkg.in/yaml.v3"
)

// fudgeSides is the die rolled for each fudge die.
const fudgeSides = 6

// Request describes one roll expression.
type Request struct {
	Terms  []Term `yaml:"terms"`
	Reason string `yaml:"reason,omitempty"`
	// Difficulty, when set, is checked against the final total.
	Difficulty *int64 `yaml:"difficulty,omitempty"`
}

// Term is one operand of the expression. Exactly one of Dice and Constant
// is set. Op joins the term to the running result and must be empty on the
// first term; later terms default to "+".
type Term struct {
	Op       dice.Operator `yaml:"op,omitempty"`
	Dice     *DiceTerm     `yaml:"dice,omitempty"`
	Constant *uint64       `yaml:"constant,omitempty"`
}

// DiceTerm is one group of same-sided dice.
type DiceTerm struct {
	Count    int          `yaml:"count"`
	Sides    uint64       `yaml:"sides"`
	Fudge    bool         `yaml:"fudge,omitempty"`
	Modifier ModifierSpec `yaml:"modifier,omitempty"`
}

// ModifierSpec selects at most one keep/drop rule, or target/failure
// counting. A zero Target disables counting; a zero Failure counts no
// failures.
type ModifierSpec struct {
	KeepHighest int    `yaml:"keep_highest,omitempty"`
	KeepLowest  int    `yaml:"keep_lowest,omitempty"`
	DropHighest int    `yaml:"drop_highest,omitempty"`
	DropLowest  int    `yaml:"drop_lowest,omitempty"`
	Target      uint64 `yaml:"target,omitempty"`
	Failure     uint64 `yaml:"failure,omitempty"`
}

// DecodeRequest reads a YAML request. Unknown fields are rejected.
func DecodeRequest(r io.Reader) (Request, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var req Request
	if err := dec.Decode(&req); err != nil {
		if errors.Is(err, io.EOF) {
			return Request{}, apperrors.New(apperrors.CodeDiceMissing, "empty roll request")
		}
		return Request{}, apperrors.WrapWithMetadata(
			apperrors.CodeRequestMalformed,
			"decode roll request",
			map[string]string{"Detail": err.Error()},
			err,
		)
	}
	if err := req.Validate(); err != nil {
		return Request{}, err
	}
	return req, nil
}

// Validate checks the request shape. Modifier bounds are checked during
// evaluation, once the pool size is known.
func (r Request) Validate() error {
	if len(r.Terms) == 0 {
		return apperrors.New(apperrors.CodeDiceMissing, "at least one term must be provided")
	}
	for i, term := range r.Terms {
		if err := term.validate(i); err != nil {
			return err
		}
	}
	return nil
}

func (t Term) validate(index int) error {
	invalid := func(detail string) error {
		return apperrors.ForTerm(apperrors.CodeDiceInvalidSpec, index, detail, map[string]string{"Detail": detail})
	}

	if index == 0 && t.Op != "" {
		return invalid("first term cannot have an operator")
	}
	if t.Op != "" && !t.Op.Valid() {
		return invalid(fmt.Sprintf("unknown operator %q", t.Op))
	}
	if (t.Dice == nil) == (t.Constant == nil) {
		return invalid("exactly one of dice or constant must be set")
	}
	if t.Constant != nil {
		if *t.Constant > math.MaxInt64 {
			return invalid(fmt.Sprintf("constant %d exceeds %d", *t.Constant, int64(math.MaxInt64)))
		}
		return nil
	}
	d := t.Dice
	if d.Count <= 0 {
		return invalid("dice count must be positive")
	}
	if !d.Fudge && d.Sides == 0 {
		return invalid("dice sides must be positive")
	}

	m := d.Modifier
	counted := 0
	for _, n := range []int{m.KeepHighest, m.KeepLowest, m.DropHighest, m.DropLowest} {
		if n < 0 {
			return invalid("keep and drop counts cannot be negative")
		}
		if n > 0 {
			counted++
		}
	}
	if counted > 1 || (counted == 1 && m.Target > 0) || (d.Fudge && (counted > 0 || m.Target > 0)) {
		return apperrors.ForTerm(apperrors.CodeModifierConflict, index, "conflicting modifiers", nil)
	}
	if m.Failure > 0 && m.Target == 0 {
		return invalid("failure threshold requires a target")
	}
	return nil
}

// modifier converts ModifierSpec into the core modifier.
func (d DiceTerm) modifier() dice.Modifier {
	m := d.Modifier
	switch {
	case d.Fudge:
		return dice.Fudge()
	case m.KeepHighest > 0:
		return dice.KeepHighest(m.KeepHighest)
	case m.KeepLowest > 0:
		return dice.KeepLowest(m.KeepLowest)
	case m.DropHighest > 0:
		return dice.DropHighest(m.DropHighest)
	case m.DropLowest > 0:
		return dice.DropLowest(m.DropLowest)
	case m.Target > 0:
		return dice.TargetFailure(m.Target, m.Failure)
	default:
		return dice.NoModifier()
	}
}

func (d DiceTerm) sides() uint64 {
	if d.Fudge {
		return fudgeSides
	}
	return d.Sides
}
