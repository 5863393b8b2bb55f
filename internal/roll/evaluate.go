package roll

import (
	"fmt"
	"strconv"

	"github.com/louisbranch/dicetrace/internal/core/check"
	"github.com/louisbranch/dicetrace/internal/core/dice"
	apperrors "github.com/louisbranch/dicetrace/internal/platform/errors"
)

// Evaluate rolls every term of req with src and folds them into one result.
//
// Each dice term is totalled under its own modifier before being combined,
// so a keep or drop only ever applies to its own group.
func Evaluate(req Request, src dice.Source) (*dice.RollResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if src == nil {
		return nil, apperrors.New(apperrors.CodeDiceSourceMissing, "dice source is required")
	}

	var acc *dice.RollResult
	for i, term := range req.Terms {
		operand, err := evaluateTerm(i, term, src)
		if err != nil {
			return nil, err
		}
		if acc == nil {
			acc = operand
			continue
		}
		op := term.Op
		if op == "" {
			op = dice.OpAdd
		}
		if op == dice.OpDiv && operand.Total() == 0 {
			return nil, apperrors.ForTerm(apperrors.CodeDivisionByZero, i, "divides by zero", nil)
		}
		acc = dice.Combine(op, acc, operand)
	}

	if req.Reason != "" {
		acc.AddReason(req.Reason)
	}
	return acc, nil
}

func evaluateTerm(index int, term Term, src dice.Source) (*dice.RollResult, error) {
	if term.Constant != nil {
		return dice.WithTotal(int64(*term.Constant)), nil
	}

	d := *term.Dice
	faces := src.Draw(d.Count, d.sides())
	if len(faces) != d.Count {
		return nil, apperrors.ForTerm(
			apperrors.CodeDiceDrawIncomplete,
			index,
			fmt.Sprintf("drew %d of %d dice", len(faces), d.Count),
			map[string]string{"Want": strconv.Itoa(d.Count), "Got": strconv.Itoa(len(faces))},
		)
	}

	result := dice.New()
	result.RecordRoll(faces, d.Fudge)

	modifier := d.modifier()
	if modifier.Counted() && modifier.N > result.PoolSize() {
		return nil, apperrors.ForTerm(
			apperrors.CodeModifierOutOfRange,
			index,
			fmt.Sprintf("%s exceeds pool of %d", modifier, result.PoolSize()),
			map[string]string{"N": strconv.Itoa(modifier.N), "Pool": strconv.Itoa(result.PoolSize())},
		)
	}
	result.ComputeTotal(modifier)
	return result, nil
}

// Check compares the final total against the request difficulty. ok is
// false when the request has no difficulty.
func Check(req Request, result *dice.RollResult) (check.Result, bool) {
	if req.Difficulty == nil || result == nil {
		return check.Result{}, false
	}
	return check.Check(result.Total(), *req.Difficulty), true
}
