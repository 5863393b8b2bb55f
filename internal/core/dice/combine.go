package dice

import "fmt"

// Add folds right into left with "+" and returns left.
//
// Both operands are consumed: left becomes the combined result and right is
// drained of its history. A separator is recorded only when right has
// history. The left reason wins.
func Add(left, right *RollResult) *RollResult {
	return combine(OpAdd, left, right, left.total+right.total)
}

// Sub folds right into left with "-" and returns left.
func Sub(left, right *RollResult) *RollResult {
	return combine(OpSub, left, right, left.total-right.total)
}

// Mul folds right into left with "*" and returns left.
func Mul(left, right *RollResult) *RollResult {
	return combine(OpMul, left, right, left.total*right.total)
}

// Div folds right into left with "/" and returns left.
//
// Division truncates toward zero. A zero right total panics; callers that
// need a graceful failure check right.Total() first.
func Div(left, right *RollResult) *RollResult {
	return combine(OpDiv, left, right, left.total/right.total)
}

// Combine dispatches to the combinator matching op.
func Combine(op Operator, left, right *RollResult) *RollResult {
	switch op {
	case OpAdd:
		return Add(left, right)
	case OpSub:
		return Sub(left, right)
	case OpMul:
		return Mul(left, right)
	case OpDiv:
		return Div(left, right)
	default:
		panic(fmt.Sprintf("dice: unknown operator %q", op))
	}
}

func combine(op Operator, left, right *RollResult, total int64) *RollResult {
	if len(right.history) > 0 {
		left.history = append(left.history, SeparatorEntry(op))
	}
	left.history = append(left.history, right.history...)
	right.history = nil
	left.total = total
	left.state = stateFresh
	return left
}
