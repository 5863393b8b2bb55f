// Package errors provides structured error handling with i18n support.
package errors

import "google.golang.org/grpc/codes"

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// Request errors
	CodeRequestMalformed  Code = "REQUEST_MALFORMED"
	CodeRequestUnreadable Code = "REQUEST_UNREADABLE"

	// Dice errors
	CodeDiceMissing        Code = "DICE_MISSING"
	CodeDiceInvalidSpec    Code = "DICE_INVALID_SPEC"
	CodeDiceDrawIncomplete Code = "DICE_DRAW_INCOMPLETE"
	CodeDiceSourceMissing  Code = "DICE_SOURCE_MISSING"

	// Modifier and arithmetic errors
	CodeModifierOutOfRange Code = "MODIFIER_OUT_OF_RANGE"
	CodeModifierConflict   Code = "MODIFIER_CONFLICT"
	CodeDivisionByZero     Code = "DIVISION_BY_ZERO"

	// Hong Kong CdE errors
	CodeCdeUnknownElement Code = "CDE_UNKNOWN_ELEMENT"
	CodeCdeNotSingleRoll  Code = "CDE_NOT_SINGLE_ROLL"
	CodeCdeNotRollVariant Code = "CDE_NOT_ROLL_VARIANT"
	CodeCdeFaceOutOfRange Code = "CDE_FACE_OUT_OF_RANGE"
)

// GRPCCode maps domain codes to gRPC status codes.
func (c Code) GRPCCode() codes.Code {
	switch c {
	// InvalidArgument - malformed input
	case CodeRequestMalformed,
		CodeRequestUnreadable,
		CodeDiceMissing,
		CodeDiceInvalidSpec,
		CodeModifierConflict,
		CodeCdeUnknownElement:
		return codes.InvalidArgument

	// FailedPrecondition - the roll doesn't have the shape the operation needs
	case CodeModifierOutOfRange,
		CodeDivisionByZero,
		CodeCdeNotSingleRoll,
		CodeCdeNotRollVariant,
		CodeCdeFaceOutOfRange:
		return codes.FailedPrecondition

	// Unavailable - the draw source gave up
	case CodeDiceDrawIncomplete:
		return codes.Unavailable

	default:
		return codes.Internal
	}
}
