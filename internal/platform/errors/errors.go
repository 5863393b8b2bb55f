package errors

import (
	"fmt"
	"maps"
	"strconv"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/protoadapt"
)

// Domain is the error domain for dicetrace errors.
const Domain = "github.com/louisbranch/dicetrace"

// Error is a dice domain error.
//
// Message is for logs and traces. Metadata fills the localized template
// registered for Code.
type Error struct {
	Code     Code
	Message  string
	Metadata map[string]string
	Cause    error
}

func (e *Error) Error() string {
	if e.Message == "" && e.Cause != nil {
		return e.Cause.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target carries the same code.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Code == t.Code
	}
	return false
}

// New creates a domain error with a code and message.
func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// WithMetadata creates a domain error with template metadata.
func WithMetadata(code Code, message string, metadata map[string]string) *Error {
	return &Error{Code: code, Message: message, Metadata: metadata}
}

// Wrap creates a domain error around cause.
func Wrap(code Code, message string, cause error) *Error {
	return &Error{Code: code, Message: message, Cause: cause}
}

// WrapWithMetadata creates a domain error with metadata around cause.
func WrapWithMetadata(code Code, message string, metadata map[string]string, cause error) *Error {
	return &Error{Code: code, Message: message, Metadata: metadata, Cause: cause}
}

// ForTerm creates a domain error about the term at index (zero based).
// The one-based term number is added to metadata as "Term" and prefixed to
// the message.
func ForTerm(code Code, index int, message string, metadata map[string]string) *Error {
	md := make(map[string]string, len(metadata)+1)
	maps.Copy(md, metadata)
	md["Term"] = strconv.Itoa(index + 1)
	return &Error{
		Code:     code,
		Message:  fmt.Sprintf("term %d: %s", index+1, message),
		Metadata: md,
	}
}

// ToGRPCStatus converts the error to a gRPC status.
//
// The status message keeps the internal message. ErrorInfo carries the code
// and metadata; LocalizedMessage carries userMessage when it is set.
func (e *Error) ToGRPCStatus(locale string, userMessage string) error {
	grpcCode := e.Code.GRPCCode()
	base := status.New(grpcCode, e.Message)

	details := []protoadapt.MessageV1{
		&errdetails.ErrorInfo{
			Reason:   string(e.Code),
			Domain:   Domain,
			Metadata: e.Metadata,
		},
	}
	if userMessage != "" {
		details = append(details, &errdetails.LocalizedMessage{
			Locale:  locale,
			Message: userMessage,
		})
	}
	st, err := base.WithDetails(details...)
	if err != nil {
		return base.Err()
	}
	return st.Err()
}
