package roll

import (
	"log"
	"maps"
	"slices"
	"strings"

	apperrors "github.com/louisbranch/dicetrace/internal/platform/errors"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	grpccodes "google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Process exit statuses, chosen from the status code of the returned error.
const (
	ExitOK                = 0
	ExitFailure           = 1
	ExitInvalidRequest    = 2
	ExitUnsupportedRoll   = 3
	ExitSourceUnavailable = 4
)

// ExitCode maps an error returned by Run to a process exit status.
//
// Malformed requests exit with ExitInvalidRequest, rolls the operation
// cannot handle (pool too small, division by zero, not a CDE roll) with
// ExitUnsupportedRoll and exhausted dice sources with ExitSourceUnavailable.
// Anything else is ExitFailure.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	switch apperrors.GetCode(err).GRPCCode() {
	case grpccodes.InvalidArgument:
		return ExitInvalidRequest
	case grpccodes.FailedPrecondition:
		return ExitUnsupportedRoll
	case grpccodes.Unavailable:
		return ExitSourceUnavailable
	default:
		return ExitFailure
	}
}

// logErrorStatus logs the status code, reason and metadata carried by the
// status form of err, e.g.
// "error status: InvalidArgument reason=CDE_UNKNOWN_ELEMENT Element=void".
func logErrorStatus(logger *log.Logger, err error, locale string) {
	st := status.Convert(apperrors.HandleError(err, locale))
	parts := []string{"error status: " + st.Code().String()}
	for _, detail := range st.Details() {
		info, ok := detail.(*errdetails.ErrorInfo)
		if !ok {
			continue
		}
		parts = append(parts, "reason="+info.GetReason())
		md := info.GetMetadata()
		for _, key := range slices.Sorted(maps.Keys(md)) {
			parts = append(parts, key+"="+md[key])
		}
	}
	logger.Println(strings.Join(parts, " "))
}
