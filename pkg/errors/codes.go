package errors

import "net/http"

type Code string

const (
	CodeUnknown              Code = "UNKNOWN"
	CodeInvalidArgument      Code = "INVALID_ARGUMENT"
	CodeNotFound             Code = "NOT_FOUND"
	CodeAlreadyExists        Code = "ALREADY_EXISTS"
	CodePermissionDenied     Code = "PERMISSION_DENIED"
	CodeUnauthenticated      Code = "UNAUTHENTICATED"
	CodeFailedPrecondition   Code = "FAILED_PRECONDITION"
	CodeInternal             Code = "INTERNAL"
	CodeDeadlineExceeded     Code = "DEADLINE_EXCEEDED"
	CodeConversationRejected Code = "CONVERSATION_REJECTED"
	CodeMissingTarget        Code = "MISSING_TARGET"
)

// HTTPStatus is the status class a transport should answer with for the code.
func (c Code) HTTPStatus() int {
	switch c {
	case CodeInvalidArgument, CodeMissingTarget, CodeConversationRejected, CodeFailedPrecondition:
		return http.StatusBadRequest
	case CodeNotFound:
		return http.StatusNotFound
	case CodeAlreadyExists:
		return http.StatusConflict
	case CodePermissionDenied:
		return http.StatusForbidden
	case CodeUnauthenticated:
		return http.StatusUnauthorized
	case CodeDeadlineExceeded:
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}
