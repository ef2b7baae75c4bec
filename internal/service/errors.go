package service

import "github.com/S1riyS/os-course-lab-4/journalfs/internal/pkg/kerrors"

const (
	codeInvalidEntry   = kerrors.EINVAL
	codeNotImplemented = kerrors.ENOSYS
)

var (
	ErrIsDirectory        = newServiceError(kerrors.EISDIR, "cannot write to a directory")
	ErrNothingToUndo      = newServiceError(kerrors.ENODATA, "nothing to undo")
	ErrInvalidEntry       = newServiceError(codeInvalidEntry, "invalid journal entry")
	ErrUndoNotImplemented = newServiceError(codeNotImplemented, "undo not implemented")
)

type ServiceError struct {
	Code    int64
	Message string
}

func newServiceError(code int64, message string) *ServiceError {
	return &ServiceError{Code: code, Message: message}
}

func (e *ServiceError) Error() string {
	return e.Message
}

func (e *ServiceError) GetCode() int64 {
	return e.Code
}

// Is matches any ServiceError carrying the same code, so detailed errors
// compare equal to the sentinels above.
func (e *ServiceError) Is(target error) bool {
	t, ok := target.(*ServiceError)
	return ok && t.Code == e.Code
}
