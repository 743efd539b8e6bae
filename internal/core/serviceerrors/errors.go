package serviceerrors

import "errors"

type ErrorKind int

const (
	// KindNotFound covers both the domain lookup miss and the repository
	// delete of an absent id.
	KindNotFound ErrorKind = iota
	KindInvalidParams
	// KindRepository wraps I/O failures from the persistence layer.
	KindRepository
	// KindDataIntegrity means the backing data file could not be read or
	// parsed at all.
	KindDataIntegrity
)

func IsOfKind(err error, kind ErrorKind) bool {
	var svcErr *ServiceError
	if errors.As(err, &svcErr) {
		return svcErr.Kind == kind
	}
	return false
}

type ServiceError struct {
	Kind    ErrorKind
	Message string
	Cause   error
}

func (e *ServiceError) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *ServiceError) Unwrap() error {
	return e.Cause
}

func NewNotFoundError(message string) *ServiceError {
	return &ServiceError{Kind: KindNotFound, Message: message}
}

func NewInvalidParamsError(message string) *ServiceError {
	return &ServiceError{Kind: KindInvalidParams, Message: message}
}

func NewRepositoryError(message string, cause error) *ServiceError {
	return &ServiceError{Kind: KindRepository, Message: message, Cause: cause}
}

func NewDataIntegrityError(message string, cause error) *ServiceError {
	return &ServiceError{Kind: KindDataIntegrity, Message: message, Cause: cause}
}
