package db

import "errors"

// NotFoundError reports that a document lookup matched nothing.
type NotFoundError struct {
	Key     string
	Message string
}

func (e *NotFoundError) Error() string {
	return e.Message
}

func IsNotFoundError(err error) bool {
	var notFoundError *NotFoundError
	return errors.As(err, &notFoundError)
}

// DuplicateKeyError reports a write that collided with an existing document.
type DuplicateKeyError struct {
	Key     string
	Message string
}

func (e *DuplicateKeyError) Error() string {
	return e.Message
}

func IsDuplicateKeyError(err error) bool {
	var duplicateKeyError *DuplicateKeyError
	return errors.As(err, &duplicateKeyError)
}
