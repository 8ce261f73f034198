// internal/domain/homework/errors.go
package homework

import "fmt"

// MalformedKind identifies which structural check of the API response failed.
type MalformedKind string

const (
	KindNotAMapping  MalformedKind = "NOT_A_MAPPING"
	KindEmptyMapping MalformedKind = "EMPTY_MAPPING"
	KindMissingKey   MalformedKind = "MISSING_KEY"
	KindNotASequence MalformedKind = "NOT_A_SEQUENCE"
)

// MalformedResponseError means the API payload violated the structural
// contract. Callers branch on Kind rather than on message text; Message is
// the user-facing diagnostic text relayed to the chat.
type MalformedResponseError struct {
	Kind    MalformedKind
	Message string
}

func (e *MalformedResponseError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("malformed API response (%s)", e.Kind)
	}
	return e.Message
}

// UnknownStatusError means a homework record carried a status code that is
// not present in the verdict catalog.
type UnknownStatusError struct {
	Status string
}

func (e *UnknownStatusError) Error() string {
	return fmt.Sprintf("Неверный статус работы: %q", e.Status)
}
