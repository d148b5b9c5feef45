package candidate

import (
	"github.com/pkg/errors"
)

var (
	ErrCandidateNotFound = errors.New("Candidate not found")
	ErrEmailAlreadyUsed  = errors.New("Candidate with this email already exists")
	ErrResumeNotFound    = errors.New("Candidate has no resume")
)

// ValidationError - ошибка проверки входных данных, клиент должен исправить запрос
type ValidationError struct {
	Message string
}

func (e ValidationError) Error() string {
	return e.Message
}

func NewValidationError(message string) error {
	return ValidationError{Message: message}
}

func IsValidationError(err error) bool {
	var vErr ValidationError
	return errors.As(err, &vErr)
}
