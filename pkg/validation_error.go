package pkg

import "errors"

type ValidationDetail struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError reports one message per offending field. Message is the
// blocking summary shown above the form.
type ValidationError struct {
	Message string
	Details []ValidationDetail
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(message string, details ...ValidationDetail) *ValidationError {
	return &ValidationError{
		Message: message,
		Details: details,
	}
}

func IsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}

// Field returns the message reported for a field, if any.
func (e *ValidationError) Field(name string) (string, bool) {
	for _, d := range e.Details {
		if d.Field == name {
			return d.Message, true
		}
	}
	return "", false
}
