package domain

// RuleError is a rejected operation: a business rule was violated or a
// referenced record does not exist. The message is meant for the caller;
// the HTTP layer surfaces it verbatim with a 400 status.
type RuleError struct {
	Message string
}

func (e *RuleError) Error() string {
	return e.Message
}

// Reject builds a RuleError with the given message.
func Reject(message string) error {
	return &RuleError{Message: message}
}
