package usecase

// DomainError is an expected business failure (bad credentials, unknown
// record). Handlers map these to 4xx responses.
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

func IsDomainError(err error) bool {
	_, ok := err.(*DomainError)
	return ok
}

// TechnicalError is an infrastructure failure (storage write, queue
// publish). Handlers map these to 500s.
type TechnicalError struct {
	Code    string
	Message string
}

func (e *TechnicalError) Error() string {
	return e.Message
}

func IsTechnicalError(err error) bool {
	_, ok := err.(*TechnicalError)
	return ok
}

var ErrInvalidCredentials = &DomainError{
	Code:    "INVALID_CREDENTIALS",
	Message: "Invalid username or password",
}
