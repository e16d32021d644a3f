package facades

import "fmt"

// UnknownErrorType is reported when the API signals failure without an error-type.
const UnknownErrorType = "Unknown error"

// ServiceError is returned when the rate API was reached but reported a failure.
type ServiceError struct {
	Type string
}

func (e *ServiceError) Error() string {
	return fmt.Sprintf("API Error: %s", e.Type)
}

// TransportError is returned when the rate API could not be reached or its
// response could not be understood.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("Failed to connect to the currency API: %v", e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
