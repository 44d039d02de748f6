package quizapi

import "fmt"

// ErrNetwork indicates the request never produced a usable response:
// connection failure, timeout, or a non-2xx status.
type ErrNetwork struct {
	Endpoint string
	Status   int
	Err      error
}

func (e *ErrNetwork) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("%s: status %d", e.Endpoint, e.Status)
	}
	return fmt.Sprintf("%s: %v", e.Endpoint, e.Err)
}

func (e *ErrNetwork) Unwrap() error { return e.Err }

// ErrMalformedResponse indicates a 2xx response whose body is not the
// expected shape: undecodable JSON, a schema violation, or the API's
// error envelope (a body carrying a "detail" field).
type ErrMalformedResponse struct {
	Endpoint string
	Detail   string
	Err      error
}

func (e *ErrMalformedResponse) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s: api error: %s", e.Endpoint, e.Detail)
	}
	return fmt.Sprintf("%s: malformed response: %v", e.Endpoint, e.Err)
}

func (e *ErrMalformedResponse) Unwrap() error { return e.Err }
