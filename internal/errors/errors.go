// internal/errors/errors.go
package appErrors

import "fmt"

// ErrUnsupportedFormat means the input bytes are not a decodable raster image.
type ErrUnsupportedFormat struct {
	Cause error
}

func (e *ErrUnsupportedFormat) Error() string {
	return fmt.Sprintf("unsupported image format: %v", e.Cause)
}

func (e *ErrUnsupportedFormat) Unwrap() error { return e.Cause }

func NewUnsupportedFormat(cause error) error {
	return &ErrUnsupportedFormat{Cause: cause}
}

// ErrGenerationUnavailable means an external generation service was
// unreachable, timed out or returned an error status.
type ErrGenerationUnavailable struct {
	Service string
	Status  int
	Body    string
	Cause   error
}

func (e *ErrGenerationUnavailable) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s unavailable: %v", e.Service, e.Cause)
	}
	return fmt.Sprintf("%s unavailable: status=%d body=%s", e.Service, e.Status, e.Body)
}

func (e *ErrGenerationUnavailable) Unwrap() error { return e.Cause }

func NewGenerationUnavailable(service string, status int, body string, cause error) error {
	return &ErrGenerationUnavailable{Service: service, Status: status, Body: body, Cause: cause}
}

// ErrEmptyResponse means a generation service answered but returned no
// usable content.
type ErrEmptyResponse struct {
	Service string
	Detail  string
}

func (e *ErrEmptyResponse) Error() string {
	return fmt.Sprintf("%s returned no usable content: %s", e.Service, e.Detail)
}

func NewEmptyResponse(service, detail string) error {
	return &ErrEmptyResponse{Service: service, Detail: detail}
}

// ErrSubmissionFailed means the campaign endpoint rejected the submission or
// could not be reached. Response carries the remote text for diagnostics.
type ErrSubmissionFailed struct {
	Status   int
	Response string
	Cause    error
}

func (e *ErrSubmissionFailed) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("campaign submission failed: %v", e.Cause)
	}
	return fmt.Sprintf("campaign submission failed: status=%d response=%s", e.Status, e.Response)
}

func (e *ErrSubmissionFailed) Unwrap() error { return e.Cause }

func NewSubmissionFailed(status int, response string, cause error) error {
	return &ErrSubmissionFailed{Status: status, Response: response, Cause: cause}
}

// ErrImageTooLarge means the optimizer could not compress the image under the
// email size budget even at minimum quality.
type ErrImageTooLarge struct {
	Size  int
	Limit int
}

func (e *ErrImageTooLarge) Error() string {
	return fmt.Sprintf("image too large after compression: %d bytes (limit %d)", e.Size, e.Limit)
}

func NewImageTooLarge(size, limit int) error {
	return &ErrImageTooLarge{Size: size, Limit: limit}
}

// ErrTemplateTooLarge means the rendered HTML exceeds the response/submission
// budget even after inline images were scrubbed.
type ErrTemplateTooLarge struct {
	Size  int
	Limit int
}

func (e *ErrTemplateTooLarge) Error() string {
	return fmt.Sprintf("template too large: %d bytes (limit %d)", e.Size, e.Limit)
}

func NewTemplateTooLarge(size, limit int) error {
	return &ErrTemplateTooLarge{Size: size, Limit: limit}
}
