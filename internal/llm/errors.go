package llm

import (
	"errors"
	"fmt"
	"time"

	"github.com/micetf/classifieur-numerique/internal/common"
)

// ErrRateLimit indicates the provider returned a rate limit error (429).
type ErrRateLimit struct {
	Err        error
	RetryAfter time.Duration
}

func (e *ErrRateLimit) Error() string {
	return fmt.Sprintf("rate limited (retry after %s): %v", e.RetryAfter, e.Err)
}

func (e *ErrRateLimit) Unwrap() error { return e.Err }

// Is makes rate limits match common.ErrRateLimit so WithRetry retries them.
func (e *ErrRateLimit) Is(target error) bool {
	return target == common.ErrRateLimit
}

// ErrInvalidResponse indicates the model replied with something that is not
// a usable classification.
type ErrInvalidResponse struct {
	Err     error
	Content string
}

func (e *ErrInvalidResponse) Error() string {
	return fmt.Sprintf("invalid LLM response: %v", e.Err)
}

func (e *ErrInvalidResponse) Unwrap() error { return e.Err }

// ErrProviderUnavailable indicates the provider is down or unreachable.
type ErrProviderUnavailable struct {
	Err error
}

func (e *ErrProviderUnavailable) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("LLM provider unavailable: %v", e.Err)
	}
	return "LLM provider unavailable"
}

func (e *ErrProviderUnavailable) Unwrap() error { return e.Err }

// retryable marks transient provider failures for common.WithRetry.
func retryable(err error) error {
	var unavailable *ErrProviderUnavailable
	if errors.As(err, &unavailable) {
		return &common.RetryableError{Err: err, Retryable: true}
	}
	return err
}
