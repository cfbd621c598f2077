package trendbot

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMissingCredentials is matched by every *CredentialsError.
var ErrMissingCredentials = errors.New("missing X credentials")

// CredentialsError lists the environment variables that were missing or empty.
type CredentialsError struct {
	Missing []string
}

func (e *CredentialsError) Error() string {
	return fmt.Sprintf("%v: %s", ErrMissingCredentials, strings.Join(e.Missing, ", "))
}

func (e *CredentialsError) Unwrap() error { return ErrMissingCredentials }

// FetchError is returned when the feed could not be retrieved or parsed.
type FetchError struct {
	URL string
	Err error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("failed to fetch feed %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// PostError is returned when the platform rejected or failed to create a post.
type PostError struct {
	Text       string
	ReplyTo    string
	StatusCode int // 0 when no HTTP response was received
	Err        error
}

func (e *PostError) Error() string {
	var b strings.Builder
	b.WriteString("failed to create post")
	if e.ReplyTo != "" {
		fmt.Fprintf(&b, " in reply to %s", e.ReplyTo)
	}
	if e.StatusCode != 0 {
		fmt.Fprintf(&b, " (status %d)", e.StatusCode)
	}
	fmt.Fprintf(&b, ": %v", e.Err)
	return b.String()
}

func (e *PostError) Unwrap() error { return e.Err }
