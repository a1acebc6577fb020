package validation

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Field length bounds, counted in characters after trimming
const (
	AuthorMaxLen           = 100
	TitleMaxLen            = 100
	AnnouncementTextMaxLen = 1000
	CommentTextMaxLen      = 200
)

// FieldError is the typed rejection result for a submitted field that
// fails its bounds. It never carries the submitted value
type FieldError struct {
	Field string
	Min   int
	Max   int
	Len   int
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("field %q must be %d-%d characters, got %d", e.Field, e.Min, e.Max, e.Len)
}

// AnnouncementFields is a normalized announcement submission
type AnnouncementFields struct {
	Author string
	Title  string
	Text   string
}

// CommentFields is a normalized comment submission
type CommentFields struct {
	Author string
	Text   string
}

// ValidateAnnouncement trims the submitted fields and checks their
// bounds. A missing field and an empty field are rejected identically
func ValidateAnnouncement(author, title, text string) (*AnnouncementFields, error) {
	author = strings.TrimSpace(author)
	title = strings.TrimSpace(title)
	text = strings.TrimSpace(text)

	if err := checkBounds("author", author, AuthorMaxLen); err != nil {
		return nil, err
	}
	if err := checkBounds("title", title, TitleMaxLen); err != nil {
		return nil, err
	}
	if err := checkBounds("text", text, AnnouncementTextMaxLen); err != nil {
		return nil, err
	}

	return &AnnouncementFields{Author: author, Title: title, Text: text}, nil
}

// ValidateComment trims the submitted fields and checks their bounds.
// Referential existence of the parent announcement is checked by the
// caller, which owns the store
func ValidateComment(author, text string) (*CommentFields, error) {
	author = strings.TrimSpace(author)
	text = strings.TrimSpace(text)

	if err := checkBounds("author", author, AuthorMaxLen); err != nil {
		return nil, err
	}
	if err := checkBounds("text", text, CommentTextMaxLen); err != nil {
		return nil, err
	}

	return &CommentFields{Author: author, Text: text}, nil
}

// checkBounds enforces 1..max characters on an already trimmed value.
// Lengths are counted in runes so multi-byte text is not over-rejected
func checkBounds(field, value string, max int) error {
	n := utf8.RuneCountInString(value)
	if n < 1 || n > max {
		return &FieldError{Field: field, Min: 1, Max: max, Len: n}
	}
	return nil
}
