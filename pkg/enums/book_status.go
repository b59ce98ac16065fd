package enums

import "fmt"

// BookStatus tracks whether a catalog copy can currently be borrowed.
type BookStatus string

const (
	BookStatusAvailable BookStatus = "Available"
	BookStatusIssued    BookStatus = "Issued"
)

var validBookStatuses = []BookStatus{
	BookStatusAvailable,
	BookStatusIssued,
}

// String implements fmt.Stringer.
func (s BookStatus) String() string {
	return string(s)
}

// IsValid reports whether the value is a known BookStatus.
func (s BookStatus) IsValid() bool {
	for _, candidate := range validBookStatuses {
		if candidate == s {
			return true
		}
	}
	return false
}

// ParseBookStatus converts raw input into a BookStatus.
func ParseBookStatus(value string) (BookStatus, error) {
	for _, candidate := range validBookStatuses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid book status %q", value)
}
