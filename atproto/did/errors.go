package did

import (
	"fmt"
)

// The validation failures returned by [ParseDID], one type per rejection reason.
//
// The set is closed and the reasons are mutually exclusive: checks run in a fixed
// order and the first failure decides the error. Match with errors.As to recover
// the offending fragment.

// Candidate was 8 characters or fewer: too short to hold a prefix, a method, and a
// non-empty identifier.
type TooShortError struct{}

func (e *TooShortError) Error() string {
	return "DID too short (9 chars min)"
}

// Candidate didn't start with the literal "did:" scheme prefix (case-sensitive).
type InvalidPrefixError struct {
	Found string // the first 4 characters, as given
}

func (e *InvalidPrefixError) Error() string {
	return fmt.Sprintf("expected \"did:\" prefix, found %q", e.Found)
}

// Candidate used a DID method other than the two atproto supports.
type InvalidMethodError struct {
	Found string // the 4 characters where "web:" or "plc:" was expected
}

func (e *InvalidMethodError) Error() string {
	return fmt.Sprintf("expected a method of either \"web\" or \"plc\", found %q", e.Found)
}

// The method-specific identifier had a character outside the allowed set, or ended
// in a colon.
type InvalidIdentifierError struct {
	Found string // everything after the method segment, as given
}

func (e *InvalidIdentifierError) Error() string {
	return fmt.Sprintf("DID identifier didn't conform to restricted syntax, found %q", e.Found)
}
