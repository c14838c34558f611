package did

import (
	"fmt"
	"regexp"
)

// Represents a syntaxtually valid DID under the atproto-restricted grammar: a "did:"
// prefix, a method of exactly "web" or "plc", and a non-empty method-specific
// identifier drawn from a reduced character set.
//
// Construct only through [ParseDID]; the wrapped string is module-private, so a
// value that exists has passed validation and accessors never re-check it. The zero
// value is not a valid DID. Values are immutable, compare with ==, and are safe to
// copy and share.
type DID struct {
	inner string
}

// Character class for the method-specific identifier. A trailing colon is legal for
// the regex but excluded by a separate check in [ParseDID].
var identifierRegex = regexp.MustCompile(`^[a-zA-Z0-9._:-]+$`)

// ParseDID validates a candidate string against the atproto-restricted DID grammar
// and wraps it.
//
// Checks run in a fixed order and short-circuit: length, then "did:" prefix, then
// method token, then identifier body. The first failure decides the returned error;
// match with errors.As against [TooShortError], [InvalidPrefixError],
// [InvalidMethodError], or [InvalidIdentifierError]. The candidate is treated as a
// sequence of Unicode scalar values throughout, so a multi-byte character near the
// front fails cleanly at the prefix or method comparison rather than being sliced
// mid-character.
//
// On success the DID wraps the input verbatim: no trimming, case-folding, or other
// normalization.
func ParseDID(raw string) (DID, error) {
	chars := []rune(raw)
	// did:<method>:<id> is at least 9 chars for both supported methods
	if len(chars) <= 8 {
		return DID{}, &TooShortError{}
	}
	if string(chars[0:4]) != "did:" {
		return DID{}, &InvalidPrefixError{Found: string(chars[0:4])}
	}
	if method := string(chars[4:8]); method != "web:" && method != "plc:" {
		return DID{}, &InvalidMethodError{Found: method}
	}
	identifier := string(chars[8:])
	if !identifierRegex.MatchString(identifier) || chars[len(chars)-1] == ':' {
		return DID{}, &InvalidIdentifierError{Found: identifier}
	}
	return DID{inner: raw}, nil
}

// The method of this DID, classified from the 3 characters after the "did:" prefix.
//
// A DID built by [ParseDID] always reports [MethodWeb] or [MethodPlc]. Observing
// anything else means the wrapper was constructed without validation, which is a
// defect in the calling code and not a recoverable condition, so this panics.
func (d DID) Method() Method {
	// a validated DID is pure ASCII, so byte offsets are character offsets
	if len(d.inner) >= 7 {
		switch d.inner[4:7] {
		case "web":
			return MethodWeb
		case "plc":
			return MethodPlc
		}
	}
	panic(fmt.Sprintf("unsupported DID method snuck into a validated value: %q", d.inner))
}

// The method-specific identifier of this DID: everything after the method segment.
//
// The result is a slice of the wrapped string, shared rather than copied.
func (d DID) Identifier() string {
	return d.inner[8:]
}

func (d DID) String() string {
	return d.inner
}

func (d DID) MarshalText() ([]byte, error) {
	return []byte(d.inner), nil
}

func (d *DID) UnmarshalText(text []byte) error {
	parsed, err := ParseDID(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
