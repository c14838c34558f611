package did

// Indicates which of the two atproto-supported DID methods a validated [DID] uses.
//
// This is a closed set, not an open method registry: the restricted grammar only
// admits did:web and did:plc, so no other value can come out of [DID.Method].
type Method int

const (
	MethodWeb Method = iota
	MethodPlc
)

// The method name as it appears in the DID string, without the trailing colon.
func (m Method) String() string {
	switch m {
	case MethodWeb:
		return "web"
	case MethodPlc:
		return "plc"
	}
	return "unknown"
}
