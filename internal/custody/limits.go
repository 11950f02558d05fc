package custody

const (
	// DefaultMaxDescriptionLength is the maximum item description size in bytes
	DefaultMaxDescriptionLength = 4096

	// DefaultMaxKeyLength is the maximum length of a key identifier in hex characters.
	// A 2048-bit PKIX public key is 588 hex characters.
	DefaultMaxKeyLength = 2048
)

// Limits bounds the size of the untrusted text accepted into a transfer record.
// A zero field disables that bound.
type Limits struct {
	MaxDescriptionLength int
	MaxKeyLength         int
}

// DefaultLimits are the limits used by BuildRecord
var DefaultLimits = Limits{
	MaxDescriptionLength: DefaultMaxDescriptionLength,
	MaxKeyLength:         DefaultMaxKeyLength,
}
