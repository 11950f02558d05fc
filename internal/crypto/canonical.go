// signed transfers handed to a ledger are serialized as canonical JSON per RFC 8785 so every party computes the
// same checksum. this implementation uses the gowebpki/jcs library to perform this canonicalization.
//
// Note the transfer signature itself is computed over the binary record encoding in the custody package, not JSON.
package crypto

import (
	"github.com/gowebpki/jcs"
)

// CanonicalizeJSON converts JSON to canonical form per RFC 8785
//
// If the input is not valid JSON, an error is returned (handled by jcs library).
func CanonicalizeJSON(jsonData []byte) ([]byte, error) {
	canonical, err := jcs.Transform(jsonData)
	if err != nil {
		return nil, WrapEncodingError(err, "failed to canonicalize JSON")
	}
	return canonical, nil
}
