package custody

import (
	"github.com/ipfs/go-cid"
	"github.com/multiformats/go-multihash"

	"github.com/information-sharing-networks/custody-demo/internal/crypto"
)

// RecordID returns the content identifier of a record: a CIDv1 with the raw codec over the SHA-256 multihash
// of the canonical encoding.
//
// Ledgers can use the ID to refer to a record without storing it. Two records have the same ID only if their
// canonical encodings are identical.
func RecordID(rec TransferRecord) (cid.Cid, error) {
	data, err := Encode(rec)
	if err != nil {
		return cid.Undef, err
	}

	mh, err := multihash.Sum(data, multihash.SHA2_256, -1)
	if err != nil {
		return cid.Undef, crypto.WrapInternalError(err, "failed to compute record multihash")
	}

	return cid.NewCidV1(cid.Raw, mh), nil
}

// ParseRecordID parses the string form of a record ID and checks it was produced by RecordID
func ParseRecordID(s string) (cid.Cid, error) {
	c, err := cid.Decode(s)
	if err != nil {
		return cid.Undef, crypto.WrapEncodingError(err, "invalid record ID")
	}

	prefix := c.Prefix()
	if prefix.Version != 1 || prefix.Codec != cid.Raw || prefix.MhType != multihash.SHA2_256 {
		return cid.Undef, crypto.NewEncodingError("record ID is not a CIDv1 raw sha2-256 identifier")
	}
	return c, nil
}
