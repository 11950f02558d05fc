package custody

import (
	"fmt"

	"github.com/multiformats/go-varint"

	"github.com/information-sharing-networks/custody-demo/internal/crypto"
)

// EncodingTag is the domain separation tag written at the start of every canonical encoding
const EncodingTag = "custody-transfer/v1"

// Encode returns the canonical byte encoding of a transfer record. This is the exact input to the signature.
//
// The layout is:
//
//	uvarint(len(tag)) || tag
//	for each field (current_custodian_key, new_custodian_key, item_description):
//	    uvarint(len(name)) || name || uvarint(len(value)) || value
//
// Every value is length prefixed, so no two distinct records share an encoding. The field order never depends on
// map iteration.
func Encode(rec TransferRecord) ([]byte, error) {
	if err := rec.validate(Limits{}); err != nil {
		return nil, err
	}

	fields := rec.fields()

	size := varint.UvarintSize(uint64(len(EncodingTag))) + len(EncodingTag)
	for _, f := range fields {
		size += varint.UvarintSize(uint64(len(f.name))) + len(f.name)
		size += varint.UvarintSize(uint64(len(f.value))) + len(f.value)
	}

	buf := make([]byte, 0, size)
	buf = appendLengthPrefixed(buf, EncodingTag)
	for _, f := range fields {
		buf = appendLengthPrefixed(buf, f.name)
		buf = appendLengthPrefixed(buf, f.value)
	}

	return buf, nil
}

// Decode parses a canonical encoding produced by Encode.
//
// The input must use the current tag, the canonical field order and minimal varints, with no trailing bytes.
func Decode(data []byte) (TransferRecord, error) {
	rest := data

	tag, rest, err := readLengthPrefixed(rest)
	if err != nil {
		return TransferRecord{}, crypto.WrapEncodingError(err, "failed to read encoding tag")
	}
	if tag != EncodingTag {
		return TransferRecord{}, crypto.NewEncodingError(fmt.Sprintf("unsupported encoding tag %q", tag))
	}

	values := make([]string, 0, 3)
	for _, want := range []string{FieldCurrentCustodianKey, FieldNewCustodianKey, FieldItemDescription} {
		var name, value string

		name, rest, err = readLengthPrefixed(rest)
		if err != nil {
			return TransferRecord{}, crypto.WrapEncodingError(err, fmt.Sprintf("failed to read field name (expected %s)", want))
		}
		if name != want {
			return TransferRecord{}, crypto.NewEncodingError(fmt.Sprintf("unexpected field %q (expected %s)", name, want))
		}

		value, rest, err = readLengthPrefixed(rest)
		if err != nil {
			return TransferRecord{}, crypto.WrapEncodingError(err, fmt.Sprintf("failed to read %s", want))
		}
		values = append(values, value)
	}

	if len(rest) != 0 {
		return TransferRecord{}, crypto.NewEncodingError(fmt.Sprintf("%d trailing bytes after record", len(rest)))
	}

	return Limits{}.BuildRecord(values[0], values[1], values[2])
}

func appendLengthPrefixed(buf []byte, s string) []byte {
	buf = append(buf, varint.ToUvarint(uint64(len(s)))...)
	return append(buf, s...)
}

func readLengthPrefixed(data []byte) (string, []byte, error) {
	n, read, err := varint.FromUvarint(data)
	if err != nil {
		return "", nil, err
	}
	data = data[read:]
	if n > uint64(len(data)) {
		return "", nil, fmt.Errorf("length %d exceeds remaining %d bytes", n, len(data))
	}
	return string(data[:n]), data[n:], nil
}
