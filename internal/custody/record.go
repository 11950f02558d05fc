package custody

import (
	"encoding/json"
	"fmt"
	"unicode/utf8"

	"go.uber.org/multierr"

	"github.com/information-sharing-networks/custody-demo/internal/crypto"
)

// canonical field names, in encoding order
const (
	FieldCurrentCustodianKey = "current_custodian_key"
	FieldNewCustodianKey     = "new_custodian_key"
	FieldItemDescription     = "item_description"
)

// TransferRecord is an assertion that custody of an item passes from the current custodian to a new custodian.
//
// Records are immutable. Use BuildRecord (or Limits.BuildRecord) to create one; the zero value is not a valid
// record and is rejected by Encode.
type TransferRecord struct {
	currentCustodianKey string
	newCustodianKey     string
	itemDescription     string
}

// field is a single name/value pair of the canonical encoding
type field struct {
	name  string
	value string
}

// BuildRecord validates the inputs against DefaultLimits and returns a transfer record.
//
// currentCustodianKey and newCustodianKey are the lowercase hex public keys of the two parties.
func BuildRecord(currentCustodianKey, newCustodianKey, itemDescription string) (TransferRecord, error) {
	return DefaultLimits.BuildRecord(currentCustodianKey, newCustodianKey, itemDescription)
}

// BuildRecord validates the inputs against l and returns a transfer record.
//
// Every invalid field is reported: the returned EncodingError wraps one error per failing field
// (use multierr.Errors on the unwrapped error to list them).
func (l Limits) BuildRecord(currentCustodianKey, newCustodianKey, itemDescription string) (TransferRecord, error) {
	rec := TransferRecord{
		currentCustodianKey: currentCustodianKey,
		newCustodianKey:     newCustodianKey,
		itemDescription:     itemDescription,
	}
	if err := rec.validate(l); err != nil {
		return TransferRecord{}, err
	}
	return rec, nil
}

// CurrentCustodianKey returns the public key of the party handing over custody
func (r TransferRecord) CurrentCustodianKey() string { return r.currentCustodianKey }

// NewCustodianKey returns the public key of the party receiving custody
func (r TransferRecord) NewCustodianKey() string { return r.newCustodianKey }

// ItemDescription returns the free text describing the item and the reason for the transfer
func (r TransferRecord) ItemDescription() string { return r.itemDescription }

// IsZero reports whether r is the zero value
func (r TransferRecord) IsZero() bool { return r == TransferRecord{} }

// fields returns the record fields in canonical order
func (r TransferRecord) fields() []field {
	return []field{
		{FieldCurrentCustodianKey, r.currentCustodianKey},
		{FieldNewCustodianKey, r.newCustodianKey},
		{FieldItemDescription, r.itemDescription},
	}
}

func (r TransferRecord) validate(l Limits) error {
	var errs error

	errs = multierr.Append(errs, validateKeyField(FieldCurrentCustodianKey, r.currentCustodianKey, l.MaxKeyLength))
	errs = multierr.Append(errs, validateKeyField(FieldNewCustodianKey, r.newCustodianKey, l.MaxKeyLength))
	errs = multierr.Append(errs, validateTextField(FieldItemDescription, r.itemDescription, l.MaxDescriptionLength))

	if errs != nil {
		return crypto.WrapEncodingError(errs, "invalid transfer record")
	}
	return nil
}

func validateTextField(name, value string, maxLength int) error {
	if value == "" {
		return fmt.Errorf("%s is required", name)
	}
	if maxLength > 0 && len(value) > maxLength {
		return fmt.Errorf("%s is %d bytes, maximum is %d", name, len(value), maxLength)
	}
	if !utf8.ValidString(value) {
		return fmt.Errorf("%s is not valid UTF-8", name)
	}
	return nil
}

func validateKeyField(name, value string, maxLength int) error {
	if err := validateTextField(name, value, maxLength); err != nil {
		return err
	}
	if len(value)%2 != 0 {
		return fmt.Errorf("%s must be lowercase hex (odd length)", name)
	}
	for i := 0; i < len(value); i++ {
		c := value[i]
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') {
			return fmt.Errorf("%s must be lowercase hex (invalid character at offset %d)", name, i)
		}
	}
	return nil
}

// recordJSON is the wire form of a TransferRecord
type recordJSON struct {
	CurrentCustodianKey string `json:"current_custodian_key"`
	NewCustodianKey     string `json:"new_custodian_key"`
	ItemDescription     string `json:"item_description"`
}

func (r TransferRecord) MarshalJSON() ([]byte, error) {
	return json.Marshal(recordJSON{
		CurrentCustodianKey: r.currentCustodianKey,
		NewCustodianKey:     r.newCustodianKey,
		ItemDescription:     r.itemDescription,
	})
}

// UnmarshalJSON decodes and validates a record. Size limits are not applied here; callers that accept
// untrusted JSON should bound the request size or rebuild the record with their own Limits.
func (r *TransferRecord) UnmarshalJSON(data []byte) error {
	var wire recordJSON
	if err := json.Unmarshal(data, &wire); err != nil {
		return crypto.WrapEncodingError(err, "failed to decode transfer record")
	}

	rec, err := Limits{}.BuildRecord(wire.CurrentCustodianKey, wire.NewCustodianKey, wire.ItemDescription)
	if err != nil {
		return err
	}
	*r = rec
	return nil
}
