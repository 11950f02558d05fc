// types.go defines the custody API request and response types.
package api

import (
	"github.com/information-sharing-networks/custody-demo/internal/custody"
)

// IdentityResponse is returned when a new custodian identity is generated.
//
// The private key is returned once and is not kept by the server.
type IdentityResponse struct {
	// PrivateKey is the PKCS#8 DER private key, lowercase hex
	PrivateKey string `json:"private_key"`

	// PublicKey is the PKIX DER public key, lowercase hex. This is the custodian identifier used in transfer records.
	PublicKey string `json:"public_key"`

	// KeyID is the first 16 hex characters of the RFC 7638 thumbprint of the public key
	KeyID string `json:"key_id"`
}

// TransferFields are the fields of a transfer record as supplied by a client
type TransferFields struct {
	CurrentCustodianKey string `json:"current_custodian_key"`
	NewCustodianKey     string `json:"new_custodian_key"`
	ItemDescription     string `json:"item_description"`
}

// Build validates the fields against limits and returns the transfer record
func (f TransferFields) Build(limits custody.Limits) (custody.TransferRecord, error) {
	return limits.BuildRecord(f.CurrentCustodianKey, f.NewCustodianKey, f.ItemDescription)
}

// CreateTransferRequest asks the server to build and sign a transfer record.
//
// The sender's private key is used for this request only and is never stored or logged.
type CreateTransferRequest struct {
	SenderPublicKey    string `json:"sender_public_key"`
	SenderPrivateKey   string `json:"sender_private_key"`
	RecipientPublicKey string `json:"recipient_public_key"`
	ItemDescription    string `json:"item_description"`
}

// CreateTransferResponse is the signed transfer record
type CreateTransferResponse struct {
	Transaction custody.TransferRecord `json:"transaction"`

	// Signature is the lowercase hex RSASSA-PKCS1-v1_5 SHA-256 signature over the canonical record encoding
	Signature string `json:"signature"`

	// RecordID is the CIDv1 content identifier of the canonical record encoding
	RecordID string `json:"record_id"`

	// Checksum is the SHA-256 of the canonical JSON of the signed transfer
	Checksum string `json:"checksum"`

	// TransferReference is a server generated reference for this response (it is not part of the signed data)
	TransferReference string `json:"transfer_reference"`
}

// VerifyTransferRequest asks whether a signature is valid for a transfer record and public key
type VerifyTransferRequest struct {
	PublicKey   string         `json:"public_key"`
	Transaction TransferFields `json:"transaction"`
	Signature   string         `json:"signature"`
}

// VerifyTransferResponse is the result of a verification.
// A signature that does not match is a valid request with Valid false.
type VerifyTransferResponse struct {
	Valid bool `json:"valid"`
}

// AcceptTransferRequest submits a signed transfer for acceptance
type AcceptTransferRequest struct {
	Record          TransferFields `json:"record"`
	Signature       string         `json:"signature"`
	SignerPublicKey string         `json:"signer_public_key"`
}

// AcceptTransferResponse is returned when a signed transfer is accepted
type AcceptTransferResponse struct {
	Accepted bool   `json:"accepted"`
	RecordID string `json:"record_id"`

	// Checksum is the SHA-256 of the canonical JSON of the signed transfer
	Checksum string `json:"checksum"`
}

// SignBatchRequest signs several transfer records with one private key
type SignBatchRequest struct {
	PrivateKey   string           `json:"private_key"`
	Transactions []TransferFields `json:"transactions"`
}

// SignBatchResponse holds one signature and record ID per input record, in input order
type SignBatchResponse struct {
	SignerPublicKey string   `json:"signer_public_key"`
	Signatures      []string `json:"signatures"`
	RecordIDs       []string `json:"record_ids"`
}

// PublicKeyJWKRequest asks for the JWK form of a public key
type PublicKeyJWKRequest struct {
	PublicKey string `json:"public_key"`

	// KeyID is optional; the thumbprint key ID is used when it is empty
	KeyID string `json:"key_id,omitempty"`
}
