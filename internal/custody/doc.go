// package custody implements the chain-of-custody transfer record.
//
// A transfer record says that the current custodian hands custody of an item to a new custodian. The current
// custodian signs the canonical encoding of the record with their private key and anyone holding the public key
// can verify it. The resulting SignedTransfer is what gets handed to a ledger; persistence and ordering are the
// ledger's business, not this package's.
//
// Typical flow:
//
//	kp, err := custody.GenerateKeypair()
//	rec, err := custody.BuildRecord(kp.PublicKeyHex, recipientPublicKeyHex, "CASE123-DRIVE01, seized from suspect PC, sent to forensic lab")
//	st, err := custody.SignTransfer(kp.PrivateKeyHex, rec)
//	err = custody.VerifySignedTransfer(st)
//
// All functions are stateless and safe for concurrent use. Private keys are passed in as hex and are never logged
// or stored.
package custody
