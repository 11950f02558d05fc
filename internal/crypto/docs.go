// crypto package provides the cryptographic primitives for the custody service.
//
// these are low level functions (RSA key handling, SHA-256 digests, RSASSA-PKCS1-v1_5 signatures, JWK identifiers).
// See the custody package for the transfer record encoder, signer and verifier built on top of them.
package crypto
