// Package handlers provides the HTTP handlers for the custody server.
//
// Infrastructure handlers (health, version) sit next to the custody API handlers (identities, transfers, JWK).
// The handlers are stateless: private keys supplied in a request are used for that request only and are never
// stored or logged. Public keys are logged as short fingerprints.
//
// The legacy routes /wallet/new and /generate/transaction accept the field names used by the original
// browser client (sender_public_key, recipient_public_key, amount) and are served by the same handlers.
package handlers
