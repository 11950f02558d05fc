// Package server provides the HTTP server for the custody demo app.
//
// the server is configured through environment variables
// (see internal/config/config.go for details)
//
// Routes:
//   - common infrastructure handlers (health, version)
//   - the custody API under /v1 (identities, transfers, verification, acceptance, batch signing, JWK export)
//   - the legacy routes used by the original browser client (/wallet/new, /generate/transaction)
//
// The server holds no custody state: nothing is persisted between requests.
//
// middleware is in internal/server/middleware
package server
