package handlers

// identities.go implements custodian identity generation and the JWK export of public keys.

import (
	"log/slog"
	"net/http"

	"github.com/information-sharing-networks/custody-demo/internal/api"
	"github.com/information-sharing-networks/custody-demo/internal/crypto"
	"github.com/information-sharing-networks/custody-demo/internal/custody"
	"github.com/information-sharing-networks/custody-demo/internal/logger"
)

// IdentityHandler generates custodian keypairs
type IdentityHandler struct {
	generator custody.KeyGenerator
}

// NewIdentityHandler creates the identity handler. The zero KeyGenerator uses crypto/rand.
func NewIdentityHandler(generator custody.KeyGenerator) *IdentityHandler {
	return &IdentityHandler{generator: generator}
}

// HandleGenerateIdentity godoc
//
//	@Summary		Generate a custodian identity
//	@Description	Generates a new RSA-2048 keypair. The private key is returned once and is not kept by the server.
//	@Description
//	@Description	The public key (PKIX DER, lowercase hex) is the custodian identifier used in transfer records.
//	@Tags			Identities
//	@Produce		json
//
//	@Success		200	{object}	api.IdentityResponse	"New identity"
//	@Failure		500	{object}	api.ErrorResponse		"Random source unavailable"
//
//	@Router			/v1/identities [post]
//	@Router			/wallet/new [get]
func (h *IdentityHandler) HandleGenerateIdentity(w http.ResponseWriter, r *http.Request) {
	reqLogger := logger.ContextRequestLogger(r.Context())

	kp, err := h.generator.Generate()
	if err != nil {
		api.RespondWithErrorResponse(w, r, err)
		return
	}

	keyID, err := crypto.KeyIDFromPublicKeyHex(kp.PublicKeyHex)
	if err != nil {
		api.RespondWithErrorResponse(w, r, err)
		return
	}

	reqLogger.Info("identity generated", slog.Any("keypair", kp), slog.String("key_id", keyID))

	api.RespondWithJSONPayload(w, http.StatusOK, api.IdentityResponse{
		PrivateKey: kp.PrivateKeyHex,
		PublicKey:  kp.PublicKeyHex,
		KeyID:      keyID,
	})
}

// HandlePublicKeyJWK godoc
//
//	@Summary		Export a public key as a JWK set
//	@Description	Converts a hex public key to a JWK set with one RS256 signing key.
//	@Description	The key ID defaults to the first 16 hex characters of the RFC 7638 thumbprint.
//	@Tags			Identities
//	@Accept			json
//	@Produce		json
//
//	@Param			request	body		api.PublicKeyJWKRequest	true	"public key"
//
//	@Success		200		{object}	JWKSResponse			"JWK set"
//	@Failure		400		{object}	api.ErrorResponse		"Invalid key"
//
//	@Router			/v1/identities/jwk [post]
func HandlePublicKeyJWK(w http.ResponseWriter, r *http.Request) {
	var req api.PublicKeyJWKRequest
	if err := decodeJSON(r, &req); err != nil {
		api.RespondWithErrorResponse(w, r, err)
		return
	}

	set, err := crypto.PublicKeyHexToJWKSet(req.PublicKey, req.KeyID)
	if err != nil {
		api.RespondWithErrorResponse(w, r, err)
		return
	}

	api.RespondWithJSONPayload(w, http.StatusOK, set)
}

// JWKSResponse is used for swaggo documentation as swaggo doesn't support the jwk.Set interface type.
type JWKSResponse struct {
	Keys []map[string]any `json:"keys"`
}
