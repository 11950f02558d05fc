package handlers

// transfers.go implements signing, verification and acceptance of transfer records.

import (
	"fmt"
	"log/slog"
	"mime"
	"net/http"

	"github.com/google/uuid"

	"github.com/information-sharing-networks/custody-demo/internal/api"
	"github.com/information-sharing-networks/custody-demo/internal/crypto"
	"github.com/information-sharing-networks/custody-demo/internal/custody"
	"github.com/information-sharing-networks/custody-demo/internal/logger"
)

// TransferHandler handles the /v1/transfers endpoints
type TransferHandler struct {
	// limits bound the transfer record fields accepted from clients
	limits custody.Limits

	// batchWorkers is the number of goroutines used to sign a batch
	batchWorkers int

	// batchMaxRecords is the largest batch accepted
	batchMaxRecords int
}

// NewTransferHandler creates the transfer handler
func NewTransferHandler(limits custody.Limits, batchWorkers, batchMaxRecords int) *TransferHandler {
	return &TransferHandler{
		limits:          limits,
		batchWorkers:    batchWorkers,
		batchMaxRecords: batchMaxRecords,
	}
}

// HandleCreateTransfer godoc
//
//	@Summary		Sign a transfer record
//	@Description	Builds a transfer record from the sender's public key, the recipient's public key and the item
//	@Description	description and signs it with the sender's private key.
//	@Description
//	@Description	sender_public_key is optional. When supplied it must be the public key of sender_private_key.
//	@Description	The private key is used for this request only.
//	@Tags			Transfers
//	@Accept			json
//	@Produce		json
//
//	@Param			request	body		api.CreateTransferRequest	true	"transfer to sign"
//
//	@Success		200		{object}	api.CreateTransferResponse	"Signed transfer"
//	@Failure		400		{object}	api.ErrorResponse			"Invalid key or record"
//
//	@Router			/v1/transfers [post]
func (h *TransferHandler) HandleCreateTransfer(w http.ResponseWriter, r *http.Request) {
	var req api.CreateTransferRequest
	if err := decodeJSON(r, &req); err != nil {
		api.RespondWithErrorResponse(w, r, err)
		return
	}

	h.createTransfer(w, r, req)
}

// HandleLegacyGenerateTransaction godoc
//
//	@Summary		Sign a transfer record (legacy form)
//	@Description	Accepts the form fields of the original browser client: sender_public_key, sender_private_key,
//	@Description	recipient_public_key and amount (the item description). JSON bodies with the same field names are
//	@Description	also accepted. The response is the same as POST /v1/transfers.
//	@Tags			Transfers
//	@Accept			x-www-form-urlencoded
//	@Accept			json
//	@Produce		json
//
//	@Success		200		{object}	api.CreateTransferResponse	"Signed transfer"
//	@Failure		400		{object}	api.ErrorResponse			"Invalid key or record"
//
//	@Router			/generate/transaction [post]
func (h *TransferHandler) HandleLegacyGenerateTransaction(w http.ResponseWriter, r *http.Request) {
	var legacy legacyTransactionRequest

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	switch mediaType {
	case "application/x-www-form-urlencoded":
		if err := r.ParseForm(); err != nil {
			api.RespondWithErrorResponse(w, r, api.WrapMalformedRequestError(err, "failed to parse form"))
			return
		}
		legacy = legacyTransactionRequest{
			SenderPublicKey:    r.PostForm.Get("sender_public_key"),
			SenderPrivateKey:   r.PostForm.Get("sender_private_key"),
			RecipientPublicKey: r.PostForm.Get("recipient_public_key"),
			Amount:             r.PostForm.Get("amount"),
		}
	default:
		if err := decodeJSON(r, &legacy); err != nil {
			api.RespondWithErrorResponse(w, r, err)
			return
		}
	}

	h.createTransfer(w, r, api.CreateTransferRequest{
		SenderPublicKey:    legacy.SenderPublicKey,
		SenderPrivateKey:   legacy.SenderPrivateKey,
		RecipientPublicKey: legacy.RecipientPublicKey,
		ItemDescription:    legacy.Amount,
	})
}

// legacyTransactionRequest uses the field names of the original browser client
type legacyTransactionRequest struct {
	SenderPublicKey    string `json:"sender_public_key"`
	SenderPrivateKey   string `json:"sender_private_key"`
	RecipientPublicKey string `json:"recipient_public_key"`
	Amount             string `json:"amount"`
}

func (h *TransferHandler) createTransfer(w http.ResponseWriter, r *http.Request, req api.CreateTransferRequest) {
	ctx := r.Context()
	reqLogger := logger.ContextRequestLogger(ctx)

	senderPublicKey, err := crypto.PublicKeyHexFromPrivate(req.SenderPrivateKey)
	if err != nil {
		api.RespondWithErrorResponse(w, r, err)
		return
	}

	if req.SenderPublicKey != "" && req.SenderPublicKey != senderPublicKey {
		api.RespondWithErrorResponse(w, r, api.NewKeyMismatchError("sender_public_key does not belong to sender_private_key"))
		return
	}

	rec, err := h.limits.BuildRecord(senderPublicKey, req.RecipientPublicKey, req.ItemDescription)
	if err != nil {
		api.RespondWithErrorResponse(w, r, err)
		return
	}

	st, err := custody.SignTransfer(req.SenderPrivateKey, rec)
	if err != nil {
		api.RespondWithErrorResponse(w, r, err)
		return
	}

	recordID, err := custody.RecordID(rec)
	if err != nil {
		api.RespondWithErrorResponse(w, r, err)
		return
	}

	checksum, err := st.Checksum()
	if err != nil {
		api.RespondWithErrorResponse(w, r, err)
		return
	}

	reference := uuid.NewString()

	logger.ContextWithLogAttrs(ctx, slog.String("record_id", recordID.String()))
	reqLogger.Info("transfer signed",
		slog.String("sender", crypto.Fingerprint(senderPublicKey)),
		slog.String("recipient", crypto.Fingerprint(rec.NewCustodianKey())),
		slog.String("transfer_reference", reference),
	)

	api.RespondWithJSONPayload(w, http.StatusOK, api.CreateTransferResponse{
		Transaction:       rec,
		Signature:         st.Signature,
		RecordID:          recordID.String(),
		Checksum:          checksum,
		TransferReference: reference,
	})
}

// HandleVerifyTransfer godoc
//
//	@Summary		Verify a transfer signature
//	@Description	Checks a signature against a transfer record and public key.
//	@Description
//	@Description	A signature that does not match returns 200 with {"valid": false}. Malformed keys, records or
//	@Description	signatures return 400.
//	@Tags			Transfers
//	@Accept			json
//	@Produce		json
//
//	@Param			request	body		api.VerifyTransferRequest	true	"signature to check"
//
//	@Success		200		{object}	api.VerifyTransferResponse	"Verification result"
//	@Failure		400		{object}	api.ErrorResponse			"Malformed input"
//
//	@Router			/v1/transfers/verify [post]
func (h *TransferHandler) HandleVerifyTransfer(w http.ResponseWriter, r *http.Request) {
	var req api.VerifyTransferRequest
	if err := decodeJSON(r, &req); err != nil {
		api.RespondWithErrorResponse(w, r, err)
		return
	}

	rec, err := req.Transaction.Build(h.limits)
	if err != nil {
		api.RespondWithErrorResponse(w, r, err)
		return
	}

	valid, err := custody.Verify(req.PublicKey, rec, req.Signature)
	if err != nil {
		api.RespondWithErrorResponse(w, r, err)
		return
	}

	logger.ContextWithLogAttrs(r.Context(),
		slog.String("signer", crypto.Fingerprint(req.PublicKey)),
		slog.Bool("valid", valid),
	)

	api.RespondWithJSONPayload(w, http.StatusOK, api.VerifyTransferResponse{Valid: valid})
}

// HandleAcceptTransfer godoc
//
//	@Summary		Accept a signed transfer
//	@Description	Verifies a signed transfer before it is handed to a ledger: the signature must be valid and the
//	@Description	signer must be the record's current custodian.
//	@Tags			Transfers
//	@Accept			json
//	@Produce		json
//
//	@Param			request	body		api.AcceptTransferRequest	true	"signed transfer"
//
//	@Success		200		{object}	api.AcceptTransferResponse	"Transfer accepted"
//	@Failure		400		{object}	api.ErrorResponse			"Bad signature or malformed input"
//
//	@Router			/v1/transfers/accept [post]
func (h *TransferHandler) HandleAcceptTransfer(w http.ResponseWriter, r *http.Request) {
	reqLogger := logger.ContextRequestLogger(r.Context())

	var req api.AcceptTransferRequest
	if err := decodeJSON(r, &req); err != nil {
		api.RespondWithErrorResponse(w, r, err)
		return
	}

	rec, err := req.Record.Build(h.limits)
	if err != nil {
		api.RespondWithErrorResponse(w, r, err)
		return
	}

	st := custody.SignedTransfer{
		Record:          rec,
		Signature:       req.Signature,
		SignerPublicKey: req.SignerPublicKey,
	}

	if err := custody.VerifySignedTransfer(st); err != nil {
		api.RespondWithErrorResponse(w, r, err)
		return
	}

	recordID, err := custody.RecordID(rec)
	if err != nil {
		api.RespondWithErrorResponse(w, r, err)
		return
	}

	checksum, err := st.Checksum()
	if err != nil {
		api.RespondWithErrorResponse(w, r, err)
		return
	}

	reqLogger.Info("transfer accepted",
		slog.String("record_id", recordID.String()),
		slog.String("from", crypto.Fingerprint(rec.CurrentCustodianKey())),
		slog.String("to", crypto.Fingerprint(rec.NewCustodianKey())),
	)

	api.RespondWithJSONPayload(w, http.StatusOK, api.AcceptTransferResponse{
		Accepted: true,
		RecordID: recordID.String(),
		Checksum: checksum,
	})
}

// HandleSignBatch godoc
//
//	@Summary		Sign several transfer records
//	@Description	Signs up to SIGN_BATCH_MAX_RECORDS records with one private key. Signatures are returned in
//	@Description	the order of the input records. If any record is invalid nothing is returned.
//	@Tags			Transfers
//	@Accept			json
//	@Produce		json
//
//	@Param			request	body		api.SignBatchRequest	true	"records to sign"
//
//	@Success		200		{object}	api.SignBatchResponse	"Signatures"
//	@Failure		400		{object}	api.ErrorResponse		"Invalid key, record or batch size"
//
//	@Router			/v1/transfers/batch [post]
func (h *TransferHandler) HandleSignBatch(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	reqLogger := logger.ContextRequestLogger(ctx)

	var req api.SignBatchRequest
	if err := decodeJSON(r, &req); err != nil {
		api.RespondWithErrorResponse(w, r, err)
		return
	}

	if len(req.Transactions) == 0 {
		api.RespondWithErrorResponse(w, r, api.NewMalformedRequestError("at least one transaction is required"))
		return
	}
	if len(req.Transactions) > h.batchMaxRecords {
		api.RespondWithErrorResponse(w, r, api.NewBatchTooLargeError(
			fmt.Sprintf("batch has %d transactions, maximum is %d", len(req.Transactions), h.batchMaxRecords)))
		return
	}

	signerPublicKey, err := crypto.PublicKeyHexFromPrivate(req.PrivateKey)
	if err != nil {
		api.RespondWithErrorResponse(w, r, err)
		return
	}

	records := make([]custody.TransferRecord, len(req.Transactions))
	recordIDs := make([]string, len(req.Transactions))
	for i, fields := range req.Transactions {
		rec, err := fields.Build(h.limits)
		if err != nil {
			api.RespondWithErrorResponse(w, r, fmt.Errorf("transactions[%d]: %w", i, err))
			return
		}
		id, err := custody.RecordID(rec)
		if err != nil {
			api.RespondWithErrorResponse(w, r, err)
			return
		}
		records[i] = rec
		recordIDs[i] = id.String()
	}

	signatures, err := custody.SignBatch(ctx, req.PrivateKey, records, h.batchWorkers)
	if err != nil {
		if crypto.CodeOf(err) == "" {
			// request cancelled or timed out
			err = api.WrapInternalError(err, "batch signing interrupted")
		}
		api.RespondWithErrorResponse(w, r, err)
		return
	}

	reqLogger.Info("batch signed",
		slog.String("signer", crypto.Fingerprint(signerPublicKey)),
		slog.Int("records", len(records)),
	)

	api.RespondWithJSONPayload(w, http.StatusOK, api.SignBatchResponse{
		SignerPublicKey: signerPublicKey,
		Signatures:      signatures,
		RecordIDs:       recordIDs,
	})
}
