package server

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/information-sharing-networks/custody-demo/internal/api"
	"github.com/information-sharing-networks/custody-demo/internal/config"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	cfg := &config.ServerEnvironment{
		Environment:           "test",
		Host:                  "127.0.0.1",
		Port:                  8080,
		ServerShutdownTimeout: time.Second,
		RequestTimeout:        10 * time.Second,
		RateLimitRPS:          0,
		MaxRequestSize:        64 * 1024,
		MaxDescriptionLength:  4096,
		MaxKeyLength:          2048,
		SignBatchWorkers:      2,
		SignBatchMaxRecords:   10,
	}
	return NewServer(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func do(t *testing.T, h http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal request: %v", err)
		}
		reader = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

// two custodians are created, one hands an item to the other and the transfer is verified and accepted
func TestCustodyTransferFlow(t *testing.T) {
	router := newTestServer(t).Router()

	var a, b api.IdentityResponse
	for _, identity := range []*api.IdentityResponse{&a, &b} {
		rr := do(t, router, http.MethodGet, "/wallet/new", nil)
		if rr.Code != http.StatusOK {
			t.Fatalf("GET /wallet/new status = %d", rr.Code)
		}
		if err := json.NewDecoder(rr.Body).Decode(identity); err != nil {
			t.Fatalf("failed to decode identity: %v", err)
		}
	}

	rr := do(t, router, http.MethodPost, "/v1/transfers", api.CreateTransferRequest{
		SenderPublicKey:    a.PublicKey,
		SenderPrivateKey:   a.PrivateKey,
		RecipientPublicKey: b.PublicKey,
		ItemDescription:    "CASE123-DRIVE01, seized from suspect PC, sent to forensic lab",
	})
	if rr.Code != http.StatusOK {
		t.Fatalf("POST /v1/transfers status = %d (body %s)", rr.Code, rr.Body.String())
	}
	var signed api.CreateTransferResponse
	if err := json.NewDecoder(rr.Body).Decode(&signed); err != nil {
		t.Fatalf("failed to decode signed transfer: %v", err)
	}

	fields := api.TransferFields{
		CurrentCustodianKey: signed.Transaction.CurrentCustodianKey(),
		NewCustodianKey:     signed.Transaction.NewCustodianKey(),
		ItemDescription:     signed.Transaction.ItemDescription(),
	}

	rr = do(t, router, http.MethodPost, "/v1/transfers/verify", api.VerifyTransferRequest{PublicKey: a.PublicKey, Transaction: fields, Signature: signed.Signature})
	if !strings.Contains(rr.Body.String(), `"valid":true`) {
		t.Errorf("verify with A = %s, want valid", rr.Body.String())
	}

	rr = do(t, router, http.MethodPost, "/v1/transfers/verify", api.VerifyTransferRequest{PublicKey: b.PublicKey, Transaction: fields, Signature: signed.Signature})
	if !strings.Contains(rr.Body.String(), `"valid":false`) {
		t.Errorf("verify with B = %s, want invalid", rr.Body.String())
	}

	rr = do(t, router, http.MethodPost, "/v1/transfers/accept", api.AcceptTransferRequest{Record: fields, Signature: signed.Signature, SignerPublicKey: a.PublicKey})
	if rr.Code != http.StatusOK {
		t.Fatalf("POST /v1/transfers/accept status = %d (body %s)", rr.Code, rr.Body.String())
	}
	var accepted api.AcceptTransferResponse
	if err := json.NewDecoder(rr.Body).Decode(&accepted); err != nil {
		t.Fatalf("failed to decode accept response: %v", err)
	}
	if accepted.RecordID != signed.RecordID || accepted.Checksum != signed.Checksum {
		t.Errorf("accepted transfer %+v does not match signed transfer (record_id %s, checksum %s)", accepted, signed.RecordID, signed.Checksum)
	}
}

func TestServerMiddleware(t *testing.T) {
	router := newTestServer(t).Router()

	rr := do(t, router, http.MethodGet, "/health/live", nil)
	if rr.Code != http.StatusOK {
		t.Errorf("GET /health/live status = %d", rr.Code)
	}
	if rr.Header().Get("Cache-Control") != "no-store" {
		t.Error("security headers not applied")
	}
	if rr.Header().Get("X-Max-Request-Size") != "65536" {
		t.Error("request size limit not applied")
	}

	rr = do(t, router, http.MethodGet, "/version", nil)
	if rr.Code != http.StatusOK || !strings.Contains(rr.Body.String(), "custody-server") {
		t.Errorf("GET /version = %d %s", rr.Code, rr.Body.String())
	}

	req := httptest.NewRequest(http.MethodPost, "/v1/transfers", strings.NewReader(strings.Repeat("x", 70*1024)))
	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	if rr.Code != http.StatusRequestEntityTooLarge {
		t.Errorf("oversized request status = %d, want 413", rr.Code)
	}

	rr = do(t, router, http.MethodGet, "/v1/unknown", nil)
	if rr.Code != http.StatusNotFound {
		t.Errorf("unknown route status = %d, want 404", rr.Code)
	}
}
