package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/information-sharing-networks/custody-demo/internal/api"
)

// decodeJSON decodes the request body into v.
// Unknown fields are rejected and a body over the size limit is reported as request too large.
func decodeJSON(r *http.Request, v any) error {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(v); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			return api.NewRequestTooLargeError(fmt.Sprintf("request body exceeds maximum allowed size (%d bytes)", maxBytesErr.Limit))
		}
		return api.WrapMalformedRequestError(err, "failed to decode request JSON")
	}
	if decoder.More() {
		return api.NewMalformedRequestError("request body contains more than one JSON value")
	}
	return nil
}
