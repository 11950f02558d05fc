// api package defines the request and response types of the custody HTTP API and the error handling shared by
// the handlers.
//
// **types**
// the request/response structs are in types.go. Field names follow the custody wire format (snake_case).
//
// **error handling**
// the crypto package has its own coded errors; these are mapped to api error codes and returned to the client
// in a structured error response. Use RespondWithErrorResponse() to create and send the error response.
//
// A signature that does not match is not an error on the verify endpoint (the response is {"valid": false}),
// but it is an error when a signed transfer is submitted for acceptance.
package api
