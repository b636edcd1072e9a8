package response

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/giftpanner/storefront/internal/platform/errs"
)

// ErrorBody is the JSON shape of every error answer.
type ErrorBody struct {
	Error    string `json:"error"`
	Field    string `json:"field,omitempty"`
	Redirect string `json:"redirect,omitempty"`
}

// JSON writes body with status.
func JSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if body == nil {
		return
	}
	_ = json.NewEncoder(w).Encode(body)
}

// Error answers with the status errs.StatusCode assigns to err. Server-side
// failures are logged and their detail is not echoed to the client.
func Error(w http.ResponseWriter, r *http.Request, err error) {
	status := errs.StatusCode(err)
	body := ErrorBody{Error: err.Error()}
	if ve, ok := errs.AsValidation(err); ok {
		body.Error, body.Field = ve.Message, ve.Field
	}
	if status >= http.StatusInternalServerError {
		log.Ctx(r.Context()).Error().Err(err).Str("endpoint", r.URL.Path).Msg("request failed")
		body.Error = errs.ErrInternalServer.Error()
	}
	JSON(w, status, body)
}

// Decode reads a JSON request body into dst, answering 400 on failure. It
// reports whether the handler should continue.
func Decode(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		JSON(w, http.StatusBadRequest, ErrorBody{Error: "invalid request body: " + err.Error()})
		return false
	}
	return true
}
