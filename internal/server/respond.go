package server

import (
	"encoding/json"
	"net/http"

	"github.com/matzehuels/starmap/pkg/errors"
)

type errorBody struct {
	Error errorDetail `json:"error"`
}

type errorDetail struct {
	Code    errors.Code `json:"code"`
	Message string      `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError responds with the status mapped from the error code. Errors
// without a code are reported as internal without leaking their message.
func writeError(w http.ResponseWriter, err error) {
	status := statusOf(err)
	detail := errorDetail{Code: errors.GetCode(err), Message: errors.UserMessage(err)}
	if detail.Code == "" {
		detail = errorDetail{Code: errors.ErrCodeInternal, Message: "internal error"}
	}
	writeJSON(w, status, errorBody{Error: detail})
}

func statusOf(err error) int {
	return errors.HTTPStatus(err)
}

func errNotFound(path string) error {
	return errors.New(errors.ErrCodeNotFound, "no route for %s", path)
}
