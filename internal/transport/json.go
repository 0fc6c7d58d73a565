package transport

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

const maxBodyBytes = 1 << 20

// ErrorBody is the JSON payload of a failed request.
type ErrorBody struct {
	Error  string `json:"error"`
	Code   string `json:"code"`
	Prompt string `json:"prompt,omitempty"`
}

// DecodeJSON reads a single JSON value from body into v.
func DecodeJSON(body io.Reader, v any) error {
	dec := json.NewDecoder(io.LimitReader(body, maxBodyBytes))
	if err := dec.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("%w: empty body", ErrBadRequest)
		}
		return fmt.Errorf("%w: %v", ErrBadRequest, err)
	}
	return nil
}

// WriteJSON writes v with the given status.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError maps err to a status and writes it as an ErrorBody.
func WriteError(w http.ResponseWriter, err error) {
	status, code := classify(err)
	body := ErrorBody{Error: err.Error(), Code: code}
	if prompt, ok := confirmationPrompt(err); ok {
		body.Prompt = prompt
	}
	if status == http.StatusInternalServerError {
		body.Error = "internal error"
	}
	WriteJSON(w, status, body)
}
