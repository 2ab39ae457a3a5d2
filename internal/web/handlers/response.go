package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/llpg-simpleaddress/internal/address"
)

// ComposeResponse is a composed simple address
type ComposeResponse struct {
	Lines  []string       `json:"lines"`
	Tagged []address.Line `json:"tagged"`
	Text   string         `json:"text"`
}

func newComposeResponse(sa address.SimpleAddress) ComposeResponse {
	return ComposeResponse{
		Lines:  sa.Lines(),
		Tagged: sa.Tagged(),
		Text:   sa.String(),
	}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Failed to encode response: %v", err)
	}
}

// decodeJSON reads a JSON request body into v, rejecting unknown fields
func decodeJSON(w http.ResponseWriter, r *http.Request, v interface{}) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<20))
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}
