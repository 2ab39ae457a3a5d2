package handlers

import (
	"net/http"
	"strings"

	"github.com/llpg-simpleaddress/internal/address"
	"github.com/llpg-simpleaddress/internal/debug"
)

// ComposeHandler composes simple addresses from posted PAF, BS7666 or
// free-text addresses
type ComposeHandler struct {
	Composer   *address.Composer
	LocalDebug bool

	// Parse turns free text into a PAF address. Nil disables /api/compose/text.
	Parse func(text string) address.PAFAddress
}

// TextRequest is the body of a free-text compose request
type TextRequest struct {
	Text string `json:"text"`
}

// ComposePAF composes a posted PAF address
func (h *ComposeHandler) ComposePAF(w http.ResponseWriter, r *http.Request) {
	var addr address.PAFAddress
	if err := decodeJSON(w, r, &addr); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}
	h.respond(w, "compose paf", addr)
}

// ComposeBS7666 composes a posted BS7666 address
func (h *ComposeHandler) ComposeBS7666(w http.ResponseWriter, r *http.Request) {
	var addr address.BS7666Address
	if err := decodeJSON(w, r, &addr); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}
	addr.Postcode = address.FormatPostcode(addr.Postcode)
	h.respond(w, "compose bs7666", addr)
}

// ComposeText parses a posted free-text address and composes the result
func (h *ComposeHandler) ComposeText(w http.ResponseWriter, r *http.Request) {
	if h.Parse == nil {
		http.Error(w, "Address parsing not available", http.StatusNotImplemented)
		return
	}

	var req TextRequest
	if err := decodeJSON(w, r, &req); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.Text) == "" {
		http.Error(w, "Missing text", http.StatusBadRequest)
		return
	}

	h.respond(w, "compose text", h.Parse(req.Text))
}

func (h *ComposeHandler) respond(w http.ResponseWriter, operation string, src address.Source) {
	if !src.HasAddress() {
		http.Error(w, "Address has no content", http.StatusUnprocessableEntity)
		return
	}

	sa := h.Composer.Compose(src)
	debug.DebugLines(h.LocalDebug, operation, sa.Lines())
	writeJSON(w, http.StatusOK, newComposeResponse(sa))
}
