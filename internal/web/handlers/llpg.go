package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/llpg-simpleaddress/internal/address"
	"github.com/llpg-simpleaddress/internal/llpg"
)

// AddressStore looks up gazetteer addresses; *llpg.Store satisfies it
type AddressStore interface {
	Get(ctx context.Context, uprn string) (address.BS7666Address, error)
	ByPostcode(ctx context.Context, postcode string, limit int) ([]address.BS7666Address, error)
}

// LLPGHandler serves composed gazetteer addresses
type LLPGHandler struct {
	Store    AddressStore
	Composer *address.Composer
}

// LLPGAddress is a gazetteer record with its composed lines
type LLPGAddress struct {
	Address address.BS7666Address `json:"address"`
	ComposeResponse
}

// PostcodeResponse lists the composed addresses in a postcode
type PostcodeResponse struct {
	Postcode  string        `json:"postcode"`
	Count     int           `json:"count"`
	Addresses []LLPGAddress `json:"addresses"`
}

// GetAddress returns the composed address for one UPRN
func (h *LLPGHandler) GetAddress(w http.ResponseWriter, r *http.Request) {
	if h.Store == nil {
		http.Error(w, "Gazetteer not available", http.StatusServiceUnavailable)
		return
	}

	uprn := mux.Vars(r)["uprn"]
	addr, err := h.Store.Get(r.Context(), uprn)
	if errors.Is(err, llpg.ErrNotFound) {
		http.Error(w, "Address not found", http.StatusNotFound)
		return
	}
	if err != nil {
		log.Printf("Failed to load uprn %s: %v", uprn, err)
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, h.compose(addr))
}

// ListByPostcode returns the composed addresses in a postcode
func (h *LLPGHandler) ListByPostcode(w http.ResponseWriter, r *http.Request) {
	if h.Store == nil {
		http.Error(w, "Gazetteer not available", http.StatusServiceUnavailable)
		return
	}

	postcode := address.FormatPostcode(mux.Vars(r)["postcode"])
	if postcode == "" {
		http.Error(w, "Invalid postcode", http.StatusBadRequest)
		return
	}

	limit := 100
	if s := r.URL.Query().Get("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n <= 0 {
			http.Error(w, "Invalid limit", http.StatusBadRequest)
			return
		}
		limit = n
	}

	addrs, err := h.Store.ByPostcode(r.Context(), postcode, limit)
	if err != nil {
		log.Printf("Failed to list postcode %s: %v", postcode, err)
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}

	response := PostcodeResponse{
		Postcode:  postcode,
		Count:     len(addrs),
		Addresses: make([]LLPGAddress, 0, len(addrs)),
	}
	for _, addr := range addrs {
		response.Addresses = append(response.Addresses, h.compose(addr))
	}
	writeJSON(w, http.StatusOK, response)
}

func (h *LLPGHandler) compose(addr address.BS7666Address) LLPGAddress {
	return LLPGAddress{
		Address:         addr,
		ComposeResponse: newComposeResponse(h.Composer.Compose(addr)),
	}
}
