package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"briefly-ai/internal/contextutil"
	"briefly-ai/internal/service"
	"briefly-ai/internal/storage"
)

// CustomerHandler handles HTTP requests for the customer directory.
type CustomerHandler struct {
	customerService service.CustomerService
}

// NewCustomerHandler creates a new CustomerHandler.
func NewCustomerHandler(customerService service.CustomerService) *CustomerHandler {
	return &CustomerHandler{
		customerService: customerService,
	}
}

// CustomerPayload represents a customer in HTTP requests and responses.
type CustomerPayload struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Email           string `json:"email,omitempty"`
	Phone           string `json:"phone,omitempty"`
	Address         string `json:"address,omitempty"`
	Company         string `json:"company,omitempty"`
	PurchaseHistory string `json:"purchase_history,omitempty"`
	Notes           string `json:"notes,omitempty"`
	Status          string `json:"status,omitempty"`
}

// SearchRequest represents the payload for semantic customer search.
type SearchRequest struct {
	Query string `json:"query"`
	TopK  int    `json:"top_k,omitempty"`
}

// SearchMatch is one entry in a search response.
type SearchMatch struct {
	Customer CustomerPayload `json:"customer"`
	Score    float32         `json:"score"`
}

// SearchResponse represents the response for semantic customer search.
type SearchResponse struct {
	Query   string        `json:"query"`
	Results []SearchMatch `json:"results"`
}

// StatsResponse represents customer index statistics.
type StatsResponse struct {
	Collection     string `json:"collection"`
	TotalCustomers int    `json:"total_customers"`
}

// Create handles POST /api/customers.
func (h *CustomerHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	var payload CustomerPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		logger.WarnContext(ctx, "invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	record := payloadToRecord(payload)
	if err := h.customerService.AddCustomer(ctx, &record); err != nil {
		handleServiceError(w, ctx, err, "Failed to add customer")
		return
	}

	writeJSON(w, http.StatusCreated, recordToPayload(record))
}

// List handles GET /api/customers.
func (h *CustomerHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			writeError(w, http.StatusBadRequest, "limit must be a non-negative integer")
			return
		}
		limit = parsed
	}

	customers, err := h.customerService.ListCustomers(ctx, limit)
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to list customers")
		return
	}

	payloads := make([]CustomerPayload, 0, len(customers))
	for _, customer := range customers {
		payloads = append(payloads, recordToPayload(customer))
	}
	writeJSON(w, http.StatusOK, payloads)
}

// Get handles GET /api/customers/{id}.
func (h *CustomerHandler) Get(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	customer, err := h.customerService.GetCustomer(ctx, chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to load customer")
		return
	}

	writeJSON(w, http.StatusOK, recordToPayload(*customer))
}

// Delete handles DELETE /api/customers/{id}.
func (h *CustomerHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := h.customerService.DeleteCustomer(ctx, chi.URLParam(r, "id")); err != nil {
		handleServiceError(w, ctx, err, "Failed to delete customer")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Search handles POST /api/customers/search.
func (h *CustomerHandler) Search(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	var req SearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.WarnContext(ctx, "invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	matches, err := h.customerService.SearchCustomers(ctx, req.Query, req.TopK)
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to search customers")
		return
	}

	results := make([]SearchMatch, 0, len(matches))
	for _, match := range matches {
		results = append(results, SearchMatch{
			Customer: recordToPayload(match.Customer),
			Score:    match.Score,
		})
	}
	writeJSON(w, http.StatusOK, SearchResponse{
		Query:   req.Query,
		Results: results,
	})
}

// Stats handles GET /api/customers/stats.
func (h *CustomerHandler) Stats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	stats, err := h.customerService.Stats(ctx)
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to read customer stats")
		return
	}

	writeJSON(w, http.StatusOK, StatsResponse{
		Collection:     stats.Collection,
		TotalCustomers: stats.TotalCustomers,
	})
}

func payloadToRecord(p CustomerPayload) storage.CustomerRecord {
	return storage.CustomerRecord{
		ID:              p.ID,
		Name:            p.Name,
		Email:           p.Email,
		Phone:           p.Phone,
		Address:         p.Address,
		Company:         p.Company,
		PurchaseHistory: p.PurchaseHistory,
		Notes:           p.Notes,
		Status:          p.Status,
	}
}

func recordToPayload(r storage.CustomerRecord) CustomerPayload {
	return CustomerPayload{
		ID:              r.ID,
		Name:            r.Name,
		Email:           r.Email,
		Phone:           r.Phone,
		Address:         r.Address,
		Company:         r.Company,
		PurchaseHistory: r.PurchaseHistory,
		Notes:           r.Notes,
		Status:          r.Status,
	}
}
