package handlers

import (
	"net/http"
)

// InfoResponse describes the API for clients hitting the root path.
type InfoResponse struct {
	Service   string            `json:"service"`
	Version   string            `json:"version"`
	Endpoints map[string]string `json:"endpoints"`
}

// Info handles GET / with a short API description.
func Info(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, InfoResponse{
		Service: "briefly-ai",
		Version: "1.0.0",
		Endpoints: map[string]string{
			"POST /api/summarize":        "summarize an uploaded document",
			"GET /api/health":            "service health",
			"POST /api/customers":        "add a customer",
			"GET /api/customers":         "list customers",
			"GET /api/customers/{id}":    "get a customer",
			"DELETE /api/customers/{id}": "delete a customer",
			"POST /api/customers/search": "semantic customer search",
			"GET /api/customers/stats":   "customer index statistics",
		},
	})
}
