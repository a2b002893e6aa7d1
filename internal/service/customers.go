package service

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_embedder.go -package=mocks briefly-ai/internal/service Embedder
//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_customer_service.go -package=mocks -mock_names=CustomerService=MockCustomerService briefly-ai/internal/service CustomerService

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"briefly-ai/internal/contextutil"
	"briefly-ai/internal/storage"
	"briefly-ai/internal/vectorstore"
)

// Embedder converts text into embedding vectors.
// This interface is defined from the service layer's perspective (consumer-first).
type Embedder interface {
	EmbedTexts(ctx context.Context, texts []string) ([][]float32, error)
}

// CustomerMatch is one semantic search hit.
type CustomerMatch struct {
	Customer storage.CustomerRecord
	Score    float32
}

// CustomerStats describes the state of the customer index.
type CustomerStats struct {
	Collection     string
	TotalCustomers int
}

// CustomerService manages customer records and their vector index.
type CustomerService interface {
	// AddCustomer stores a customer and indexes it for semantic search.
	// Existing customers with the same ID are overwritten.
	AddCustomer(ctx context.Context, customer *storage.CustomerRecord) error
	// GetCustomer returns a customer by ID.
	GetCustomer(ctx context.Context, id string) (*storage.CustomerRecord, error)
	// ListCustomers returns stored customers, newest first. limit <= 0 means no limit.
	ListCustomers(ctx context.Context, limit int) ([]storage.CustomerRecord, error)
	// DeleteCustomer removes a customer from both the database and the index.
	DeleteCustomer(ctx context.Context, id string) error
	// SearchCustomers finds customers semantically similar to the query.
	// topK <= 0 falls back to the configured default.
	SearchCustomers(ctx context.Context, query string, topK int) ([]CustomerMatch, error)
	// Stats returns index statistics.
	Stats(ctx context.Context) (CustomerStats, error)
}

// customerService implements CustomerService.
type customerService struct {
	store      storage.CustomerStore
	vectors    vectorstore.VectorStore
	embedder   Embedder
	collection string
	topK       int
}

// NewCustomerService creates a new CustomerService.
func NewCustomerService(store storage.CustomerStore, vectors vectorstore.VectorStore, embedder Embedder, collection string, topK int) CustomerService {
	return &customerService{
		store:      store,
		vectors:    vectors,
		embedder:   embedder,
		collection: collection,
		topK:       topK,
	}
}

// AddCustomer stores a customer and indexes it for semantic search.
func (s *customerService) AddCustomer(ctx context.Context, customer *storage.CustomerRecord) error {
	logger := contextutil.LoggerFromContext(ctx)

	if customer == nil || customer.ID == "" {
		return &ValidationError{Field: "id", Message: "cannot be empty"}
	}
	if customer.Name == "" {
		return &ValidationError{Field: "name", Message: "cannot be empty"}
	}

	if err := s.store.Upsert(ctx, customer); err != nil {
		return WrapError(err, "failed to store customer")
	}

	document := formatCustomerText(customer)
	vectors, err := s.embedder.EmbedTexts(ctx, []string{document})
	if err != nil {
		return WrapError(ErrExternalService, "failed to embed customer: "+err.Error())
	}

	point := vectorstore.Point{
		ID:  customerPointID(customer.ID),
		Vec: vectors[0],
		Meta: map[string]any{
			"customer_id": customer.ID,
			"type":        "customer",
			"document":    document,
		},
	}
	if err := s.vectors.Upsert(ctx, s.collection, []vectorstore.Point{point}); err != nil {
		return WrapError(ErrUnavailable, "failed to index customer: "+err.Error())
	}

	logger.InfoContext(ctx, "customer added", "customer_id", customer.ID)
	return nil
}

// GetCustomer returns a customer by ID.
func (s *customerService) GetCustomer(ctx context.Context, id string) (*storage.CustomerRecord, error) {
	if id == "" {
		return nil, &ValidationError{Field: "id", Message: "cannot be empty"}
	}

	customer, err := s.store.GetByID(ctx, id)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, WrapError(ErrNotFound, "customer "+id)
	}
	if err != nil {
		return nil, WrapError(err, "failed to load customer")
	}
	return customer, nil
}

// ListCustomers returns stored customers, newest first.
func (s *customerService) ListCustomers(ctx context.Context, limit int) ([]storage.CustomerRecord, error) {
	customers, err := s.store.List(ctx, limit)
	if err != nil {
		return nil, WrapError(err, "failed to list customers")
	}
	return customers, nil
}

// DeleteCustomer removes a customer from both the database and the index.
func (s *customerService) DeleteCustomer(ctx context.Context, id string) error {
	logger := contextutil.LoggerFromContext(ctx)

	if id == "" {
		return &ValidationError{Field: "id", Message: "cannot be empty"}
	}

	if err := s.store.Delete(ctx, id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return WrapError(ErrNotFound, "customer "+id)
		}
		return WrapError(err, "failed to delete customer")
	}

	if err := s.vectors.Delete(ctx, s.collection, []string{customerPointID(id)}); err != nil {
		return WrapError(ErrUnavailable, "failed to remove customer from index: "+err.Error())
	}

	logger.InfoContext(ctx, "customer deleted", "customer_id", id)
	return nil
}

// SearchCustomers finds customers semantically similar to the query.
func (s *customerService) SearchCustomers(ctx context.Context, query string, topK int) ([]CustomerMatch, error) {
	logger := contextutil.LoggerFromContext(ctx)

	if strings.TrimSpace(query) == "" {
		return nil, &ValidationError{Field: "query", Message: "cannot be empty"}
	}
	if topK <= 0 {
		topK = s.topK
	}

	vectors, err := s.embedder.EmbedTexts(ctx, []string{query})
	if err != nil {
		return nil, WrapError(ErrExternalService, "failed to embed query: "+err.Error())
	}

	results, err := s.vectors.Search(ctx, s.collection, vectors[0], topK)
	if err != nil {
		return nil, WrapError(ErrUnavailable, "failed to search customers: "+err.Error())
	}

	matches := make([]CustomerMatch, 0, len(results))
	for _, result := range results {
		customerID, ok := result.Meta["customer_id"].(string)
		if !ok || customerID == "" {
			continue
		}

		customer, err := s.store.GetByID(ctx, customerID)
		if errors.Is(err, storage.ErrNotFound) {
			// Index entry without a database row, likely a partial delete.
			logger.WarnContext(ctx, "indexed customer missing from database", "customer_id", customerID)
			continue
		}
		if err != nil {
			return nil, WrapError(err, "failed to load customer")
		}

		matches = append(matches, CustomerMatch{
			Customer: *customer,
			Score:    result.Score,
		})
	}

	logger.InfoContext(ctx, "customer search completed", "results", len(matches))
	return matches, nil
}

// Stats returns index statistics.
func (s *customerService) Stats(ctx context.Context) (CustomerStats, error) {
	count, err := s.vectors.Count(ctx, s.collection)
	if err != nil {
		return CustomerStats{}, WrapError(ErrUnavailable, "failed to read collection stats: "+err.Error())
	}
	return CustomerStats{
		Collection:     s.collection,
		TotalCustomers: count,
	}, nil
}

// formatCustomerText renders a customer record as text for embedding.
// Only populated fields are included.
func formatCustomerText(customer *storage.CustomerRecord) string {
	var parts []string

	add := func(label, value string) {
		if value != "" {
			parts = append(parts, fmt.Sprintf("%s: %s", label, value))
		}
	}

	add("Customer ID", customer.ID)
	add("Name", customer.Name)
	add("Email", customer.Email)
	add("Phone", customer.Phone)
	add("Address", customer.Address)
	add("Company", customer.Company)
	add("Purchase History", customer.PurchaseHistory)
	add("Notes", customer.Notes)
	add("Status", customer.Status)

	return strings.Join(parts, "\n")
}

// customerPointID derives a stable UUID for a customer, since the vector
// store only accepts UUID point IDs.
func customerPointID(id string) string {
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(id)).String()
}
