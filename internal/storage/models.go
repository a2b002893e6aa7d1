package storage

import "time"

// CustomerRecord represents a row in the customers table. Optional fields
// are stored as empty strings.
type CustomerRecord struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Email           string `json:"email,omitempty"`
	Phone           string `json:"phone,omitempty"`
	Address         string `json:"address,omitempty"`
	Company         string `json:"company,omitempty"`
	PurchaseHistory string `json:"purchase_history,omitempty"`
	Notes           string `json:"notes,omitempty"`
	Status          string `json:"status,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
