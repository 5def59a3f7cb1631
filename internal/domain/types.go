package domain

import "time"

type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Item is one inventory record: a quantity of a named perishable good with a
// price and an expiry date, owned by exactly one user.
type Item struct {
	ID           string    `json:"id"`
	UserID       string    `json:"userId"`
	Name         string    `json:"name"`
	Category     string    `json:"category"`
	Quantity     int       `json:"quantity"`
	PricePerUnit float64   `json:"pricePerUnit"`
	ExpiryDate   time.Time `json:"expiryDate"`
	ImportedAt   time.Time `json:"importedAt"`
	Used         bool      `json:"used"`
	Wasted       bool      `json:"wasted"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
