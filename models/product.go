package models

import "time"

// Product ids are opaque strings assigned by the store on insert and never
// change afterwards.
type Product struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Category    string    `json:"category"`
	Price       int       `json:"price"`
	Image       string    `json:"image"`
	Description string    `json:"description"`
	InStock     bool      `json:"inStock"`
	Featured    bool      `json:"featured"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
