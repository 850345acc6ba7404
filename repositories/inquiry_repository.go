package repositories

import (
	"context"
	"encoding/json"
	"time"

	"gift-shop/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type InquiryRepository struct {
	db *pgxpool.Pool
}

func NewInquiryRepository(db *pgxpool.Pool) *InquiryRepository {
	return &InquiryRepository{db: db}
}

// Insert is the only operation the core needs on inquiries: records are
// immutable once created.
func (r *InquiryRepository) Insert(ctx context.Context, inquiry *models.Inquiry) error {
	inquiry.ID = uuid.NewString()
	now := time.Now().UTC()
	inquiry.CreatedAt = now
	inquiry.UpdatedAt = now

	items, err := json.Marshal(inquiry.CartItems)
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx,
		`INSERT INTO inquiries (id, first_name, last_name, email, phone, company, address,
		 additional_notes, cart_items, total_amount, status, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		inquiry.ID, inquiry.FirstName, inquiry.LastName, inquiry.Email, inquiry.Phone,
		inquiry.Company, inquiry.Address, inquiry.AdditionalNotes, items,
		inquiry.TotalAmount, inquiry.Status, inquiry.CreatedAt, inquiry.UpdatedAt)
	return err
}
