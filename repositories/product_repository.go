package repositories

import (
	"context"
	"errors"
	"time"

	"gift-shop/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ProductRepository struct {
	db *pgxpool.Pool
}

func NewProductRepository(db *pgxpool.Pool) *ProductRepository {
	return &ProductRepository{db: db}
}

const productColumns = `id, name, category, price, COALESCE(image, ''), COALESCE(description, ''), in_stock, featured, created_at, updated_at`

func scanProduct(row pgx.Row, p *models.Product) error {
	return row.Scan(&p.ID, &p.Name, &p.Category, &p.Price, &p.Image, &p.Description,
		&p.InStock, &p.Featured, &p.CreatedAt, &p.UpdatedAt)
}

func (r *ProductRepository) List(ctx context.Context) ([]models.Product, error) {
	rows, err := r.db.Query(ctx, `SELECT `+productColumns+` FROM products ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := []models.Product{}
	for rows.Next() {
		var p models.Product
		if err := scanProduct(rows, &p); err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func (r *ProductRepository) Get(ctx context.Context, id string) (*models.Product, error) {
	var p models.Product
	err := scanProduct(r.db.QueryRow(ctx, `SELECT `+productColumns+` FROM products WHERE id = $1`, id), &p)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Insert assigns the opaque id and both timestamps, then writes the product
// back into the given struct.
func (r *ProductRepository) Insert(ctx context.Context, product *models.Product) error {
	product.ID = uuid.NewString()
	now := time.Now().UTC()
	product.CreatedAt = now
	product.UpdatedAt = now

	_, err := r.db.Exec(ctx,
		`INSERT INTO products (id, name, category, price, image, description, in_stock, featured, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		product.ID, product.Name, product.Category, product.Price, product.Image,
		product.Description, product.InStock, product.Featured, product.CreatedAt, product.UpdatedAt)
	return err
}

func (r *ProductRepository) Update(ctx context.Context, product *models.Product) error {
	product.UpdatedAt = time.Now().UTC()

	tag, err := r.db.Exec(ctx,
		`UPDATE products SET name = $1, category = $2, price = $3, image = $4,
		 description = $5, in_stock = $6, featured = $7, updated_at = $8 WHERE id = $9`,
		product.Name, product.Category, product.Price, product.Image,
		product.Description, product.InStock, product.Featured, product.UpdatedAt, product.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return models.ErrNotFound
	}
	return nil
}

func (r *ProductRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return models.ErrNotFound
	}
	return nil
}

func (r *ProductRepository) Categories(ctx context.Context) ([]string, error) {
	rows, err := r.db.Query(ctx, `SELECT DISTINCT category FROM products ORDER BY category`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categories := []string{}
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}
