package repository

import (
	"errors"
	"fmt"

	"inventory/models"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// ErrNotFound is returned when a lookup by id matches no stored record.
var ErrNotFound = errors.New("record not found")

// Repository implements the persistence operations for suppliers and
// products on a gorm connection. Foreign keys are resolved by explicit
// lookups, not lazy-loaded relations.
//
// Read-modify-write sequences built on it (load, mutate, Save) are not
// isolated against concurrent writers to the same row. Two concurrent
// product updates can race on quantity_sold and revenue; that limitation
// is inherited from the system this replaces.
type Repository struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) CreateSupplier(s *models.Supplier) error {
	return wrap(r.db.Create(s).Error)
}

func (r *Repository) ListSuppliers() ([]models.Supplier, error) {
	var suppliers []models.Supplier
	if err := r.db.Find(&suppliers).Error; err != nil {
		return nil, wrap(err)
	}
	return suppliers, nil
}

func (r *Repository) GetSupplier(id uint) (*models.Supplier, error) {
	var supplier models.Supplier
	if err := r.db.First(&supplier, id).Error; err != nil {
		return nil, wrap(err)
	}
	return &supplier, nil
}

func (r *Repository) SaveSupplier(s *models.Supplier) error {
	return wrap(r.db.Save(s).Error)
}

// DeleteSupplier removes the supplier row. Dependent products are removed
// by the OnDelete:CASCADE constraint on the products table.
func (r *Repository) DeleteSupplier(s *models.Supplier) error {
	return wrap(r.db.Delete(s).Error)
}

func (r *Repository) CreateProduct(p *models.Product) error {
	return wrap(r.db.Create(p).Error)
}

func (r *Repository) ListProducts() ([]models.Product, error) {
	var products []models.Product
	if err := r.db.Find(&products).Error; err != nil {
		return nil, wrap(err)
	}
	return products, nil
}

func (r *Repository) GetProduct(id uint) (*models.Product, error) {
	var product models.Product
	if err := r.db.First(&product, id).Error; err != nil {
		return nil, wrap(err)
	}
	return &product, nil
}

func (r *Repository) SaveProduct(p *models.Product) error {
	return wrap(r.db.Save(p).Error)
}

func (r *Repository) DeleteProduct(p *models.Product) error {
	return wrap(r.db.Delete(p).Error)
}

// wrap maps gorm's not-found error to ErrNotFound and surfaces Postgres
// errors with their SQLSTATE code attached.
func wrap(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return fmt.Errorf("postgres error %s: %s", pgErr.Code, pgErr.Message)
	}
	return err
}
