package repository

import (
	"go-shop-api/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SizeProductRepository interface {
	FindByID(id uuid.UUID) (*model.SizeProduct, error)
	DecrementStock(tx *gorm.DB, id uuid.UUID, qty int) error
}

type sizeProductRepo struct {
	db *gorm.DB
}

func NewSizeProductRepo(db *gorm.DB) SizeProductRepository {
	return &sizeProductRepo{db}
}

func (r *sizeProductRepo) FindByID(id uuid.UUID) (*model.SizeProduct, error) {
	var sp model.SizeProduct
	if err := r.db.First(&sp, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &sp, nil
}

// DecrementStock menerima *gorm.DB (tx) agar bisa berjalan dalam transaksi.
// The decrement is a single atomic UPDATE so concurrent confirmations cannot
// lose updates. Stock is allowed to go negative (no guard), matching the
// documented behaviour of the confirmation workflow.
func (r *sizeProductRepo) DecrementStock(tx *gorm.DB, id uuid.UUID, qty int) error {
	result := tx.Model(&model.SizeProduct{}).
		Where("id = ?", id).
		Update("stock", gorm.Expr("stock - ?", qty))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
