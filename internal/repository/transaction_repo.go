package repository

import (
	"go-shop-api/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TransactionRepository interface {
	Create(tx *gorm.DB, transaction *model.Transaction) error
	CreateLineItems(tx *gorm.DB, items []model.TransactionProduct) error
	FindByID(id uuid.UUID) (*model.Transaction, error)
	FindLineItems(tx *gorm.DB, transactionID uuid.UUID) ([]model.TransactionProduct, error)
	UpdateStatus(tx *gorm.DB, id uuid.UUID, status model.TransactionStatus) error
	FindPaidByUser(userID uuid.UUID) ([]model.Transaction, error)
}

type transactionRepo struct {
	db *gorm.DB
}

func NewTransactionRepo(db *gorm.DB) TransactionRepository {
	return &transactionRepo{db}
}

func (r *transactionRepo) Create(tx *gorm.DB, transaction *model.Transaction) error {
	return tx.Create(transaction).Error
}

// CreateLineItems persists all line items of an order as one batch insert
func (r *transactionRepo) CreateLineItems(tx *gorm.DB, items []model.TransactionProduct) error {
	if len(items) == 0 {
		return nil
	}
	return tx.Create(&items).Error
}

func (r *transactionRepo) FindByID(id uuid.UUID) (*model.Transaction, error) {
	var transaction model.Transaction
	if err := r.db.First(&transaction, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &transaction, nil
}

func (r *transactionRepo) FindLineItems(tx *gorm.DB, transactionID uuid.UUID) ([]model.TransactionProduct, error) {
	var items []model.TransactionProduct
	err := tx.Where("transaction_id = ?", transactionID).Find(&items).Error
	return items, err
}

func (r *transactionRepo) UpdateStatus(tx *gorm.DB, id uuid.UUID, status model.TransactionStatus) error {
	return tx.Model(&model.Transaction{}).Where("id = ?", id).Update("status", status).Error
}

// FindPaidByUser returns the purchase history: paid orders with their line
// items and each line item's product
func (r *transactionRepo) FindPaidByUser(userID uuid.UUID) ([]model.Transaction, error) {
	var transactions []model.Transaction
	err := r.db.
		Preload("TransactionProducts").
		Preload("TransactionProducts.Product").
		Where("user_id = ? AND status = ?", userID, model.StatusPaid).
		Order("date DESC").
		Find(&transactions).Error
	return transactions, err
}
