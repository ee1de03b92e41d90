package service

import (
	"errors"

	"go-shop-api/internal/apperr"
	"go-shop-api/internal/model"
	"go-shop-api/internal/repository"
	"go-shop-api/internal/ws"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type OrderService interface {
	MarkPaid(transactionID uuid.UUID) ([]model.TransactionProduct, error)
	GetHistories(userID uuid.UUID) ([]model.Transaction, error)
}

type orderService struct {
	txRepo   repository.TransactionRepository
	sizeRepo repository.SizeProductRepository
	db       *gorm.DB
	wsHub    *ws.Hub
}

func NewOrderService(
	txRepo repository.TransactionRepository,
	sizeRepo repository.SizeProductRepository,
	db *gorm.DB,
	hub *ws.Hub,
) OrderService {
	return &orderService{
		txRepo:   txRepo,
		sizeRepo: sizeRepo,
		db:       db,
		wsHub:    hub,
	}
}

// MarkPaid flips an order to Paid and decrements per-size stock for each
// line item (keyed by the line item's SizeProduct id). The status flip and
// all decrements run in one database transaction, so a failed decrement
// rolls back the whole confirmation. The flip is unconditional: confirming
// an already-paid order flips again and decrements again (no idempotency
// guard), and stock may go negative.
func (s *orderService) MarkPaid(transactionID uuid.UUID) ([]model.TransactionProduct, error) {
	if _, err := s.txRepo.FindByID(transactionID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrNotFound
		}
		return nil, err
	}

	var items []model.TransactionProduct
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.txRepo.UpdateStatus(tx, transactionID, model.StatusPaid); err != nil {
			return err
		}

		var err error
		items, err = s.txRepo.FindLineItems(tx, transactionID)
		if err != nil {
			return err
		}

		for _, item := range items {
			if err := s.sizeRepo.DecrementStock(tx, item.SizeProductID, item.Qty); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Broadcast stock changes setelah commit
	for _, item := range items {
		s.wsHub.BroadcastStockUpdate(ws.StockUpdate{
			ProductID:     item.ProductID,
			SizeProductID: item.SizeProductID,
			Qty:           item.Qty,
		})
	}

	return items, nil
}

// GetHistories returns the caller's Paid orders with line items and products
func (s *orderService) GetHistories(userID uuid.UUID) ([]model.Transaction, error) {
	return s.txRepo.FindPaidByUser(userID)
}
