package service

import (
	"errors"
	"fmt"
	"time"

	"go-shop-api/internal/apperr"
	"go-shop-api/internal/gateway"
	"go-shop-api/internal/model"
	"go-shop-api/internal/repository"
	"go-shop-api/pkg/validator"

	"github.com/google/uuid"
	"github.com/midtrans/midtrans-go/snap"
	"gorm.io/gorm"
)

// CartItem is one client-submitted cart entry. Subtotals are taken as-is;
// the server does not re-price against the catalog.
type CartItem struct {
	ProductID     uuid.UUID `json:"id" validate:"uuid_required"`
	SizeProductID uuid.UUID `json:"size" validate:"uuid_required"`
	Qty           int       `json:"qty" validate:"required,gt=0"`
	Subtotal      int64     `json:"subtotal" validate:"gte=0"`
}

type CheckoutResult struct {
	Carts         []CartItem         `json:"carts"`
	Transaction   *model.Transaction `json:"transaction"`
	MidtransToken *snap.Response     `json:"midtransToken"`
}

type CheckoutService interface {
	Checkout(userID uuid.UUID, carts []CartItem) (*CheckoutResult, error)
	RegenerateToken(userID, transactionID uuid.UUID) (*snap.Response, error)
}

type checkoutService struct {
	txRepo   repository.TransactionRepository
	userRepo repository.UserRepository
	sizeRepo repository.SizeProductRepository
	payment  gateway.PaymentGateway
	db       *gorm.DB
}

func NewCheckoutService(
	txRepo repository.TransactionRepository,
	userRepo repository.UserRepository,
	sizeRepo repository.SizeProductRepository,
	payment gateway.PaymentGateway,
	db *gorm.DB,
) CheckoutService {
	return &checkoutService{
		txRepo:   txRepo,
		userRepo: userRepo,
		sizeRepo: sizeRepo,
		payment:  payment,
		db:       db,
	}
}

// Checkout persists an Unpaid order with its line items in one database
// transaction, then requests a payment token for the computed total. A
// gateway failure after commit leaves the Unpaid order recoverable via
// RegenerateToken.
func (s *checkoutService) Checkout(userID uuid.UUID, carts []CartItem) (*CheckoutResult, error) {
	// 1. Validasi Input. The "size" field is a SizeProduct row id and must
	// reference an existing row.
	var totalPrice int64
	for i := range carts {
		if errs := validator.ValidateStruct(&carts[i]); len(errs) > 0 {
			firstErr := errs[0]
			return nil, apperr.BadRequest(fmt.Sprintf("Validation failed: Field '%s' failed on tag '%s'", firstErr.FailedField, firstErr.Tag))
		}
		if _, err := s.sizeRepo.FindByID(carts[i].SizeProductID); err != nil {
			return nil, apperr.BadRequest(fmt.Sprintf("Unknown size product %s", carts[i].SizeProductID))
		}
		totalPrice += carts[i].Subtotal
	}

	// 2. Simpan order + line items dalam satu transaksi database
	transaction := &model.Transaction{
		Date:       time.Now(),
		Status:     model.StatusUnpaid,
		TotalPrice: totalPrice,
		UserID:     userID,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.txRepo.Create(tx, transaction); err != nil {
			return err
		}

		items := make([]model.TransactionProduct, len(carts))
		for i, c := range carts {
			items[i] = model.TransactionProduct{
				SizeProductID: c.SizeProductID,
				Qty:           c.Qty,
				ProductID:     c.ProductID,
				TransactionID: transaction.ID,
			}
		}
		return s.txRepo.CreateLineItems(tx, items)
	})
	if err != nil {
		return nil, err
	}

	// 3. Minta payment token dari gateway
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}

	token, err := s.payment.CreatePaymentToken(gateway.NewOrderID(), totalPrice, user)
	if err != nil {
		return nil, err
	}

	return &CheckoutResult{
		Carts:         carts,
		Transaction:   transaction,
		MidtransToken: token,
	}, nil
}

// RegenerateToken issues a fresh payment token for an existing order, used
// when a prior token expired. No state is mutated.
func (s *checkoutService) RegenerateToken(userID, transactionID uuid.UUID) (*snap.Response, error) {
	transaction, err := s.txRepo.FindByID(transactionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrNotFound
		}
		return nil, err
	}

	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}

	return s.payment.CreatePaymentToken(gateway.NewOrderID(), transaction.TotalPrice, user)
}
