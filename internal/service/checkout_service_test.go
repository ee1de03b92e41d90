package service

import (
	"strings"
	"testing"

	"go-shop-api/internal/apperr"
	"go-shop-api/internal/model"
	"go-shop-api/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestCheckoutComputesTotalAndPersistsOrder(t *testing.T) {
	db := initTestDB(t)
	payment := &stubPayment{}
	svc := NewCheckoutService(
		repository.NewTransactionRepo(db),
		repository.NewUserRepo(db),
		repository.NewSizeProductRepo(db),
		payment,
		db,
	)

	user := createTestUser(t, db, "buyer@example.com")
	product := createTestProduct(t, db, "Sneaker", 20000, model.SizeProduct{Size: "40", Stock: 5}, model.SizeProduct{Size: "41", Stock: 3})

	carts := []CartItem{
		{ProductID: product.ID, SizeProductID: product.SizeProducts[0].ID, Qty: 2, Subtotal: 40000},
		{ProductID: product.ID, SizeProductID: product.SizeProducts[1].ID, Qty: 1, Subtotal: 20000},
	}

	result, err := svc.Checkout(user.ID, carts)
	require.NoError(t, err)

	require.Equal(t, int64(60000), result.Transaction.TotalPrice)
	require.Equal(t, model.StatusUnpaid, result.Transaction.Status)
	require.Equal(t, user.ID, result.Transaction.UserID)
	require.Equal(t, "snap-token-stub", result.MidtransToken.Token)
	require.Len(t, result.Carts, 2)

	// exactly one transaction and len(carts) line items, linked by the new id
	var txCount int64
	db.Model(&model.Transaction{}).Count(&txCount)
	require.EqualValues(t, 1, txCount)

	var items []model.TransactionProduct
	require.NoError(t, db.Where("transaction_id = ?", result.Transaction.ID).Find(&items).Error)
	require.Len(t, items, 2)
	for i, item := range items {
		require.Equal(t, carts[i].SizeProductID, item.SizeProductID)
		require.Equal(t, carts[i].Qty, item.Qty)
		require.Equal(t, carts[i].ProductID, item.ProductID)
	}

	// gateway saw the computed total and the buyer's profile
	require.Equal(t, 1, payment.calls)
	require.Equal(t, int64(60000), payment.lastGross)
	require.Equal(t, user.Email, payment.lastUser.Email)
	require.True(t, strings.HasPrefix(payment.lastOrderID, "ORDERID-"))
}

func TestCheckoutEmptyCart(t *testing.T) {
	db := initTestDB(t)
	payment := &stubPayment{}
	svc := NewCheckoutService(
		repository.NewTransactionRepo(db),
		repository.NewUserRepo(db),
		repository.NewSizeProductRepo(db),
		payment,
		db,
	)

	user := createTestUser(t, db, "buyer@example.com")

	result, err := svc.Checkout(user.ID, nil)
	require.NoError(t, err)
	require.EqualValues(t, 0, result.Transaction.TotalPrice)
	require.Equal(t, model.StatusUnpaid, result.Transaction.Status)
	require.EqualValues(t, 0, payment.lastGross)

	var itemCount int64
	db.Model(&model.TransactionProduct{}).Count(&itemCount)
	require.EqualValues(t, 0, itemCount)
}

func TestCheckoutRejectsUnknownSizeProduct(t *testing.T) {
	db := initTestDB(t)
	payment := &stubPayment{}
	svc := NewCheckoutService(
		repository.NewTransactionRepo(db),
		repository.NewUserRepo(db),
		repository.NewSizeProductRepo(db),
		payment,
		db,
	)

	user := createTestUser(t, db, "buyer@example.com")
	product := createTestProduct(t, db, "Sneaker", 20000, model.SizeProduct{Size: "40", Stock: 5})

	carts := []CartItem{
		{ProductID: product.ID, SizeProductID: uuid.New(), Qty: 1, Subtotal: 20000},
	}

	_, err := svc.Checkout(user.ID, carts)
	require.Error(t, err)

	var appErr *apperr.Error
	require.ErrorAs(t, err, &appErr)
	require.Equal(t, "BadRequest", appErr.Code)

	// nothing persisted, gateway never called
	var txCount int64
	db.Model(&model.Transaction{}).Count(&txCount)
	require.EqualValues(t, 0, txCount)
	require.Equal(t, 0, payment.calls)
}

func TestCheckoutRejectsNonPositiveQty(t *testing.T) {
	db := initTestDB(t)
	svc := NewCheckoutService(
		repository.NewTransactionRepo(db),
		repository.NewUserRepo(db),
		repository.NewSizeProductRepo(db),
		&stubPayment{},
		db,
	)

	user := createTestUser(t, db, "buyer@example.com")
	product := createTestProduct(t, db, "Sneaker", 20000, model.SizeProduct{Size: "40", Stock: 5})

	carts := []CartItem{
		{ProductID: product.ID, SizeProductID: product.SizeProducts[0].ID, Qty: 0, Subtotal: 0},
	}

	_, err := svc.Checkout(user.ID, carts)
	require.Error(t, err)
}

func TestRegenerateToken(t *testing.T) {
	db := initTestDB(t)
	payment := &stubPayment{}
	svc := NewCheckoutService(
		repository.NewTransactionRepo(db),
		repository.NewUserRepo(db),
		repository.NewSizeProductRepo(db),
		payment,
		db,
	)

	user := createTestUser(t, db, "buyer@example.com")
	product := createTestProduct(t, db, "Sneaker", 20000, model.SizeProduct{Size: "40", Stock: 5})

	result, err := svc.Checkout(user.ID, []CartItem{
		{ProductID: product.ID, SizeProductID: product.SizeProducts[0].ID, Qty: 2, Subtotal: 40000},
	})
	require.NoError(t, err)

	token, err := svc.RegenerateToken(user.ID, result.Transaction.ID)
	require.NoError(t, err)
	require.Equal(t, "snap-token-stub", token.Token)

	// regenerated token uses the stored total, not a recomputed one
	require.Equal(t, int64(40000), payment.lastGross)

	// no state mutation
	var stored model.Transaction
	require.NoError(t, db.First(&stored, "id = ?", result.Transaction.ID).Error)
	require.Equal(t, model.StatusUnpaid, stored.Status)
}

func TestRegenerateTokenUnknownTransaction(t *testing.T) {
	db := initTestDB(t)
	svc := NewCheckoutService(
		repository.NewTransactionRepo(db),
		repository.NewUserRepo(db),
		repository.NewSizeProductRepo(db),
		&stubPayment{},
		db,
	)

	user := createTestUser(t, db, "buyer@example.com")

	_, err := svc.RegenerateToken(user.ID, uuid.New())
	require.ErrorIs(t, err, apperr.ErrNotFound)
}
