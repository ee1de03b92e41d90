package service

import (
	"testing"
	"time"

	"go-shop-api/internal/apperr"
	"go-shop-api/internal/model"
	"go-shop-api/internal/repository"
	"go-shop-api/internal/ws"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newOrderService(db *gorm.DB) OrderService {
	return NewOrderService(
		repository.NewTransactionRepo(db),
		repository.NewSizeProductRepo(db),
		db,
		ws.NewHub(),
	)
}

// createTestOrder persists an Unpaid transaction with one line item per
// (sizeProductID, qty) pair
func createTestOrder(t *testing.T, db *gorm.DB, user *model.User, product *model.Product, lines map[uuid.UUID]int) *model.Transaction {
	t.Helper()

	var total int64
	for _, qty := range lines {
		total += product.Price * int64(qty)
	}

	transaction := &model.Transaction{
		Date:       time.Now(),
		Status:     model.StatusUnpaid,
		TotalPrice: total,
		UserID:     user.ID,
	}
	require.NoError(t, db.Create(transaction).Error)

	for sizeID, qty := range lines {
		item := &model.TransactionProduct{
			SizeProductID: sizeID,
			Qty:           qty,
			ProductID:     product.ID,
			TransactionID: transaction.ID,
		}
		require.NoError(t, db.Create(item).Error)
	}
	return transaction
}

func stockOf(t *testing.T, db *gorm.DB, sizeID uuid.UUID) int {
	t.Helper()
	var sp model.SizeProduct
	require.NoError(t, db.First(&sp, "id = ?", sizeID).Error)
	return sp.Stock
}

func TestMarkPaidUnknownTransaction(t *testing.T) {
	db := initTestDB(t)
	svc := newOrderService(db)

	_, err := svc.MarkPaid(uuid.New())
	require.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestMarkPaidFlipsStatusAndDecrementsStock(t *testing.T) {
	db := initTestDB(t)
	svc := newOrderService(db)

	user := createTestUser(t, db, "buyer@example.com")
	product := createTestProduct(t, db, "Sneaker", 20000,
		model.SizeProduct{Size: "40", Stock: 5},
		model.SizeProduct{Size: "41", Stock: 3},
	)
	size40 := product.SizeProducts[0].ID
	size41 := product.SizeProducts[1].ID

	transaction := createTestOrder(t, db, user, product, map[uuid.UUID]int{
		size40: 2,
		size41: 1,
	})

	items, err := svc.MarkPaid(transaction.ID)
	require.NoError(t, err)
	require.Len(t, items, 2)

	var stored model.Transaction
	require.NoError(t, db.First(&stored, "id = ?", transaction.ID).Error)
	require.Equal(t, model.StatusPaid, stored.Status)

	require.Equal(t, 3, stockOf(t, db, size40))
	require.Equal(t, 2, stockOf(t, db, size41))
}

func TestMarkPaidTwiceDecrementsTwice(t *testing.T) {
	db := initTestDB(t)
	svc := newOrderService(db)

	user := createTestUser(t, db, "buyer@example.com")
	product := createTestProduct(t, db, "Sneaker", 20000,
		model.SizeProduct{Size: "40", Stock: 5},
	)
	size40 := product.SizeProducts[0].ID

	transaction := createTestOrder(t, db, user, product, map[uuid.UUID]int{size40: 2})

	_, err := svc.MarkPaid(transaction.ID)
	require.NoError(t, err)
	require.Equal(t, 3, stockOf(t, db, size40))

	// no idempotency guard: a second confirmation decrements again
	_, err = svc.MarkPaid(transaction.ID)
	require.NoError(t, err)
	require.Equal(t, 1, stockOf(t, db, size40))
}

func TestMarkPaidRollsBackOnDecrementFailure(t *testing.T) {
	db := initTestDB(t)
	svc := newOrderService(db)

	user := createTestUser(t, db, "buyer@example.com")
	product := createTestProduct(t, db, "Sneaker", 20000,
		model.SizeProduct{Size: "40", Stock: 5},
	)
	size40 := product.SizeProducts[0].ID

	// second line item references a size row that does not exist
	transaction := createTestOrder(t, db, user, product, map[uuid.UUID]int{
		size40:     2,
		uuid.New(): 1,
	})

	_, err := svc.MarkPaid(transaction.ID)
	require.Error(t, err)

	// the entire confirmation rolled back: status untouched, stock untouched
	var stored model.Transaction
	require.NoError(t, db.First(&stored, "id = ?", transaction.ID).Error)
	require.Equal(t, model.StatusUnpaid, stored.Status)
	require.Equal(t, 5, stockOf(t, db, size40))
}

func TestHistoriesOnlyPaidForUser(t *testing.T) {
	db := initTestDB(t)
	svc := newOrderService(db)

	buyer := createTestUser(t, db, "buyer@example.com")
	other := createTestUser(t, db, "other@example.com")
	product := createTestProduct(t, db, "Sneaker", 20000,
		model.SizeProduct{Size: "40", Stock: 50},
	)
	size40 := product.SizeProducts[0].ID

	paid := createTestOrder(t, db, buyer, product, map[uuid.UUID]int{size40: 1})
	_, err := svc.MarkPaid(paid.ID)
	require.NoError(t, err)

	// unpaid order of the same buyer, paid order of someone else
	createTestOrder(t, db, buyer, product, map[uuid.UUID]int{size40: 1})
	otherPaid := createTestOrder(t, db, other, product, map[uuid.UUID]int{size40: 2})
	_, err = svc.MarkPaid(otherPaid.ID)
	require.NoError(t, err)

	histories, err := svc.GetHistories(buyer.ID)
	require.NoError(t, err)
	require.Len(t, histories, 1)
	require.Equal(t, paid.ID, histories[0].ID)
	require.Equal(t, model.StatusPaid, histories[0].Status)

	// line items and their products come along
	require.Len(t, histories[0].TransactionProducts, 1)
	require.NotNil(t, histories[0].TransactionProducts[0].Product)
	require.Equal(t, product.Name, histories[0].TransactionProducts[0].Product.Name)
}
