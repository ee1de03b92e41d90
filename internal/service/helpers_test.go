package service

import (
	"testing"

	"go-shop-api/internal/model"

	"github.com/glebarez/sqlite"
	"github.com/midtrans/midtrans-go/snap"
	"gorm.io/gorm"
)

func initTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect to in-memory db: %v", err)
	}

	if err := db.AutoMigrate(
		&model.User{},
		&model.Product{},
		&model.SizeProduct{},
		&model.Transaction{},
		&model.TransactionProduct{},
	); err != nil {
		t.Fatalf("failed to migrate tables: %v", err)
	}

	return db
}

// stubPayment records the last token request and returns a canned response
type stubPayment struct {
	lastOrderID string
	lastGross   int64
	lastUser    *model.User
	calls       int
	err         error
}

func (s *stubPayment) CreatePaymentToken(orderID string, grossAmount int64, customer *model.User) (*snap.Response, error) {
	s.calls++
	s.lastOrderID = orderID
	s.lastGross = grossAmount
	s.lastUser = customer
	if s.err != nil {
		return nil, s.err
	}
	return &snap.Response{Token: "snap-token-stub"}, nil
}

func createTestUser(t *testing.T, db *gorm.DB, email string) *model.User {
	t.Helper()

	user := &model.User{
		FirstName:   "Test",
		LastName:    "User",
		Email:       email,
		PhoneNumber: "0811111111",
		Address:     "Jl. Test No. 1",
		Role:        model.RoleCustomer,
	}
	if err := user.SetPassword("password"); err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create user: %v", err)
	}
	return user
}

func createTestProduct(t *testing.T, db *gorm.DB, name string, price int64, sizes ...model.SizeProduct) *model.Product {
	t.Helper()

	product := &model.Product{
		Name:         name,
		Price:        price,
		SizeProducts: sizes,
	}
	if err := db.Create(product).Error; err != nil {
		t.Fatalf("failed to create product: %v", err)
	}
	return product
}
