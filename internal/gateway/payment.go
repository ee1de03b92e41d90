package gateway

import (
	"fmt"
	"time"

	"go-shop-api/internal/model"

	"github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"
)

// PaymentGateway issues client-usable payment session tokens. The concrete
// client is built once at process start and injected.
type PaymentGateway interface {
	CreatePaymentToken(orderID string, grossAmount int64, customer *model.User) (*snap.Response, error)
}

type midtransGateway struct {
	client snap.Client
}

func NewMidtransGateway(serverKey string, production bool) PaymentGateway {
	env := midtrans.Sandbox
	if production {
		env = midtrans.Production
	}

	g := &midtransGateway{}
	g.client.New(serverKey, env)
	return g
}

func (g *midtransGateway) CreatePaymentToken(orderID string, grossAmount int64, customer *model.User) (*snap.Response, error) {
	req := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  orderID,
			GrossAmt: grossAmount,
		},
		CreditCard: &snap.CreditCardDetails{
			Secure: true,
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: customer.FirstName,
			LName: customer.LastName,
			Email: customer.Email,
			Phone: customer.PhoneNumber,
		},
	}

	resp, midErr := g.client.CreateTransaction(req)
	if midErr != nil {
		return nil, midErr
	}
	return resp, nil
}

// NewOrderID derives a gateway order identifier from the current timestamp.
// Not globally unique under concurrent checkouts within the same millisecond.
func NewOrderID() string {
	return fmt.Sprintf("ORDERID-%d", time.Now().UnixMilli())
}
