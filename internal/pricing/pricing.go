package pricing

import (
	"fmt"

	"github.com/shopspring/decimal"

	"lanchonete/internal/menu"
)

// Method is the customer's payment method.
type Method string

const (
	MethodPix    Method = "pix"
	MethodCredit Method = "credit"
	MethodDebit  Method = "debit"
	MethodCash   Method = "cash"
)

var (
	// DeliveryFee is charged on every order.
	DeliveryFee = decimal.RequireFromString("5.00")

	// CreditSurchargeRate is added on top of the subtotal when paying by credit card.
	CreditSurchargeRate = decimal.RequireFromString("0.02")
)

// Valid reports whether m is one of the four accepted payment methods.
func (m Method) Valid() bool {
	switch m {
	case MethodPix, MethodCredit, MethodDebit, MethodCash:
		return true
	}
	return false
}

// Quote is the full price breakdown for a cart.
type Quote struct {
	Subtotal    decimal.Decimal `json:"subtotal"`
	DeliveryFee decimal.Decimal `json:"delivery_fee"`
	Surcharge   decimal.Decimal `json:"surcharge"`
	FinalTotal  decimal.Decimal `json:"final_total"`
}

// Compute prices a cart: sum of item prices, plus the delivery fee, plus a
// 2% surcharge when paying by credit card. Pure, no rounding beyond the
// 2-decimal scale the inputs already carry.
func Compute(items []menu.Item, method Method) (Quote, error) {
	if !method.Valid() {
		return Quote{}, fmt.Errorf("unknown payment method %q", method)
	}

	subtotal := decimal.Zero
	for _, item := range items {
		subtotal = subtotal.Add(item.Price)
	}

	surcharge := decimal.Zero
	if method == MethodCredit {
		surcharge = subtotal.Mul(CreditSurchargeRate)
	}

	return Quote{
		Subtotal:    subtotal,
		DeliveryFee: DeliveryFee,
		Surcharge:   surcharge,
		FinalTotal:  subtotal.Add(DeliveryFee).Add(surcharge),
	}, nil
}
