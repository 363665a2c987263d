package order

import (
	"time"

	"github.com/shopspring/decimal"

	"lanchonete/internal/menu"
	"lanchonete/internal/pricing"
)

// Status is the order's position in its lifecycle.
type Status string

const (
	StatusPending   Status = "pending"
	StatusAccepted  Status = "accepted"
	StatusCompleted Status = "completed"
	StatusRejected  Status = "rejected"
)

// Valid reports whether s is one of the four order statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusAccepted, StatusCompleted, StatusRejected:
		return true
	}
	return false
}

// CanTransitionTo reports whether the status change is a legal edge.
// Legal edges: pending→accepted, pending→rejected, accepted→completed.
func (s Status) CanTransitionTo(next Status) bool {
	switch s {
	case StatusPending:
		return next == StatusAccepted || next == StatusRejected
	case StatusAccepted:
		return next == StatusCompleted
	case StatusCompleted, StatusRejected:
		return false
	}
	return false
}

// Label is the customer-facing display string for a status.
func (s Status) Label() string {
	switch s {
	case StatusPending:
		return "Pendente"
	case StatusAccepted:
		return "Em preparo"
	case StatusCompleted:
		return "Concluído"
	case StatusRejected:
		return "Rejeitado"
	}
	return string(s)
}

// Order is a customer request for a set of menu-item snapshots, immutable
// after creation except for its status.
type Order struct {
	ID            string           `json:"id"`
	Items         []menu.Item      `json:"items"`
	CustomerName  string           `json:"customer_name"`
	Address       string           `json:"address"`
	Contact       string           `json:"contact"`
	PaymentMethod pricing.Method   `json:"payment_method"`
	ChangeAmount  *decimal.Decimal `json:"change_amount,omitempty"`
	Status        Status           `json:"status"`
	Subtotal      decimal.Decimal  `json:"subtotal"`
	FinalTotal    decimal.Decimal  `json:"final_total"`
	CreatedAt     time.Time        `json:"created_at"`
}

// CustomerInfo is what the checkout form collects alongside the cart.
type CustomerInfo struct {
	Name          string
	Address       string
	Contact       string
	PaymentMethod pricing.Method
	ChangeAmount  *decimal.Decimal
}
