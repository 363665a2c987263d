package order

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"lanchonete/internal/menu"
	"lanchonete/internal/pricing"
)

func newTestService(t *testing.T) (*Service, *menu.InMemoryRepository) {
	t.Helper()
	menuRepo := menu.NewInMemoryRepository()
	catalog := menu.NewService(menuRepo, nil)
	return NewService(NewInMemoryRepository(), catalog), menuRepo
}

func seedItem(t *testing.T, repo *menu.InMemoryRepository, name, price string) string {
	t.Helper()
	item := &menu.Item{
		Name:        name,
		Description: "test item",
		Price:       decimal.RequireFromString(price),
		Category:    menu.CategorySandwiches,
		Active:      true,
	}
	if err := repo.Create(context.Background(), item); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return item.ID
}

func customer(method pricing.Method) CustomerInfo {
	return CustomerInfo{
		Name:          "Maria",
		Address:       "Rua das Flores 123",
		Contact:       "+55 11 99999-0000",
		PaymentMethod: method,
	}
}

func TestCreatePixOrder(t *testing.T) {
	service, menuRepo := newTestService(t)
	id := seedItem(t, menuRepo, "X-Burger", "10.00")

	o, err := service.Create(context.Background(), []string{id}, customer(pricing.MethodPix))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if o.Status != StatusPending {
		t.Fatalf("new order must be pending, got %s", o.Status)
	}
	if !o.FinalTotal.Equal(decimal.RequireFromString("15.00")) {
		t.Fatalf("final total = %s, want 15.00", o.FinalTotal)
	}
	if o.ChangeAmount != nil {
		t.Fatal("change amount must be null for pix")
	}
	if o.CreatedAt.IsZero() {
		t.Fatal("expected creation timestamp to be assigned")
	}
}

func TestCreateCreditOrderSurcharge(t *testing.T) {
	service, menuRepo := newTestService(t)
	a := seedItem(t, menuRepo, "X-Burger", "10.00")
	b := seedItem(t, menuRepo, "X-Bacon", "20.00")

	o, err := service.Create(context.Background(), []string{a, b}, customer(pricing.MethodCredit))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !o.Subtotal.Equal(decimal.RequireFromString("30.00")) {
		t.Fatalf("subtotal = %s, want 30.00", o.Subtotal)
	}
	if !o.FinalTotal.Equal(decimal.RequireFromString("35.60")) {
		t.Fatalf("final total = %s, want 35.60", o.FinalTotal)
	}
}

func TestCreateCashOrderKeepsChange(t *testing.T) {
	service, menuRepo := newTestService(t)
	id := seedItem(t, menuRepo, "X-Burger", "8.00")

	change := decimal.RequireFromString("20")
	info := customer(pricing.MethodCash)
	info.ChangeAmount = &change

	o, err := service.Create(context.Background(), []string{id}, info)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if o.ChangeAmount == nil || !o.ChangeAmount.Equal(change) {
		t.Fatalf("change amount = %v, want 20", o.ChangeAmount)
	}
	if !o.FinalTotal.Equal(decimal.RequireFromString("13.00")) {
		t.Fatalf("final total = %s, want 13.00", o.FinalTotal)
	}
}

func TestCreateDropsChangeForNonCash(t *testing.T) {
	service, menuRepo := newTestService(t)
	id := seedItem(t, menuRepo, "X-Burger", "8.00")

	change := decimal.RequireFromString("20")

	for _, method := range []pricing.Method{pricing.MethodPix, pricing.MethodCredit, pricing.MethodDebit} {
		info := customer(method)
		info.ChangeAmount = &change

		o, err := service.Create(context.Background(), []string{id}, info)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if o.ChangeAmount != nil {
			t.Fatalf("change amount must be null for %s", method)
		}
	}
}

func TestCreateValidation(t *testing.T) {
	service, menuRepo := newTestService(t)
	id := seedItem(t, menuRepo, "X-Burger", "10.00")

	cases := map[string]struct {
		itemIDs []string
		mutate  func(*CustomerInfo)
	}{
		"empty cart":    {nil, func(i *CustomerInfo) {}},
		"blank name":    {[]string{id}, func(i *CustomerInfo) { i.Name = "  " }},
		"blank address": {[]string{id}, func(i *CustomerInfo) { i.Address = "" }},
		"blank contact": {[]string{id}, func(i *CustomerInfo) { i.Contact = "" }},
		"bad method":    {[]string{id}, func(i *CustomerInfo) { i.PaymentMethod = "check" }},
		"unknown item":  {[]string{"nope"}, func(i *CustomerInfo) {}},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			info := customer(pricing.MethodPix)
			tc.mutate(&info)

			_, err := service.Create(context.Background(), tc.itemIDs, info)
			if !errors.Is(err, ErrValidation) {
				t.Fatalf("expected validation error, got %v", err)
			}

			orders, _ := service.ListForAdmin(context.Background())
			if len(orders) != 0 {
				t.Fatalf("expected nothing persisted, found %d orders", len(orders))
			}
		})
	}
}

func TestCreateRejectsHiddenItem(t *testing.T) {
	service, menuRepo := newTestService(t)
	id := seedItem(t, menuRepo, "X-Burger", "10.00")

	if _, err := menuRepo.ToggleActive(context.Background(), id); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err := service.Create(context.Background(), []string{id}, customer(pricing.MethodPix))
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("expected validation error for hidden item, got %v", err)
	}
}

func TestOrderSnapshotSurvivesMenuEdits(t *testing.T) {
	service, menuRepo := newTestService(t)
	id := seedItem(t, menuRepo, "X-Burger", "10.00")

	o, err := service.Create(context.Background(), []string{id}, customer(pricing.MethodPix))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	item, _ := menuRepo.Get(context.Background(), id)
	item.Price = decimal.RequireFromString("99.00")
	item.Name = "X-Burger Premium"
	if err := menuRepo.Update(context.Background(), item); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := service.Get(context.Background(), o.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got.Items[0].Name != "X-Burger" || !got.Items[0].Price.Equal(decimal.RequireFromString("10.00")) {
		t.Fatal("order snapshot must not change when the catalog is edited")
	}
	if !got.FinalTotal.Equal(decimal.RequireFromString("15.00")) {
		t.Fatalf("final total = %s, want 15.00", got.FinalTotal)
	}
}

func TestSetStatusTransitions(t *testing.T) {
	all := []Status{StatusPending, StatusAccepted, StatusCompleted, StatusRejected}
	legal := map[Status][]Status{
		StatusPending:  {StatusAccepted, StatusRejected},
		StatusAccepted: {StatusCompleted},
	}

	for _, from := range all {
		for _, to := range all {
			service, menuRepo := newTestService(t)
			id := seedItem(t, menuRepo, "X-Burger", "10.00")

			o, err := service.Create(context.Background(), []string{id}, customer(pricing.MethodPix))
			assert.NoError(t, err)

			// walk the order into the starting status
			switch from {
			case StatusAccepted:
				_, err = service.SetStatus(context.Background(), o.ID, StatusAccepted)
			case StatusCompleted:
				_, err = service.SetStatus(context.Background(), o.ID, StatusAccepted)
				assert.NoError(t, err)
				_, err = service.SetStatus(context.Background(), o.ID, StatusCompleted)
			case StatusRejected:
				_, err = service.SetStatus(context.Background(), o.ID, StatusRejected)
			}
			assert.NoError(t, err)

			_, err = service.SetStatus(context.Background(), o.ID, to)

			allowed := false
			for _, next := range legal[from] {
				if next == to {
					allowed = true
				}
			}

			if allowed {
				assert.NoError(t, err, "%s → %s should be legal", from, to)
			} else {
				assert.ErrorIs(t, err, ErrInvalidTransition, "%s → %s should be rejected", from, to)

				got, getErr := service.Get(context.Background(), o.ID)
				assert.NoError(t, getErr)
				assert.Equal(t, from, got.Status, "status must be unchanged after a rejected transition")
			}
		}
	}
}

func TestSetStatusUnknownOrder(t *testing.T) {
	service, _ := newTestService(t)

	_, err := service.SetStatus(context.Background(), "missing", StatusAccepted)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestListForAdminNewestFirst(t *testing.T) {
	menuRepo := menu.NewInMemoryRepository()
	catalog := menu.NewService(menuRepo, nil)
	repo := NewInMemoryRepository()

	clock := time.Date(2024, 3, 15, 9, 0, 0, 0, time.UTC)
	repo.now = func() time.Time {
		clock = clock.Add(time.Minute)
		return clock
	}

	service := NewService(repo, catalog)
	id := seedItem(t, menuRepo, "X-Burger", "10.00")

	if _, err := service.Create(context.Background(), []string{id}, customer(pricing.MethodPix)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := service.Create(context.Background(), []string{id}, customer(pricing.MethodPix))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	orders, err := service.ListForAdmin(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(orders) != 2 {
		t.Fatalf("expected 2 orders, got %d", len(orders))
	}
	if orders[0].ID != second.ID {
		t.Fatal("expected orders newest first")
	}
}
