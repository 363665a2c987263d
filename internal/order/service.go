package order

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"lanchonete/internal/menu"
	"lanchonete/internal/pricing"
)

var (
	ErrNotFound          = errors.New("order not found")
	ErrValidation        = errors.New("invalid order")
	ErrInvalidTransition = errors.New("illegal status transition")
)

// Catalog resolves cart item ids to current menu items. Satisfied by
// menu.Service.
type Catalog interface {
	Get(ctx context.Context, id string) (*menu.Item, error)
}

type Service struct {
	repo    Repository
	catalog Catalog
	broker  *Broker
}

func NewService(repo Repository, catalog Catalog) *Service {
	return &Service{
		repo:    repo,
		catalog: catalog,
		broker:  NewBroker(),
	}
}

// Create checks out a cart. Item ids are resolved against the catalog and
// snapshotted into the order, so later menu edits never change a placed
// order. Totals are computed here, never trusted from the client.
func (s *Service) Create(ctx context.Context, itemIDs []string, info CustomerInfo) (*Order, error) {
	if len(itemIDs) == 0 {
		return nil, fmt.Errorf("%w: cart is empty", ErrValidation)
	}
	if strings.TrimSpace(info.Name) == "" {
		return nil, fmt.Errorf("%w: name is required", ErrValidation)
	}
	if strings.TrimSpace(info.Address) == "" {
		return nil, fmt.Errorf("%w: address is required", ErrValidation)
	}
	if strings.TrimSpace(info.Contact) == "" {
		return nil, fmt.Errorf("%w: contact is required", ErrValidation)
	}
	if !info.PaymentMethod.Valid() {
		return nil, fmt.Errorf("%w: unknown payment method %q", ErrValidation, info.PaymentMethod)
	}

	items := make([]menu.Item, 0, len(itemIDs))
	for _, id := range itemIDs {
		item, err := s.catalog.Get(ctx, id)
		if err != nil {
			if errors.Is(err, menu.ErrNotFound) {
				return nil, fmt.Errorf("%w: item %s is not available", ErrValidation, id)
			}
			return nil, err
		}
		if !item.Active {
			return nil, fmt.Errorf("%w: item %s is not available", ErrValidation, id)
		}
		items = append(items, *item)
	}

	quote, err := pricing.Compute(items, info.PaymentMethod)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	// change only means something for cash payments
	change := info.ChangeAmount
	if info.PaymentMethod != pricing.MethodCash {
		change = nil
	}

	o := &Order{
		Items:         items,
		CustomerName:  info.Name,
		Address:       info.Address,
		Contact:       info.Contact,
		PaymentMethod: info.PaymentMethod,
		ChangeAmount:  change,
		Status:        StatusPending,
		Subtotal:      quote.Subtotal,
		FinalTotal:    quote.FinalTotal,
	}

	if err := s.repo.Create(ctx, o); err != nil {
		return nil, err
	}

	s.broker.Publish(Event{Order: *o})
	return o, nil
}

// Quote prices a cart without placing an order.
func (s *Service) Quote(ctx context.Context, itemIDs []string, method pricing.Method) (pricing.Quote, error) {
	items := make([]menu.Item, 0, len(itemIDs))
	for _, id := range itemIDs {
		item, err := s.catalog.Get(ctx, id)
		if err != nil {
			if errors.Is(err, menu.ErrNotFound) {
				return pricing.Quote{}, fmt.Errorf("%w: item %s is not available", ErrValidation, id)
			}
			return pricing.Quote{}, err
		}
		items = append(items, *item)
	}

	quote, err := pricing.Compute(items, method)
	if err != nil {
		return pricing.Quote{}, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	return quote, nil
}

// SetStatus moves an order along its lifecycle. Only the edges
// pending→accepted, pending→rejected and accepted→completed are legal.
func (s *Service) SetStatus(ctx context.Context, id string, next Status) (*Order, error) {
	if !next.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidTransition, next)
	}

	o, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if !o.Status.CanTransitionTo(next) {
		return nil, fmt.Errorf("%w: %s → %s", ErrInvalidTransition, o.Status, next)
	}

	if err := s.repo.UpdateStatus(ctx, id, next); err != nil {
		return nil, err
	}

	o.Status = next
	s.broker.Publish(Event{Order: *o})
	return o, nil
}

func (s *Service) Get(ctx context.Context, id string) (*Order, error) {
	return s.repo.Get(ctx, id)
}

// ListForAdmin returns every order, newest first.
func (s *Service) ListForAdmin(ctx context.Context) ([]Order, error) {
	return s.repo.ListAll(ctx)
}

// WatchAll returns the current set of orders plus a live subscription for
// deltas. The subscription is released when ctx is cancelled.
func (s *Service) WatchAll(ctx context.Context) ([]Order, *Subscription, error) {
	sub := s.broker.Subscribe(ctx)

	orders, err := s.repo.ListAll(ctx)
	if err != nil {
		sub.Close()
		return nil, nil, err
	}

	return orders, sub, nil
}

// WatchOne returns the order's current state plus a live subscription; the
// caller filters events by id.
func (s *Service) WatchOne(ctx context.Context, id string) (*Order, *Subscription, error) {
	sub := s.broker.Subscribe(ctx)

	o, err := s.repo.Get(ctx, id)
	if err != nil {
		sub.Close()
		return nil, nil, err
	}

	return o, sub, nil
}
