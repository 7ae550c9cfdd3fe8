package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"carparts-store/internal/data/entity"
	"carparts-store/internal/data/repository"
	"carparts-store/internal/dto/request"
	"carparts-store/internal/dto/response"
	"carparts-store/pkg/cache"
	"carparts-store/pkg/payment"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type OrderService interface {
	// CreateIntent asks the card processor to authorize the given amount
	// and returns the client secret the browser needs to confirm it.
	CreateIntent(ctx context.Context, req request.CreateIntentRequest) (*response.IntentResponse, error)

	// CreateOrder records an unpaid order owned by email. The product name
	// and price are snapshotted at this point.
	CreateOrder(ctx context.Context, email string, req request.CreateOrderRequest) (*response.OrderResponse, error)

	// GetOrders lists the orders owned by queryEmail. The caller may only
	// list their own orders.
	GetOrders(ctx context.Context, callerEmail, queryEmail string, p request.PaginatedRequest) (*response.PaginatedResponse[response.OrderResponse], error)

	GetOrder(ctx context.Context, id string) (*response.OrderResponse, error)

	// SettleOrder flips the order to paid exactly once, writes the receipt
	// and decrements stock. Settling an already-paid order fails with
	// ErrAlreadySettled and changes nothing.
	SettleOrder(ctx context.Context, id string, req request.SettleOrderRequest) (*response.OrderResponse, error)

	// DeleteOrder removes an unpaid order. Only the owner or an admin may
	// delete; settled orders are immutable.
	DeleteOrder(ctx context.Context, callerEmail, id string) error
}

type orderService struct {
	orders   repository.OrderRepository
	products repository.ProductRepository
	payments repository.PaymentRepository
	users    repository.UserRepository
	gateway  payment.Gateway
	store    *cache.Cache
	log      *zap.Logger
}

func NewOrderService(
	orders repository.OrderRepository,
	products repository.ProductRepository,
	payments repository.PaymentRepository,
	users repository.UserRepository,
	gateway payment.Gateway,
	store *cache.Cache,
	log *zap.Logger,
) OrderService {
	return &orderService{
		orders:   orders,
		products: products,
		payments: payments,
		users:    users,
		gateway:  gateway,
		store:    store,
		log:      log.With(zap.String("service", "order")),
	}
}

func (s *orderService) CreateIntent(ctx context.Context, req request.CreateIntentRequest) (*response.IntentResponse, error) {
	amount := payment.MinorUnits(req.Price)

	secret, err := s.gateway.CreateIntent(ctx, amount)
	if errors.Is(err, payment.ErrTimeout) {
		return nil, fmt.Errorf("create intent for %d: %w", amount, ErrGatewayTimeout)
	}
	if errors.Is(err, payment.ErrGateway) {
		return nil, fmt.Errorf("create intent for %d: %w", amount, ErrGateway)
	}
	if err != nil {
		return nil, fmt.Errorf("create intent for %d: %w", amount, err)
	}

	return &response.IntentResponse{ClientSecret: secret}, nil
}

func (s *orderService) CreateOrder(ctx context.Context, email string, req request.CreateOrderRequest) (*response.OrderResponse, error) {
	productID, err := uuid.Parse(req.ProductID)
	if err != nil {
		return nil, fmt.Errorf("product id %q: %w", req.ProductID, ErrValidation)
	}

	product, err := s.products.FindByID(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}
	if product == nil {
		return nil, fmt.Errorf("product %s: %w", req.ProductID, ErrNotFound)
	}

	now := time.Now()
	order := &entity.Order{
		BaseNoDelete: entity.BaseNoDelete{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Email:       email,
		ProductID:   product.ID,
		ProductName: product.Name,
		Quantity:    req.Quantity,
		Price:       req.Price,
		Paid:        false,
	}

	if err := s.orders.Create(ctx, order); err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}

	s.log.Info("Order created",
		zap.String("order_id", order.ID.String()),
		zap.String("email", email),
		zap.String("product", product.Name))

	resp := response.ToOrderResponse(order)
	return &resp, nil
}

func (s *orderService) GetOrders(ctx context.Context, callerEmail, queryEmail string, p request.PaginatedRequest) (*response.PaginatedResponse[response.OrderResponse], error) {
	if queryEmail == "" {
		return nil, fmt.Errorf("missing email filter: %w", ErrValidation)
	}
	if callerEmail != queryEmail {
		return nil, fmt.Errorf("caller %s may not list orders of %s: %w", callerEmail, queryEmail, ErrForbidden)
	}

	orders, err := s.orders.FindByEmail(ctx, queryEmail, p.Limit(), p.Offset())
	if err != nil {
		return nil, fmt.Errorf("get orders of %s: %w", queryEmail, err)
	}

	total, err := s.orders.CountByEmail(ctx, queryEmail)
	if err != nil {
		return nil, fmt.Errorf("get orders of %s: %w", queryEmail, err)
	}

	resp := response.NewPaginatedResponse(response.ToOrderResponses(orders), p.Page, p.Limit(), int(total))
	return &resp, nil
}

func (s *orderService) GetOrder(ctx context.Context, id string) (*response.OrderResponse, error) {
	orderID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("order id %q: %w", id, ErrValidation)
	}

	order, err := s.orders.FindByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("get order %s: %w", id, err)
	}
	if order == nil {
		return nil, fmt.Errorf("order %s: %w", id, ErrNotFound)
	}

	var receipt *entity.Payment
	if order.Paid {
		receipt, err = s.payments.FindByOrderID(ctx, order.ID)
		if err != nil {
			return nil, fmt.Errorf("get order %s: %w", id, err)
		}
	}

	resp := response.ToOrderResponseWithPayment(order, receipt)
	return &resp, nil
}

func (s *orderService) SettleOrder(ctx context.Context, id string, req request.SettleOrderRequest) (*response.OrderResponse, error) {
	orderID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("order id %q: %w", id, ErrValidation)
	}

	order, err := s.orders.FindByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("settle order %s: %w", id, err)
	}
	if order == nil {
		return nil, fmt.Errorf("order %s: %w", id, ErrNotFound)
	}
	if order.Paid {
		return nil, fmt.Errorf("order %s: %w", id, ErrAlreadySettled)
	}

	// A transaction id that already has a receipt is a replayed confirmation.
	existing, err := s.payments.FindByTransactionID(ctx, req.TransactionID)
	if err != nil {
		return nil, fmt.Errorf("settle order %s: %w", id, err)
	}
	if existing != nil {
		return nil, fmt.Errorf("transaction %s: %w", req.TransactionID, ErrAlreadySettled)
	}

	receipt := &entity.Payment{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		OrderID:       order.ID,
		TransactionID: req.TransactionID,
		Amount:        payment.MinorUnits(order.Price),
		PaymentMethod: req.PaymentMethod,
		Email:         order.Email,
	}

	err = s.orders.Settle(ctx, order, receipt)
	if errors.Is(err, repository.ErrAlreadySettled) {
		return nil, fmt.Errorf("order %s: %w", id, ErrAlreadySettled)
	}
	if err != nil {
		return nil, fmt.Errorf("settle order %s: %w", id, err)
	}

	// Stock changed, so any cached catalog pages are stale.
	s.store.Invalidate(ctx, "products:*")

	order.Paid = true
	order.TransactionID = &receipt.TransactionID

	resp := response.ToOrderResponseWithPayment(order, receipt)
	return &resp, nil
}

func (s *orderService) DeleteOrder(ctx context.Context, callerEmail, id string) error {
	orderID, err := uuid.Parse(id)
	if err != nil {
		return fmt.Errorf("order id %q: %w", id, ErrValidation)
	}

	order, err := s.orders.FindByID(ctx, orderID)
	if err != nil {
		return fmt.Errorf("delete order %s: %w", id, err)
	}
	if order == nil {
		return fmt.Errorf("order %s: %w", id, ErrNotFound)
	}

	if order.Email != callerEmail {
		caller, err := s.users.FindByEmail(ctx, callerEmail)
		if err != nil {
			return fmt.Errorf("delete order %s: %w", id, err)
		}
		if !caller.IsAdmin() {
			return fmt.Errorf("caller %s may not delete order %s: %w", callerEmail, id, ErrForbidden)
		}
	}

	if order.Paid {
		return fmt.Errorf("order %s is settled: %w", id, ErrAlreadySettled)
	}

	err = s.orders.Delete(ctx, orderID)
	if errors.Is(err, repository.ErrNotFound) {
		return fmt.Errorf("order %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("delete order %s: %w", id, err)
	}

	s.log.Info("Order deleted",
		zap.String("order_id", id),
		zap.String("by", callerEmail))
	return nil
}
