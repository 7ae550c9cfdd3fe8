package usecase_test

import (
	"context"
	"errors"
	"testing"

	"carparts-store/internal/data/entity"
	"carparts-store/internal/data/repository"
	"carparts-store/internal/dto/request"
	"carparts-store/internal/usecase"
	"carparts-store/pkg/payment"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newOrderService(orders *mockOrderRepo, products *mockProductRepo, payments *mockPaymentRepo, users *mockUserRepo, gateway *mockGateway) usecase.OrderService {
	return usecase.NewOrderService(orders, products, payments, users, gateway, nil, zap.NewNop())
}

func TestCreateOrderSnapshotsProduct(t *testing.T) {
	orders := new(mockOrderRepo)
	products := new(mockProductRepo)

	productID := uuid.New()
	products.On("FindByID", mock.Anything, productID).Return(&entity.Product{
		BaseNoDelete: entity.BaseNoDelete{ID: productID},
		Name:         "Brake pads",
		Price:        45.50,
		Quantity:     8,
	}, nil)

	orders.On("Create", mock.Anything, mock.MatchedBy(func(o *entity.Order) bool {
		return o.Email == "buyer@example.com" &&
			o.ProductName == "Brake pads" &&
			o.Quantity == 2 &&
			!o.Paid
	})).Return(nil)

	svc := newOrderService(orders, products, new(mockPaymentRepo), new(mockUserRepo), new(mockGateway))

	resp, err := svc.CreateOrder(context.Background(), "buyer@example.com", request.CreateOrderRequest{
		ProductID: productID.String(),
		Quantity:  2,
		Price:     91.00,
	})
	require.NoError(t, err)
	assert.Equal(t, "Brake pads", resp.ProductName)
	assert.False(t, resp.Paid)
	orders.AssertExpectations(t)
}

func TestCreateOrderUnknownProduct(t *testing.T) {
	orders := new(mockOrderRepo)
	products := new(mockProductRepo)

	productID := uuid.New()
	products.On("FindByID", mock.Anything, productID).Return(nil, nil)

	svc := newOrderService(orders, products, new(mockPaymentRepo), new(mockUserRepo), new(mockGateway))

	_, err := svc.CreateOrder(context.Background(), "buyer@example.com", request.CreateOrderRequest{
		ProductID: productID.String(),
		Quantity:  1,
		Price:     10,
	})
	assert.ErrorIs(t, err, usecase.ErrNotFound)
	orders.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateOrderBadProductID(t *testing.T) {
	svc := newOrderService(new(mockOrderRepo), new(mockProductRepo), new(mockPaymentRepo), new(mockUserRepo), new(mockGateway))

	_, err := svc.CreateOrder(context.Background(), "buyer@example.com", request.CreateOrderRequest{
		ProductID: "not-a-uuid",
		Quantity:  1,
		Price:     10,
	})
	assert.ErrorIs(t, err, usecase.ErrValidation)
}

func TestGetOrdersRejectsOtherOwners(t *testing.T) {
	svc := newOrderService(new(mockOrderRepo), new(mockProductRepo), new(mockPaymentRepo), new(mockUserRepo), new(mockGateway))

	_, err := svc.GetOrders(context.Background(), "buyer@example.com", "victim@example.com", request.PaginatedRequest{Page: 1, PerPage: 10})
	assert.ErrorIs(t, err, usecase.ErrForbidden)
}

func TestGetOrdersOwnHistory(t *testing.T) {
	orders := new(mockOrderRepo)
	orders.On("FindByEmail", mock.Anything, "buyer@example.com", 10, 0).Return([]*entity.Order{
		{Email: "buyer@example.com", ProductName: "Brake pads"},
	}, nil)
	orders.On("CountByEmail", mock.Anything, "buyer@example.com").Return(int64(1), nil)

	svc := newOrderService(orders, new(mockProductRepo), new(mockPaymentRepo), new(mockUserRepo), new(mockGateway))

	resp, err := svc.GetOrders(context.Background(), "buyer@example.com", "buyer@example.com", request.PaginatedRequest{Page: 1, PerPage: 10})
	require.NoError(t, err)
	assert.Len(t, resp.Items, 1)
	assert.Equal(t, 1, resp.TotalItems)
}

func TestSettleOrderAlreadyPaid(t *testing.T) {
	orders := new(mockOrderRepo)
	orderID := uuid.New()
	orders.On("FindByID", mock.Anything, orderID).Return(&entity.Order{
		BaseNoDelete: entity.BaseNoDelete{ID: orderID},
		Email:        "buyer@example.com",
		Paid:         true,
	}, nil)

	svc := newOrderService(orders, new(mockProductRepo), new(mockPaymentRepo), new(mockUserRepo), new(mockGateway))

	_, err := svc.SettleOrder(context.Background(), orderID.String(), request.SettleOrderRequest{TransactionID: "tx_1"})
	assert.ErrorIs(t, err, usecase.ErrAlreadySettled)
	orders.AssertNotCalled(t, "Settle", mock.Anything, mock.Anything, mock.Anything)
}

func TestSettleOrderLostRace(t *testing.T) {
	orders := new(mockOrderRepo)
	orderID := uuid.New()
	orders.On("FindByID", mock.Anything, orderID).Return(&entity.Order{
		BaseNoDelete: entity.BaseNoDelete{ID: orderID},
		Email:        "buyer@example.com",
		Price:        45.50,
	}, nil)
	// Another request settled the order between our read and the
	// compare-and-set.
	orders.On("Settle", mock.Anything, mock.Anything, mock.Anything).Return(repository.ErrAlreadySettled)

	payments := new(mockPaymentRepo)
	payments.On("FindByTransactionID", mock.Anything, "tx_1").Return(nil, nil)

	svc := newOrderService(orders, new(mockProductRepo), payments, new(mockUserRepo), new(mockGateway))

	_, err := svc.SettleOrder(context.Background(), orderID.String(), request.SettleOrderRequest{TransactionID: "tx_1"})
	assert.ErrorIs(t, err, usecase.ErrAlreadySettled)
}

func TestSettleOrderReplayedTransaction(t *testing.T) {
	orders := new(mockOrderRepo)
	orderID := uuid.New()
	orders.On("FindByID", mock.Anything, orderID).Return(&entity.Order{
		BaseNoDelete: entity.BaseNoDelete{ID: orderID},
		Email:        "buyer@example.com",
		Price:        45.50,
	}, nil)

	payments := new(mockPaymentRepo)
	payments.On("FindByTransactionID", mock.Anything, "tx_1").Return(&entity.Payment{
		TransactionID: "tx_1",
		Amount:        4550,
	}, nil)

	svc := newOrderService(orders, new(mockProductRepo), payments, new(mockUserRepo), new(mockGateway))

	_, err := svc.SettleOrder(context.Background(), orderID.String(), request.SettleOrderRequest{TransactionID: "tx_1"})
	assert.ErrorIs(t, err, usecase.ErrAlreadySettled)
	orders.AssertNotCalled(t, "Settle", mock.Anything, mock.Anything, mock.Anything)
}

func TestSettleOrderReceiptInMinorUnits(t *testing.T) {
	orders := new(mockOrderRepo)
	orderID := uuid.New()
	orders.On("FindByID", mock.Anything, orderID).Return(&entity.Order{
		BaseNoDelete: entity.BaseNoDelete{ID: orderID},
		Email:        "buyer@example.com",
		Price:        45.50,
		Quantity:     2,
	}, nil)
	orders.On("Settle", mock.Anything, mock.Anything, mock.MatchedBy(func(p *entity.Payment) bool {
		return p.Amount == 4550 &&
			p.TransactionID == "tx_1" &&
			p.OrderID == orderID &&
			p.Email == "buyer@example.com"
	})).Return(nil)

	payments := new(mockPaymentRepo)
	payments.On("FindByTransactionID", mock.Anything, "tx_1").Return(nil, nil)

	svc := newOrderService(orders, new(mockProductRepo), payments, new(mockUserRepo), new(mockGateway))

	resp, err := svc.SettleOrder(context.Background(), orderID.String(), request.SettleOrderRequest{TransactionID: "tx_1"})
	require.NoError(t, err)
	assert.True(t, resp.Paid)
	require.NotNil(t, resp.Payment)
	assert.Equal(t, int64(4550), resp.Payment.Amount)
	orders.AssertExpectations(t)
}

func TestSettleOrderUnknown(t *testing.T) {
	orders := new(mockOrderRepo)
	orderID := uuid.New()
	orders.On("FindByID", mock.Anything, orderID).Return(nil, nil)

	svc := newOrderService(orders, new(mockProductRepo), new(mockPaymentRepo), new(mockUserRepo), new(mockGateway))

	_, err := svc.SettleOrder(context.Background(), orderID.String(), request.SettleOrderRequest{TransactionID: "tx_1"})
	assert.ErrorIs(t, err, usecase.ErrNotFound)
}

func TestCreateIntentMapsGatewayErrors(t *testing.T) {
	cases := []struct {
		name    string
		gateway error
		want    error
	}{
		{"timeout", payment.ErrTimeout, usecase.ErrGatewayTimeout},
		{"rejected", payment.ErrGateway, usecase.ErrGateway},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			gateway := new(mockGateway)
			gateway.On("CreateIntent", mock.Anything, int64(2000)).Return("", tc.gateway)

			svc := newOrderService(new(mockOrderRepo), new(mockProductRepo), new(mockPaymentRepo), new(mockUserRepo), gateway)

			_, err := svc.CreateIntent(context.Background(), request.CreateIntentRequest{Price: 20.00})
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestCreateIntentReturnsClientSecret(t *testing.T) {
	gateway := new(mockGateway)
	gateway.On("CreateIntent", mock.Anything, int64(4550)).Return("pi_secret_123", nil)

	svc := newOrderService(new(mockOrderRepo), new(mockProductRepo), new(mockPaymentRepo), new(mockUserRepo), gateway)

	resp, err := svc.CreateIntent(context.Background(), request.CreateIntentRequest{Price: 45.50})
	require.NoError(t, err)
	assert.Equal(t, "pi_secret_123", resp.ClientSecret)
}

func TestDeleteOrderByStranger(t *testing.T) {
	orders := new(mockOrderRepo)
	users := new(mockUserRepo)
	orderID := uuid.New()

	orders.On("FindByID", mock.Anything, orderID).Return(&entity.Order{
		BaseNoDelete: entity.BaseNoDelete{ID: orderID},
		Email:        "owner@example.com",
	}, nil)
	users.On("FindByEmail", mock.Anything, "stranger@example.com").Return(&entity.User{
		Email: "stranger@example.com",
		Role:  entity.RoleCustomer,
	}, nil)

	svc := newOrderService(orders, new(mockProductRepo), new(mockPaymentRepo), users, new(mockGateway))

	err := svc.DeleteOrder(context.Background(), "stranger@example.com", orderID.String())
	assert.ErrorIs(t, err, usecase.ErrForbidden)
	orders.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestDeleteOrderByAdmin(t *testing.T) {
	orders := new(mockOrderRepo)
	users := new(mockUserRepo)
	orderID := uuid.New()

	orders.On("FindByID", mock.Anything, orderID).Return(&entity.Order{
		BaseNoDelete: entity.BaseNoDelete{ID: orderID},
		Email:        "owner@example.com",
	}, nil)
	users.On("FindByEmail", mock.Anything, "boss@example.com").Return(&entity.User{
		Email: "boss@example.com",
		Role:  entity.RoleAdmin,
	}, nil)
	orders.On("Delete", mock.Anything, orderID).Return(nil)

	svc := newOrderService(orders, new(mockProductRepo), new(mockPaymentRepo), users, new(mockGateway))

	err := svc.DeleteOrder(context.Background(), "boss@example.com", orderID.String())
	assert.NoError(t, err)
	orders.AssertExpectations(t)
}

func TestDeleteSettledOrderRefused(t *testing.T) {
	orders := new(mockOrderRepo)
	orderID := uuid.New()

	orders.On("FindByID", mock.Anything, orderID).Return(&entity.Order{
		BaseNoDelete: entity.BaseNoDelete{ID: orderID},
		Email:        "owner@example.com",
		Paid:         true,
	}, nil)

	svc := newOrderService(orders, new(mockProductRepo), new(mockPaymentRepo), new(mockUserRepo), new(mockGateway))

	err := svc.DeleteOrder(context.Background(), "owner@example.com", orderID.String())
	assert.ErrorIs(t, err, usecase.ErrAlreadySettled)
	orders.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestDeleteUnpaidOrderByOwner(t *testing.T) {
	orders := new(mockOrderRepo)
	orderID := uuid.New()

	orders.On("FindByID", mock.Anything, orderID).Return(&entity.Order{
		BaseNoDelete: entity.BaseNoDelete{ID: orderID},
		Email:        "owner@example.com",
	}, nil)
	orders.On("Delete", mock.Anything, orderID).Return(nil)

	svc := newOrderService(orders, new(mockProductRepo), new(mockPaymentRepo), new(mockUserRepo), new(mockGateway))

	err := svc.DeleteOrder(context.Background(), "owner@example.com", orderID.String())
	assert.NoError(t, err)
}

func TestGetOrderEmbedsReceipt(t *testing.T) {
	orders := new(mockOrderRepo)
	payments := new(mockPaymentRepo)
	orderID := uuid.New()
	txID := "tx_1"

	orders.On("FindByID", mock.Anything, orderID).Return(&entity.Order{
		BaseNoDelete:  entity.BaseNoDelete{ID: orderID},
		Email:         "buyer@example.com",
		Paid:          true,
		TransactionID: &txID,
	}, nil)
	payments.On("FindByOrderID", mock.Anything, orderID).Return(&entity.Payment{
		OrderID:       orderID,
		TransactionID: txID,
		Amount:        4550,
	}, nil)

	svc := newOrderService(orders, new(mockProductRepo), payments, new(mockUserRepo), new(mockGateway))

	resp, err := svc.GetOrder(context.Background(), orderID.String())
	require.NoError(t, err)
	require.NotNil(t, resp.Payment)
	assert.Equal(t, int64(4550), resp.Payment.Amount)
}

func TestGetOrderUnknown(t *testing.T) {
	orders := new(mockOrderRepo)
	orderID := uuid.New()
	orders.On("FindByID", mock.Anything, orderID).Return(nil, nil)

	svc := newOrderService(orders, new(mockProductRepo), new(mockPaymentRepo), new(mockUserRepo), new(mockGateway))

	_, err := svc.GetOrder(context.Background(), orderID.String())
	assert.ErrorIs(t, err, usecase.ErrNotFound)
}

func TestSettleOrderRepoFailure(t *testing.T) {
	orders := new(mockOrderRepo)
	orderID := uuid.New()
	orders.On("FindByID", mock.Anything, orderID).Return(&entity.Order{
		BaseNoDelete: entity.BaseNoDelete{ID: orderID},
		Email:        "buyer@example.com",
		Price:        10,
	}, nil)
	orders.On("Settle", mock.Anything, mock.Anything, mock.Anything).Return(errors.New("connection reset"))

	payments := new(mockPaymentRepo)
	payments.On("FindByTransactionID", mock.Anything, "tx_1").Return(nil, nil)

	svc := newOrderService(orders, new(mockProductRepo), payments, new(mockUserRepo), new(mockGateway))

	_, err := svc.SettleOrder(context.Background(), orderID.String(), request.SettleOrderRequest{TransactionID: "tx_1"})
	require.Error(t, err)
	assert.NotErrorIs(t, err, usecase.ErrAlreadySettled)
}
