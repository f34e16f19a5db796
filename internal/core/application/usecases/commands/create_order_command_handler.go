package commands

import (
	"context"
	"fmt"
	"time"

	"dronedelivery/internal/core/domain/model/order"
	"dronedelivery/internal/core/ports"
)

// CreateOrderCommandHandler places a new order.
//
// The account is resolved and the estimator consulted before any transaction is opened,
// so an unserviceable destination never touches storage.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory, estimator, nil)
//	result, err := handler.Handle(ctx, cmd)
//	switch result.Outcome {
//	case OrderCreated:
//	    fmt.Printf("order %d: %s\n", result.OrderID, result.Message())
//	case OrderRejectedOutOfRange:
//	    fmt.Println(result.Message())
//	default:
//	    return err
//	}
type CreateOrderCommandHandler struct {
	uowFactory PlaceOrderUoWFactory
	estimator  ports.DeliveryEstimator
	now        func() time.Time
}

// NewCreateOrderCommandHandler creates the handler. A nil now defaults to UTC wall time.
func NewCreateOrderCommandHandler(
	uowFactory PlaceOrderUoWFactory,
	estimator ports.DeliveryEstimator,
	now func() time.Time,
) CreateOrderCommandHandler {
	if now == nil {
		now = func() time.Time { return time.Now().UTC() }
	}

	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		estimator:  estimator,
		now:        now,
	}
}

// Handle resolves the account, checks serviceability, estimates the delivery date and
// stores the order. Collaborator errors are returned unchanged alongside OrderFailed.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (CreateOrderResult, error) {
	failed := CreateOrderResult{Outcome: OrderFailed}

	if err := cmd.Validate(); err != nil {
		return failed, err
	}

	uow := h.uowFactory.Create()

	acc, err := uow.AccountRepository().Get(ctx, cmd.AccountID())
	if err != nil {
		return failed, err
	}

	serviceable, err := h.estimator.IsServiceable(ctx, cmd.Destination())
	if err != nil {
		return failed, err
	}
	if !serviceable {
		return CreateOrderResult{Outcome: OrderRejectedOutOfRange}, nil
	}

	shipDate := h.now()
	deliveryDate, err := h.estimator.EstimateDelivery(ctx, shipDate, acc.HomeAddress(), cmd.Destination())
	if err != nil {
		return failed, err
	}

	draft, err := order.NewOrder(acc.ID(), acc.HomeAddress(), cmd.Destination(), shipDate, deliveryDate)
	if err != nil {
		return failed, fmt.Errorf("estimated delivery is unusable: %w", err)
	}

	if err = uow.Begin(ctx); err != nil {
		return failed, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderID, err := uow.OrderRepository().Insert(ctx, draft)
	if err != nil {
		return failed, err
	}

	if err = uow.Commit(ctx); err != nil {
		return failed, err
	}

	return CreateOrderResult{Outcome: OrderCreated, OrderID: orderID}, nil
}
