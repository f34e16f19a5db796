package commands

import (
	"context"
)

// UpdateOrderStatusCommandHandler applies the forward-only status rule and persists
// the new status. The store itself writes statuses unconditionally.
//
// Example:
//
//	cmd, _ := NewUpdateOrderStatusCommand(orderID, order.Delivered)
//	if err := handler.Handle(ctx, cmd); errors.Is(err, order.ErrStatusTransitionIsForbidden) {
//	    // the order already moved past the requested status
//	}
type UpdateOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewUpdateOrderStatusCommandHandler creates a handler that applies forward-only status changes.
func NewUpdateOrderStatusCommandHandler(uowFactory OrderUoWFactory) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the order, validates the transition and writes the status in one transaction.
func (h *UpdateOrderStatusCommandHandler) Handle(ctx context.Context, cmd UpdateOrderStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OrderRepository()

	o, err := repo.FindByOrderID(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = o.ChangeStatus(cmd.Status()); err != nil {
		return err
	}

	if err = repo.UpdateStatus(ctx, o.ID(), o.Status()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
