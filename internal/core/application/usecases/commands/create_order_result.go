package commands

// CreateOrderOutcome is the closed set of user-visible results of placing an order.
type CreateOrderOutcome int

const (
	// OrderFailed means the request could not be completed; the accompanying error says why.
	OrderFailed CreateOrderOutcome = iota
	// OrderCreated means the order was stored.
	OrderCreated
	// OrderRejectedOutOfRange means the estimator cannot serve the destination. Nothing was stored.
	OrderRejectedOutOfRange
)

func (o CreateOrderOutcome) String() string {
	switch o {
	case OrderCreated:
		return "Order Successfully Added"
	case OrderRejectedOutOfRange:
		return "Invalid Order Request: Out of Range"
	default:
		return "Order Request Failed"
	}
}

// CreateOrderResult carries the outcome and, for OrderCreated, the new order id.
type CreateOrderResult struct {
	Outcome CreateOrderOutcome
	OrderID int64
}

// Message returns the outcome text shown to the requester.
func (r CreateOrderResult) Message() string {
	return r.Outcome.String()
}
