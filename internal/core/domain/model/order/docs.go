// Package order provides the Order aggregate for the drone delivery system.
//
// The package includes:
//   - Order: the aggregate root holding the owning account, origin and destination
//     addresses, ship and delivery dates, package code and status
//   - Status: a forward-only state machine Created -> Dispatched -> InTransit -> Delivered
//
// Key business rules:
//   - the ship date is never after the delivery date
//   - an order's account never changes after creation
//   - statuses only move forward and Delivered is terminal
//   - an order is active until it reaches Delivered
package order
