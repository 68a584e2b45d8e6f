// Package order contains the order aggregate: the order header, its line
// items, their ingredient customizations, the payment method, and the status
// lifecycle with its transition policies.
//
// Order is the aggregate root and the only consistency boundary of the
// system. All mutations go through aggregate methods so the invariants hold
// after every successful operation:
//
//   - the order total always equals the sum of its line-item subtotals
//   - terminal orders (delivered, cancelled) never gain or lose line items
//   - every status the order has been in is recorded in its history
package order
