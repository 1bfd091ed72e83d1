// Package order provides the supply order aggregate and its lifecycle state
// machine.
//
// The package includes:
//   - Order: the aggregate root owning the header, line items, delivery
//     assignment, return notes, and status timestamps
//   - Item: an order line tracking requested, dispatched, and returned
//     quantities
//   - Status: a closed enum with the transition table
//     Pending -> Approved -> Preparing -> Ready -> Dispatched -> Delivered ->
//     Returned, plus Cancelled from any pre-dispatch state
//
// Key business rules:
//   - Transitions are rejected unless the current status matches the exact
//     "from" state; there is no skipping of states
//   - Dispatch requires staff and vehicle assignment and an all-or-nothing
//     stock deduction performed by the application layer
//   - Delivery requires a recipient name; the credential gate is enforced by
//     the application layer before the transition commits
//   - Timestamps are stamped by the transition entering the state and are
//     therefore monotonically non-decreasing along the lifecycle
package order
