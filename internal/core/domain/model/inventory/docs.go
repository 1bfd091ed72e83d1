// Package inventory provides the domain types for tracked stock: per-product
// availability lines, demand lines, and the shortfall reporting used when a
// dispatch cannot be satisfied. Actual reservation and deduction run through
// the inventory ledger port under a single transactional boundary.
package inventory
