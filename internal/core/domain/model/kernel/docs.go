// Package kernel provides shared value objects used across all domain models:
//
//   - UUID: immutable entity identifier wrapping github.com/google/uuid
//   - Phone: phone number in canonical normalized form, the key for all
//     credential and notification operations
//
// Value objects in this package are immutable, validate themselves on
// construction, and treat their zero values as invalid.
package kernel
