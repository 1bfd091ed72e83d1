// Package evidence holds the audit artifacts captured around gated
// transitions: confirmation records proving a claimed credential authorized a
// specific transition, and append-only photo references documenting loading,
// delivery, and return.
package evidence
