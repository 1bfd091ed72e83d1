// Package credential implements the time-boxed, single-use numeric codes that
// gate sensitive operations: actor login, customer order approval, and
// delivery confirmation.
//
// A credential is scoped to a (phone, purpose) pair and claimable until its
// purpose-specific TTL elapses (5 minutes for delivery confirmation, 10 for
// login and approval). Issuing a new credential supersedes older unclaimed
// ones without deleting them; verification always targets the latest.
//
// Verification failures are uniform: ErrCredentialRejected never reveals
// whether the code was wrong, expired, already claimed, or never issued.
package credential
