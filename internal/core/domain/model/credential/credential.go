package credential

import (
	"crypto/rand"
	"crypto/subtle"
	"errors"
	"fmt"
	"math/big"
	"time"

	"eventsupply/internal/core/domain/model/kernel"
	"eventsupply/internal/pkg/errs"
)

const codeLength = 6

var (
	// ErrCredentialIsNotConstructed is returned when a Credential was not created
	// through NewCredential or RestoreCredential.
	ErrCredentialIsNotConstructed = errors.New("Credential must be created via NewCredential or RestoreCredential")

	// ErrCredentialRejected is the uniform verification failure. Wrong code,
	// expired code, already-claimed code, and no code at all are deliberately
	// indistinguishable so that callers cannot enumerate issued credentials.
	ErrCredentialRejected = errors.New("credential rejected")
)

// Credential is a short-lived, single-use numeric code bound to a phone and a
// purpose. It is created on issuance, mutated exactly once (claimed=false to
// claimed=true) by a successful verification, and becomes inert after its
// expiry. Older unclaimed credentials for the same (phone, purpose) are
// superseded rather than deleted: verification always targets the latest one.
type Credential struct {
	id        kernel.UUID
	phone     kernel.Phone
	code      string
	purpose   Purpose
	issuedAt  time.Time
	expiresAt time.Time
	claimed   bool

	isConstructed bool
}

// GenerateCode produces a uniformly random 6-digit numeric code.
// Leading zeros are allowed, so the code space is exactly 10^6.
func GenerateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1_000_000))
	if err != nil {
		return "", fmt.Errorf("failed to generate credential code: %w", err)
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}

// NewCredential issues an unclaimed credential for (phone, purpose) with the
// purpose's TTL counted from now.
func NewCredential(id kernel.UUID, phone kernel.Phone, purpose Purpose, code string, now time.Time) (*Credential, error) {
	if err := errors.Join(
		id.Validate(),
		phone.Validate(),
		purpose.Validate(),
		validateCode(code),
	); err != nil {
		return nil, err
	}

	return &Credential{
		id:            id,
		phone:         phone,
		code:          code,
		purpose:       purpose,
		issuedAt:      now,
		expiresAt:     now.Add(purpose.TTL()),
		claimed:       false,
		isConstructed: true,
	}, nil
}

// RestoreCredential reconstructs a credential from persistence.
func RestoreCredential(
	id kernel.UUID,
	phone kernel.Phone,
	purpose Purpose,
	code string,
	issuedAt, expiresAt time.Time,
	claimed bool,
) (*Credential, error) {
	if err := errors.Join(
		id.Validate(),
		phone.Validate(),
		purpose.Validate(),
		validateCode(code),
	); err != nil {
		return nil, err
	}

	return &Credential{
		id:            id,
		phone:         phone,
		code:          code,
		purpose:       purpose,
		issuedAt:      issuedAt,
		expiresAt:     expiresAt,
		claimed:       claimed,
		isConstructed: true,
	}, nil
}

func validateCode(code string) error {
	if len(code) != codeLength {
		return errs.NewValueIsInvalidErrorWithCause("code", fmt.Errorf("length %d, expected %d", len(code), codeLength))
	}
	for _, r := range code {
		if r < '0' || r > '9' {
			return errs.NewValueIsInvalidErrorWithCause("code", errors.New("contains a non-digit character"))
		}
	}
	return nil
}

// Validate ensures the Credential was constructed through a factory function.
func (c *Credential) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCredentialIsNotConstructed
	}
	return nil
}

// ID returns the credential's unique identifier.
func (c *Credential) ID() kernel.UUID {
	return c.id
}

// Phone returns the phone the credential is bound to.
func (c *Credential) Phone() kernel.Phone {
	return c.phone
}

// Code returns the numeric code. Exposed for dispatch through the
// notification gateway; never included in logs.
func (c *Credential) Code() string {
	return c.code
}

// Purpose returns the gate the credential authorizes.
func (c *Credential) Purpose() Purpose {
	return c.purpose
}

// IssuedAt returns when the credential was issued.
func (c *Credential) IssuedAt() time.Time {
	return c.issuedAt
}

// ExpiresAt returns when the credential stops being claimable.
func (c *Credential) ExpiresAt() time.Time {
	return c.expiresAt
}

// Claimed reports whether the credential has been used.
func (c *Credential) Claimed() bool {
	return c.claimed
}

// IsExpired reports whether the credential is past its expiry at the given instant.
// Expiry is inclusive: a credential is inert from expiresAt onward.
func (c *Credential) IsExpired(now time.Time) bool {
	return !now.Before(c.expiresAt)
}

// Matches reports whether the supplied code would claim this credential at the
// given instant: the credential must be unclaimed, unexpired, and the code must
// match exactly. The comparison is constant-time.
func (c *Credential) Matches(code string, now time.Time) bool {
	if c.claimed || c.IsExpired(now) {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(c.code), []byte(code)) == 1
}

// Claim flips the credential to claimed. Returns ErrCredentialRejected if it
// is already claimed or expired. Persistent stores must pair this with a
// conditional update so two concurrent claims cannot both succeed; this
// in-memory check covers single-writer paths and tests.
func (c *Credential) Claim(now time.Time) error {
	if c.claimed || c.IsExpired(now) {
		return ErrCredentialRejected
	}
	c.claimed = true
	return nil
}
