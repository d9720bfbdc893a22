package auth

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"sync"
	"time"
)

// OtpResult is the outcome of an OTP verification attempt.
type OtpResult int

const (
	// OtpOK means the code matched and was consumed.
	OtpOK OtpResult = iota
	// OtpNoPending means no code is pending for the user.
	OtpNoPending
	// OtpExpired means the pending code had passed its expiry; the stale
	// record is dropped as part of this outcome.
	OtpExpired
	// OtpMismatch means the supplied code was wrong. The pending code is
	// kept, so the user may retry until expiry.
	OtpMismatch
)

type otpRecord struct {
	code      string
	expiresAt time.Time
}

// OtpLedger holds pending one-time payment codes, one per user, in process
// memory. Codes are short-lived (minutes), so losing them on restart only
// forces the user to request a new one. State is guarded by a mutex since
// issue and verify run on concurrent requests; no lock is ever held across
// a call into another component.
//
// The ledger is constructed at service start and injected where needed;
// there is no package-level instance.
type OtpLedger struct {
	mu      sync.Mutex
	pending map[uint64]otpRecord
	ttl     time.Duration
	now     func() time.Time // overridable in tests
}

// NewOtpLedger returns a ledger whose codes expire after ttl.
func NewOtpLedger(ttl time.Duration) *OtpLedger {
	return &OtpLedger{
		pending: make(map[uint64]otpRecord),
		ttl:     ttl,
		now:     time.Now,
	}
}

// Issue generates a random 6-digit code for the user and returns it for
// delivery. Any previously pending code for the same user is overwritten.
func (l *OtpLedger) Issue(userID uint64) (string, error) {
	code, err := generateOTP()
	if err != nil {
		return "", err
	}
	l.mu.Lock()
	l.pending[userID] = otpRecord{code: code, expiresAt: l.now().Add(l.ttl)}
	l.mu.Unlock()
	return code, nil
}

// Verify checks the supplied code against the user's pending record. A
// match consumes the record, as does an expired record; a mismatch leaves
// it in place for another attempt.
func (l *OtpLedger) Verify(userID uint64, code string) OtpResult {
	l.mu.Lock()
	defer l.mu.Unlock()

	rec, ok := l.pending[userID]
	if !ok {
		return OtpNoPending
	}
	if l.now().After(rec.expiresAt) {
		delete(l.pending, userID)
		return OtpExpired
	}
	if rec.code != code {
		return OtpMismatch
	}
	delete(l.pending, userID)
	return OtpOK
}

// generateOTP returns a uniformly random 6-digit decimal code in the range
// 100000–999999 using the system CSPRNG.
func generateOTP() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()+100000), nil
}
