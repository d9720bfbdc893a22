package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOtpLedger_IssueProducesSixDigits(t *testing.T) {
	l := NewOtpLedger(5 * time.Minute)
	for i := 0; i < 50; i++ {
		code, err := l.Issue(1)
		require.NoError(t, err)
		require.Len(t, code, 6)
		require.GreaterOrEqual(t, code, "100000")
		require.LessOrEqual(t, code, "999999")
	}
}

func TestOtpLedger_VerifyConsumesOnMatch(t *testing.T) {
	l := NewOtpLedger(5 * time.Minute)
	code, err := l.Issue(1)
	require.NoError(t, err)

	assert.Equal(t, OtpOK, l.Verify(1, code))
	// Consumed: the same code no longer exists.
	assert.Equal(t, OtpNoPending, l.Verify(1, code))
}

func TestOtpLedger_MismatchDoesNotConsume(t *testing.T) {
	l := NewOtpLedger(5 * time.Minute)
	code, err := l.Issue(1)
	require.NoError(t, err)

	wrong := "000000"
	if wrong == code {
		wrong = "000001"
	}
	assert.Equal(t, OtpMismatch, l.Verify(1, wrong))
	// Retry with the right code still succeeds.
	assert.Equal(t, OtpOK, l.Verify(1, code))
}

func TestOtpLedger_ExpiredConsumes(t *testing.T) {
	l := NewOtpLedger(5 * time.Minute)
	code, err := l.Issue(1)
	require.NoError(t, err)

	// Advance the ledger's clock past the expiry.
	l.now = func() time.Time { return time.Now().Add(6 * time.Minute) }

	assert.Equal(t, OtpExpired, l.Verify(1, code))
	// The stale record was dropped by the failed check.
	assert.Equal(t, OtpNoPending, l.Verify(1, code))
}

func TestOtpLedger_ReissueOverwrites(t *testing.T) {
	l := NewOtpLedger(5 * time.Minute)
	first, err := l.Issue(1)
	require.NoError(t, err)
	second, err := l.Issue(1)
	require.NoError(t, err)

	if first != second {
		assert.Equal(t, OtpMismatch, l.Verify(1, first))
	}
	assert.Equal(t, OtpOK, l.Verify(1, second))
}

func TestOtpLedger_NoPendingForUnknownUser(t *testing.T) {
	l := NewOtpLedger(5 * time.Minute)
	assert.Equal(t, OtpNoPending, l.Verify(99, "123456"))
}

func TestOtpLedger_SubjectsAreIndependent(t *testing.T) {
	l := NewOtpLedger(5 * time.Minute)
	c1, err := l.Issue(1)
	require.NoError(t, err)
	c2, err := l.Issue(2)
	require.NoError(t, err)

	assert.Equal(t, OtpOK, l.Verify(1, c1))
	// Consuming user 1's code leaves user 2's pending.
	assert.Equal(t, OtpOK, l.Verify(2, c2))
}
