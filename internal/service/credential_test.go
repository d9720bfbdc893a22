package service

import (
	"context"
	"database/sql"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/foodify/foodify-backend/internal/auth"
	"github.com/foodify/foodify-backend/internal/config"
	"github.com/foodify/foodify-backend/internal/model"
	"github.com/foodify/foodify-backend/internal/repository"
)

// fakeStore is an in-memory UserStore mirroring the repository contract:
// sql.ErrNoRows for missing rows, duplicate-key sentinels on insert.
type fakeStore struct {
	nextID uint64
	users  map[uint64]model.User
}

func newFakeStore() *fakeStore {
	return &fakeStore{nextID: 1, users: map[uint64]model.User{}}
}

func (f *fakeStore) Create(_ context.Context, u *model.User) error {
	for _, existing := range f.users {
		if existing.Email == u.Email {
			return repository.ErrEmailExists
		}
		if existing.Username == u.Username {
			return repository.ErrUsernameExists
		}
	}
	u.ID = f.nextID
	u.CreatedAt = time.Now().UTC()
	u.UpdatedAt = u.CreatedAt
	f.nextID++
	f.users[u.ID] = *u
	return nil
}

func (f *fakeStore) GetByEmail(_ context.Context, email string) (model.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return model.User{}, sql.ErrNoRows
}

func (f *fakeStore) GetByUsername(_ context.Context, username string) (model.User, error) {
	for _, u := range f.users {
		if u.Username == username {
			return u, nil
		}
	}
	return model.User{}, sql.ErrNoRows
}

func (f *fakeStore) GetByID(_ context.Context, id uint64) (model.User, error) {
	u, ok := f.users[id]
	if !ok {
		return model.User{}, sql.ErrNoRows
	}
	return u, nil
}

func (f *fakeStore) Update(_ context.Context, u *model.User) error {
	if _, ok := f.users[u.ID]; !ok {
		return sql.ErrNoRows
	}
	u.UpdatedAt = time.Now().UTC()
	f.users[u.ID] = *u
	return nil
}

func (f *fakeStore) Delete(_ context.Context, id uint64) error {
	if _, ok := f.users[id]; !ok {
		return sql.ErrNoRows
	}
	delete(f.users, id)
	return nil
}

func (f *fakeStore) List(_ context.Context, page, size int, search string) ([]model.User, int, error) {
	matched := []model.User{}
	for id := uint64(1); id < f.nextID; id++ {
		u, ok := f.users[id]
		if !ok {
			continue
		}
		if search != "" &&
			!strings.Contains(u.FullName, search) &&
			!strings.Contains(u.Username, search) &&
			!strings.Contains(u.Email, search) {
			continue
		}
		matched = append(matched, u)
	}
	total := len(matched)
	start := (page - 1) * size
	if start > total {
		start = total
	}
	end := start + size
	if end > total {
		end = total
	}
	return matched[start:end], total, nil
}

// fakeMailer records outgoing mail instead of sending it.
type fakeMailer struct {
	to      []string
	subject []string
	body    []string
}

func (m *fakeMailer) Send(to, subject, htmlBody string) error {
	m.to = append(m.to, to)
	m.subject = append(m.subject, subject)
	m.body = append(m.body, htmlBody)
	return nil
}

func (m *fakeMailer) last() string { return m.body[len(m.body)-1] }

func testConfig() config.Config {
	return config.Config{
		JWTSecret:      "test-secret",
		SessionTTLDays: 7,
		ResetTTLMin:    60,
		OtpTTLMin:      5,
		BcryptCost:     4, // bcrypt.MinCost keeps tests fast
		ClientURL:      "http://localhost:3000",
	}
}

func newTestService() (*CredentialService, *fakeStore, *fakeMailer) {
	store := newFakeStore()
	mailer := &fakeMailer{}
	svc := NewCredentialService(testConfig(), store, mailer, auth.NewOtpLedger(5*time.Minute))
	return svc, store, mailer
}

func register(t *testing.T, svc *CredentialService, username, email string) Profile {
	t.Helper()
	p, err := svc.Register(context.Background(), RegisterInput{
		FullName: "Test User",
		Username: username,
		Email:    email,
		Phone:    "9800000000",
		Password: "secret123",
	})
	require.NoError(t, err)
	return p
}

func TestRegister_Success(t *testing.T) {
	svc, store, _ := newTestService()

	p := register(t, svc, "jane", "jane@example.com")
	assert.Equal(t, "jane", p.Username)
	assert.Equal(t, "jane@example.com", p.Email)
	assert.Equal(t, model.RoleUser, p.Role)

	// The stored hash verifies the password; the profile never carries it.
	u, err := store.GetByID(context.Background(), p.ID)
	require.NoError(t, err)
	assert.True(t, auth.VerifyPassword(u.PasswordHash, "secret123"))
	assert.NotEqual(t, "secret123", u.PasswordHash)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	svc, _, _ := newTestService()
	register(t, svc, "jane", "jane@example.com")

	_, err := svc.Register(context.Background(), RegisterInput{
		FullName: "Other", Username: "other", Email: "jane@example.com",
		Phone: "9811111111", Password: "secret123",
	})
	assert.ErrorIs(t, err, repository.ErrEmailExists)
}

func TestRegister_DuplicateUsername(t *testing.T) {
	svc, _, _ := newTestService()
	register(t, svc, "jane", "jane@example.com")

	_, err := svc.Register(context.Background(), RegisterInput{
		FullName: "Other", Username: "jane", Email: "other@example.com",
		Phone: "9811111111", Password: "secret123",
	})
	assert.ErrorIs(t, err, repository.ErrUsernameExists)
}

func TestRegister_ShortPassword(t *testing.T) {
	svc, _, _ := newTestService()
	_, err := svc.Register(context.Background(), RegisterInput{
		FullName: "Test", Username: "jane", Email: "jane@example.com",
		Phone: "9800000000", Password: "12345",
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestLogin_Success(t *testing.T) {
	svc, _, _ := newTestService()
	p := register(t, svc, "jane", "jane@example.com")

	profile, tok, err := svc.Login(context.Background(), "jane@example.com", "secret123")
	require.NoError(t, err)
	assert.Equal(t, p.ID, profile.ID)

	claims, err := auth.VerifySessionToken("test-secret", tok.Token)
	require.NoError(t, err)
	assert.Equal(t, p.ID, claims.UserID)
	assert.Equal(t, "jane@example.com", claims.Email)
	assert.Equal(t, model.RoleUser, claims.Role)
	assert.WithinDuration(t, time.Now().Add(7*24*time.Hour), tok.Exp, 5*time.Second)
}

func TestLogin_UniformFailure(t *testing.T) {
	svc, _, _ := newTestService()
	register(t, svc, "jane", "jane@example.com")

	// Wrong password and unknown email produce the identical error so a
	// caller cannot tell registered addresses apart.
	_, _, errWrongPass := svc.Login(context.Background(), "jane@example.com", "nope")
	_, _, errNoUser := svc.Login(context.Background(), "ghost@example.com", "nope")
	assert.ErrorIs(t, errWrongPass, ErrInvalidCredentials)
	assert.ErrorIs(t, errNoUser, ErrInvalidCredentials)
	assert.Equal(t, errWrongPass, errNoUser)
}

var resetLinkRe = regexp.MustCompile(`reset-password\?token=([A-Za-z0-9._-]+)`)

func TestPasswordReset_Flow(t *testing.T) {
	svc, store, mailer := newTestService()
	p := register(t, svc, "jane", "jane@example.com")

	require.NoError(t, svc.RequestPasswordReset(context.Background(), "jane@example.com"))
	require.Len(t, mailer.to, 1)
	assert.Equal(t, "jane@example.com", mailer.to[0])

	m := resetLinkRe.FindStringSubmatch(mailer.last())
	require.Len(t, m, 2, "reset mail must embed the token link")
	token := m[1]

	updated, err := svc.ResetPassword(context.Background(), token, "NewPass1!")
	require.NoError(t, err)
	assert.Equal(t, p.ID, updated.ID)

	u, err := store.GetByID(context.Background(), p.ID)
	require.NoError(t, err)
	assert.False(t, auth.VerifyPassword(u.PasswordHash, "secret123"))
	assert.True(t, auth.VerifyPassword(u.PasswordHash, "NewPass1!"))
}

func TestPasswordReset_UnknownEmail(t *testing.T) {
	svc, _, mailer := newTestService()
	err := svc.RequestPasswordReset(context.Background(), "nouser@example.com")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Empty(t, mailer.to)
}

func TestResetPassword_ForgedToken(t *testing.T) {
	svc, store, _ := newTestService()
	p := register(t, svc, "jane", "jane@example.com")
	before, _ := store.GetByID(context.Background(), p.ID)

	forged, err := auth.NewResetToken("wrong-secret", p.ID, 60)
	require.NoError(t, err)

	_, err = svc.ResetPassword(context.Background(), forged, "NewPass1!")
	assert.ErrorIs(t, err, ErrInvalidResetToken)

	after, _ := store.GetByID(context.Background(), p.ID)
	assert.Equal(t, before.PasswordHash, after.PasswordHash)
}

func TestResetPassword_ExpiredToken(t *testing.T) {
	svc, _, _ := newTestService()
	p := register(t, svc, "jane", "jane@example.com")

	expired, err := auth.NewResetToken("test-secret", p.ID, -1)
	require.NoError(t, err)

	_, err = svc.ResetPassword(context.Background(), expired, "NewPass1!")
	assert.ErrorIs(t, err, ErrInvalidResetToken)
}

func TestResetPassword_TokenReusableUntilExpiry(t *testing.T) {
	// A still-valid token works more than once; the flow has no
	// single-use marker beyond expiry.
	svc, _, _ := newTestService()
	p := register(t, svc, "jane", "jane@example.com")

	token, err := auth.NewResetToken("test-secret", p.ID, 60)
	require.NoError(t, err)

	_, err = svc.ResetPassword(context.Background(), token, "FirstPass1")
	require.NoError(t, err)
	_, err = svc.ResetPassword(context.Background(), token, "SecondPass2")
	assert.NoError(t, err)
}

func TestUpdateProfile_UsernameCollision(t *testing.T) {
	svc, _, _ := newTestService()
	register(t, svc, "jane", "jane@example.com")
	p2 := register(t, svc, "john", "john@example.com")

	_, err := svc.UpdateProfile(context.Background(), p2.ID, ProfilePatch{Username: "jane"})
	assert.ErrorIs(t, err, repository.ErrUsernameExists)
}

var otpRe = regexp.MustCompile(`(\d{6})</h1>`)

func TestPaymentOTP_Flow(t *testing.T) {
	svc, _, mailer := newTestService()
	p := register(t, svc, "jane", "jane@example.com")

	require.NoError(t, svc.RequestPaymentOTP(context.Background(), p.ID, 45000, "Momo House"))
	require.Len(t, mailer.to, 1)
	assert.Contains(t, mailer.last(), "Momo House")

	m := otpRe.FindStringSubmatch(mailer.last())
	require.Len(t, m, 2, "otp mail must carry the code")
	code := m[1]

	assert.Equal(t, auth.OtpOK, svc.ConfirmPaymentOTP(p.ID, code))
	// Single use: the same code is gone afterwards.
	assert.Equal(t, auth.OtpNoPending, svc.ConfirmPaymentOTP(p.ID, code))
}

func TestPaymentOTP_WrongCodeKeepsPending(t *testing.T) {
	svc, _, mailer := newTestService()
	p := register(t, svc, "jane", "jane@example.com")

	require.NoError(t, svc.RequestPaymentOTP(context.Background(), p.ID, 45000, "Momo House"))
	code := otpRe.FindStringSubmatch(mailer.last())[1]

	wrong := "000000"
	if wrong == code {
		wrong = "000001"
	}
	assert.Equal(t, auth.OtpMismatch, svc.ConfirmPaymentOTP(p.ID, wrong))
	assert.Equal(t, auth.OtpOK, svc.ConfirmPaymentOTP(p.ID, code))
}

func TestPaymentOTP_UnknownUser(t *testing.T) {
	svc, _, _ := newTestService()
	err := svc.RequestPaymentOTP(context.Background(), 999, 45000, "Momo House")
	assert.ErrorIs(t, err, ErrNotFound)
}
