package auth // package auth implements the credential primitives: hashing, tokens, OTP

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken is returned for any token that fails verification:
// malformed, wrong signature or expired. Callers do not get to know which,
// so a probing client learns nothing from the failure mode.
var ErrInvalidToken = errors.New("invalid or expired token")

// SessionToken represents a signed JWT session token along with its expiry.
// Session tokens are stateless bearer credentials: validity is determined
// solely by signature and expiry, there is no server-side session store.
type SessionToken struct {
	Token string    // the serialized JWT string
	Exp   time.Time // the UTC expiration time
}

// SessionClaims is the verified content of a session token.
type SessionClaims struct {
	UserID uint64
	Email  string
	Role   string
}

// NewSessionToken builds and signs an HS256 JWT for a user. The JWT carries
// subject (sub), email, role, expiration (exp) and issued at (iat). The TTL
// is expressed in days; the product default is 7.
func NewSessionToken(secret string, userID uint64, email, role string, ttlDays int) (SessionToken, error) {
	now := time.Now().UTC()
	exp := now.Add(time.Duration(ttlDays) * 24 * time.Hour)
	claims := jwt.MapClaims{
		"sub":   userID,
		"email": email,
		"role":  role,
		"exp":   exp.Unix(),
		"iat":   now.Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString([]byte(secret))
	if err != nil {
		return SessionToken{}, err
	}
	return SessionToken{Token: signed, Exp: exp}, nil
}

// VerifySessionToken checks signature and expiry and returns the embedded
// identity. Every failure collapses to ErrInvalidToken.
func VerifySessionToken(secret, raw string) (SessionClaims, error) {
	claims, err := parseHS256(secret, raw)
	if err != nil {
		return SessionClaims{}, ErrInvalidToken
	}
	uid, ok := numericClaim(claims["sub"])
	if !ok {
		return SessionClaims{}, ErrInvalidToken
	}
	email, _ := claims["email"].(string)
	role, _ := claims["role"].(string)
	return SessionClaims{UserID: uid, Email: email, Role: role}, nil
}

// NewResetToken signs a short-lived token bound only to the user id, used
// in password-reset links. It reuses the session signing primitive with a
// smaller payload and a TTL in minutes (product default 60).
//
// Note: a reset token stays valid for its whole window even after a
// successful password change; there is no one-time-use marker.
func NewResetToken(secret string, userID uint64, ttlMin int) (string, error) {
	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"sub": userID,
		"exp": now.Add(time.Duration(ttlMin) * time.Minute).Unix(),
		"iat": now.Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(secret))
}

// VerifyResetToken checks signature and expiry of a reset token and returns
// the bound user id. Every failure collapses to ErrInvalidToken.
func VerifyResetToken(secret, raw string) (uint64, error) {
	claims, err := parseHS256(secret, raw)
	if err != nil {
		return 0, ErrInvalidToken
	}
	uid, ok := numericClaim(claims["sub"])
	if !ok {
		return 0, ErrInvalidToken
	}
	return uid, nil
}

// parseHS256 parses and validates a JWT, rejecting any signing method other
// than HMAC so an attacker cannot downgrade to "none" or an asymmetric alg.
func parseHS256(secret, raw string) (jwt.MapClaims, error) {
	tok, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(secret), nil
	})
	if err != nil || !tok.Valid {
		return nil, ErrInvalidToken
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// numericClaim converts a "sub" claim to uint64. JWT numbers decode as
// float64; some issuers encode numeric strings instead.
func numericClaim(v any) (uint64, bool) {
	switch n := v.(type) {
	case float64:
		return uint64(n), true
	case string:
		parsed, err := strconv.ParseUint(n, 10, 64)
		if err != nil {
			return 0, false
		}
		return parsed, true
	}
	return 0, false
}
