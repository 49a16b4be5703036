package auth

import (
	"context"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/efriedrich/movie-api/internal/model"
)

// Claims is the JWT payload for an issued bearer token.  It carries exactly
// the user's id and username on top of the registered claims; the password
// hash never enters a token.
type Claims struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// IssueToken signs an HS256 bearer token for an already-authenticated user.
// The subject is the username and the token expires ttl after issuance.
func IssueToken(secret string, user *model.User, ttl time.Duration) (string, error) {
	now := time.Now().UTC()
	claims := Claims{
		ID:       user.ID.Hex(),
		Username: user.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.Username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

// VerifyHeader validates a raw Authorization header value and resolves it to
// the live user it belongs to.  The expected shape is "Bearer <token>".
// Signature and expiry are checked first; the id claim is then re-resolved
// through the store rather than trusting the embedded username, so renames
// and deletions after issuance take effect immediately.  Every token-level
// failure collapses to ErrUnauthenticated; only store failures pass through
// distinct.
func VerifyHeader(ctx context.Context, secret string, users UserStore, header string) (*model.User, error) {
	raw, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || raw == "" {
		return nil, ErrUnauthenticated
	}

	claims := &Claims{}
	tok, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrUnauthenticated
		}
		return []byte(secret), nil
	})
	if err != nil || !tok.Valid || claims.ID == "" {
		return nil, ErrUnauthenticated
	}

	u, err := users.FindByID(ctx, claims.ID)
	if err != nil {
		if notFound(err) {
			return nil, ErrUnauthenticated
		}
		return nil, err
	}
	return u, nil
}
