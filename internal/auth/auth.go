// Package auth resolves the caller's identity from the identity provider's
// signed session token. Handlers never trust a user id from the request body.
package auth

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/go-jose/go-jose/v4"
	"github.com/go-jose/go-jose/v4/jwt"
	"github.com/sirupsen/logrus"
)

var (
	ErrMissingToken = errors.New("auth: missing bearer token")
	ErrInvalidToken = errors.New("auth: invalid token")
)

type userIDKey struct{}

// WithUserID returns a context carrying the authenticated user id.
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userIDKey{}, userID)
}

// UserID returns the authenticated user id, if any.
func UserID(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(userIDKey{}).(string)
	return userID, ok && userID != ""
}

// TokenVerifier turns a raw token into the user id it was issued for.
type TokenVerifier interface {
	Verify(token string) (string, error)
}

// JWTVerifier verifies HS256 session tokens.
type JWTVerifier struct {
	key    []byte
	issuer string
	leeway time.Duration
	now    func() time.Time
}

func NewJWTVerifier(signingKey []byte, issuer string) *JWTVerifier {
	return &JWTVerifier{
		key:    signingKey,
		issuer: issuer,
		leeway: jwt.DefaultLeeway,
		now:    time.Now,
	}
}

func (v *JWTVerifier) Verify(token string) (string, error) {
	if token == "" {
		return "", ErrMissingToken
	}

	parsed, err := jwt.ParseSigned(token, []jose.SignatureAlgorithm{jose.HS256})
	if err != nil {
		return "", errors.Join(ErrInvalidToken, err)
	}

	claims := jwt.Claims{}
	if err := parsed.Claims(v.key, &claims); err != nil {
		return "", errors.Join(ErrInvalidToken, err)
	}

	expected := jwt.Expected{Issuer: v.issuer, Time: v.now()}
	if err := claims.ValidateWithLeeway(expected, v.leeway); err != nil {
		return "", errors.Join(ErrInvalidToken, err)
	}
	if claims.Subject == "" {
		return "", ErrInvalidToken
	}

	return claims.Subject, nil
}

// BearerToken extracts the token from an Authorization header value.
func BearerToken(header string) string {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}

// Middleware rejects requests without a resolvable identity with 401 before the
// operation's input is parsed, so a bad payload never outranks missing auth.
func Middleware(api huma.API, verifier TokenVerifier, log *logrus.Logger) func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		userID, err := verifier.Verify(BearerToken(ctx.Header("Authorization")))
		if err != nil {
			log.WithError(err).Debug("auth.Middleware.rejected")
			_ = huma.WriteErr(api, ctx, http.StatusUnauthorized, "Unauthorized")
			return
		}

		next(huma.WithContext(ctx, WithUserID(ctx.Context(), userID)))
	}
}
