package auth

import (
	"time"

	"github.com/go-jose/go-jose/v4"
	"github.com/go-jose/go-jose/v4/jwt"
)

// Issuer mints tokens compatible with JWTVerifier. It backs the development
// token command and tests; production tokens come from the identity provider.
type Issuer struct {
	signer jose.Signer
	issuer string
}

func NewIssuer(signingKey []byte, issuer string) (*Issuer, error) {
	signer, err := jose.NewSigner(
		jose.SigningKey{Algorithm: jose.HS256, Key: signingKey},
		(&jose.SignerOptions{}).WithType("JWT"),
	)
	if err != nil {
		return nil, err
	}
	return &Issuer{signer: signer, issuer: issuer}, nil
}

// Issue returns a token for userID valid from now for ttl.
func (i *Issuer) Issue(userID string, now time.Time, ttl time.Duration) (string, error) {
	claims := jwt.Claims{
		Subject:   userID,
		Issuer:    i.issuer,
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
		Expiry:    jwt.NewNumericDate(now.Add(ttl)),
	}
	return jwt.Signed(i.signer).Claims(claims).Serialize()
}
