package utils // package utils provides token issuing and password hashing helpers

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the identity payload carried inside an access token: the account
// id and email, plus the registered iat/exp claims managed by the library.
type Claims struct {
	jwt.RegisteredClaims
	UserID uint64 `json:"id"`
	Email  string `json:"email"`
}

// AccessToken is a signed JWT together with its expiry.  The Token field is
// the serialized three-segment string handed to the client; Exp records when
// it stops verifying.
type AccessToken struct {
	Token string
	Exp   time.Time
}

// Parse failures are collapsed to these three sentinels so callers can log
// the distinct reason while rejecting all of them the same way.  There is no
// fourth outcome: a token either verifies fully or yields one of these.
var (
	ErrTokenMalformed = errors.New("token malformed")
	ErrTokenSignature = errors.New("token signature invalid")
	ErrTokenExpired   = errors.New("token expired")
)

// NewAccessToken builds and signs an HS256 JWT for the given account.  The
// token embeds the account id and email and expires ttlMin minutes after
// issuance (one hour with the default configuration).  Issued tokens are
// not recorded anywhere: there is no revocation list, so a token stays
// usable until it expires or the signing secret changes.  Known security
// limitation of the stateless bearer design.
func NewAccessToken(secret string, userID uint64, email string, ttlMin int) (AccessToken, error) {
	now := time.Now().UTC()
	exp := now.Add(time.Duration(ttlMin) * time.Minute)
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
		UserID: userID,
		Email:  email,
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString([]byte(secret))
	if err != nil {
		return AccessToken{}, err
	}
	return AccessToken{Token: signed, Exp: exp}, nil
}

// ParseAccessToken verifies raw against the signing secret and returns the
// embedded claims.  Any structural problem, signature mismatch or expiry
// maps to one of the sentinel errors above; claims are never returned
// partially on failure.
func ParseAccessToken(secret, raw string) (Claims, error) {
	var claims Claims
	tok, err := jwt.ParseWithClaims(raw, &claims, func(t *jwt.Token) (interface{}, error) {
		// Only HMAC tokens are accepted; an attacker must not be able to
		// downgrade verification by choosing another alg in the header.
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrTokenSignature
		}
		return []byte(secret), nil
	})
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return Claims{}, ErrTokenExpired
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return Claims{}, ErrTokenSignature
		default:
			return Claims{}, ErrTokenMalformed
		}
	}
	if !tok.Valid {
		return Claims{}, ErrTokenSignature
	}
	return claims, nil
}
