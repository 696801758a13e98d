package utils // package utils provides helper functions for token creation and verification

import (
    "errors"
    "time" // time utilities for generating expirations

    "github.com/golang-jwt/jwt/v5" // JWT library for creating signed tokens
)

// AuthToken represents a signed JWT along with its expiry.  The Token field
// contains the serialized JWT string.  Exp stores the expiration timestamp
// as a time.Time.  Clients send the token in the Authorization header when
// calling protected endpoints.
type AuthToken struct {
    Token string    // the serialized JWT string
    Exp   time.Time // the UTC expiration time
}

// TokenClaims are the values extracted from a verified token.
type TokenClaims struct {
    UserID uint64
    Email  string
}

// ErrInvalidToken is returned by ParseToken for any token that does not
// verify: bad signature, wrong algorithm, expired or malformed claims.
var ErrInvalidToken = errors.New("invalid token")

// NewAuthToken builds and signs an HS256 JWT for a user.  It takes the
// signing secret, the user ID, the user's email, and a TTL in hours.  The
// JWT includes standard claims: subject (sub), email, expiration (exp) and
// issued at (iat).
func NewAuthToken(secret string, userID uint64, email string, ttlHours int) (AuthToken, error) {
    exp := time.Now().UTC().Add(time.Duration(ttlHours) * time.Hour)
    claims := jwt.MapClaims{
        "sub":   userID,
        "email": email,
        "exp":   exp.Unix(),
        "iat":   time.Now().UTC().Unix(),
    }
    t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
    signed, err := t.SignedString([]byte(secret))
    if err != nil {
        return AuthToken{}, err
    }
    return AuthToken{Token: signed, Exp: exp}, nil
}

// ParseToken verifies a serialized token against the secret and returns the
// embedded claims.  Tokens signed with a non-HMAC method are rejected even
// when their signature would otherwise verify.
func ParseToken(secret, raw string) (TokenClaims, error) {
    tok, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
        if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
            return nil, ErrInvalidToken
        }
        return []byte(secret), nil
    })
    if err != nil || !tok.Valid {
        return TokenClaims{}, ErrInvalidToken
    }
    claims, ok := tok.Claims.(jwt.MapClaims)
    if !ok {
        return TokenClaims{}, ErrInvalidToken
    }
    out := TokenClaims{}
    // Numeric JSON claims decode as float64.
    if sub, ok := claims["sub"].(float64); ok {
        out.UserID = uint64(sub)
    }
    if email, ok := claims["email"].(string); ok {
        out.Email = email
    }
    if out.UserID == 0 || out.Email == "" {
        return TokenClaims{}, ErrInvalidToken
    }
    return out, nil
}
