package tokens

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// AccessClaims is the verified shape of a bearer token. Handlers only ever see
// this struct, never a raw claim map.
type AccessClaims struct {
	AccountID uint   `json:"account_id"`
	Email     string `json:"email"`
	VendorID  uint   `json:"vendor_id"`
	jwt.RegisteredClaims
}

func NewJTI() string { return uuid.NewString() }

func SignAccessToken(accountID uint, email string, vendorID uint, secret []byte, exp time.Time) (string, error) {
	claims := AccessClaims{
		AccountID: accountID,
		Email:     email,
		VendorID:  vendorID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   fmt.Sprint(accountID),
			ID:        NewJTI(),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

func AccessClaimsFromToken(tokenStr string, secret []byte) (*AccessClaims, error) {
	var claims AccessClaims
	tkn, err := jwt.ParseWithClaims(tokenStr, &claims, func(t *jwt.Token) (any, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, errors.New("unexpected sign method")
		}
		return secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !tkn.Valid {
		return nil, errors.New("invalid token")
	}
	return &claims, nil
}
