// Package authsvc xử lý session token của storefront.
package authsvc

import (
	"fmt"

	"eyewear_commerce/internal/common"

	jwt "github.com/dgrijalva/jwt-go"
)

// SessionClaims là claims trong session token của storefront.
// SalesmanID có thể được gắn vào token lúc đăng nhập cho user role salesman;
// checkout dùng claim này như một nguồn fallback khi user record thiếu salesmanId.
type SessionClaims struct {
	UserID     string `json:"userId"`
	Role       string `json:"role"`
	SalesmanID string `json:"salesmanId,omitempty"`
	jwt.StandardClaims
}

// ParseSessionClaims parse và verify session token bằng HMAC secret.
// Trả về ErrTokenExpired nếu token hết hạn, ErrTokenInvalid cho mọi lỗi khác.
func ParseSessionClaims(tokenString string, secret string) (*SessionClaims, error) {
	claims := &SessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		if ve, ok := err.(*jwt.ValidationError); ok && ve.Errors&jwt.ValidationErrorExpired != 0 {
			return nil, common.ErrTokenExpired
		}
		return nil, common.ErrTokenInvalid
	}
	if !token.Valid {
		return nil, common.ErrTokenInvalid
	}
	return claims, nil
}

// NewSessionToken phát hành session token cho user (dùng lúc login và trong test).
func NewSessionToken(claims *SessionClaims, secret string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", common.NewError(common.ErrCodeInternalServer,
			"Không thể phát hành session token", common.StatusInternalServerError, err)
	}
	return signed, nil
}
