package authsvc

import (
	"errors"
	"testing"
	"time"

	"eyewear_commerce/internal/common"

	jwt "github.com/dgrijalva/jwt-go"
)

func TestSessionToken_RoundTrip(t *testing.T) {
	secret := "test-secret"
	issued := &SessionClaims{
		UserID:     "U1",
		Role:       "salesman",
		SalesmanID: "S9",
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(time.Hour).Unix(),
		},
	}

	token, err := NewSessionToken(issued, secret)
	if err != nil {
		t.Fatalf("NewSessionToken lỗi: %v", err)
	}

	parsed, err := ParseSessionClaims(token, secret)
	if err != nil {
		t.Fatalf("ParseSessionClaims lỗi: %v", err)
	}
	if parsed.UserID != "U1" || parsed.Role != "salesman" || parsed.SalesmanID != "S9" {
		t.Errorf("Claims không khớp sau round-trip: %+v", parsed)
	}
}

func TestParseSessionClaims_WrongSecret(t *testing.T) {
	token, err := NewSessionToken(&SessionClaims{UserID: "U1"}, "secret-a")
	if err != nil {
		t.Fatalf("NewSessionToken lỗi: %v", err)
	}

	_, err = ParseSessionClaims(token, "secret-b")
	if !errors.Is(err, common.ErrTokenInvalid) {
		t.Fatalf("Sai secret phải trả ErrTokenInvalid, có %v", err)
	}
}

func TestParseSessionClaims_Expired(t *testing.T) {
	secret := "test-secret"
	token, err := NewSessionToken(&SessionClaims{
		UserID: "U1",
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(-time.Hour).Unix(),
		},
	}, secret)
	if err != nil {
		t.Fatalf("NewSessionToken lỗi: %v", err)
	}

	_, err = ParseSessionClaims(token, secret)
	if !errors.Is(err, common.ErrTokenExpired) {
		t.Fatalf("Token hết hạn phải trả ErrTokenExpired, có %v", err)
	}
}

func TestParseSessionClaims_Garbage(t *testing.T) {
	_, err := ParseSessionClaims("không-phải-jwt", "secret")
	if !errors.Is(err, common.ErrTokenInvalid) {
		t.Fatalf("Chuỗi rác phải trả ErrTokenInvalid, có %v", err)
	}
}
