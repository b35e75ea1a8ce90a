package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"clinicapi/cmd/internal/authz"
	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

var testSecret = []byte("test-secret")

func signToken(t *testing.T, secret []byte, staff bool) string {
	t.Helper()
	claims := StaffClaims{
		Staff: staff,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}
	return token
}

func resolveWithHeader(t *testing.T, header string) authz.Actor {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set(echo.HeaderAuthorization, header)
	}
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)

	var actor authz.Actor
	handler := Middleware(testSecret)(func(c echo.Context) error {
		actor = ActorFromCtx(c)
		return nil
	})
	if err := handler(c); err != nil {
		t.Fatalf("middleware errored: %v", err)
	}
	return actor
}

func TestMiddlewareResolvesActor(t *testing.T) {
	cases := []struct {
		name      string
		header    string
		wantStaff bool
	}{
		{"no header", "", false},
		{"garbage token", "Bearer not-a-jwt", false},
		{"wrong scheme", "Basic abc", false},
		{"staff token", "Bearer " + signToken(t, testSecret, true), true},
		{"non-staff token", "Bearer " + signToken(t, testSecret, false), false},
		{"wrong secret", "Bearer " + signToken(t, []byte("other-secret"), true), false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			actor := resolveWithHeader(t, tc.header)
			if actor.Staff != tc.wantStaff {
				t.Errorf("actor.Staff = %v, want %v", actor.Staff, tc.wantStaff)
			}
		})
	}
}

func TestActorFromCtxDefaultsToPublic(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	c := echo.New().NewContext(req, httptest.NewRecorder())

	if actor := ActorFromCtx(c); actor.Staff {
		t.Error("missing middleware should yield the public actor")
	}
}
