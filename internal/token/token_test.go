package token

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"shop_backend/internal/models"
)

func testUser() *models.User {
	return &models.User{ID: 1, Name: "Julia", Email: "julia@test.com", Password: "randomHash", IsAdmin: false}
}

func TestIssueVerify(t *testing.T) {
	svc := &Service{Secret: []byte("test_secret")}

	signed, err := svc.Issue(testUser())
	require.NoError(t, err)

	claims, err := svc.Verify(signed)
	require.NoError(t, err)
	require.Equal(t, uint(1), claims.ID)
	require.Equal(t, "Julia", claims.Name)
	require.Equal(t, "julia@test.com", claims.Email)
	require.False(t, claims.IsAdmin)
}

func TestVerifyWrongSecret(t *testing.T) {
	svc := &Service{Secret: []byte("test_secret")}
	other := &Service{Secret: []byte("other_secret")}

	signed, err := svc.Issue(testUser())
	require.NoError(t, err)

	_, err = other.Verify(signed)
	require.ErrorIs(t, err, ErrUnauthorized)
}

func TestVerifyExpired(t *testing.T) {
	svc := &Service{Secret: []byte("test_secret"), TTL: -time.Minute}

	signed, err := svc.Issue(testUser())
	require.NoError(t, err)

	_, err = svc.Verify(signed)
	require.ErrorIs(t, err, ErrUnauthorized)
}

func TestVerifyGarbage(t *testing.T) {
	svc := &Service{Secret: []byte("test_secret")}
	_, err := svc.Verify("not.a.token")
	require.ErrorIs(t, err, ErrUnauthorized)
}

func TestFromRequest(t *testing.T) {
	svc := &Service{Secret: []byte("test_secret")}
	signed, err := svc.Issue(testUser())
	require.NoError(t, err)

	e := echo.New()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+signed)
	c := e.NewContext(req, httptest.NewRecorder())

	claims, err := svc.FromRequest(c)
	require.NoError(t, err)
	require.Equal(t, uint(1), claims.ID)

	noHeader := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	_, err = svc.FromRequest(noHeader)
	require.ErrorIs(t, err, ErrUnauthorized)
}
