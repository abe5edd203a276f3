package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"shop_backend/internal/hash"
	"shop_backend/internal/models"
	"shop_backend/internal/mykafka"
	"shop_backend/internal/order"
	"shop_backend/internal/token"

	mwauth "shop_backend/internal/middleware/auth"
)

type testEnv struct {
	T          *testing.T
	E          *echo.Echo
	DB         *gorm.DB
	Tokens     *token.Service
	Auth       *mwauth.Middleware
	Users      *UserHandler
	Products   *ProductHandler
	Categories *CategoryHandler
	Orders     *OrderHandler
	Messages   *MessageHandler
}

func initTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect to in-memory db: %v", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Brand{},
		&models.Product{},
		&models.Order{},
		&models.OrderItem{},
		&models.Message{},
	); err != nil {
		t.Fatalf("failed to migrate tables: %v", err)
	}

	return db
}

func newTestEnv(t *testing.T) *testEnv {
	db := initTestDB(t)
	tokens := &token.Service{Secret: []byte("test_secret")}
	prod := &mykafka.Producer{}

	return &testEnv{
		T:          t,
		E:          echo.New(),
		DB:         db,
		Tokens:     tokens,
		Auth:       &mwauth.Middleware{Tokens: tokens},
		Users:      &UserHandler{DB: db, Tokens: tokens, Producer: prod},
		Products:   &ProductHandler{DB: db, Producer: prod},
		Categories: &CategoryHandler{DB: db},
		Orders:     &OrderHandler{Svc: &order.Service{Repo: &order.GormRepo{DB: db}}, Tokens: tokens, Producer: prod},
		Messages:   &MessageHandler{DB: db, Producer: prod},
	}
}

func (env *testEnv) doJSONRequest(method, target string, body interface{}, bearer string) (*httptest.ResponseRecorder, echo.Context) {
	env.T.Helper()

	var reader io.Reader = http.NoBody
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(env.T, err)
		reader = bytes.NewReader(b)
	}

	req := httptest.NewRequest(method, target, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if bearer != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+bearer)
	}
	rec := httptest.NewRecorder()
	c := env.E.NewContext(req, rec)
	return rec, c
}

func (env *testEnv) createUser(name, email string, admin bool) (*models.User, string) {
	env.T.Helper()

	pwHash, err := hash.HashPassword("Password1")
	require.NoError(env.T, err)

	user := &models.User{Name: name, Email: email, Password: pwHash, IsAdmin: admin}
	require.NoError(env.T, env.DB.Create(user).Error)

	signed, err := env.Tokens.Issue(user)
	require.NoError(env.T, err)
	return user, signed
}

func requireHTTPError(t *testing.T, err error, code int) {
	t.Helper()
	he, ok := err.(*echo.HTTPError)
	require.True(t, ok, "expected *echo.HTTPError, got %v", err)
	require.Equal(t, code, he.Code)
}
