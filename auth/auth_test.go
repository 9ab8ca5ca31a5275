package auth

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/666amost/mitrabuana/models"
	"github.com/666amost/mitrabuana/store"
)

func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.User{}))
	return store.New(db)
}

func newAuthRouter(s *store.Store) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/auth/register", RegisterHandler(s))
	r.POST("/auth/login", LoginHandler(s))
	return r
}

func postJSON(t *testing.T, r *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRegisterAndLogin(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	s := newTestStore(t)
	r := newAuthRouter(s)

	w := postJSON(t, r, "/auth/register", RegisterRequest{
		Email: "budi@example.com", Password: "rahasia-123", Name: "Budi Santoso",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var created struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.NotEmpty(t, created.Token)

	w = postJSON(t, r, "/auth/login", LoginRequest{
		Email: "budi@example.com", Password: "rahasia-123",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	w = postJSON(t, r, "/auth/login", LoginRequest{
		Email: "budi@example.com", Password: "salah-password",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	s := newTestStore(t)
	r := newAuthRouter(s)

	w := postJSON(t, r, "/auth/register", RegisterRequest{
		Email: "budi@example.com", Password: "rahasia-123",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = postJSON(t, r, "/auth/register", RegisterRequest{
		Email: "budi@example.com", Password: "rahasia-456",
	})
	assert.Equal(t, http.StatusConflict, w.Code)
}
