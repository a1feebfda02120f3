package handlers

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"

	_ "modernc.org/sqlite"

	"github.com/hungrypaws/hungry-paws-api/internal/audit"
	"github.com/hungrypaws/hungry-paws-api/internal/config"
	"github.com/hungrypaws/hungry-paws-api/internal/middleware"
	"github.com/hungrypaws/hungry-paws-api/internal/models"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(
		gormsqlite.New(gormsqlite.Config{
			DriverName: "sqlite",
			DSN:        ":memory:",
		}),
		&gorm.Config{},
	)
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// a single connection keeps every query on the same in-memory database
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Pet{},
		&models.Booking{},
		&models.AuditLog{},
	))

	return db
}

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:  "test-secret",
		ServerPort: "0",
	}
}

// asUser replaces AuthMiddleware in handler tests.
func asUser(id uint, admin bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.ContextUserID, id)
		c.Set(middleware.ContextIsAdmin, admin)
		c.Next()
	}
}

type noopAudit struct{}

func (noopAudit) Dispatch(audit.Event) {}

var _ audit.Recorder = noopAudit{}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var decoded map[string]any
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &decoded))
	}

	return w, decoded
}

func mustCreate(t *testing.T, db *gorm.DB, value any) {
	t.Helper()
	require.NoError(t, db.Create(value).Error)
}
