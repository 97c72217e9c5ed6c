package controllers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/eletrigo/eletrigo-api/config"
	"github.com/eletrigo/eletrigo-api/controllers"
	"github.com/eletrigo/eletrigo-api/db"
	"github.com/eletrigo/eletrigo-api/models"
	"github.com/eletrigo/eletrigo-api/routes"
)

func setupApp(t *testing.T) (*fiber.App, *config.Config) {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, gdb.AutoMigrate(
		&models.Electrician{},
		&models.Client{},
		&models.Product{},
		&models.Service{},
	))

	db.DB = gdb
	db.Status = "connected"
	db.Mode = "memory"

	cfg := &config.Config{
		Port:          "0",
		AdminEmail:    "admin@eletrigo.local",
		AdminPassword: "admin123",
		JWTSecret:     "test-secret",
	}

	app := fiber.New()
	app.Get("/health", controllers.Health)
	routes.SetupAuthRoutes(app, cfg)
	routes.SetupElectricianRoutes(app)
	routes.SetupClientRoutes(app)
	routes.SetupProductRoutes(app)
	routes.SetupServiceRoutes(app)

	return app, cfg
}

// request runs one JSON request against the app and decodes the response body
// into out when it is non-nil.
func request(t *testing.T, app *fiber.App, method, path string, body any, out any) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp
}
