package integration_tests

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/invoicehub/invoicehub.go/controllers"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Seeding rewrites the aggregate tables, so a successful seed must drop
// the cached dashboard views.
func TestSeedInvalidatesCachedViews(t *testing.T) {
	svc := dashboardTestServiceInit(t)
	svc.Config.AllowSeeding = true

	invalidated := 0
	controller := controllers.NewSeedController(svc, func() { invalidated++ })

	req := httptest.NewRequest(http.MethodGet, "/seed", nil)
	rec := httptest.NewRecorder()
	require.NoError(t, controller.Seed(echo.New().NewContext(req, rec)))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, invalidated)
}
