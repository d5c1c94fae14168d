package controllers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/invoicehub/invoicehub.go/lib/service"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedDisabledDoesNotInvalidate(t *testing.T) {
	svc := &service.DashboardService{Config: &service.Config{AllowSeeding: false}}
	invalidated := 0
	controller := NewSeedController(svc, func() { invalidated++ })

	req := httptest.NewRequest(http.MethodGet, "/seed", nil)
	rec := httptest.NewRecorder()
	require.NoError(t, controller.Seed(echo.New().NewContext(req, rec)))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Zero(t, invalidated)
}

func TestSeedControllerTakesNilInvalidate(t *testing.T) {
	svc := &service.DashboardService{Config: &service.Config{AllowSeeding: false}}
	controller := NewSeedController(svc, nil)

	req := httptest.NewRequest(http.MethodGet, "/seed", nil)
	rec := httptest.NewRecorder()
	require.NoError(t, controller.Seed(echo.New().NewContext(req, rec)))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
