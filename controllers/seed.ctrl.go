package controllers

import (
	"net/http"

	"github.com/invoicehub/invoicehub.go/lib/responses"
	"github.com/invoicehub/invoicehub.go/lib/service"
	"github.com/labstack/echo/v4"
)

// SeedController : demo data seeding controller struct
type SeedController struct {
	svc        *service.DashboardService
	invalidate func()
}

func NewSeedController(svc *service.DashboardService, invalidate func()) *SeedController {
	if invalidate == nil {
		invalidate = func() {}
	}
	return &SeedController{svc: svc, invalidate: invalidate}
}

type SeedResponseBody struct {
	Message string `json:"message"`
}

// Seed upserts the demo dataset in one transaction.
func (controller *SeedController) Seed(c echo.Context) error {
	if !controller.svc.Config.AllowSeeding {
		return c.JSON(http.StatusNotFound, responses.NotFoundError)
	}
	if err := controller.svc.SeedAll(c.Request().Context()); err != nil {
		c.Logger().Errorf("Failed to seed database: %v", err)
		return c.JSON(http.StatusInternalServerError, responses.GeneralServerError)
	}
	controller.invalidate()
	return c.JSON(http.StatusOK, &SeedResponseBody{Message: "Database seeded successfully"})
}
