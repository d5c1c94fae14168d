package service

import (
	"github.com/uptrace/bun"
	"github.com/ziflex/lecho/v3"
)

// DashboardService bundles the store handle and configuration used by
// every operation. It is constructed once at startup and injected into
// the controllers; there is no ambient global client.
type DashboardService struct {
	Config *Config
	DB     *bun.DB
	Logger *lecho.Logger
}
