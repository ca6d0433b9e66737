package api

import (
	"context"

	"github.com/vytor/keydrill/internal/services"
)

// Pinger is satisfied by *sql.DB.
type Pinger interface {
	PingContext(ctx context.Context) error
}

type Server struct {
	DB                 Pinger
	ReviewItemService  services.ReviewItemService
	DueService         services.DueService
	SessionService     services.SessionService
	CatalogService     services.CatalogService
	StatsService       services.StatsService
	DefaultSessionSize int
}
