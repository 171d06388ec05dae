package services

import (
	portsrepo "github.com/SscSPs/ledger_engine/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/ledger_engine/internal/core/ports/services"
	"github.com/SscSPs/ledger_engine/internal/events"
	"github.com/SscSPs/ledger_engine/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, gateway portsrepo.DocumentGateway, bus *events.Bus) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Calculator: NewCalculatorService(cfg.TaxRate, cfg.BalanceTolerance),
		Poster: NewPosterService(gateway,
			WithTaxRate(cfg.TaxRate),
			WithBalanceTolerance(cfg.BalanceTolerance),
			WithPostingRules(cfg.PostingRules),
			WithNotifier(bus),
		),
		Events: bus,
	}
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.Notifier        = (*events.Bus)(nil)
	_ portssvc.EventSubscriber = (*events.Bus)(nil)
)
