package orchestration

import (
	"github.com/agbru/fixpoint/internal/catalog"
	"github.com/agbru/fixpoint/internal/config"
)

// SelectOps returns the catalog operations matched by the configured op
// patterns, width and tier, in catalog order.
func SelectOps(cfg config.AppConfig, cat *catalog.Catalog) ([]catalog.Op, error) {
	return cat.Filter(cfg.Ops, cfg.WidthFilter(), cfg.TierFilter())
}
