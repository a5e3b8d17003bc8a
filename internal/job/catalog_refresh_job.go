package job

import (
	"context"

	"github.com/memeverse/memeverse/internal/service"
)

// CatalogRefreshJob re-hydrates the catalog and trending views from
// the upstream source so a long-running server does not serve a stale
// snapshot forever.
type CatalogRefreshJob struct {
	memes *service.MemeService
}

func NewCatalogRefreshJob(memes *service.MemeService) *CatalogRefreshJob {
	return &CatalogRefreshJob{memes: memes}
}

func (j *CatalogRefreshJob) Name() string {
	return "catalog_refresh"
}

func (j *CatalogRefreshJob) Run(ctx context.Context) error {
	return j.memes.Refresh(ctx)
}
