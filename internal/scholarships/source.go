// Package scholarships loads active scholarship listings for the matching workers.
package scholarships

import (
	"context"
	"fmt"

	"scholarship-matcher/internal/common/config"
	"scholarship-matcher/internal/common/database"
	"scholarship-matcher/internal/common/logger"
	"scholarship-matcher/internal/models"
)

// Source lists the currently active scholarships.
type Source interface {
	Name() string
	List(ctx context.Context) ([]models.Scholarship, error)
}

// Clients bundles the store connections a Source may be built from.
type Clients struct {
	Postgres      *database.PostgresClient
	Elasticsearch *database.ElasticsearchClient
	Redis         *database.RedisClient
}

// NewSource builds the configured source, wrapped in the redis cache when enabled.
func NewSource(cfg config.MatchingConfig, clients Clients, log logger.Logger) (Source, error) {
	var src Source
	switch cfg.Source {
	case config.SourcePostgres:
		if clients.Postgres == nil {
			return nil, fmt.Errorf("postgres source requires a postgres client")
		}
		src = NewPostgresSource(clients.Postgres.DB)
	case config.SourceElasticsearch:
		if clients.Elasticsearch == nil {
			return nil, fmt.Errorf("elasticsearch source requires an elasticsearch client")
		}
		src = NewElasticsearchSource(clients.Elasticsearch.Client, cfg.IndexName)
	default:
		return nil, fmt.Errorf("unknown scholarship source %q", cfg.Source)
	}

	if cfg.CacheEnabled && clients.Redis != nil {
		src = NewCachedSource(src, clients.Redis.Client, config.GetDuration(cfg.CacheTTL*1000), log)
	}
	return src, nil
}
