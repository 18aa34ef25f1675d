// cmd/worker-manager/stores.go
package main

import (
	"context"
	"time"

	"scholarship-matcher/internal/common/config"
	"scholarship-matcher/internal/common/database"
	"scholarship-matcher/internal/common/logger"
	"scholarship-matcher/internal/scholarships"
)

type stores struct {
	scholarships.Clients
}

// connectStores opens only the stores the configured source needs.
func connectStores(ctx context.Context, cfg *config.Config, log logger.Logger) (*stores, error) {
	s := &stores{}

	switch cfg.Matching.Source {
	case config.SourcePostgres:
		err := retryWithBackoff(func() error {
			pg, err := database.NewPostgres(cfg.Database.Postgres)
			if err != nil {
				return err
			}
			if err := pg.Ping(ctx); err != nil {
				_ = pg.Close()
				return err
			}
			s.Postgres = pg
			return nil
		}, 15, 2*time.Second, log, "postgres connection")
		if err != nil {
			return nil, err
		}
		log.Info("postgres connected", nil)
	case config.SourceElasticsearch:
		err := retryWithBackoff(func() error {
			es, err := database.NewElasticsearch(cfg.Database.Elasticsearch)
			if err != nil {
				return err
			}
			if err := es.Ping(ctx); err != nil {
				return err
			}
			s.Elasticsearch = es
			return nil
		}, 15, 2*time.Second, log, "elasticsearch connection")
		if err != nil {
			return nil, err
		}
		log.Info("elasticsearch connected", nil)
	}

	if cfg.Matching.CacheEnabled {
		rdb := database.NewRedis(cfg.Database.Redis)
		err := retryWithBackoff(func() error { return rdb.Ping(ctx) }, 10, 2*time.Second, log, "redis connection")
		if err != nil {
			_ = rdb.Close()
			s.close(log)
			return nil, err
		}
		s.Redis = rdb
		log.Info("redis connected", nil)
	}

	return s, nil
}

// pingers lists the opened stores for the health probe.
func (s *stores) pingers() map[string]database.Pinger {
	out := map[string]database.Pinger{}
	if s.Postgres != nil {
		out["postgres"] = s.Postgres
	}
	if s.Elasticsearch != nil {
		out["elasticsearch"] = s.Elasticsearch
	}
	if s.Redis != nil {
		out["redis"] = s.Redis
	}
	return out
}

func (s *stores) close(log logger.Logger) {
	closers := map[string]interface{ Close() error }{}
	if s.Postgres != nil {
		closers["postgres"] = s.Postgres
	}
	if s.Elasticsearch != nil {
		closers["elasticsearch"] = s.Elasticsearch
	}
	if s.Redis != nil {
		closers["redis"] = s.Redis
	}
	for name, c := range closers {
		if err := c.Close(); err != nil {
			log.Warn("store close failed", map[string]interface{}{"store": name, "error": err.Error()})
		}
	}
}
