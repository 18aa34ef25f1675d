package scholarships

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scholarship-matcher/internal/common/config"
	"scholarship-matcher/internal/common/database"
	"scholarship-matcher/internal/common/logger"
)

func TestNewSource(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	pg := &database.PostgresClient{DB: db}
	rc := database.NewRedis(config.RedisConfig{Address: "127.0.0.1:0"})
	defer rc.Close()

	tests := []struct {
		name     string
		cfg      config.MatchingConfig
		clients  Clients
		wantName string
		wantErr  bool
	}{
		{"postgres", config.MatchingConfig{Source: config.SourcePostgres}, Clients{Postgres: pg}, "postgres", false},
		{"postgres cached", config.MatchingConfig{Source: config.SourcePostgres, CacheEnabled: true, CacheTTL: 60}, Clients{Postgres: pg, Redis: rc}, "postgres+redis", false},
		{"cache without redis", config.MatchingConfig{Source: config.SourcePostgres, CacheEnabled: true}, Clients{Postgres: pg}, "postgres", false},
		{"postgres missing client", config.MatchingConfig{Source: config.SourcePostgres}, Clients{}, "", true},
		{"elasticsearch missing client", config.MatchingConfig{Source: config.SourceElasticsearch}, Clients{}, "", true},
		{"unknown", config.MatchingConfig{Source: "mongo"}, Clients{}, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src, err := NewSource(tt.cfg, tt.clients, logger.NewNoOpLogger())
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantName, src.Name())
		})
	}
}
