package catalog

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/viper"

	"post-catering/common/constant"
	"post-catering/model"
	"post-catering/outbound/sqlgen"
)

// PayloadStore serves the assembled storefront payload through two layers:
// a redis cache in front of live assembly, and a snapshot persisted in
// menu_config that survives an empty or partially seeded database.
type PayloadStore struct {
	Assembler *Assembler
	Querier   *sqlgen.Queries
	Cache     *redis.Client

	ttl time.Duration
}

func NewPayloadStore(cfg *viper.Viper, assembler *Assembler, querier *sqlgen.Queries, cache *redis.Client) *PayloadStore {
	cfg.SetDefault("menu.cache.ttl", constant.CatalogPayloadDefaultTTL)
	return &PayloadStore{
		Assembler: assembler,
		Querier:   querier,
		Cache:     cache,
		ttl:       cfg.GetDuration("menu.cache.ttl"),
	}
}

// Load returns the catalog payload, consulting redis first, then live
// assembly, then the persisted snapshot. A nil payload with nil error means
// the catalog tables hold no usable data anywhere.
func (s *PayloadStore) Load(ctx context.Context) (*model.CatalogPayload, error) {
	if payload := s.cached(ctx); payload != nil {
		return payload, nil
	}

	payload, err := s.Assembler.Payload(ctx)
	if err != nil {
		return nil, err
	}
	if payload == nil {
		return s.Persisted(ctx)
	}

	s.cache(ctx, payload)
	return payload, nil
}

// Persisted returns the snapshot stored in menu_config, or nil when it is
// absent or malformed.
func (s *PayloadStore) Persisted(ctx context.Context) (*model.CatalogPayload, error) {
	raw, err := s.Querier.GetMenuConfig(ctx, constant.CatalogPayloadConfigKey)
	if err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return nil, nil
	}

	var payload model.CatalogPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		slog.WarnContext(ctx, "discarding malformed persisted catalog payload", constant.LogFieldErr, err)
		return nil, nil
	}
	return &payload, nil
}

// Refresh drops both layers, reassembles from the relational tables, and
// persists the fresh snapshot when assembly produced one.
func (s *PayloadStore) Refresh(ctx context.Context) (*model.CatalogPayload, error) {
	if err := s.Invalidate(ctx); err != nil {
		return nil, err
	}

	payload, err := s.Assembler.Payload(ctx)
	if err != nil {
		return nil, err
	}
	if payload == nil {
		return nil, nil
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	if err := s.Querier.UpsertMenuConfig(ctx, constant.CatalogPayloadConfigKey, raw); err != nil {
		return nil, err
	}

	s.cache(ctx, payload)
	return payload, nil
}

// Invalidate drops the redis entry and the persisted snapshot.
func (s *PayloadStore) Invalidate(ctx context.Context) error {
	if s.Cache != nil {
		if err := s.Cache.Del(ctx, constant.CatalogPayloadCacheKey).Err(); err != nil {
			slog.WarnContext(ctx, "failed to drop catalog payload cache", constant.LogFieldErr, err)
		}
	}
	return s.Querier.DeleteMenuConfig(ctx, constant.CatalogPayloadConfigKey)
}

func (s *PayloadStore) cached(ctx context.Context) *model.CatalogPayload {
	if s.Cache == nil {
		return nil
	}

	raw, err := s.Cache.Get(ctx, constant.CatalogPayloadCacheKey).Bytes()
	if err != nil {
		if err != redis.Nil {
			slog.WarnContext(ctx, "failed to read catalog payload cache", constant.LogFieldErr, err)
		}
		return nil
	}

	var payload model.CatalogPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		slog.WarnContext(ctx, "discarding malformed catalog payload cache entry", constant.LogFieldErr, err)
		return nil
	}
	return &payload
}

func (s *PayloadStore) cache(ctx context.Context, payload *model.CatalogPayload) {
	if s.Cache == nil {
		return
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return
	}
	if err := s.Cache.Set(ctx, constant.CatalogPayloadCacheKey, raw, s.ttl).Err(); err != nil {
		slog.WarnContext(ctx, "failed to write catalog payload cache", constant.LogFieldErr, err)
	}
}
