package constant

import "time"

const (
	CatalogPayloadCacheKey = "catalog:payload:v1"

	// Key of the persisted payload snapshot in menu_config.
	CatalogPayloadConfigKey = "catalog_payload_v1"

	// Keys used by the redis-backed abuse-guard stores.
	AbuseIPWindowKey  = "inquiry:ip_events:%s"
	AbuseDuplicateKey = "inquiry:dedup:%s"
	AbuseBlockedKey   = "inquiry:blocked_events"
)

const (
	CatalogPayloadDefaultTTL = 5 * time.Minute
)
