package cmd

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"

	"post-catering/guard"
)

func TestNewGuardStore(t *testing.T) {
	tests := []struct {
		name     string
		store    string
		expected guard.Store
	}{
		{
			name:     "unset key selects the in-memory store",
			store:    "",
			expected: &guard.MemoryStore{},
		},
		{
			name:     "explicit memory",
			store:    "memory",
			expected: &guard.MemoryStore{},
		},
		{
			name:     "explicit redis",
			store:    "redis",
			expected: &guard.RedisStore{},
		},
		{
			name:     "unrecognized value falls back to in-memory",
			store:    "etcd",
			expected: &guard.MemoryStore{},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := viper.New()
			if tc.store != "" {
				cfg.Set("inquiry.store", tc.store)
			}

			assert.IsType(t, tc.expected, newGuardStore(cfg, nil))
		})
	}
}
