package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode":  "disable",
			"userName": "user",
		},
		"rateLimit": map[string]any{
			"keyPrefix": "",
			"classification": map[string]any{
				"limit": 8,
			},
		},
		"scorer": map[string]any{
			"maxConcurrent": 32,
		},
		"secretKey": map[string]any{
			"access": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_USERNAME", want: "postgres.userName"},
		{envKey: "RATELIMIT_KEYPREFIX", want: "rateLimit.keyPrefix"},
		{envKey: "RATELIMIT_CLASSIFICATION_LIMIT", want: "rateLimit.classification.limit"},
		{envKey: "SCORER_MAXCONCURRENT", want: "scorer.maxConcurrent"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestIsSection(t *testing.T) {
	existing := map[string]any{
		"env": map[string]any{
			"env": "development",
			"log": map[string]any{"level": "debug"},
		},
	}

	assert := func(key string, want bool) {
		t.Helper()
		if got := isSection(existing, key); got != want {
			t.Fatalf("isSection(%q) = %v, want %v", key, got, want)
		}
	}

	assert("env", true)
	assert("env.log", true)
	assert("env.env", false)
	assert("env.log.level", false)
	assert("missing", false)
}
