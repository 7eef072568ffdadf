package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"realtime": map[string]any{
			"trackMaxDuration": "15m",
		},
		"location": map[string]any{
			"snapshotTtl": "5m",
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
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "REALTIME_TRACKMAXDURATION", want: "realtime.trackMaxDuration"},
		{envKey: "LOCATION_SNAPSHOTTTL", want: "location.snapshotTtl"},
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

func TestApplyDefaults_FillsMissingSections(t *testing.T) {
	cfg := &Config{}
	applyDefaults(cfg)

	if cfg.Location.SnapshotTTL != defaultSnapshotTTL {
		t.Fatalf("SnapshotTTL = %v, want %v", cfg.Location.SnapshotTTL, defaultSnapshotTTL)
	}
	if cfg.Location.DefaultPrecisionMeters != defaultPrecisionMeters {
		t.Fatalf("DefaultPrecisionMeters = %v, want %v", cfg.Location.DefaultPrecisionMeters, defaultPrecisionMeters)
	}
	if cfg.Realtime.TrackMaxDuration != defaultTrackMaxDuration {
		t.Fatalf("TrackMaxDuration = %v, want %v", cfg.Realtime.TrackMaxDuration, defaultTrackMaxDuration)
	}
}
