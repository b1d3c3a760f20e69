package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/riskibarqy/infootball/internal/domain/transfer"
)

func TestLoad_AppEnvValidation(t *testing.T) {
	t.Setenv("APP_ENV", "invalid")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for invalid APP_ENV")
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("API_FOOTBALL_KEY", "")
	t.Setenv("TRANSFER_TEAM_IDS", "")
	t.Setenv("TRANSFER_TEAMS_FILE", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.HTTPAddr != ":3001" {
		t.Fatalf("unexpected HTTPAddr: %q", cfg.HTTPAddr)
	}
	if cfg.APIFootballKey != "" {
		t.Fatalf("expected empty api key to pass through")
	}
	if cfg.APIFootballBaseURL != "https://v3.football.api-sports.io" {
		t.Fatalf("unexpected base url: %q", cfg.APIFootballBaseURL)
	}
	if cfg.APIFootballTimeout != 0 {
		t.Fatalf("expected no upstream timeout by default, got %s", cfg.APIFootballTimeout)
	}
	if cfg.APIFootballCircuitEnabled {
		t.Fatalf("expected circuit breaker disabled by default")
	}
	if cfg.CompetitionFallbackSeason != "2024" {
		t.Fatalf("unexpected fallback season: %q", cfg.CompetitionFallbackSeason)
	}
	if len(cfg.TransferTeamIDs) != len(transfer.DefaultPopularTeams) {
		t.Fatalf("expected default allow-list, got %v", cfg.TransferTeamIDs)
	}
	if cfg.TransferTeamQueryLimit != 5 || cfg.TransferFeedLimit != 50 {
		t.Fatalf("unexpected transfer limits: %d/%d", cfg.TransferTeamQueryLimit, cfg.TransferFeedLimit)
	}
	if cfg.TransferLoanLabel != transfer.DefaultLoanLabel {
		t.Fatalf("unexpected loan label: %q", cfg.TransferLoanLabel)
	}
	if len(cfg.CORSAllowedOrigins) != 1 || cfg.CORSAllowedOrigins[0] != "http://localhost:3000" {
		t.Fatalf("unexpected CORS origins: %v", cfg.CORSAllowedOrigins)
	}
}

func TestLoad_DefaultsByEnv(t *testing.T) {
	t.Run("prod disables swagger by default", func(t *testing.T) {
		t.Setenv("APP_ENV", EnvProd)
		t.Setenv("SWAGGER_ENABLED", "")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if cfg.SwaggerEnabled {
			t.Fatalf("expected SwaggerEnabled=false in prod by default")
		}
	})

	t.Run("dev enables swagger by default", func(t *testing.T) {
		t.Setenv("APP_ENV", EnvDev)
		t.Setenv("SWAGGER_ENABLED", "")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if !cfg.SwaggerEnabled {
			t.Fatalf("expected SwaggerEnabled=true in dev by default")
		}
	})
}

func TestLoad_TransferTeamIDs(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("TRANSFER_TEAMS_FILE", "")
	t.Setenv("TRANSFER_TEAM_IDS", "33, 40,42")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	want := []int64{33, 40, 42}
	if len(cfg.TransferTeamIDs) != len(want) {
		t.Fatalf("unexpected team ids: %v", cfg.TransferTeamIDs)
	}
	for i := range want {
		if cfg.TransferTeamIDs[i] != want[i] {
			t.Fatalf("unexpected team id at %d: %d", i, cfg.TransferTeamIDs[i])
		}
	}

	t.Setenv("TRANSFER_TEAM_IDS", "33,abc")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for invalid TRANSFER_TEAM_IDS")
	}
}

func TestLoad_TransferTeamsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "teams.yaml")
	doc := "teams:\n  - id: 85\n    name: PSG\n  - id: 157\n    name: Bayern Munich\n"
	if err := os.WriteFile(path, []byte(doc), 0o600); err != nil {
		t.Fatalf("write teams file: %v", err)
	}

	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("TRANSFER_TEAM_IDS", "1,2,3")
	t.Setenv("TRANSFER_TEAMS_FILE", path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if len(cfg.TransferTeamIDs) != 2 || cfg.TransferTeamIDs[0] != 85 || cfg.TransferTeamIDs[1] != 157 {
		t.Fatalf("expected file to override env list, got %v", cfg.TransferTeamIDs)
	}
}

func TestLoad_UpstreamSettings(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("API_FOOTBALL_KEY", " secret ")
	t.Setenv("API_FOOTBALL_TIMEOUT", "4s")
	t.Setenv("API_FOOTBALL_CIRCUIT_ENABLED", "true")
	t.Setenv("COMPETITION_FALLBACK_SEASON", "2025")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.APIFootballKey != "secret" {
		t.Fatalf("unexpected api key: %q", cfg.APIFootballKey)
	}
	if cfg.APIFootballTimeout != 4*time.Second {
		t.Fatalf("unexpected timeout: %s", cfg.APIFootballTimeout)
	}
	if !cfg.APIFootballCircuitEnabled {
		t.Fatalf("expected circuit breaker enabled")
	}
	if cfg.CompetitionFallbackSeason != "2025" {
		t.Fatalf("unexpected fallback season: %q", cfg.CompetitionFallbackSeason)
	}

	t.Setenv("COMPETITION_FALLBACK_SEASON", "next")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for non numeric fallback season")
	}
}

func TestLoad_TransferStoreValidation(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("TRANSFER_STORE", "redis")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for unsupported TRANSFER_STORE")
	}

	t.Setenv("TRANSFER_STORE", "memory")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.TransferStore != TransferStoreMemory {
		t.Fatalf("unexpected transfer store: %q", cfg.TransferStore)
	}
}

func TestLoad_UptraceRequiresDSNWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "true")
	t.Setenv("UPTRACE_DSN", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when UPTRACE_ENABLED=true without UPTRACE_DSN")
	}
}
