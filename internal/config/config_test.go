package config

import (
	"strings"
	"testing"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("TMDB_API_KEY", "tmdb")
	t.Setenv("YOUTUBE_API_KEY", "yt")
	t.Setenv("RAPIDAPI_KEY", "rapid")
}

func TestLoadDefaults(t *testing.T) {
	setRequired(t)

	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Port != "8080" {
		t.Errorf("port = %q", cfg.Port)
	}
	if cfg.GridLimit != 8 || cfg.GridColumns != 4 {
		t.Errorf("grid shape = %dx%d", cfg.GridLimit, cfg.GridColumns)
	}
	if cfg.TMDBBaseURL != "https://api.themoviedb.org/3" {
		t.Errorf("base URL = %q", cfg.TMDBBaseURL)
	}
}

func TestLoadMissingSecrets(t *testing.T) {
	for _, missing := range []string{"TMDB_API_KEY", "YOUTUBE_API_KEY", "RAPIDAPI_KEY"} {
		t.Run(missing, func(t *testing.T) {
			setRequired(t)
			t.Setenv(missing, "")

			_, err := Load()
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), missing) {
				t.Errorf("error %q does not name %s", err, missing)
			}
		})
	}
}

func TestLoadOverrides(t *testing.T) {
	setRequired(t)
	t.Setenv("GRID_LIMIT", "12")
	t.Setenv("GRID_COLUMNS", "3")
	t.Setenv("RECOMMENDATION_LIMIT", "10")

	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.GridLimit != 12 || cfg.GridColumns != 3 {
		t.Errorf("grid shape = %dx%d", cfg.GridLimit, cfg.GridColumns)
	}
	if cfg.RecommendationLimit != 10 {
		t.Errorf("recommendation limit = %d", cfg.RecommendationLimit)
	}
}
