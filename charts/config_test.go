package charts

import(
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	path := filepath.Join(t.TempDir(), "dashboard.yaml")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
title: "My Dashboard"
year_from: 2018
top_n: 5
charts:
  - pandemic
  - monthly
`)

	cfg,err := LoadConfig(path)
	if err != nil { t.Fatal(err) }

	if cfg.Title != "My Dashboard" || len(cfg.Charts) != 2 {
		t.Errorf("bad config: %+v", cfg)
	}

	opt := cfg.ToOptions()
	if opt.YearFrom != 2018 || opt.TopN != 5 {
		t.Errorf("bad options: %+v", opt)
	}
	if opt.YearTo != DefaultOptions().YearTo {
		t.Errorf("unset year_to should keep the default, got %d", opt.YearTo)
	}
}

func TestLoadConfigBadChart(t *testing.T) {
	path := writeConfig(t, "charts: [nosuchchart]\n")
	if _,err := LoadConfig(path); err == nil {
		t.Errorf("expected an error for an unknown chart name")
	}
}
