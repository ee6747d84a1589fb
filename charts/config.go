package charts

import(
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the optional yaml settings file for the strike dashboard.
// Anything left zero falls back to the defaults.
type Config struct {
	Title    string   `yaml:"title"`
	YearFrom int      `yaml:"year_from"`
	YearTo   int      `yaml:"year_to"`
	TopN     int      `yaml:"top_n"`
	Charts []string   `yaml:"charts"` // empty means all registered charts
}

// {{{ LoadConfig

func LoadConfig(path string) (Config, error) {
	cfg := Config{}

	data,err := os.ReadFile(path)
	if err != nil { return cfg, err }

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %v", path, err)
	}

	for _,name := range cfg.Charts {
		if _,exists := chartRegistry[name]; !exists {
			return cfg, fmt.Errorf("%s: chart '%s' not known", path, name)
		}
	}

	return cfg, nil
}

// }}}
// {{{ cfg.ToOptions

func (cfg Config)ToOptions() Options {
	opt := DefaultOptions()
	if cfg.YearFrom > 0 { opt.YearFrom = cfg.YearFrom }
	if cfg.YearTo > 0   { opt.YearTo = cfg.YearTo }
	if cfg.TopN > 0     { opt.TopN = cfg.TopN }
	return opt
}

// }}}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
