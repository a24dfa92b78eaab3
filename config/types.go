package config

// Config is the dashboard backend configuration, corresponding to dashboard.yml.
type Config struct {
	Addr       string `yaml:"addr" koanf:"addr"`
	Name       string `yaml:"name" koanf:"name"`
	Color      string `yaml:"color" koanf:"color"`
	Navigation string `yaml:"navigation" koanf:"navigation"`
	LogLevel   string `yaml:"log_level" koanf:"log_level"`
	AllowAll   bool   `yaml:"allow_all_origins" koanf:"allow_all_origins"`
}

// DefaultConfig returns a Config populated with defaults.
func DefaultConfig() *Config {
	return &Config{
		Addr:       ":8000",
		Name:       "TensorFlow",
		Color:      "light",
		Navigation: "log",
		LogLevel:   "info",
	}
}
