package config

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Listen  string        `yaml:"listen" json:"listen"`
	DataDir string        `yaml:"data_dir" json:"data_dir"`
	Backend BackendConfig `yaml:"backend" json:"backend"`
	Cookie  CookieConfig  `yaml:"cookie" json:"cookie"`
}

type BackendConfig struct {
	// BaseURL is the origin of the rentals backend; the client appends /api.
	BaseURL        string        `yaml:"base_url" json:"base_url"`
	RequestTimeout time.Duration `yaml:"request_timeout" json:"request_timeout"`
}

type CookieConfig struct {
	Name     string        `yaml:"name" json:"name"`
	SameSite string        `yaml:"same_site" json:"same_site"`
	TTL      time.Duration `yaml:"ttl" json:"ttl"`
}

func (b *BackendConfig) UnmarshalYAML(value *yaml.Node) error {
	var aux struct {
		BaseURL        string `yaml:"base_url"`
		RequestTimeout string `yaml:"request_timeout"`
	}
	if err := value.Decode(&aux); err != nil {
		return err
	}
	b.BaseURL = aux.BaseURL
	return decodeDuration(aux.RequestTimeout, &b.RequestTimeout)
}

func (k *CookieConfig) UnmarshalYAML(value *yaml.Node) error {
	var aux struct {
		Name     string `yaml:"name"`
		SameSite string `yaml:"same_site"`
		TTL      string `yaml:"ttl"`
	}
	if err := value.Decode(&aux); err != nil {
		return err
	}
	k.Name = aux.Name
	k.SameSite = aux.SameSite
	return decodeDuration(aux.TTL, &k.TTL)
}

func decodeDuration(raw string, out *time.Duration) error {
	if raw == "" {
		return nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return err
	}
	*out = d
	return nil
}

func (c *Config) ApplyDefaults() {
	if c.Listen == "" {
		c.Listen = ":8080"
	}
	if c.DataDir == "" {
		c.DataDir = "data"
	}
	if c.Backend.BaseURL == "" {
		c.Backend.BaseURL = "http://localhost:5000"
	}
	if c.Backend.RequestTimeout == 0 {
		c.Backend.RequestTimeout = 15 * time.Second
	}
	if c.Cookie.Name == "" {
		c.Cookie.Name = "novella_session"
	}
	if c.Cookie.SameSite == "" {
		c.Cookie.SameSite = "lax"
	}
	if c.Cookie.TTL == 0 {
		c.Cookie.TTL = 7 * 24 * time.Hour
	}
}

// Load reads the YAML config at path. A missing file is not an error; the
// returned config then carries defaults plus environment overrides only.
func Load(path string) (*Config, error) {
	var c Config
	b, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, err
		}
	} else if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, err
	}
	c.applyEnv()
	c.ApplyDefaults()
	return &c, nil
}
