package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/scriptdiff/scriptdiff/step/kind"
	"github.com/scriptdiff/scriptdiff/step/policy"
)

const DefaultConfigFileName = "config.json"

var (
	DefaultConfigDir      = os.ExpandEnv("$HOME/.config/scriptdiff")
	DefaultConfigFilePath = filepath.Join(DefaultConfigDir, DefaultConfigFileName)
)

type Config struct {
	// Labels overrides the display policy of labeled boolean parameters.
	Labels map[string]policy.Policy `json:"labels,omitempty"`
	// CommentSteps lists extra step ids rendered as comments.
	CommentSteps []uint32 `json:"comment_steps,omitempty"`
	// Concurrency bounds how many steps of a script render at once.
	Concurrency int `json:"concurrency,omitempty"`
	// ExportDir is where markdown exports are written.
	ExportDir string `json:"export_dir,omitempty"`
}

func (c *Config) Save() error {
	return c.SaveTo(DefaultConfigFilePath)
}

func (c *Config) SaveTo(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(c); err != nil {
		return err
	}
	return nil
}

func LoadFromFile() (*Config, error) {
	return LoadFrom(DefaultConfigFilePath)
}

func LoadFrom(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var c Config
	if err := json.NewDecoder(f).Decode(&c); err != nil {
		return nil, err
	}
	return &c, nil
}

// SetLabel records a policy override for label.
func (c *Config) SetLabel(label string, p policy.Policy) {
	if c.Labels == nil {
		c.Labels = make(map[string]policy.Policy)
	}
	c.Labels[label] = p
}

// Policies returns the embedded label table with the overrides applied.
func (c *Config) Policies() *policy.Table {
	return policy.Default().With(c.Labels)
}

// Kinds returns the embedded step table with the extra comment steps applied.
func (c *Config) Kinds() *kind.Registry {
	overrides := make(map[uint32]kind.Kind, len(c.CommentSteps))
	for _, id := range c.CommentSteps {
		overrides[id] = kind.Comment
	}
	return kind.Default().With(overrides)
}
