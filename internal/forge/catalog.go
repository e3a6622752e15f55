package forge

import (
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/osse101/Shardlands_Go/internal/validation"
)

// ErrInvalidConfig is returned when the upgrade tree fails semantic checks.
var ErrInvalidConfig = errors.New("invalid forge configuration")

// Upgrade is one Memory Forge entry. Purchase counts are kept on the profile.
type Upgrade struct {
	Key          string         `json:"key" validate:"required,content_key"`
	Name         string         `json:"name" validate:"required"`
	Description  string         `json:"description"`
	Cost         int            `json:"cost" validate:"gte=0"`
	Value        float64        `json:"value" validate:"gte=0"`
	MaxPurchases int            `json:"max_purchases" validate:"min=1"`
	Tier         int            `json:"tier" validate:"min=1"`
	Requires     map[string]int `json:"requires,omitempty" validate:"dive,min=1"`
}

// IntValue returns the per-purchase value as a whole number.
func (u Upgrade) IntValue() int {
	return int(u.Value)
}

// Config is the on-disk upgrade tree.
type Config struct {
	Version     string    `json:"version" validate:"required"`
	Description string    `json:"description"`
	Upgrades    []Upgrade `json:"upgrades" validate:"required,min=1,dive"`
}

// Loader reads and checks the upgrade tree
type Loader interface {
	Load(path string) (*Config, error)
	Validate(config *Config) error
}

type forgeLoader struct {
	schemaValidator validation.SchemaValidator
}

// NewLoader creates a Loader backed by the JSON schema validator
func NewLoader(v validation.SchemaValidator) Loader {
	return &forgeLoader{schemaValidator: v}
}

func (l *forgeLoader) Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgReadConfigFailed, err)
	}

	var config Config
	if err := l.schemaValidator.Decode(data, SchemaPath, &config); err != nil {
		return nil, fmt.Errorf(ErrMsgParseConfigFailed, path, err)
	}
	return &config, nil
}

// Validate checks struct tags, unique keys, that every prerequisite exists
// and that the prerequisite graph has no cycles.
func (l *forgeLoader) Validate(config *Config) error {
	if config == nil || len(config.Upgrades) == 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, ErrMsgNoUpgrades)
	}
	if err := validation.Structs().Struct(config); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	byKey := make(map[string]Upgrade, len(config.Upgrades))
	for _, u := range config.Upgrades {
		if _, dup := byKey[u.Key]; dup {
			return fmt.Errorf("%w: %s '%s'", ErrInvalidConfig, ErrMsgDuplicateUpgrade, u.Key)
		}
		byKey[u.Key] = u
	}

	for _, u := range config.Upgrades {
		for req := range u.Requires {
			if _, ok := byKey[req]; !ok {
				return fmt.Errorf("%w: '%s' %s '%s'", ErrInvalidConfig, u.Key, ErrMsgUnknownRequire, req)
			}
		}
	}

	const (
		unvisited = iota
		visiting
		done
	)
	state := make(map[string]int, len(byKey))
	var visit func(key string) error
	visit = func(key string) error {
		switch state[key] {
		case visiting:
			return fmt.Errorf("%w: %s through '%s'", ErrInvalidConfig, ErrMsgRequireCycle, key)
		case done:
			return nil
		}
		state[key] = visiting
		for req := range byKey[key].Requires {
			if err := visit(req); err != nil {
				return err
			}
		}
		state[key] = done
		return nil
	}
	for _, u := range config.Upgrades {
		if err := visit(u.Key); err != nil {
			return err
		}
	}
	return nil
}

// Catalog is the read-only upgrade tree in file order.
type Catalog struct {
	upgrades map[string]Upgrade
	order    []string
}

// NewCatalog indexes a validated config.
func NewCatalog(config *Config) *Catalog {
	c := &Catalog{
		upgrades: make(map[string]Upgrade, len(config.Upgrades)),
		order:    make([]string, 0, len(config.Upgrades)),
	}
	for _, u := range config.Upgrades {
		c.upgrades[u.Key] = u
		c.order = append(c.order, u.Key)
	}
	return c
}

// LoadCatalog loads, validates and indexes an upgrade file.
func LoadCatalog(path string, v validation.SchemaValidator) (*Catalog, error) {
	loader := NewLoader(v)
	config, err := loader.Load(path)
	if err != nil {
		return nil, err
	}
	if err := loader.Validate(config); err != nil {
		return nil, err
	}
	return NewCatalog(config), nil
}

// Get returns the upgrade for key.
func (c *Catalog) Get(key string) (Upgrade, bool) {
	u, ok := c.upgrades[key]
	return u, ok
}

// Upgrades returns every upgrade in file order.
func (c *Catalog) Upgrades() []Upgrade {
	out := make([]Upgrade, 0, len(c.order))
	for _, k := range c.order {
		out = append(out, c.upgrades[k])
	}
	return out
}

// Value returns the per-purchase value of key, or 0 when it is not defined.
func (c *Catalog) Value(key string) float64 {
	return c.upgrades[key].Value
}

// Tiers returns the distinct tiers in ascending order.
func (c *Catalog) Tiers() []int {
	seen := make(map[int]bool)
	var tiers []int
	for _, u := range c.upgrades {
		if !seen[u.Tier] {
			seen[u.Tier] = true
			tiers = append(tiers, u.Tier)
		}
	}
	sort.Ints(tiers)
	return tiers
}
