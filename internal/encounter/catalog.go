package encounter

import (
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/osse101/Shardlands_Go/internal/domain"
	"github.com/osse101/Shardlands_Go/internal/validation"
)

// ErrInvalidConfig is returned when event content fails semantic checks.
var ErrInvalidConfig = errors.New("invalid event configuration")

// SpecialReward names an extra effect granted by a successful choice.
type SpecialReward string

const (
	RewardNone        SpecialReward = ""
	RewardHealthBoost SpecialReward = "health_boost"
	RewardKnowledge   SpecialReward = "knowledge"
	RewardTreasure    SpecialReward = "treasure"
	RewardPower       SpecialReward = "power"
	RewardShards      SpecialReward = "shards"
	RewardTime        SpecialReward = "time"
)

// Valid reports whether r is one of the known rewards (or none).
func (r SpecialReward) Valid() bool {
	switch r {
	case RewardNone, RewardHealthBoost, RewardKnowledge, RewardTreasure, RewardPower, RewardShards, RewardTime:
		return true
	default:
		return false
	}
}

// Choice is one option offered by an event.
type Choice struct {
	Description   string        `json:"description"`
	SuccessText   string        `json:"success_text"`
	FailureText   string        `json:"failure_text"`
	SuccessChance float64       `json:"success_chance"`
	ShardReward   int           `json:"shard_reward"`
	SpecialReward SpecialReward `json:"special_reward,omitempty"`
}

// Event is a fixed narrative encounter.
type Event struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Difficulty  int      `json:"difficulty"`
	Choices     []Choice `json:"choices"`
}

// Config is the on-disk events document.
type Config struct {
	Version     string  `json:"version"`
	Description string  `json:"description"`
	Events      []Event `json:"events"`
}

// Loader reads and checks event content
type Loader interface {
	Load(path string) (*Config, error)
	Validate(config *Config) error
}

type eventLoader struct {
	schemaValidator validation.SchemaValidator
}

// NewLoader creates a Loader backed by the JSON schema validator
func NewLoader(v validation.SchemaValidator) Loader {
	return &eventLoader{schemaValidator: v}
}

func (l *eventLoader) Load(path string) (*Config, error) {
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

func (l *eventLoader) Validate(config *Config) error {
	if config == nil || len(config.Events) == 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, ErrMsgNoEvents)
	}

	seen := make(map[string]bool, len(config.Events))
	for _, ev := range config.Events {
		if seen[ev.ID] {
			return fmt.Errorf("%w: %s '%s'", ErrInvalidConfig, ErrMsgDuplicateEvent, ev.ID)
		}
		seen[ev.ID] = true

		if len(ev.Choices) == 0 {
			return fmt.Errorf("%w: event '%s' %s", ErrInvalidConfig, ev.ID, ErrMsgNoChoices)
		}
		for i, c := range ev.Choices {
			if !c.SpecialReward.Valid() {
				return fmt.Errorf("%w: event '%s' choice %d: unknown special reward %q", ErrInvalidConfig, ev.ID, i+1, c.SpecialReward)
			}
			if c.SuccessChance < 0 || c.SuccessChance > 1 {
				return fmt.Errorf("%w: event '%s' choice %d: success chance out of range", ErrInvalidConfig, ev.ID, i+1)
			}
		}
	}
	return nil
}

// Catalog is the read-only event table, keyed by event id.
type Catalog struct {
	events map[string]Event
}

// NewCatalog indexes a validated config.
func NewCatalog(config *Config) *Catalog {
	c := &Catalog{events: make(map[string]Event, len(config.Events))}
	for _, ev := range config.Events {
		c.events[ev.ID] = ev
	}
	return c
}

// LoadCatalog loads, validates and indexes an events file.
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

// Get returns the event with the given id.
func (c *Catalog) Get(id string) (Event, error) {
	ev, ok := c.events[id]
	if !ok {
		return Event{}, fmt.Errorf("%w: %s", domain.ErrEventNotFound, id)
	}
	return ev, nil
}

// IDs returns every event id in sorted order.
func (c *Catalog) IDs() []string {
	ids := make([]string, 0, len(c.events))
	for id := range c.events {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Len returns the number of events.
func (c *Catalog) Len() int {
	return len(c.events)
}
