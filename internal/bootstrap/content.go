package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/osse101/Shardlands_Go/internal/config"
	"github.com/osse101/Shardlands_Go/internal/dialogue"
	"github.com/osse101/Shardlands_Go/internal/encounter"
	"github.com/osse101/Shardlands_Go/internal/event"
	"github.com/osse101/Shardlands_Go/internal/forge"
	"github.com/osse101/Shardlands_Go/internal/lootbox"
	"github.com/osse101/Shardlands_Go/internal/run"
	"github.com/osse101/Shardlands_Go/internal/utils"
	"github.com/osse101/Shardlands_Go/internal/validation"
	"github.com/osse101/Shardlands_Go/internal/world"
)

// Content is the game data loaded from configs/ at startup.
type Content struct {
	Forge    *forge.Catalog
	Events   *encounter.Catalog
	Dialogue *dialogue.Tree
}

// ContentPaths locates the content files.
type ContentPaths struct {
	Forge    string
	Events   string
	Dialogue string
}

// DefaultContentPaths are relative to the working directory.
func DefaultContentPaths() ContentPaths {
	return ContentPaths{
		Forge:    forge.ConfigPath,
		Events:   encounter.ConfigPath,
		Dialogue: dialogue.ConfigPath,
	}
}

// LoadContent reads and validates every content file.
func LoadContent(paths ContentPaths) (*Content, error) {
	v := validation.NewSchemaValidator()

	catalog, err := forge.LoadCatalog(paths.Forge, v)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedLoadForge, err)
	}

	events, err := encounter.LoadCatalog(paths.Events, v)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedLoadEvents, err)
	}

	tree, err := dialogue.LoadTree(paths.Dialogue)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedLoadDialogue, err)
	}

	slog.Info(LogMsgContentLoaded,
		"upgrades", len(catalog.Upgrades()),
		"events", events.Len(),
		"dialogue_nodes", len(tree.NodeIDs()))

	return &Content{Forge: catalog, Events: events, Dialogue: tree}, nil
}

// RunDeps builds the per-session run dependencies. A zero SEED seeds from
// the clock.
func (c *Content) RunDeps(cfg *config.Config, bus event.Bus) run.Deps {
	rng := utils.NewRand(cfg.Seed)
	loot := lootbox.NewGenerator(rng)
	return run.Deps{
		World:      world.NewGenerator(cfg.WorldWidth, cfg.WorldDepth, rng, loot),
		Loot:       loot,
		Encounters: encounter.NewEngine(c.Events, rng),
		Forge:      c.Forge,
		Dialogue:   c.Dialogue,
		Bus:        bus,
		Rng:        rng,
		Capacity:   cfg.InventoryCapacity,
	}
}
