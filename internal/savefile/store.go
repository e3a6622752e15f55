// Package savefile keeps the profile as a single JSON document on disk.
package savefile

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/osse101/Shardlands_Go/internal/domain"
	"github.com/osse101/Shardlands_Go/internal/logger"
	"github.com/osse101/Shardlands_Go/internal/repository"
	"github.com/osse101/Shardlands_Go/internal/utils"
)

// DefaultPath is where the save lives relative to the working directory.
const DefaultPath = "saves/save.json"

// Log messages
const (
	LogMsgProfileSaved   = "Profile saved"
	LogMsgProfileDeleted = "Profile deleted"
)

// Store reads and overwrites one save file. Writes are whole-file and not
// atomic; a crash mid-write can leave a truncated file.
type Store struct {
	path string
	now  func() time.Time
}

var _ repository.Profile = (*Store)(nil)

// NewStore creates a store for path, falling back to DefaultPath.
func NewStore(path string) *Store {
	if path == "" {
		path = DefaultPath
	}
	return &Store{path: path, now: time.Now}
}

// Path returns the file backing the store.
func (s *Store) Path() string {
	return s.path
}

func (s *Store) Load(ctx context.Context) (*domain.Profile, error) {
	var p domain.Profile
	if err := utils.LoadJSON(s.path, &p); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, err
	}
	if p.Upgrades == nil {
		p.Upgrades = make(map[string]int)
	}
	return &p, nil
}

func (s *Store) Save(ctx context.Context, profile *domain.Profile) error {
	profile.UpdatedAt = s.now().UTC()
	if err := utils.SaveJSON(s.path, profile); err != nil {
		return fmt.Errorf("failed to save profile: %w", err)
	}
	logger.FromContext(ctx).Debug(LogMsgProfileSaved, "path", s.path, "shards", profile.Player.MemoryShards)
	return nil
}

func (s *Store) Delete(ctx context.Context) error {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to delete save %s: %w", s.path, err)
	}
	logger.FromContext(ctx).Info(LogMsgProfileDeleted, "path", s.path)
	return nil
}
