package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/Shardlands_Go/internal/domain"
	"github.com/osse101/Shardlands_Go/internal/logger"
	"github.com/osse101/Shardlands_Go/internal/repository"
)

// ProfileRepository stores one save slot as a JSONB document row.
type ProfileRepository struct {
	pool *pgxpool.Pool
	slot string
	now  func() time.Time
}

var _ repository.Profile = (*ProfileRepository)(nil)

// NewProfileRepository creates a repository bound to slot.
func NewProfileRepository(pool *pgxpool.Pool, slot string) *ProfileRepository {
	return &ProfileRepository{pool: pool, slot: slot, now: time.Now}
}

func (r *ProfileRepository) Load(ctx context.Context) (*domain.Profile, error) {
	var doc []byte
	err := r.pool.QueryRow(ctx, queryLoadProfile, r.slot).Scan(&doc)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrProfileNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToLoadProfile, err)
	}

	var p domain.Profile
	if err := json.Unmarshal(doc, &p); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToDecodeProfile, err)
	}
	if p.Upgrades == nil {
		p.Upgrades = make(map[string]int)
	}
	return &p, nil
}

func (r *ProfileRepository) Save(ctx context.Context, profile *domain.Profile) error {
	id, err := uuid.Parse(profile.ID)
	if err != nil {
		return fmt.Errorf("%s %q: %w", ErrMsgInvalidProfileID, profile.ID, err)
	}

	profile.UpdatedAt = r.now().UTC()
	doc, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToSaveProfile, err)
	}

	if _, err := r.pool.Exec(ctx, queryUpsertProfile, r.slot, id.String(), doc, profile.Player.MemoryShards, profile.UpdatedAt); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToSaveProfile, err)
	}

	logger.FromContext(ctx).Debug(LogMsgProfileSaved, "slot", r.slot, "shards", profile.Player.MemoryShards)
	return nil
}

func (r *ProfileRepository) Delete(ctx context.Context) error {
	if _, err := r.pool.Exec(ctx, queryDeleteProfile, r.slot); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToDeleteProfile, err)
	}
	logger.FromContext(ctx).Info(LogMsgProfileDeleted, "slot", r.slot)
	return nil
}
