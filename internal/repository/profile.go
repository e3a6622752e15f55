package repository

import (
	"context"

	"github.com/osse101/Shardlands_Go/internal/domain"
)

// Profile defines the interface for save slot persistence. Each
// implementation is bound to one slot when constructed.
type Profile interface {
	// Load returns domain.ErrProfileNotFound when the slot has never been saved.
	Load(ctx context.Context) (*domain.Profile, error)
	// Save overwrites the whole document.
	Save(ctx context.Context, profile *domain.Profile) error
	// Delete removes the slot. Deleting an empty slot is not an error.
	Delete(ctx context.Context) error
}
