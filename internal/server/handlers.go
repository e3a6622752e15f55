package server

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"

	"github.com/osse101/Shardlands_Go/internal/domain"
	"github.com/osse101/Shardlands_Go/internal/forge"
)

// HealthResponse represents the response for health endpoints
type HealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// ProfileResponse is the persistent profile plus derived values.
type ProfileResponse struct {
	*domain.Profile
	DifficultyTier int `json:"difficulty_tier"`
}

// RequirementResponse is one prerequisite of a locked upgrade.
type RequirementResponse struct {
	Key     string `json:"key"`
	Name    string `json:"name"`
	Needed  int    `json:"needed"`
	Current int    `json:"current"`
}

// UpgradeResponse is one forge entry.
type UpgradeResponse struct {
	Key          string                `json:"key"`
	Name         string                `json:"name"`
	Description  string                `json:"description"`
	Cost         int                   `json:"cost"`
	Purchased    int                   `json:"purchased"`
	MaxPurchases int                   `json:"max_purchases"`
	Unlocked     bool                  `json:"unlocked"`
	Affordable   bool                  `json:"affordable"`
	Missing      []RequirementResponse `json:"missing,omitempty"`
}

// TierResponse groups the forge entries of one tier.
type TierResponse struct {
	Tier     int               `json:"tier"`
	Upgrades []UpgradeResponse `json:"upgrades"`
}

// ForgeResponse is the forge as the player would see it now.
type ForgeResponse struct {
	MemoryShards int            `json:"memory_shards"`
	Tiers        []TierResponse `json:"tiers"`
	AllMaxed     bool           `json:"all_maxed"`
}

func handleHealthz() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, HealthResponse{Status: StatusOK})
	}
}

// handleReadyz checks database connectivity when saves live in postgres.
func (s *Server) handleReadyz() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if s.dbPool == nil {
			respondJSON(w, http.StatusOK, HealthResponse{Status: StatusOK})
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), readinessTimeout)
		defer cancel()

		if err := s.dbPool.Ping(ctx); err != nil {
			slog.Error(LogMsgReadinessFailed, "error", err)
			respondJSON(w, http.StatusServiceUnavailable, HealthResponse{
				Status:  StatusUnavailable,
				Message: ErrMsgDatabaseDown,
			})
			return
		}
		respondJSON(w, http.StatusOK, HealthResponse{Status: StatusOK})
	}
}

func (s *Server) handleProfile() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p := s.profiles.Snapshot()
		if p == nil {
			respondError(w, http.StatusNotFound, ErrMsgProfileNotLoaded)
			return
		}
		respondJSON(w, http.StatusOK, ProfileResponse{Profile: p, DifficultyTier: p.DifficultyTier()})
	}
}

func (s *Server) handleStats() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p := s.profiles.Snapshot()
		if p == nil {
			respondError(w, http.StatusNotFound, ErrMsgProfileNotLoaded)
			return
		}
		respondJSON(w, http.StatusOK, p.Statistics)
	}
}

func (s *Server) handleForge() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p := s.profiles.Snapshot()
		if p == nil {
			respondError(w, http.StatusNotFound, ErrMsgProfileNotLoaded)
			return
		}
		listing := s.profiles.Catalog().Listing(p.Upgrades, p.Player.MemoryShards)
		respondJSON(w, http.StatusOK, newForgeResponse(listing, p.Player.MemoryShards))
	}
}

func newForgeResponse(listing []forge.TierListing, shards int) ForgeResponse {
	resp := ForgeResponse{
		MemoryShards: shards,
		Tiers:        make([]TierResponse, 0, len(listing)),
		AllMaxed:     len(listing) == 0,
	}
	for _, tier := range listing {
		tr := TierResponse{Tier: tier.Tier, Upgrades: make([]UpgradeResponse, 0, len(tier.Entries))}
		for _, e := range tier.Entries {
			ur := UpgradeResponse{
				Key:          e.Upgrade.Key,
				Name:         e.Upgrade.Name,
				Description:  e.Upgrade.Description,
				Cost:         e.Upgrade.Cost,
				Purchased:    e.Purchased,
				MaxPurchases: e.Upgrade.MaxPurchases,
				Unlocked:     e.Unlocked,
				Affordable:   e.Affordable,
			}
			for _, m := range e.Missing {
				ur.Missing = append(ur.Missing, RequirementResponse(m))
			}
			tr.Upgrades = append(tr.Upgrades, ur)
		}
		resp.Tiers = append(resp.Tiers, tr)
	}
	return resp
}

// bufferPool is a pool of bytes.Buffer to reduce allocations during JSON encoding
var bufferPool = sync.Pool{
	New: func() any {
		return bytes.NewBuffer(make([]byte, 0, 512))
	},
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload any) {
	buf := bufferPool.Get().(*bytes.Buffer)
	defer func() {
		buf.Reset()
		bufferPool.Put(buf)
	}()

	// Encode first so a failure can still become a 500
	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		slog.Error(LogMsgEncodeFailed, "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}
