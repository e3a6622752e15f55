package postgres

// Queries
const (
	queryLoadProfile = `SELECT document FROM profiles WHERE slot = $1`

	queryUpsertProfile = `
		INSERT INTO profiles (slot, profile_id, document, shards, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (slot) DO UPDATE
		SET profile_id = EXCLUDED.profile_id,
		    document   = EXCLUDED.document,
		    shards     = EXCLUDED.shards,
		    updated_at = EXCLUDED.updated_at`

	queryDeleteProfile = `DELETE FROM profiles WHERE slot = $1`
)

// Error Messages
const (
	ErrMsgFailedToLoadProfile   = "failed to load profile"
	ErrMsgFailedToSaveProfile   = "failed to save profile"
	ErrMsgFailedToDeleteProfile = "failed to delete profile"
	ErrMsgFailedToDecodeProfile = "failed to decode profile document"
	ErrMsgInvalidProfileID      = "invalid profile id"
)

// Log Messages
const (
	LogMsgProfileSaved   = "Profile saved"
	LogMsgProfileDeleted = "Profile deleted"
)
