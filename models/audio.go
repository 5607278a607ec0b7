package models

import (
	"fmt"
	"time"
)

// QueuedAudio is one offline practice recording awaiting upload to remote
// object storage.
//
// Invariant: a synced row always carries a non-empty StorageRef. A synced
// row observed without one (crash mid-update, legacy data) must be reset to
// pending instead of trusted.
type QueuedAudio struct {
	// ID is the local autoincrement identity of the queue row.
	ID int64 `json:"id"`

	// Data is the raw recording payload.
	Data []byte `json:"-"`

	// Filename is the remote object key. Its path segments encode
	// owner/list/word/timestamp; see AudioObjectKey.
	Filename string `json:"filename"`

	// StorageRef is the remote path returned by the upload, set once the
	// row is synced.
	StorageRef *string `json:"storage_ref,omitempty"`

	CreatedAt  time.Time `json:"created_at"`
	SyncState  SyncState `json:"sync_state"`
	RetryCount int       `json:"retry_count"`
	LastError  *string   `json:"last_error,omitempty"`
}

// AudioPatch is a partial update applied to a queued audio row.
// Nil fields are left untouched; ClearLastError resets last_error to NULL.
type AudioPatch struct {
	SyncState      *SyncState
	StorageRef     *string
	RetryCount     *int
	LastError      *string
	ClearLastError bool
}

// AudioObjectKey builds the remote storage key for a recording:
//
//	{ownerId}/{listId}/{wordId}_{timestampMillis}.{ext}
//
// The remote authorization policy inspects the first path segment to verify
// that the uploader owns it, so this exact shape is a wire contract.
func AudioObjectKey(ownerID, listID, wordID string, recordedAt time.Time, ext string) string {
	return fmt.Sprintf("%s/%s/%s_%d.%s", ownerID, listID, wordID, recordedAt.UnixMilli(), ext)
}
