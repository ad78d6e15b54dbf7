package jobs

import (
	"context"

	"skyledger-backend/internal/logger"
)

// PurgeExpiredInvitations deletes invitations whose expiry date has passed
// and which were never accepted.
func (jr *JobRunner) PurgeExpiredInvitations() {
	jr.runWithRecovery("PurgeExpiredInvitations", func() {
		ctx := context.Background()

		count, err := jr.store.DeleteExpiredInvitations(ctx)
		if err != nil {
			logger.Error("Failed to purge expired invitations", "error", err)
			return
		}
		logger.Info("Purged expired invitations", "count", count)
	})
}

// CleanupOrphanedAttachments removes stored receipt files that no maintenance
// entry references anymore. Orphans appear when an upload URL is issued but
// the entry is deleted, or when a receipt is replaced.
func (jr *JobRunner) CleanupOrphanedAttachments() {
	jr.runWithRecovery("CleanupOrphanedAttachments", func() {
		ctx := context.Background()

		referenced, err := jr.store.ListAttachmentKeys(ctx)
		if err != nil {
			logger.Error("Failed to list referenced attachment keys", "error", err)
			return
		}
		refSet := make(map[string]struct{}, len(referenced))
		for _, key := range referenced {
			refSet[key] = struct{}{}
		}

		stored, err := jr.storage.ListKeys(ctx)
		if err != nil {
			logger.Error("Failed to list stored attachment keys", "error", err)
			return
		}

		removed := 0
		for _, key := range stored {
			if _, ok := refSet[key]; ok {
				continue
			}
			if err := jr.storage.DeleteFile(ctx, key); err != nil {
				logger.Error("Failed to delete orphaned attachment", "key", key, "error", err)
				continue
			}
			removed++
		}
		logger.Info("Cleaned up orphaned attachments", "stored", len(stored), "removed", removed)
	})
}
