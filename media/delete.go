package media

import (
	"context"

	"github.com/wpmvc/helpers/internal/logger"
)

// DeleteAttachments force-deletes the given attachments through the host
// and returns the identifiers that were actually deleted, preserving input
// order. Individual failures are omitted from the result without raising an
// aggregate error; deletion is best effort by contract.
// A single identifier passed variadically forms the one-element case.
func DeleteAttachments(ctx context.Context, host Host, attachmentIDs ...int64) []int64 {
	deleted := make([]int64, 0, len(attachmentIDs))

	for _, attachmentID := range attachmentIDs {
		if err := host.DeleteAttachment(ctx, attachmentID); err != nil {
			logger.Debugf(ctx, "Attachment %d was not deleted: %v", attachmentID, err)
			continue
		}

		deleted = append(deleted, attachmentID)
	}

	return deleted
}
