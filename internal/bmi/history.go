// ABOUTME: Bounded most-recent-first calculation history
// ABOUTME: Pure insert-and-truncate over a caller-owned slice

package bmi

import "github.com/harper/bmi/internal/models"

// HistoryCapacity is the maximum number of retained history entries.
const HistoryCapacity = 5

// RecordHistory returns a new slice with entry at index 0 followed by the existing
// entries, truncated to HistoryCapacity. The input slice is not modified.
func RecordHistory(history []models.HistoryEntry, entry models.HistoryEntry) []models.HistoryEntry {
	n := len(history) + 1
	if n > HistoryCapacity {
		n = HistoryCapacity
	}
	out := make([]models.HistoryEntry, 0, n)
	out = append(out, entry)
	out = append(out, history[:n-1]...)
	return out
}
