package orderfile

import "github.com/modhearth/modorder/internal/domain/pause"

// Stats summarizes a persisted order.
type Stats struct {
	// SequenceCount is the number of install sequences.
	SequenceCount int
	// TotalComponents counts every entry across all sequences,
	// pause markers included.
	TotalComponents int
	// PauseCount counts entries matching the pause-token grammar.
	PauseCount int
	// ComponentCount is TotalComponents minus PauseCount.
	ComponentCount int
}

// Statistics computes the summary for an order.
func Statistics(order Order) Stats {
	stats := Stats{SequenceCount: len(order)}

	for _, entries := range order {
		stats.TotalComponents += len(entries)
		for _, entry := range entries {
			if _, ok := entry.(pause.Entry); ok {
				stats.PauseCount++
			}
		}
	}

	stats.ComponentCount = stats.TotalComponents - stats.PauseCount
	return stats
}
