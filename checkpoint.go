package gridsearch

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// checkpoint is a write-only progress artifact; nothing reads it back.
type checkpoint struct {
	TotalProcessed int    `json:"totalProcessed"`
	TotalRelevant  int    `json:"totalRelevant"`
	Timestamp      string `json:"timestamp"`
}

// WriteCheckpoint snapshots the run counters to checkpoint.json under dir,
// replacing any previous snapshot.
func WriteCheckpoint(dir string, processed, relevant int) error {
	b, err := json.Marshal(checkpoint{
		TotalProcessed: processed,
		TotalRelevant:  relevant,
		Timestamp:      time.Now().Format(time.RFC3339),
	})
	if err != nil {
		return fmt.Errorf("WriteCheckpoint: %v", err)
	}
	if err := os.WriteFile(dir+"checkpoint.json", b, 0644); err != nil {
		return fmt.Errorf("WriteCheckpoint: %v", err)
	}
	return nil
}
