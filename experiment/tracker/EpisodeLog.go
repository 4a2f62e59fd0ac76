package tracker

import (
	"fmt"

	"github.com/parquet-go/parquet-go"
	"github.com/parquet-go/parquet-go/compress/zstd"
	ts "github.com/samuelfneumann/gridsarsa/timestep"
)

// EpisodeRecord is a single row of an EpisodeLog
type EpisodeRecord struct {
	Episode int32   `parquet:"episode"`
	Start   int32   `parquet:"start"`
	Steps   int32   `parquet:"steps"`
	Return  float64 `parquet:"return"`
	End     string  `parquet:"end,dict"`
}

// EpisodeLog records one EpisodeRecord per finished episode and saves
// the records as a zstd-compressed Parquet file
type EpisodeLog struct {
	records       []EpisodeRecord
	start         int
	currentReturn float64
	filename      string
}

// NewEpisodeLog returns a new EpisodeLog which saves to filename
func NewEpisodeLog(filename string) *EpisodeLog {
	return &EpisodeLog{filename: filename}
}

// Track accumulates the return of the current episode and records the
// episode when its last timestep is seen
func (e *EpisodeLog) Track(t ts.TimeStep) {
	if t.Number == 0 {
		e.start = t.State
		e.currentReturn = 0
	}
	e.currentReturn += t.Reward

	if t.Last() {
		e.records = append(e.records, EpisodeRecord{
			Episode: int32(len(e.records)),
			Start:   int32(e.start),
			Steps:   int32(t.Number),
			Return:  e.currentReturn,
			End:     t.EndType().String(),
		})
	}
}

// Records returns the records of all finished episodes
func (e *EpisodeLog) Records() []EpisodeRecord {
	return e.records
}

// Save writes all records to disk
func (e *EpisodeLog) Save() error {
	if err := parquet.WriteFile(e.filename, e.records,
		parquet.Compression(&zstd.Codec{Level: zstd.SpeedBetterCompression}),
		parquet.KeyValueMetadata("schema", "episode_log_v1"),
	); err != nil {
		return fmt.Errorf("save: could not write %v: %w", e.filename, err)
	}
	return nil
}
