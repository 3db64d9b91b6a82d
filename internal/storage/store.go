package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/pkg/errors"
)

// Store persists per-run simulation statistics under a base directory: one
// directory per run holding metadata.json and population.csv. The board
// itself is never stored; only its tick-by-tick statistics are.
type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

// RunMetadata describes one completed simulation run.
type RunMetadata struct {
	ID             string    `json:"id"`
	Timestamp      time.Time `json:"timestamp"`
	Rows           int       `json:"rows"`
	Cols           int       `json:"cols"`
	TicksPerSecond int       `json:"ticks_per_second"`
	Pattern        string    `json:"pattern"`
	Seed           int64     `json:"seed"`
	TotalTicks     int       `json:"total_ticks"`
	FinalAlive     int       `json:"final_alive"`
	FixedPoint     bool      `json:"fixed_point"`
}

// TickRecord is one row of a run's population history.
type TickRecord struct {
	Tick    int
	Changed int
	Alive   int
}

// Save writes a run's metadata and history, assigning and returning the run
// ID. The caller fills everything in meta except ID and Timestamp.
func (s *Store) Save(meta RunMetadata, history []TickRecord) (string, error) {
	label := meta.Pattern
	if label == "" {
		label = "soup"
	}
	runID := fmt.Sprintf("%s_%d", label, time.Now().Unix())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", errors.Wrapf(err, "[Save] failed to create run dir: %+v", runDir)
	}

	meta.ID = runID
	meta.Timestamp = time.Now()

	metaFile, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return "", errors.Wrap(err, "[Save] failed to create metadata file")
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", errors.Wrap(err, "[Save] failed to encode metadata")
	}

	csvFile, err := os.Create(filepath.Join(runDir, "population.csv"))
	if err != nil {
		return "", errors.Wrap(err, "[Save] failed to create history file")
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	if err := w.Write([]string{"tick", "changed", "alive"}); err != nil {
		return "", errors.Wrap(err, "[Save] failed to write header")
	}
	for _, rec := range history {
		row := []string{
			strconv.Itoa(rec.Tick),
			strconv.Itoa(rec.Changed),
			strconv.Itoa(rec.Alive),
		}
		if err := w.Write(row); err != nil {
			return "", errors.Wrap(err, "[Save] failed to write history row")
		}
	}

	return runID, nil
}

// List returns metadata for every stored run. Entries that fail to parse are
// skipped.
func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, errors.Wrapf(err, "[List] failed to read data dir: %+v", s.baseDir)
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		data, err := os.ReadFile(filepath.Join(s.baseDir, entry.Name(), "metadata.json"))
		if err != nil {
			continue
		}

		var meta RunMetadata
		if err := json.Unmarshal(data, &meta); err != nil {
			continue
		}
		runs = append(runs, meta)
	}

	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return nil, errors.Wrapf(err, "[Load] failed to read run: %+v", runID)
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, errors.Wrapf(err, "[Load] failed to parse metadata: %+v", runID)
	}
	return &meta, nil
}

// LoadHistory reads a run's population history back from CSV.
func (s *Store) LoadHistory(runID string) ([]TickRecord, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, "population.csv"))
	if err != nil {
		return nil, errors.Wrapf(err, "[LoadHistory] failed to open history: %+v", runID)
	}
	defer file.Close()

	r := csv.NewReader(file)
	records, err := r.ReadAll()
	if err != nil {
		return nil, errors.Wrapf(err, "[LoadHistory] failed to read history: %+v", runID)
	}

	history := make([]TickRecord, 0, len(records))
	for i := 1; i < len(records); i++ {
		row := records[i]
		if len(row) != 3 {
			continue
		}
		tick, err1 := strconv.Atoi(row[0])
		changed, err2 := strconv.Atoi(row[1])
		alive, err3 := strconv.Atoi(row[2])
		if err1 != nil || err2 != nil || err3 != nil {
			continue
		}
		history = append(history, TickRecord{Tick: tick, Changed: changed, Alive: alive})
	}

	return history, nil
}
