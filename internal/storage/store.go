package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/san-kum/quadlab/internal/config"
	"github.com/san-kum/quadlab/internal/experiment"
	"github.com/san-kum/quadlab/internal/quad"
)

const (
	metadataFile = "metadata.json"
	traceFile    = "trace.csv"
)

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID         string        `json:"id"`
	Integrand  string        `json:"integrand"`
	Method     string        `json:"method"`
	Strategy   string        `json:"strategy"`
	A          float64       `json:"a"`
	B          float64       `json:"b"`
	Timestamp  time.Time     `json:"timestamp"`
	Params     config.Params `json:"params"`
	Output     Value         `json:"output"`
	Exact      Value         `json:"exact"`
	AbsError   Value         `json:"abs_error"`
	Evals      int           `json:"evals"`
	Iterations int           `json:"iterations"`
	Elapsed    time.Duration `json:"elapsed_ns"`
}

func newMetadata(id string, res *experiment.Result) RunMetadata {
	return RunMetadata{
		ID:         id,
		Integrand:  res.Integrand,
		Method:     res.Method,
		Strategy:   res.Report.Method,
		A:          res.A,
		B:          res.B,
		Timestamp:  time.Now(),
		Params:     res.Params,
		Output:     Value(res.Report.Output),
		Exact:      Value(res.Exact),
		AbsError:   Value(res.AbsErr),
		Evals:      res.Report.Evals,
		Iterations: res.Report.Iterations,
		Elapsed:    res.Report.Elapsed(),
	}
}

func (s *Store) Save(res *experiment.Result) (string, error) {
	runID := fmt.Sprintf("%s_%s_%s", res.Integrand, res.Method, uuid.NewString()[:8])
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	metaFile, err := os.Create(filepath.Join(runDir, metadataFile))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(newMetadata(runID, res)); err != nil {
		return "", err
	}

	if err := writeTrace(filepath.Join(runDir, traceFile), res.Report.Trace); err != nil {
		return "", err
	}

	return runID, nil
}

func writeTrace(path string, trace []quad.Point) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"x", "y"}); err != nil {
		return err
	}
	for _, p := range trace {
		row := []string{
			strconv.FormatFloat(p.X, 'g', -1, 64),
			strconv.FormatFloat(p.Y, 'g', -1, 64),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

// List returns every readable run, oldest first.
func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		runs = append(runs, *meta)
	}

	sort.Slice(runs, func(i, j int) bool {
		return runs[i].Timestamp.Before(runs[j].Timestamp)
	})
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, metadataFile))
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}

	return &meta, nil
}

func (s *Store) LoadTrace(runID string) ([]quad.Point, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, traceFile))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = 2

	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}

	points := make([]quad.Point, 0, len(records))
	for i, record := range records {
		if i == 0 {
			continue
		}
		x, err := strconv.ParseFloat(record[0], 64)
		if err != nil {
			return nil, fmt.Errorf("trace row %d: %w", i, err)
		}
		y, err := strconv.ParseFloat(record[1], 64)
		if err != nil {
			return nil, fmt.Errorf("trace row %d: %w", i, err)
		}
		points = append(points, quad.Point{X: x, Y: y})
	}

	return points, nil
}
