package storage

import (
	"encoding/json"
	"io"
	"os"

	"github.com/san-kum/quadlab/internal/experiment"
	"github.com/san-kum/quadlab/internal/quad"
)

type ExportData struct {
	RunMetadata
	Trace []quad.Point `json:"trace"`
}

func NewExportData(id string, res *experiment.Result) ExportData {
	trace := res.Report.Trace
	if trace == nil {
		trace = []quad.Point{}
	}
	return ExportData{
		RunMetadata: newMetadata(id, res),
		Trace:       trace,
	}
}

func ExportJSON(path string, data ExportData) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	return WriteJSON(file, data)
}

func WriteJSON(w io.Writer, data ExportData) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

// Export bundles a stored run with its trace.
func (s *Store) Export(runID string) (ExportData, error) {
	meta, err := s.Load(runID)
	if err != nil {
		return ExportData{}, err
	}
	trace, err := s.LoadTrace(runID)
	if err != nil {
		return ExportData{}, err
	}
	return ExportData{RunMetadata: *meta, Trace: trace}, nil
}
