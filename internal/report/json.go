package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"hphpa/internal/models"

	"github.com/spf13/afero"
)

// Emitter renders an index to w
type Emitter func(w io.Writer, index *models.ViolationIndex) error

type jsonReport struct {
	Summary models.ViolationSummary `json:"summary"`
	Files   *models.ViolationIndex  `json:"files"`
}

// JSON writes the summary and the ordered violations as JSON
func JSON(w io.Writer, index *models.ViolationIndex) error {
	data, err := json.MarshalIndent(jsonReport{Summary: index.Summary(), Files: index}, "", "  ")
	if err != nil {
		return fmt.Errorf("error marshaling results to JSON: %w", err)
	}
	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}

// WriteFile renders the index with emit into the file at path
func WriteFile(fs afero.Fs, path string, emit Emitter, index *models.ViolationIndex) (err error) {
	f, err := fs.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return fmt.Errorf("error creating %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("error closing %s: %w", path, cerr)
		}
	}()

	if err := emit(f, index); err != nil {
		return fmt.Errorf("error writing %s: %w", path, err)
	}
	return nil
}
