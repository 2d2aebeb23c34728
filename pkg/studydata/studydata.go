// Package studydata ties the toolkit together: workbook I/O, structural and
// coverage validation, JSON conversion, and patch merging for StudyHub
// content datasets.
package studydata

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/studyhub-app/studydata-go/pkg/studydata/convert"
	"github.com/studyhub-app/studydata-go/pkg/studydata/merge"
	"github.com/studyhub-app/studydata-go/pkg/studydata/models"
	"github.com/studyhub-app/studydata-go/pkg/studydata/validate"
	"github.com/studyhub-app/studydata-go/pkg/studydata/xlsxio"
)

// Load reads a workbook from disk into a dataset.
func Load(path string) (*models.Dataset, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}
	return xlsxio.Load(path)
}

// Save writes a dataset to disk as a styled workbook.
func Save(path string, ds *models.Dataset) error {
	return xlsxio.Save(path, ds)
}

// Validate runs the structural validator.
func Validate(ds *models.Dataset) validate.Result {
	return validate.Validate(ds)
}

// ValidateCoverage runs the cross-table coverage validator.
func ValidateCoverage(ds *models.Dataset) (bool, []string) {
	return validate.ValidateCoverage(ds)
}

// ExportJSON serializes the dataset for the study-app frontend.
func ExportJSON(ds *models.Dataset, pretty bool) ([]byte, error) {
	return convert.ToJSON(ds, pretty)
}

// ImportJSON rebuilds a dataset from a previously exported document.
func ImportJSON(data []byte) (*models.Dataset, error) {
	return convert.FromJSON(data)
}

// LoadPatch parses a patch document from a JSON file.
func LoadPatch(path string) (models.Patch, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, err
	}
	var patch models.Patch
	if err := json.Unmarshal(data, &patch); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPatch, err)
	}
	return patch, nil
}

// ApplyPatch folds a patch into the dataset and returns the merged copy. The
// input dataset is not modified. Callers should re-validate afterward.
func ApplyPatch(ds *models.Dataset, patch models.Patch) (*models.Dataset, error) {
	return merge.Apply(ds, patch)
}
