package model

import (
	"fmt"
	"time"
)

// FieldError names a single invalid field in a request or configuration.
type FieldError struct {
	Field   string
	Message string
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// GenerationConfig is the sole determinant of generated output: the same
// configuration always yields a byte-identical dataset.
type GenerationConfig struct {
	Seed           int64
	DatasetSize    int
	DateRangeStart time.Time // inclusive
	DateRangeEnd   time.Time // inclusive
	IncludeVAT     bool
}

// MaxDatasetSize bounds a single regeneration. It keeps the total draw
// count well under the random source's period so transaction identifiers
// cannot repeat within one dataset.
const MaxDatasetSize = 5000

// Validate returns every violated field, never just the first.
func (c GenerationConfig) Validate() []FieldError {
	var errs []FieldError
	if c.DatasetSize < 0 {
		errs = append(errs, FieldError{Field: "datasetSize", Message: "must not be negative"})
	}
	if c.DatasetSize > MaxDatasetSize {
		errs = append(errs, FieldError{Field: "datasetSize", Message: fmt.Sprintf("must not exceed %d", MaxDatasetSize)})
	}
	if c.DateRangeStart.IsZero() {
		errs = append(errs, FieldError{Field: "dateRangeStart", Message: "is required"})
	}
	if c.DateRangeEnd.IsZero() {
		errs = append(errs, FieldError{Field: "dateRangeEnd", Message: "is required"})
	}
	if !c.DateRangeStart.IsZero() && !c.DateRangeEnd.IsZero() && c.DateRangeEnd.Before(c.DateRangeStart) {
		errs = append(errs, FieldError{Field: "dateRangeEnd", Message: "must not precede dateRangeStart"})
	}
	return errs
}
