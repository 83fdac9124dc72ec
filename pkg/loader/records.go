// Package loader reads the CSV inputs of a modal network (od pairs,
// links, parameters, paths), validates them, and assembles a
// network.Network ready for derivation.
package loader

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// validate is a singleton validator instance
var validate *validator.Validate

func init() {
	validate = validator.New()
}

// ODRecord is one row of the od pair input file.
type ODRecord struct {
	ID       string  `validate:"required"`
	Tons     float64 `validate:"gte=0"`
	Category int     `validate:"gte=0"`
}

// LinkRecord is one row of the link input file. The same link id may
// appear on several rows with different gauges.
type LinkRecord struct {
	ID       string  `validate:"required"`
	Distance float64 `validate:"gt=0"`
	Gauge    string  `validate:"required"`
}

// ParamRecord is one row of the parameter input file.
type ParamRecord struct {
	ID          string
	Value       float64
	Description string
}

// PathRecord binds an od pair id to a node path on a given gauge.
type PathRecord struct {
	ID    string `validate:"required"`
	Path  string `validate:"required"`
	Gauge string `validate:"required"`
}

func validateRecord(kind string, line int, rec any) error {
	if err := validate.Struct(rec); err != nil {
		return fmt.Errorf("%s record at line %d: %w", kind, line, err)
	}
	return nil
}
