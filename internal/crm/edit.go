package crm

import (
	"fmt"
	"math"

	"github.com/rileyhilliard/crmdash/internal/errors"
)

// With returns a copy of s with one field replaced. The receiver is never
// modified.
//
// With an index, f must be a sequence field, the index must lie inside the
// existing sequence, and exactly one value is taken. Without an index, scalar
// fields take one value and sequence fields take a full replacement of the
// same length. Values are not checked against the generation bounds, but
// integer fields reject values an int can't hold.
func (s *Snapshot) With(f Field, index *int, values ...float64) (*Snapshot, error) {
	if f.Len() == 0 && !isScalar(f) {
		return nil, errors.New(errors.ErrField,
			fmt.Sprintf("Unknown field '%s'", f),
			"Use one of the dashboard metric names")
	}

	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, errors.New(errors.ErrField,
				fmt.Sprintf("'%v' is not a usable value for %s", v, f),
				"Enter a finite number")
		}
		if f.IsInteger() && v != math.Trunc(v) {
			return nil, errors.New(errors.ErrField,
				fmt.Sprintf("%s only holds whole numbers, got %v", f, v),
				"Drop the decimal part")
		}
		if f.IsInteger() && (v < math.MinInt64 || v >= math.MaxInt64) {
			return nil, errors.New(errors.ErrField,
				fmt.Sprintf("%v is too large for %s", v, f),
				"Enter a smaller whole number")
		}
	}

	out := s.Clone()

	if index != nil {
		if !f.IsSequence() {
			return nil, errors.New(errors.ErrField,
				fmt.Sprintf("%s is not a sequence, so it can't be indexed", f),
				fmt.Sprintf("Set it directly: %s=<value>", f))
		}
		seq := out.Series(f)
		if *index < 0 || *index >= len(seq) {
			return nil, errors.New(errors.ErrField,
				fmt.Sprintf("Index %d is out of range for %s", *index, f),
				fmt.Sprintf("Use an index between 0 and %d", len(seq)-1))
		}
		if len(values) != 1 {
			return nil, errors.New(errors.ErrField,
				fmt.Sprintf("%s[%d] takes exactly one value, got %d", f, *index, len(values)),
				"")
		}
		seq[*index] = int(values[0])
		return out, nil
	}

	if f.IsSequence() {
		seq := out.Series(f)
		if len(values) != len(seq) {
			return nil, errors.New(errors.ErrField,
				fmt.Sprintf("%s holds %d values, got %d", f, len(seq), len(values)),
				"Replace one position with an index, or pass every value")
		}
		for i, v := range values {
			seq[i] = int(v)
		}
		return out, nil
	}

	if len(values) != 1 {
		return nil, errors.New(errors.ErrField,
			fmt.Sprintf("%s takes exactly one value, got %d", f, len(values)),
			"")
	}
	switch f {
	case FieldTotalCustomers:
		out.TotalCustomers = int(values[0])
	case FieldActiveDeals:
		out.ActiveDeals = int(values[0])
	case FieldCustomerSatisfaction:
		out.CustomerSatisfaction = values[0]
	}
	return out, nil
}

func isScalar(f Field) bool {
	switch f {
	case FieldTotalCustomers, FieldActiveDeals, FieldCustomerSatisfaction:
		return true
	}
	return false
}
