// Package crm holds the CRM metrics snapshot and the synthetic sampler that
// produces it.
package crm

import "slices"

// Sequence lengths are fixed for the lifetime of the dashboard.
const (
	MonthCount   = 12
	SegmentCount = 4
	WeekdayCount = 7
)

// Snapshot is one immutable bundle of dashboard metrics.
// Once a Snapshot has been handed out it must not be mutated; changes are
// made by building a new Snapshot (see Clone and With).
type Snapshot struct {
	MonthlySales         []int   `json:"monthlySales"`
	CustomerSegments     []int   `json:"customerSegments"`
	LeadConversion       []int   `json:"leadConversionRate"`
	TotalCustomers       int     `json:"totalCustomers"`
	ActiveDeals          int     `json:"activeDeals"`
	CustomerSatisfaction float64 `json:"customerSatisfaction"`
}

// Placeholder returns the snapshot shown before the first refresh.
func Placeholder() *Snapshot {
	return &Snapshot{
		MonthlySales:         repeat(10000, MonthCount),
		CustomerSegments:     repeat(25, SegmentCount),
		LeadConversion:       repeat(50, WeekdayCount),
		TotalCustomers:       1000,
		ActiveDeals:          50,
		CustomerSatisfaction: 4.5,
	}
}

// Clone returns a deep copy.
func (s *Snapshot) Clone() *Snapshot {
	if s == nil {
		return nil
	}
	c := *s
	c.MonthlySales = slices.Clone(s.MonthlySales)
	c.CustomerSegments = slices.Clone(s.CustomerSegments)
	c.LeadConversion = slices.Clone(s.LeadConversion)
	return &c
}

// Equal reports whether two snapshots hold the same values.
func (s *Snapshot) Equal(o *Snapshot) bool {
	if s == nil || o == nil {
		return s == o
	}
	return slices.Equal(s.MonthlySales, o.MonthlySales) &&
		slices.Equal(s.CustomerSegments, o.CustomerSegments) &&
		slices.Equal(s.LeadConversion, o.LeadConversion) &&
		s.TotalCustomers == o.TotalCustomers &&
		s.ActiveDeals == o.ActiveDeals &&
		s.CustomerSatisfaction == o.CustomerSatisfaction
}

// Series returns the sequence stored under f, or nil for scalar fields.
// The returned slice is the snapshot's own storage; treat it as read-only.
func (s *Snapshot) Series(f Field) []int {
	switch f {
	case FieldMonthlySales:
		return s.MonthlySales
	case FieldCustomerSegments:
		return s.CustomerSegments
	case FieldLeadConversion:
		return s.LeadConversion
	default:
		return nil
	}
}

// Scalar returns the value stored under a scalar field.
func (s *Snapshot) Scalar(f Field) (float64, bool) {
	switch f {
	case FieldTotalCustomers:
		return float64(s.TotalCustomers), true
	case FieldActiveDeals:
		return float64(s.ActiveDeals), true
	case FieldCustomerSatisfaction:
		return s.CustomerSatisfaction, true
	default:
		return 0, false
	}
}

// InBounds reports whether every field lies inside its generation bound and
// every sequence has its fixed length. Manual edits may legitimately leave a
// snapshot out of bounds; this is a check, not an invariant enforced on edit.
func (s *Snapshot) InBounds() bool {
	check := func(vals []int, n int, b Bounds) bool {
		if len(vals) != n {
			return false
		}
		for _, v := range vals {
			if !b.Contains(float64(v)) {
				return false
			}
		}
		return true
	}
	return check(s.MonthlySales, MonthCount, SalesBounds) &&
		check(s.CustomerSegments, SegmentCount, SegmentBounds) &&
		check(s.LeadConversion, WeekdayCount, ConversionBounds) &&
		CustomerBounds.Contains(float64(s.TotalCustomers)) &&
		DealBounds.Contains(float64(s.ActiveDeals)) &&
		SatisfactionBounds.Contains(s.CustomerSatisfaction)
}

func repeat(v, n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = v
	}
	return out
}
