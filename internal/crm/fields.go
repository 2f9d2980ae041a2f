package crm

import (
	"fmt"
	"strings"

	"github.com/rileyhilliard/crmdash/internal/errors"
)

// Field names one metric of a Snapshot.
type Field string

const (
	FieldMonthlySales         Field = "monthlySales"
	FieldCustomerSegments     Field = "customerSegments"
	FieldLeadConversion       Field = "leadConversionRate"
	FieldTotalCustomers       Field = "totalCustomers"
	FieldActiveDeals          Field = "activeDeals"
	FieldCustomerSatisfaction Field = "customerSatisfaction"
)

// Fields lists every field in display order.
var Fields = []Field{
	FieldMonthlySales,
	FieldCustomerSegments,
	FieldLeadConversion,
	FieldTotalCustomers,
	FieldActiveDeals,
	FieldCustomerSatisfaction,
}

// Bounds is an inclusive numeric range.
type Bounds struct {
	Min float64
	Max float64
}

// Contains reports whether v lies in [Min, Max].
func (b Bounds) Contains(v float64) bool {
	return v >= b.Min && v <= b.Max
}

// Generation bounds for each field.
var (
	SalesBounds        = Bounds{Min: 5000, Max: 20000}
	SegmentBounds      = Bounds{Min: 10, Max: 40}
	ConversionBounds   = Bounds{Min: 30, Max: 70}
	CustomerBounds     = Bounds{Min: 800, Max: 1500}
	DealBounds         = Bounds{Min: 30, Max: 80}
	SatisfactionBounds = Bounds{Min: 3.5, Max: 5.0}
)

// IsSequence reports whether the field holds an ordered sequence.
func (f Field) IsSequence() bool {
	switch f {
	case FieldMonthlySales, FieldCustomerSegments, FieldLeadConversion:
		return true
	}
	return false
}

// IsInteger reports whether the field only holds whole numbers.
func (f Field) IsInteger() bool {
	return f != FieldCustomerSatisfaction
}

// Len returns the fixed sequence length, or 0 for scalar fields.
func (f Field) Len() int {
	switch f {
	case FieldMonthlySales:
		return MonthCount
	case FieldCustomerSegments:
		return SegmentCount
	case FieldLeadConversion:
		return WeekdayCount
	}
	return 0
}

// Bounds returns the generation range of the field.
func (f Field) Bounds() Bounds {
	switch f {
	case FieldMonthlySales:
		return SalesBounds
	case FieldCustomerSegments:
		return SegmentBounds
	case FieldLeadConversion:
		return ConversionBounds
	case FieldTotalCustomers:
		return CustomerBounds
	case FieldActiveDeals:
		return DealBounds
	case FieldCustomerSatisfaction:
		return SatisfactionBounds
	}
	return Bounds{}
}

// fieldAliases maps accepted spellings (lowercased) to fields.
var fieldAliases = map[string]Field{
	"monthlysales":          FieldMonthlySales,
	"monthly_sales":         FieldMonthlySales,
	"sales":                 FieldMonthlySales,
	"customersegments":      FieldCustomerSegments,
	"customer_segments":     FieldCustomerSegments,
	"segments":              FieldCustomerSegments,
	"leadconversionrate":    FieldLeadConversion,
	"lead_conversion_rate":  FieldLeadConversion,
	"leadconversion":        FieldLeadConversion,
	"lead_conversion":       FieldLeadConversion,
	"conversion":            FieldLeadConversion,
	"totalcustomers":        FieldTotalCustomers,
	"total_customers":       FieldTotalCustomers,
	"customers":             FieldTotalCustomers,
	"activedeals":           FieldActiveDeals,
	"active_deals":          FieldActiveDeals,
	"deals":                 FieldActiveDeals,
	"customersatisfaction":  FieldCustomerSatisfaction,
	"customer_satisfaction": FieldCustomerSatisfaction,
	"satisfaction":          FieldCustomerSatisfaction,
}

// ParseField resolves a field name, accepting camelCase, snake_case and a few
// short forms.
func ParseField(name string) (Field, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if f, ok := fieldAliases[key]; ok {
		return f, nil
	}

	names := make([]string, len(Fields))
	for i, f := range Fields {
		names[i] = string(f)
	}
	return "", errors.New(errors.ErrField,
		fmt.Sprintf("Unknown field '%s'", name),
		"Known fields: "+strings.Join(names, ", "))
}
