// Package charts turns a metrics snapshot into chart view models and draws
// those view models in the terminal.
package charts

import (
	"slices"

	"github.com/rileyhilliard/crmdash/internal/crm"
)

// Kind identifies the chart type a view model is meant for.
type Kind string

const (
	KindBar  Kind = "bar"
	KindPie  Kind = "pie"
	KindLine Kind = "line"
)

// Fixed label sets. They never depend on data.
var (
	monthLabels   = []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}
	segmentLabels = []string{"Enterprise", "SMB", "Startup", "Individual"}
	weekdayLabels = []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}
	segmentColors = []string{"#FF6384", "#36A2EB", "#FFCE56", "#4BC0C0"}
)

// MonthLabels returns the bar chart labels, January first.
func MonthLabels() []string { return slices.Clone(monthLabels) }

// SegmentLabels returns the pie slice labels.
func SegmentLabels() []string { return slices.Clone(segmentLabels) }

// WeekdayLabels returns the line chart labels, Monday first.
func WeekdayLabels() []string { return slices.Clone(weekdayLabels) }

// SegmentColors returns the pie slice colors, one per segment.
func SegmentColors() []string { return slices.Clone(segmentColors) }

// Static styling.
const (
	SalesColor        = "rgba(75, 192, 192, 0.6)"
	ConversionColor   = "rgb(75, 192, 192)"
	ConversionTension = 0.1
)

// Options carries display flags shared by every chart kind.
type Options struct {
	Responsive bool
	ShowLegend bool
}

// Bar is the monthly sales view model.
type Bar struct {
	Title   string
	Labels  []string
	Label   string
	Data    []int
	Color   string
	Options Options
}

// Pie is the customer segments view model.
type Pie struct {
	Title   string
	Labels  []string
	Data    []int
	Colors  []string
	Options Options
}

// Line is the lead conversion view model.
type Line struct {
	Title       string
	Labels      []string
	Label       string
	Data        []int
	BorderColor string
	Tension     float64
	Fill        bool
	Options     Options
}

// Set bundles the three dashboard view models.
type Set struct {
	Bar  Bar
	Pie  Pie
	Line Line
}

// Kind implementations let callers route a view model to its renderer.
func (Bar) Kind() Kind  { return KindBar }
func (Pie) Kind() Kind  { return KindPie }
func (Line) Kind() Kind { return KindLine }

// AdaptBar projects monthly sales.
func AdaptBar(s *crm.Snapshot) Bar {
	return Bar{
		Title:   "Monthly Sales",
		Labels:  MonthLabels(),
		Label:   "Monthly Sales",
		Data:    slices.Clone(s.MonthlySales),
		Color:   SalesColor,
		Options: Options{Responsive: true, ShowLegend: false},
	}
}

// AdaptPie projects customer segments.
func AdaptPie(s *crm.Snapshot) Pie {
	return Pie{
		Title:   "Customer Segments",
		Labels:  SegmentLabels(),
		Data:    slices.Clone(s.CustomerSegments),
		Colors:  SegmentColors(),
		Options: Options{Responsive: true, ShowLegend: true},
	}
}

// AdaptLine projects the weekly lead conversion rate.
func AdaptLine(s *crm.Snapshot) Line {
	return Line{
		Title:       "Lead Conversion Rate",
		Labels:      WeekdayLabels(),
		Label:       "Lead Conversion Rate",
		Data:        slices.Clone(s.LeadConversion),
		BorderColor: ConversionColor,
		Tension:     ConversionTension,
		Fill:        false,
		Options:     Options{Responsive: true, ShowLegend: false},
	}
}

// Adapt derives every view model from s. It is a pure function of s.
func Adapt(s *crm.Snapshot) Set {
	return Set{
		Bar:  AdaptBar(s),
		Pie:  AdaptPie(s),
		Line: AdaptLine(s),
	}
}
