package crm

import (
	"math"
	"testing"

	"github.com/rileyhilliard/crmdash/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(i int) *int { return &i }

func TestPlaceholder(t *testing.T) {
	s := Placeholder()

	assert.Len(t, s.MonthlySales, MonthCount)
	assert.Len(t, s.CustomerSegments, SegmentCount)
	assert.Len(t, s.LeadConversion, WeekdayCount)
	assert.Equal(t, 10000, s.MonthlySales[0])
	assert.Equal(t, 25, s.CustomerSegments[3])
	assert.Equal(t, 50, s.LeadConversion[6])
	assert.Equal(t, 1000, s.TotalCustomers)
	assert.Equal(t, 50, s.ActiveDeals)
	assert.Equal(t, 4.5, s.CustomerSatisfaction)
	assert.True(t, s.InBounds())
}

func TestSnapshot_CloneIsDeep(t *testing.T) {
	s := Placeholder()
	c := s.Clone()

	require.True(t, s.Equal(c))
	c.MonthlySales[0] = 1
	assert.Equal(t, 10000, s.MonthlySales[0])
	assert.False(t, s.Equal(c))

	var nilSnap *Snapshot
	assert.Nil(t, nilSnap.Clone())
}

func TestRandomSampler_StaysInBounds(t *testing.T) {
	for seed := uint64(1); seed <= 200; seed++ {
		s, err := NewRandomSampler(WithSeed(seed)).Generate()
		require.NoError(t, err)

		for i, v := range s.MonthlySales {
			assert.True(t, SalesBounds.Contains(float64(v)), "seed %d month %d = %d", seed, i, v)
		}
		for _, v := range s.CustomerSegments {
			assert.True(t, SegmentBounds.Contains(float64(v)))
		}
		for _, v := range s.LeadConversion {
			assert.True(t, ConversionBounds.Contains(float64(v)))
		}
		assert.True(t, CustomerBounds.Contains(float64(s.TotalCustomers)))
		assert.True(t, DealBounds.Contains(float64(s.ActiveDeals)))
		assert.True(t, SatisfactionBounds.Contains(s.CustomerSatisfaction))
		assert.InDelta(t, math.Round(s.CustomerSatisfaction*10)/10, s.CustomerSatisfaction, 1e-9,
			"satisfaction should have one decimal place")
		assert.True(t, s.InBounds())
	}
}

func TestRandomSampler_SeedIsDeterministic(t *testing.T) {
	a, err := NewRandomSampler(WithSeed(42)).Generate()
	require.NoError(t, err)
	b, err := NewRandomSampler(WithSeed(42)).Generate()
	require.NoError(t, err)

	assert.True(t, a.Equal(b))
	assert.Equal(t, uint64(42), NewRandomSampler(WithSeed(42)).Seed())
}

func TestRandomSampler_ReplacesWholesale(t *testing.T) {
	s := NewRandomSampler(WithSeed(7))
	a, err := s.Generate()
	require.NoError(t, err)
	b, err := s.Generate()
	require.NoError(t, err)

	assert.NotSame(t, a, b)
	assert.False(t, a.Equal(b))
}

func TestRandomSampler_FailureRate(t *testing.T) {
	always := NewRandomSampler(WithSeed(3), WithFailureRate(1))
	snap, err := always.Generate()
	assert.Nil(t, snap)
	require.Error(t, err)
	assert.True(t, IsGenerationFailure(err))

	never := NewRandomSampler(WithSeed(3), WithFailureRate(0))
	_, err = never.Generate()
	assert.NoError(t, err)

	clamped := NewRandomSampler(WithFailureRate(5))
	assert.Equal(t, 1.0, clamped.failureRate)
}

func TestRandomSampler_RecoversPanic(t *testing.T) {
	s := NewRandomSampler(WithSeed(1))
	s.rng = nil // any draw now panics

	snap, err := s.Generate()
	assert.Nil(t, snap)
	require.Error(t, err)
	assert.True(t, IsGenerationFailure(err))
	assert.Contains(t, err.Error(), "sampler panic")
}

func TestSamplerFunc(t *testing.T) {
	want := Placeholder()
	var s Sampler = SamplerFunc(func() (*Snapshot, error) { return want, nil })

	got, err := s.Generate()
	require.NoError(t, err)
	assert.Same(t, want, got)
}

func TestParseField(t *testing.T) {
	tests := []struct {
		in   string
		want Field
	}{
		{"monthlySales", FieldMonthlySales},
		{"monthly_sales", FieldMonthlySales},
		{"customerSegments", FieldCustomerSegments},
		{"leadConversionRate", FieldLeadConversion},
		{"leadConversion", FieldLeadConversion},
		{" totalCustomers ", FieldTotalCustomers},
		{"ACTIVEDEALS", FieldActiveDeals},
		{"satisfaction", FieldCustomerSatisfaction},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseField(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := ParseField("revenue")
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrField))
	assert.Contains(t, err.Error(), "monthlySales")
}

func TestField_Shape(t *testing.T) {
	assert.True(t, FieldMonthlySales.IsSequence())
	assert.False(t, FieldActiveDeals.IsSequence())
	assert.Equal(t, 12, FieldMonthlySales.Len())
	assert.Equal(t, 4, FieldCustomerSegments.Len())
	assert.Equal(t, 7, FieldLeadConversion.Len())
	assert.Equal(t, 0, FieldTotalCustomers.Len())
	assert.False(t, FieldCustomerSatisfaction.IsInteger())
	assert.Equal(t, SalesBounds, FieldMonthlySales.Bounds())
	assert.Equal(t, SatisfactionBounds, FieldCustomerSatisfaction.Bounds())
	assert.Equal(t, Bounds{}, Field("revenue").Bounds())
}

func TestSnapshot_With(t *testing.T) {
	base := Placeholder()

	t.Run("index replaces one element", func(t *testing.T) {
		out, err := base.With(FieldMonthlySales, intPtr(3), 99999)
		require.NoError(t, err)
		assert.Equal(t, 99999, out.MonthlySales[3])
		for i, v := range out.MonthlySales {
			if i != 3 {
				assert.Equal(t, base.MonthlySales[i], v)
			}
		}
		assert.Equal(t, 10000, base.MonthlySales[3], "receiver must not change")
	})

	t.Run("scalar replace", func(t *testing.T) {
		out, err := base.With(FieldCustomerSatisfaction, nil, 2.2)
		require.NoError(t, err)
		assert.Equal(t, 2.2, out.CustomerSatisfaction)

		out, err = base.With(FieldActiveDeals, nil, 5)
		require.NoError(t, err)
		assert.Equal(t, 5, out.ActiveDeals)
	})

	t.Run("whole sequence replace", func(t *testing.T) {
		out, err := base.With(FieldCustomerSegments, nil, 1, 2, 3, 4)
		require.NoError(t, err)
		assert.Equal(t, []int{1, 2, 3, 4}, out.CustomerSegments)
	})

	t.Run("large values that fit are kept exactly", func(t *testing.T) {
		out, err := base.With(FieldTotalCustomers, nil, 1e18)
		require.NoError(t, err)
		assert.Equal(t, 1_000_000_000_000_000_000, out.TotalCustomers)
	})

	t.Run("out of bounds values are allowed", func(t *testing.T) {
		out, err := base.With(FieldLeadConversion, intPtr(0), 250)
		require.NoError(t, err)
		assert.Equal(t, 250, out.LeadConversion[0])
		assert.False(t, out.InBounds())
	})

	violations := []struct {
		name   string
		field  Field
		index  *int
		values []float64
	}{
		{"index past end", FieldMonthlySales, intPtr(12), []float64{1}},
		{"negative index", FieldMonthlySales, intPtr(-1), []float64{1}},
		{"index on scalar", FieldTotalCustomers, intPtr(0), []float64{1}},
		{"short sequence", FieldCustomerSegments, nil, []float64{1, 2}},
		{"long sequence", FieldLeadConversion, nil, []float64{1, 2, 3, 4, 5, 6, 7, 8}},
		{"fraction in integer field", FieldActiveDeals, nil, []float64{1.5}},
		{"two values for scalar", FieldTotalCustomers, nil, []float64{1, 2}},
		{"two values for element", FieldMonthlySales, intPtr(1), []float64{1, 2}},
		{"nan", FieldCustomerSatisfaction, nil, []float64{math.NaN()}},
		{"scalar past int range", FieldTotalCustomers, nil, []float64{1e20}},
		{"element below int range", FieldMonthlySales, intPtr(3), []float64{-1e19}},
		{"sequence value past int range", FieldCustomerSegments, nil, []float64{1, 2, 3, math.MaxInt64}},
		{"unknown field", Field("revenue"), nil, []float64{1}},
	}
	for _, tt := range violations {
		t.Run(tt.name, func(t *testing.T) {
			out, err := base.With(tt.field, tt.index, tt.values...)
			assert.Nil(t, out)
			require.Error(t, err)
			assert.True(t, errors.IsCode(err, errors.ErrField))
		})
	}
}
