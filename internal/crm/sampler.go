package crm

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/rileyhilliard/crmdash/internal/errors"
)

// Sampler produces a fresh metrics snapshot.
// The only failure is a GenerationFailure (errors.ErrGenerate).
type Sampler interface {
	Generate() (*Snapshot, error)
}

// SamplerFunc adapts a plain function to the Sampler interface.
type SamplerFunc func() (*Snapshot, error)

// Generate calls f.
func (f SamplerFunc) Generate() (*Snapshot, error) {
	return f()
}

// RandomSampler draws every field independently from a seeded PCG source.
type RandomSampler struct {
	rng         *rand.Rand
	seed        uint64
	failureRate float64
}

// SamplerOption configures a RandomSampler.
type SamplerOption func(*RandomSampler)

// WithSeed makes the sampler deterministic. Zero keeps a random seed.
func WithSeed(seed uint64) SamplerOption {
	return func(s *RandomSampler) {
		if seed != 0 {
			s.seed = seed
		}
	}
}

// WithFailureRate sets the probability (0-1) that a draw fails with a
// simulated resource failure.
func WithFailureRate(p float64) SamplerOption {
	return func(s *RandomSampler) {
		s.failureRate = math.Max(0, math.Min(1, p))
	}
}

// NewRandomSampler creates a sampler.
func NewRandomSampler(opts ...SamplerOption) *RandomSampler {
	s := &RandomSampler{seed: rand.Uint64()}
	for _, opt := range opts {
		opt(s)
	}
	s.rng = rand.New(rand.NewPCG(s.seed, s.seed^0x9e3779b97f4a7c15))
	return s
}

// Seed returns the seed in use, so a run can be reproduced.
func (s *RandomSampler) Seed() uint64 {
	return s.seed
}

// Generate draws a new snapshot. Panics raised while sampling are recovered
// and reported as a GenerationFailure.
func (s *RandomSampler) Generate() (snap *Snapshot, err error) {
	defer func() {
		if r := recover(); r != nil {
			snap = nil
			err = GenerationFailure(fmt.Errorf("sampler panic: %v", r))
		}
	}()

	if s.failureRate > 0 && s.rng.Float64() < s.failureRate {
		return nil, GenerationFailure(fmt.Errorf("simulated resource exhaustion"))
	}

	return &Snapshot{
		MonthlySales:         s.intSeries(MonthCount, SalesBounds),
		CustomerSegments:     s.intSeries(SegmentCount, SegmentBounds),
		LeadConversion:       s.intSeries(WeekdayCount, ConversionBounds),
		TotalCustomers:       s.intIn(CustomerBounds),
		ActiveDeals:          s.intIn(DealBounds),
		CustomerSatisfaction: s.decimalIn(SatisfactionBounds),
	}, nil
}

// intIn draws an integer uniformly from the inclusive range b.
func (s *RandomSampler) intIn(b Bounds) int {
	lo, hi := int(b.Min), int(b.Max)
	return lo + s.rng.IntN(hi-lo+1)
}

func (s *RandomSampler) intSeries(n int, b Bounds) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = s.intIn(b)
	}
	return out
}

// decimalIn draws uniformly from b and rounds to one decimal place.
// Rounding cannot leave the range because both ends are whole tenths.
func (s *RandomSampler) decimalIn(b Bounds) float64 {
	v := b.Min + s.rng.Float64()*(b.Max-b.Min)
	return math.Round(v*10) / 10
}

// GenerationFailure wraps cause as the single sampler failure kind.
func GenerationFailure(cause error) error {
	return errors.WrapWithCode(cause, errors.ErrGenerate,
		"CRM data generation failed",
		"Press r to try again")
}

// IsGenerationFailure reports whether err is a GenerationFailure.
func IsGenerationFailure(err error) bool {
	return errors.IsCode(err, errors.ErrGenerate)
}
