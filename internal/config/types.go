package config

import "time"

// CurrentConfigVersion is the schema version for the config file.
// Increment when making breaking changes to the config structure.
const CurrentConfigVersion = 1

// Config represents the complete .crmdash.yaml configuration file.
type Config struct {
	Version   int             `yaml:"version" mapstructure:"version" validate:"gte=0"`
	Sampler   SamplerConfig   `yaml:"sampler" mapstructure:"sampler"`
	Animation AnimationConfig `yaml:"animation" mapstructure:"animation"`
	Display   DisplayConfig   `yaml:"display" mapstructure:"display"`
	Panels    PanelsConfig    `yaml:"panels" mapstructure:"panels"`
}

// SamplerConfig controls the synthetic data generator.
type SamplerConfig struct {
	// Seed makes runs reproducible. 0 picks a random seed.
	Seed uint64 `yaml:"seed" mapstructure:"seed"`

	// FailureRate is the probability that a generation fails on purpose.
	FailureRate float64 `yaml:"failure_rate" mapstructure:"failure_rate" validate:"gte=0,lte=1"`
}

// AnimationConfig controls refresh and alert transitions.
type AnimationConfig struct {
	// Enabled toggles all transitions.
	Enabled bool `yaml:"enabled" mapstructure:"enabled"`

	// FPS is the frame rate of the dashboard while something animates.
	FPS int `yaml:"fps" mapstructure:"fps" validate:"gte=1,lte=120"`

	Refresh RefreshAnimation `yaml:"refresh" mapstructure:"refresh"`
	Alert   AlertAnimation   `yaml:"alert" mapstructure:"alert"`
}

// RefreshAnimation is the staggered chart entrance after new data arrives.
type RefreshAnimation struct {
	// Duration of each chart's fade and slide.
	Duration time.Duration `yaml:"duration" mapstructure:"duration" validate:"gt=0"`

	// Stagger is the extra delay per chart, in render order.
	Stagger time.Duration `yaml:"stagger" mapstructure:"stagger" validate:"gte=0"`

	// Offset is the translateY start value, in animation units.
	Offset float64 `yaml:"offset" mapstructure:"offset" validate:"gte=0"`

	// Easing is the curve of the fade and slide: ease-out-quad, linear or spring.
	Easing string `yaml:"easing" mapstructure:"easing" validate:"oneof=ease-out-quad linear spring"`
}

// AlertAnimation is the shake and fade played when an error appears.
type AlertAnimation struct {
	// Step is the duration of one shake keyframe.
	Step time.Duration `yaml:"step" mapstructure:"step" validate:"gt=0"`

	// Distance is the shake amplitude, in animation units.
	Distance float64 `yaml:"distance" mapstructure:"distance" validate:"gte=0"`

	// Fade is the duration of the elastic fade-in.
	Fade time.Duration `yaml:"fade" mapstructure:"fade" validate:"gt=0"`

	// Amplitude and Period shape the elastic easing.
	Amplitude float64 `yaml:"amplitude" mapstructure:"amplitude" validate:"gte=1,lte=10"`
	Period    float64 `yaml:"period" mapstructure:"period" validate:"gte=0.1,lte=2"`
}

// DisplayConfig controls the dashboard chrome.
type DisplayConfig struct {
	Title    string `yaml:"title" mapstructure:"title" validate:"required"`
	Subtitle string `yaml:"subtitle" mapstructure:"subtitle"`

	// Color mode: "auto", "always", or "never".
	// "auto" disables color when output is piped.
	Color string `yaml:"color" mapstructure:"color" validate:"oneof=auto always never"`
}

// PanelsConfig holds the static info panel contents.
type PanelsConfig struct {
	RecentActivities []string `yaml:"recent_activities" mapstructure:"recent_activities" validate:"max=10,dive,required"`
	TopCustomers     []string `yaml:"top_customers" mapstructure:"top_customers" validate:"max=10,dive,required"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Version: CurrentConfigVersion,
		Sampler: SamplerConfig{
			Seed:        0,
			FailureRate: 0,
		},
		Animation: AnimationConfig{
			Enabled: true,
			FPS:     60,
			Refresh: RefreshAnimation{
				Duration: time.Second,
				Stagger:  200 * time.Millisecond,
				Offset:   20,
				Easing:   "ease-out-quad",
			},
			Alert: AlertAnimation{
				Step:      100 * time.Millisecond,
				Distance:  10,
				Fade:      500 * time.Millisecond,
				Amplitude: 1,
				Period:    0.8,
			},
		},
		Display: DisplayConfig{
			Title:    "CRM Dashboard",
			Subtitle: "Customer relationship insights",
			Color:    "auto",
		},
		Panels: PanelsConfig{
			RecentActivities: []string{
				"New lead: John Doe (Software Company)",
				"Deal closed: XYZ Corp ($50,000)",
				"Customer meeting: Alice Smith (2:00 PM)",
				"Support ticket resolved: #1234",
			},
			TopCustomers: []string{
				"1. Acme Inc. - $250,000",
				"2. Tech Solutions Ltd. - $180,000",
				"3. Global Enterprises - $120,000",
				"4. Innovative Startups Co. - $90,000",
			},
		},
	}
}
