package config

import (
	"testing"
	"time"

	"github.com/rileyhilliard/crmdash/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(cfg *Config)
		wantErr     bool
		errContains string
		suggestion  string
	}{
		{
			name:   "defaults are valid",
			mutate: func(cfg *Config) {},
		},
		{
			name:        "future version",
			mutate:      func(cfg *Config) { cfg.Version = CurrentConfigVersion + 1 },
			wantErr:     true,
			errContains: "from the future",
		},
		{
			name:        "failure rate above one",
			mutate:      func(cfg *Config) { cfg.Sampler.FailureRate = 1.5 },
			wantErr:     true,
			errContains: "'sampler.failure_rate' is 1.5, must be at most 1",
			suggestion:  "'sampler' section",
		},
		{
			name:        "negative failure rate",
			mutate:      func(cfg *Config) { cfg.Sampler.FailureRate = -0.1 },
			wantErr:     true,
			errContains: "must be at least 0",
		},
		{
			name:        "zero fps",
			mutate:      func(cfg *Config) { cfg.Animation.FPS = 0 },
			wantErr:     true,
			errContains: "'animation.fps'",
			suggestion:  "'animation' section",
		},
		{
			name:        "zero refresh duration",
			mutate:      func(cfg *Config) { cfg.Animation.Refresh.Duration = 0 },
			wantErr:     true,
			errContains: "'animation.refresh.duration'",
		},
		{
			name:   "zero stagger is fine",
			mutate: func(cfg *Config) { cfg.Animation.Refresh.Stagger = 0 },
		},
		{
			name:   "spring easing",
			mutate: func(cfg *Config) { cfg.Animation.Refresh.Easing = "spring" },
		},
		{
			name:        "unknown easing",
			mutate:      func(cfg *Config) { cfg.Animation.Refresh.Easing = "bounce" },
			wantErr:     true,
			errContains: "'animation.refresh.easing' is bounce, expected one of: ease-out-quad, linear, spring",
		},
		{
			name:        "negative stagger",
			mutate:      func(cfg *Config) { cfg.Animation.Refresh.Stagger = -time.Millisecond },
			wantErr:     true,
			errContains: "'animation.refresh.stagger'",
		},
		{
			name:        "elastic period out of range",
			mutate:      func(cfg *Config) { cfg.Animation.Alert.Period = 5 },
			wantErr:     true,
			errContains: "'animation.alert.period'",
		},
		{
			name:        "amplitude below one",
			mutate:      func(cfg *Config) { cfg.Animation.Alert.Amplitude = 0.5 },
			wantErr:     true,
			errContains: "'animation.alert.amplitude'",
		},
		{
			name:        "bad color mode",
			mutate:      func(cfg *Config) { cfg.Display.Color = "sometimes" },
			wantErr:     true,
			errContains: "expected one of: auto, always, never",
			suggestion:  "'display' section",
		},
		{
			name:        "empty title",
			mutate:      func(cfg *Config) { cfg.Display.Title = "" },
			wantErr:     true,
			errContains: "'display.title' can't be empty",
		},
		{
			name:        "empty panel entry",
			mutate:      func(cfg *Config) { cfg.Panels.TopCustomers = []string{"Acme", ""} },
			wantErr:     true,
			errContains: "'panels.top_customers[1]' can't be empty",
		},
		{
			name: "too many panel entries",
			mutate: func(cfg *Config) {
				cfg.Panels.RecentActivities = make([]string, 11)
				for i := range cfg.Panels.RecentActivities {
					cfg.Panels.RecentActivities[i] = "x"
				}
			},
			wantErr:     true,
			errContains: "too many entries",
		},
		{
			name:   "empty panels are fine",
			mutate: func(cfg *Config) { cfg.Panels = PanelsConfig{} },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := Validate(cfg)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			assert.True(t, errors.IsCode(err, errors.ErrConfig))
			assert.Contains(t, err.Error(), tt.errContains)

			if tt.suggestion != "" {
				var e *errors.Error
				require.ErrorAs(t, err, &e)
				assert.Contains(t, e.Suggestion, tt.suggestion)
			}
		})
	}
}

func TestValidate_Nil(t *testing.T) {
	err := Validate(nil)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrConfig))
}
