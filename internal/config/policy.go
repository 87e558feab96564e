package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Policy holds the analytics thresholds the reports classify against.
type Policy struct {
	TurnoverControlLimit float64 `yaml:"turnover_control_limit"`
	ParityLowerBound     float64 `yaml:"parity_lower_bound"`
	ParityUpperBound     float64 `yaml:"parity_upper_bound"`
	GratuityMinYears     int     `yaml:"gratuity_min_years"`
	BottleneckDays       int     `yaml:"bottleneck_days"`
}

// DefaultPolicy returns the standard thresholds: a 15% turnover control
// limit, a 98-102% equitable parity band, 5 years of service for gratuity
// and a 45-day hiring cycle before a bottleneck is flagged.
func DefaultPolicy() Policy {
	return Policy{
		TurnoverControlLimit: 15,
		ParityLowerBound:     98,
		ParityUpperBound:     102,
		GratuityMinYears:     5,
		BottleneckDays:       45,
	}
}

// LoadPolicy overlays the YAML file at path onto DefaultPolicy. An empty path
// yields the defaults.
func LoadPolicy(path string) (Policy, error) {
	policy := DefaultPolicy()
	if path == "" {
		return policy, nil
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return Policy{}, fmt.Errorf("config: read policy file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(b, &policy); err != nil {
		return Policy{}, fmt.Errorf("config: parse policy yaml: %w", err)
	}
	if err := policy.Validate(); err != nil {
		return Policy{}, err
	}
	return policy, nil
}

func (p Policy) Validate() error {
	if p.TurnoverControlLimit <= 0 || p.TurnoverControlLimit > 100 {
		return fmt.Errorf("config: turnover_control_limit must be in (0, 100]")
	}
	if p.ParityLowerBound <= 0 {
		return fmt.Errorf("config: parity_lower_bound must be positive")
	}
	if p.ParityUpperBound < p.ParityLowerBound {
		return fmt.Errorf("config: parity_upper_bound must not be below parity_lower_bound")
	}
	if p.GratuityMinYears <= 0 {
		return fmt.Errorf("config: gratuity_min_years must be positive")
	}
	if p.BottleneckDays < 0 {
		return fmt.Errorf("config: bottleneck_days must not be negative")
	}
	return nil
}
