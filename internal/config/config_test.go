package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"APP_ENV", "LOG_LEVEL", "LOG_FORMAT", "TC_DATA_DIR", "TC_EMPLOYEE_FILE",
		"TC_CANDIDATE_LOG", "TC_REJECTION_LOG", "TC_POLICY_FILE",
	} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load("")

	require.NoError(t, err)
	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "info", cfg.App.LogLevel)
	assert.Equal(t, "text", cfg.App.LogFormat)
	assert.Equal(t, ".", cfg.Storage.DataDir)
	assert.Equal(t, "startup.csv", cfg.Storage.EmployeeFile)
	assert.Equal(t, "candidates.csv", cfg.Storage.CandidateLog)
	assert.Equal(t, "rejections.csv", cfg.Storage.RejectionLog)
	assert.Equal(t, DefaultPolicy(), cfg.Policy)
}

func TestLoad_ExplicitEnvFileMissing(t *testing.T) {
	clearEnv(t)

	_, err := Load(filepath.Join(t.TempDir(), "missing.env"))

	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoad_EnvFile(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	envFile := filepath.Join(dir, ".env")
	content := "TC_DATA_DIR=" + dir + "\nTC_EMPLOYEE_FILE=staff.csv\nLOG_FORMAT=json\n"
	require.NoError(t, os.WriteFile(envFile, []byte(content), 0644))

	cfg, err := Load(envFile)

	require.NoError(t, err)
	assert.Equal(t, dir, cfg.Storage.DataDir)
	assert.Equal(t, "staff.csv", cfg.Storage.EmployeeFile)
	assert.Equal(t, "json", cfg.App.LogFormat)
}

func TestLoad_InvalidLogFormat(t *testing.T) {
	clearEnv(t)
	t.Setenv("LOG_FORMAT", "xml")

	_, err := Load("")

	assert.ErrorContains(t, err, "LOG_FORMAT")
}

func TestLoad_PolicyFile(t *testing.T) {
	clearEnv(t)
	policyFile := filepath.Join(t.TempDir(), "policy.yaml")
	require.NoError(t, os.WriteFile(policyFile, []byte("turnover_control_limit: 10\nbottleneck_days: 30\n"), 0644))
	t.Setenv("TC_POLICY_FILE", policyFile)

	cfg, err := Load("")

	require.NoError(t, err)
	assert.Equal(t, 10.0, cfg.Policy.TurnoverControlLimit)
	assert.Equal(t, 30, cfg.Policy.BottleneckDays)
	assert.Equal(t, 98.0, cfg.Policy.ParityLowerBound, "unset keys keep defaults")
	assert.Equal(t, 5, cfg.Policy.GratuityMinYears)
}

func TestLoadPolicy_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadPolicy(filepath.Join(dir, "nope.yaml"))
	assert.Error(t, err)

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("parity_lower_bound: [1"), 0644))
	_, err = LoadPolicy(bad)
	assert.ErrorContains(t, err, "parse policy yaml")

	inverted := filepath.Join(dir, "inverted.yaml")
	require.NoError(t, os.WriteFile(inverted, []byte("parity_lower_bound: 105\nparity_upper_bound: 100\n"), 0644))
	_, err = LoadPolicy(inverted)
	assert.ErrorContains(t, err, "parity_upper_bound")
}

func TestPolicy_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Policy)
		ok     bool
	}{
		{"defaults", func(*Policy) {}, true},
		{"zero control limit", func(p *Policy) { p.TurnoverControlLimit = 0 }, false},
		{"control limit above 100", func(p *Policy) { p.TurnoverControlLimit = 101 }, false},
		{"zero gratuity years", func(p *Policy) { p.GratuityMinYears = 0 }, false},
		{"negative bottleneck", func(p *Policy) { p.BottleneckDays = -1 }, false},
		{"point parity band", func(p *Policy) { p.ParityLowerBound, p.ParityUpperBound = 100, 100 }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := DefaultPolicy()
			tt.mutate(&p)
			err := p.Validate()
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}
