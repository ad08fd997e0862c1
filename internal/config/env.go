package config

import (
	"flag"
	"os"
	"strconv"
	"strings"
	"time"
)

// getEnvString returns EnvPrefix+key, or defaultVal when it is unset.
func getEnvString(key, defaultVal string) string {
	if val := os.Getenv(EnvPrefix + key); val != "" {
		return val
	}
	return defaultVal
}

// getEnvUint64 returns EnvPrefix+key parsed as uint64, or defaultVal when it
// is unset or invalid.
func getEnvUint64(key string, defaultVal uint64) uint64 {
	if val := os.Getenv(EnvPrefix + key); val != "" {
		if parsed, err := strconv.ParseUint(val, 10, 64); err == nil {
			return parsed
		}
	}
	return defaultVal
}

func getEnvInt64(key string, defaultVal int64) int64 {
	if val := os.Getenv(EnvPrefix + key); val != "" {
		if parsed, err := strconv.ParseInt(val, 10, 64); err == nil {
			return parsed
		}
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(EnvPrefix + key); val != "" {
		if parsed, err := strconv.Atoi(val); err == nil {
			return parsed
		}
	}
	return defaultVal
}

func getEnvFloat(key string, defaultVal float64) float64 {
	if val := os.Getenv(EnvPrefix + key); val != "" {
		if parsed, err := strconv.ParseFloat(val, 64); err == nil {
			return parsed
		}
	}
	return defaultVal
}

// getEnvBool accepts true/1/yes and false/0/no, case-insensitively.
func getEnvBool(key string, defaultVal bool) bool {
	if val := os.Getenv(EnvPrefix + key); val != "" {
		switch strings.ToLower(val) {
		case "true", "1", "yes":
			return true
		case "false", "0", "no":
			return false
		}
	}
	return defaultVal
}

// getEnvDuration accepts time.ParseDuration syntax ("30s", "1h30m").
func getEnvDuration(key string, defaultVal time.Duration) time.Duration {
	if val := os.Getenv(EnvPrefix + key); val != "" {
		if parsed, err := time.ParseDuration(val); err == nil {
			return parsed
		}
	}
	return defaultVal
}

// isFlagSet reports whether any of names was given on the command line.
func isFlagSet(fs *flag.FlagSet, names ...string) bool {
	found := false
	fs.Visit(func(f *flag.Flag) {
		for _, name := range names {
			if f.Name == name {
				found = true
			}
		}
	})
	return found
}

// applyEnvOverrides fills every field whose flag was not given from its
// POWKIT_* variable:
//
//	POWKIT_MODE, POWKIT_N, POWKIT_ALGO, POWKIT_BASE, POWKIT_EXP, POWKIT_OP,
//	POWKIT_ROMAN, POWKIT_TIMEOUT, POWKIT_JSON, POWKIT_QUIET, POWKIT_VERBOSE,
//	POWKIT_DETAILS, POWKIT_NO_COLOR, POWKIT_METRICS, POWKIT_LOG_LEVEL,
//	POWKIT_PROGRESS_STEP
func applyEnvOverrides(config *AppConfig, fs *flag.FlagSet) {
	stringVars := []struct {
		flags  []string
		key    string
		target *string
	}{
		{[]string{"mode"}, "MODE", &config.Mode},
		{[]string{"algo"}, "ALGO", &config.Algo},
		{[]string{"op"}, "OP", &config.Op},
		{[]string{"roman"}, "ROMAN", &config.Roman},
		{[]string{"log-level"}, "LOG_LEVEL", &config.LogLevel},
	}
	for _, s := range stringVars {
		if !isFlagSet(fs, s.flags...) {
			*s.target = getEnvString(s.key, *s.target)
		}
	}

	boolVars := []struct {
		flags  []string
		key    string
		target *bool
	}{
		{[]string{"json"}, "JSON", &config.JSONOutput},
		{[]string{"quiet", "q"}, "QUIET", &config.Quiet},
		{[]string{"v"}, "VERBOSE", &config.Verbose},
		{[]string{"d", "details"}, "DETAILS", &config.Details},
		{[]string{"no-color"}, "NO_COLOR", &config.NoColor},
		{[]string{"metrics"}, "METRICS", &config.Metrics},
	}
	for _, b := range boolVars {
		if !isFlagSet(fs, b.flags...) {
			*b.target = getEnvBool(b.key, *b.target)
		}
	}

	if !isFlagSet(fs, "n") {
		config.N = getEnvUint64("N", config.N)
	}
	if !isFlagSet(fs, "base") {
		config.Base = getEnvInt64("BASE", config.Base)
	}
	if !isFlagSet(fs, "exp") {
		config.Exp = getEnvInt("EXP", config.Exp)
	}
	if !isFlagSet(fs, "progress-step") {
		config.ProgressStep = getEnvFloat("PROGRESS_STEP", config.ProgressStep)
	}
	if !isFlagSet(fs, "timeout") {
		config.Timeout = getEnvDuration("TIMEOUT", config.Timeout)
	}
}
