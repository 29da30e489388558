package main

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/alnah/go-md2tex/internal/config"
)

// envPrefix is the prefix of every environment variable md2tex reads.
const envPrefix = "MD2TEX_"

// envConfig holds configuration from environment variables.
// Provides CI/CD-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigPath string // MD2TEX_CONFIG: config file name or path
	Template   string // MD2TEX_TEMPLATE: template name or path
	InputDir   string // MD2TEX_INPUT_DIR: default input file or directory
	OutputDir  string // MD2TEX_OUTPUT_DIR: default output directory
	Language   string // MD2TEX_LANGUAGE: babel language
	Date       string // MD2TEX_DATE: title page date
	Workers    int    // MD2TEX_WORKERS: parallel workers
}

// knownEnvVars lists valid MD2TEX_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"MD2TEX_CONFIG":     true,
	"MD2TEX_TEMPLATE":   true,
	"MD2TEX_INPUT_DIR":  true,
	"MD2TEX_OUTPUT_DIR": true,
	"MD2TEX_LANGUAGE":   true,
	"MD2TEX_DATE":       true,
	"MD2TEX_WORKERS":    true,
	"MD2TEX_CONTAINER":  true, // read by doctor
}

// loadEnvConfig reads configuration from environment variables.
// Invalid MD2TEX_WORKERS values are ignored.
func loadEnvConfig() *envConfig {
	cfg := &envConfig{
		ConfigPath: os.Getenv("MD2TEX_CONFIG"),
		Template:   os.Getenv("MD2TEX_TEMPLATE"),
		InputDir:   os.Getenv("MD2TEX_INPUT_DIR"),
		OutputDir:  os.Getenv("MD2TEX_OUTPUT_DIR"),
		Language:   os.Getenv("MD2TEX_LANGUAGE"),
		Date:       os.Getenv("MD2TEX_DATE"),
	}

	if workers := os.Getenv("MD2TEX_WORKERS"); workers != "" {
		if w, err := strconv.Atoi(workers); err == nil && w > 0 {
			cfg.Workers = w
		}
	}

	return cfg
}

// warnUnknownEnvVars writes a warning for each unrecognized MD2TEX_* variable.
// Helps catch typos like MD2TEX_TEMPLATES instead of MD2TEX_TEMPLATE.
func warnUnknownEnvVars(w io.Writer) {
	var unknown []string
	for _, env := range os.Environ() {
		if !strings.HasPrefix(env, envPrefix) {
			continue
		}
		name, _, _ := strings.Cut(env, "=")
		if !knownEnvVars[name] {
			unknown = append(unknown, name)
		}
	}
	sort.Strings(unknown)
	for _, name := range unknown {
		fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
	}
}

// applyEnvConfig applies environment variable values to config.
// Set variables override the config file; CLI flags are applied later via
// mergeFlags, giving: CLI flags > env vars > config file > defaults.
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.Template != "" {
		cfg.Template.Name = env.Template
	}
	if env.InputDir != "" {
		cfg.Input.DefaultDir = env.InputDir
	}
	if env.OutputDir != "" {
		cfg.Output.DefaultDir = env.OutputDir
	}
	if env.Language != "" {
		cfg.Document.Language = env.Language
	}
	if env.Date != "" {
		cfg.Document.Date = env.Date
	}
}
