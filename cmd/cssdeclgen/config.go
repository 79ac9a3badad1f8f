package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/yacobolo/cssdeclgen"
)

var k = koanf.New(".")

// configSections are the top-level YAML sections an env var may address.
var configSections = map[string]bool{
	"generate": true,
	"audit":    true,
}

// loadConfig loads configuration with precedence: flags > env > file > defaults.
// It must be called after cobra parses flags (in PreRunE or RunE).
func loadConfig(cmd *cobra.Command) error {
	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		configPath = ".cssdeclgen.yaml"
	}

	if err := loadConfigFromPath(configPath); err != nil {
		return err
	}

	// 3. CLI flags (highest precedence, only flags that were explicitly set)
	flags := cmd.Flags()
	provider := posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
		if !f.Changed {
			return "", nil
		}
		return f.Name, posflag.FlagVal(flags, f)
	})
	if err := k.Load(provider, nil); err != nil {
		return fmt.Errorf("loading command flags: %w", err)
	}

	return nil
}

// loadConfigFromPath loads configuration from a file and environment variables.
// This is separated from loadConfig to allow testing without a cobra command.
func loadConfigFromPath(configPath string) error {
	// 1. Config file (lowest precedence among providers)
	if _, err := os.Stat(configPath); err == nil {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return fmt.Errorf("loading config file %s: %w", configPath, err)
		}
	}

	// 2. Environment variables (CSSDECLGEN_* prefix)
	if err := k.Load(env.Provider("CSSDECLGEN_", ".", envKey), nil); err != nil {
		return fmt.Errorf("loading environment variables: %w", err)
	}

	return nil
}

// envKey maps an environment variable to a config key:
//
//	CSSDECLGEN_GENERATE_DATA_DIR -> generate.data-dir
//	CSSDECLGEN_AUDIT_STRICT      -> audit.strict
//	CSSDECLGEN_VERBOSE           -> verbose
func envKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, "CSSDECLGEN_"))
	if section, rest, ok := strings.Cut(s, "_"); ok && configSections[section] {
		return section + "." + strings.ReplaceAll(rest, "_", "-")
	}
	return strings.ReplaceAll(s, "_", "-")
}

// buildGenerateConfig constructs the library's Config struct from koanf state.
func buildGenerateConfig() cssdeclgen.Config {
	defaults := cssdeclgen.DefaultConfig()

	config := cssdeclgen.Config{
		DataDir:     getStringWithFallback("data-dir", "generate.data-dir", defaults.DataDir),
		Source:      getStringWithFallback("source", "generate.source", defaults.Source),
		Output:      getStringWithFallback("output", "generate.output", defaults.Output),
		Browsers:    getStringsWithFallback("browsers", "generate.browsers", defaults.Browsers),
		Exclude:     getStringsWithFallback("exclude", "generate.exclude", defaults.Exclude),
		Annotations: k.StringMap("generate.annotations"),
		Check:       getBoolWithFallback("check", "generate.check", false),
		Verbose:     getBoolWithFallback("verbose", "verbose", false),
	}

	if len(config.Annotations) == 0 {
		config.Annotations = nil
	}

	return config
}

// buildAuditConfig constructs the library's AuditConfig struct from koanf state.
func buildAuditConfig(args []string) cssdeclgen.AuditConfig {
	paths := args
	if len(paths) == 0 {
		paths = getStringsWithFallback("paths", "audit.paths", []string{"**/*.css"})
	}

	return cssdeclgen.AuditConfig{
		Generate:      buildGenerateConfig(),
		Paths:         paths,
		Strict:        getBoolWithFallback("strict", "audit.strict", false),
		MaxIssues:     getIntWithFallback("max-issues", "audit.max-issues", 0),
		MaxSameIssues: getIntWithFallback("max-same-issues", "audit.max-same-issues", 0),
		Verbose:       getBoolWithFallback("verbose", "verbose", false),
	}
}

// getStringWithFallback checks the flag key first, then the config file key, then returns the default.
func getStringWithFallback(flagKey, configKey, defaultVal string) string {
	if v := k.String(flagKey); v != "" {
		return v
	}
	if v := k.String(configKey); v != "" {
		return v
	}
	return defaultVal
}

// getStringsWithFallback checks the flag key first, then the config file key, then returns the default.
func getStringsWithFallback(flagKey, configKey string, defaultVal []string) []string {
	if v := k.Strings(flagKey); len(v) > 0 {
		return v
	}
	if v := k.Strings(configKey); len(v) > 0 {
		return v
	}
	return defaultVal
}

// getBoolWithFallback checks the flag key first, then the config file key, then returns the default.
func getBoolWithFallback(flagKey, configKey string, defaultVal bool) bool {
	if k.Exists(flagKey) {
		return k.Bool(flagKey)
	}
	if k.Exists(configKey) {
		return k.Bool(configKey)
	}
	return defaultVal
}

// getIntWithFallback checks the flag key first, then the config file key, then returns the default.
func getIntWithFallback(flagKey, configKey string, defaultVal int) int {
	if k.Exists(flagKey) {
		return k.Int(flagKey)
	}
	if k.Exists(configKey) {
		return k.Int(configKey)
	}
	return defaultVal
}
