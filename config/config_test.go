package config

import (
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/kbukum/gostreams/errors"
)

type mockFS struct {
	files  map[string]bool
	loaded []string
}

func (m *mockFS) Exists(path string) bool { return m.files[path] }
func (m *mockFS) LoadEnv(path string) error {
	m.loaded = append(m.loaded, path)
	return nil
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}

func TestServiceConfigApplyDefaults(t *testing.T) {
	t.Run("empty environment defaults to development", func(t *testing.T) {
		cfg := ServiceConfig{Name: "streams"}
		cfg.ApplyDefaults()
		if cfg.Environment != "development" {
			t.Errorf("expected 'development', got %q", cfg.Environment)
		}
		if cfg.Logging.ServiceName != "streams" {
			t.Errorf("expected name propagated to logging, got %q", cfg.Logging.ServiceName)
		}
		if cfg.Logging.Level != "info" {
			t.Errorf("expected info level, got %q", cfg.Logging.Level)
		}
	})

	t.Run("debug selects debug logging", func(t *testing.T) {
		cfg := ServiceConfig{Name: "streams", Debug: true}
		cfg.ApplyDefaults()
		if cfg.Logging.Level != "debug" {
			t.Errorf("expected debug level, got %q", cfg.Logging.Level)
		}
	})

	t.Run("explicit level wins over debug", func(t *testing.T) {
		cfg := ServiceConfig{Name: "streams", Debug: true}
		cfg.Logging.Level = "warn"
		cfg.ApplyDefaults()
		if cfg.Logging.Level != "warn" {
			t.Errorf("expected warn level, got %q", cfg.Logging.Level)
		}
	})
}

func TestServiceConfigValidate(t *testing.T) {
	valid := func(env string) ServiceConfig {
		cfg := ServiceConfig{Name: "streams", Environment: env}
		cfg.Logging.ApplyDefaults()
		return cfg
	}
	noName := valid("production")
	noName.Name = ""
	badLogging := valid("production")
	badLogging.Logging.Format = "xml"

	tests := []struct {
		name    string
		cfg     ServiceConfig
		wantErr bool
		errMsg  string
	}{
		{"valid development", valid("development"), false, ""},
		{"valid staging", valid("staging"), false, ""},
		{"valid production", valid("production"), false, ""},
		{"missing name", noName, true, "config.name is required"},
		{"invalid environment", valid("invalid"), true, "config.environment must be one of"},
		{"invalid logging", badLogging, true, "config.logging"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.cfg.Validate()
			if tc.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				if !strings.Contains(err.Error(), tc.errMsg) {
					t.Errorf("expected error containing %q, got %q", tc.errMsg, err.Error())
				}
			} else if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestResolver_ConfigSearchOrder(t *testing.T) {
	tests := []struct {
		name  string
		files []string
		want  string
	}{
		{"service dir first", []string{"./cmd/streams/config.yml", "./config/config.yml", "./config.yml"}, "./cmd/streams/config.yml"},
		{"config dir", []string{"./config/config.yml", "./config.yml"}, "./config/config.yml"},
		{"working dir", []string{"./config.yml"}, "./config.yml"},
		{"nothing", nil, ""},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			fs := &mockFS{files: map[string]bool{}}
			for _, f := range tc.files {
				fs.files[f] = true
			}
			resolver := &Resolver{FileSystem: fs}
			if got := resolver.ResolveFiles("streams", LoaderConfig{}).ConfigFile; got != tc.want {
				t.Errorf("ConfigFile = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestResolver_EnvPrefersServiceFile(t *testing.T) {
	fs := &mockFS{files: map[string]bool{
		"./.env":                true,
		"./cmd/streams/.env":    true,
		"./config/.env.streams": true,
	}}
	resolver := &Resolver{FileSystem: fs}
	if got := resolver.ResolveFiles("streams", LoaderConfig{}).EnvFile; got != "./config/.env.streams" {
		t.Errorf("EnvFile = %q", got)
	}
}

func TestResolver_ExplicitPaths(t *testing.T) {
	resolver := &Resolver{FileSystem: &mockFS{}}
	files := resolver.ResolveFiles("streams", LoaderConfig{ConfigFile: "a.yml", EnvFile: "b.env"})
	if files.ConfigFile != "a.yml" || files.EnvFile != "b.env" {
		t.Errorf("expected explicit paths, got %+v", files)
	}
}

func TestLoaderOptions(t *testing.T) {
	var lc LoaderConfig
	fs := &mockFS{}
	WithFileSystem(fs)(&lc)
	WithConfigFile("/path/to/config.yml")(&lc)
	WithEnvFile("/path/to/.env")(&lc)
	WithEnvPrefix("streams_")(&lc)
	WithDefaults(map[string]any{"a": 1})(&lc)

	if lc.FileSystem != fs {
		t.Error("expected FileSystem to be set")
	}
	if lc.ConfigFile != "/path/to/config.yml" || lc.EnvFile != "/path/to/.env" {
		t.Errorf("unexpected paths %q %q", lc.ConfigFile, lc.EnvFile)
	}
	if lc.EnvPrefix != "STREAMS" {
		t.Errorf("expected normalized prefix STREAMS, got %q", lc.EnvPrefix)
	}
	if lc.Defaults["a"] != 1 {
		t.Error("expected defaults to be set")
	}
}

func TestGenerateEnvKeyVariants(t *testing.T) {
	got := generateEnvKeyVariants("OUTPUT_PAGE_SIZE")
	for _, want := range []string{"output_page_size", "output.page.size", "output.page_size", "output_page.size"} {
		if !slices.Contains(got, want) {
			t.Errorf("expected %q in %v", want, got)
		}
	}
	if len(got) != 4 {
		t.Errorf("expected 4 unique variants, got %v", got)
	}

	if single := generateEnvKeyVariants("DEBUG"); len(single) != 1 || single[0] != "debug" {
		t.Errorf("unexpected variants for single word: %v", single)
	}
}

func TestLoadConfigWithYAML(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "config.yml", `
name: test-service
environment: staging
version: "1.0.0"
logging:
  level: warn
`)

	var cfg ServiceConfig
	if err := LoadConfig("test-service", &cfg, WithConfigFile(path)); err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Name != "test-service" || cfg.Environment != "staging" || cfg.Version != "1.0.0" {
		t.Errorf("unexpected config %+v", cfg)
	}
	if cfg.Logging.Level != "warn" {
		t.Errorf("expected nested logging.level, got %q", cfg.Logging.Level)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	var cfg ServiceConfig
	err := LoadConfig("nonexistent-service", &cfg, WithConfigFile("/nonexistent/path.yml"))
	if err != nil {
		t.Fatalf("expected LoadConfig to succeed with missing file, got %v", err)
	}
}

func TestLoadConfigMalformedFile(t *testing.T) {
	path := writeFile(t, t.TempDir(), "config.yml", "name: [unclosed\n")
	var cfg ServiceConfig
	if err := LoadConfig("streams", &cfg, WithConfigFile(path)); err == nil {
		t.Fatal("expected an error for malformed YAML")
	}
}

func TestLoadConfig_EnvOverridesFile(t *testing.T) {
	path := writeFile(t, t.TempDir(), "config.yml", `
name: streams
output:
  format: text
  page_size: 3
`)
	t.Setenv("STREAMS_OUTPUT_FORMAT", "json")
	t.Setenv("OUTPUT_PAGE_SIZE", "99")

	var cfg AppConfig
	err := LoadConfig("streams", &cfg, WithConfigFile(path), WithEnvPrefix("STREAMS"))
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Output.Format != "json" {
		t.Errorf("expected env to override output.format, got %q", cfg.Output.Format)
	}
	if cfg.Output.PageSize != 3 {
		t.Errorf("unprefixed variable should be ignored, got page size %d", cfg.Output.PageSize)
	}
}

func TestLoadConfig_EnvFile(t *testing.T) {
	dir := t.TempDir()
	envPath := writeFile(t, dir, ".env", "STREAMS_FIXTURES_PEOPLE=/data/people.json\n")
	t.Cleanup(func() { os.Unsetenv("STREAMS_FIXTURES_PEOPLE") })

	var cfg AppConfig
	err := LoadConfig("streams", &cfg,
		WithConfigFile(filepath.Join(dir, "missing.yml")),
		WithEnvFile(envPath),
		WithEnvPrefix("STREAMS"),
	)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Fixtures.People != "/data/people.json" {
		t.Errorf("expected fixtures.people from .env, got %q", cfg.Fixtures.People)
	}
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("streams",
		WithFileSystem(&mockFS{files: map[string]bool{}}),
		WithEnvPrefix("STREAMS_TEST_UNSET"),
	)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Name != "streams" {
		t.Errorf("expected name from service, got %q", cfg.Name)
	}
	if cfg.Output.Format != FormatText || cfg.Output.PageSize != 0 {
		t.Errorf("unexpected output defaults %+v", cfg.Output)
	}
	if !cfg.Observability.TracingEnabled || !cfg.Observability.MetricsEnabled || cfg.Observability.SampleRate != 1.0 {
		t.Errorf("unexpected observability defaults %+v", cfg.Observability)
	}
	if cfg.Logging.Output != "stderr" {
		t.Errorf("expected logs on stderr, got %q", cfg.Logging.Output)
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"format", "output:\n  format: yaml\n"},
		{"page size", "output:\n  page_size: -2\n"},
		{"sample rate", "observability:\n  sample_rate: 1.5\n"},
		{"environment", "environment: moon\n"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := writeFile(t, t.TempDir(), "config.yml", tc.yaml)
			_, err := Load("streams", WithConfigFile(path), WithEnvPrefix("STREAMS_TEST_UNSET"))
			appErr, ok := errors.AsAppError(err)
			if !ok {
				t.Fatalf("expected AppError, got %v", err)
			}
			if appErr.Code != errors.ErrCodeConfig {
				t.Errorf("expected CONFIG_ERROR, got %s", appErr.Code)
			}
		})
	}
}

func TestFormats_MatchOutputValidation(t *testing.T) {
	for _, f := range Formats() {
		cfg := &AppConfig{}
		cfg.Name = "streams"
		cfg.Output.Format = f
		cfg.ApplyDefaults()
		if err := cfg.Validate(); err != nil {
			t.Errorf("format %q rejected: %v", f, err)
		}
	}
	if got := Formats(); len(got) != 2 || got[0] != FormatText || got[1] != FormatJSON {
		t.Errorf("Formats() = %v", got)
	}
}
