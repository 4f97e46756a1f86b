package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"header-generator/internal/config"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := config.LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, "generated", cfg.OutputDir)
	assert.Equal(t, "_wrapper.h", cfg.WrapperSuffix)
	assert.Equal(t, "_python.h", cfg.ModuleHeaderSuffix)
	assert.Equal(t, "Shiboken", cfg.Runtime.Namespace)
	assert.Equal(t, "shiboken.h", cfg.Runtime.Header)
	assert.Equal(t, "SHIBOKEN_LOCAL", cfg.Runtime.LocalMacro)
	assert.Equal(t, "QObject", cfg.Runtime.ObjectBase)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.False(t, cfg.JSONLogging())
}

func TestLoadConfigFromYAML(t *testing.T) {
	path := writeConfig(t, "header-generator.yaml", `
typesystem: geometry.yaml
module: Geo
package: sample.geo
output_dir: out
runtime:
  namespace: Binding
  local_macro: GEO_LOCAL
logging:
  format: json
`)

	cfg, err := config.LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "geometry.yaml", cfg.Typesystem)
	assert.Equal(t, "Geo", cfg.Module)
	assert.Equal(t, "sample.geo", cfg.Package)
	assert.Equal(t, "out", cfg.OutputDir)
	assert.Equal(t, "Binding", cfg.Runtime.Namespace)
	assert.Equal(t, "GEO_LOCAL", cfg.Runtime.LocalMacro)
	assert.Equal(t, "shiboken.h", cfg.Runtime.Header)
	assert.True(t, cfg.JSONLogging())
}

func TestLoadConfigFromTOML(t *testing.T) {
	path := writeConfig(t, "header-generator.toml", `
module = "geo"
wrapper_suffix = "_wrap.hpp"

[runtime]
object_base = "BaseObject"
`)

	cfg, err := config.LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "geo", cfg.Module)
	assert.Equal(t, "_wrap.hpp", cfg.WrapperSuffix)
	assert.Equal(t, "BaseObject", cfg.Runtime.ObjectBase)
}

func TestLoadConfigFromEnvironment(t *testing.T) {
	t.Setenv("HEADERGEN_OUTPUT_DIR", "/tmp/env-out")
	t.Setenv("HEADERGEN_RUNTIME_NAMESPACE", "EnvRuntime")

	cfg, err := config.LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, "/tmp/env-out", cfg.OutputDir)
	assert.Equal(t, "EnvRuntime", cfg.Runtime.Namespace)
}

func TestLoadConfigValidation(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr error
	}{
		{name: "empty wrapper suffix", content: "wrapper_suffix: \"\"\n", wantErr: config.ErrEmptySuffix},
		{name: "empty module suffix", content: "module_header_suffix: \"\"\n", wantErr: config.ErrEmptySuffix},
		{name: "namespace", content: "runtime:\n  namespace: \"my ns\"\n", wantErr: config.ErrInvalidIdentifier},
		{name: "macro", content: "runtime:\n  local_macro: 9LOCAL\n", wantErr: config.ErrInvalidIdentifier},
		{name: "log format", content: "logging:\n  format: xml\n", wantErr: config.ErrInvalidLogFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := config.LoadConfig(writeConfig(t, "c.yaml", tt.content))
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
		})
	}
}

func TestLoadConfigMissingExplicitFile(t *testing.T) {
	_, err := config.LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

func TestGenerator(t *testing.T) {
	license := writeConfig(t, "LICENSE", "Copyright sample\n")
	path := writeConfig(t, "c.yaml", "module: geo\nlicense_file: "+license+"\n")

	cfg, err := config.LoadConfig(path)
	require.NoError(t, err)

	genCfg, err := cfg.Generator()
	require.NoError(t, err)

	assert.Equal(t, "geo", genCfg.Module)
	assert.Equal(t, "Copyright sample\n", genCfg.License)
	assert.Equal(t, "_wrapper.h", genCfg.Naming.WrapperSuffix)
	assert.Equal(t, "QObject", genCfg.Naming.ObjectBase)
	assert.Equal(t, "Shiboken", genCfg.RuntimeNamespace)

	cfg.LicenseFile = filepath.Join(t.TempDir(), "missing")
	_, err = cfg.Generator()
	assert.Error(t, err)
}
