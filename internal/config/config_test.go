package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetenv(t *testing.T) {
	tests := []struct {
		name     string
		key      string
		val      string
		def      string
		expected string
	}{
		{
			name:     "returns existing env",
			key:      "TEST_ENV_EXIST",
			val:      "value",
			def:      "default",
			expected: "value",
		},
		{
			name:     "returns default when env missing",
			key:      "TEST_ENV_MISSING",
			val:      "",
			def:      "default",
			expected: "default",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.val != "" {
				t.Setenv(tt.key, tt.val)
			} else {
				os.Unsetenv(tt.key)
			}
			assert.Equal(t, tt.expected, getenv(tt.key, tt.def))
		})
	}
}

func TestGetenvBool(t *testing.T) {
	tests := []struct {
		name     string
		val      string
		def      bool
		expected bool
	}{
		{name: "true value", val: "true", def: false, expected: true},
		{name: "false value", val: "false", def: true, expected: false},
		{name: "missing uses default", val: "", def: true, expected: true},
		{name: "garbage is false", val: "yes", def: false, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key := "TEST_BOOL_VALUE"
			if tt.val != "" {
				t.Setenv(key, tt.val)
			} else {
				os.Unsetenv(key)
			}
			assert.Equal(t, tt.expected, getenvBool(key, tt.def))
		})
	}
}

func TestParseBufferSize(t *testing.T) {
	tests := []struct {
		name     string
		val      string
		expected int
	}{
		{name: "default", val: "", expected: 1024},
		{name: "valid", val: "4096", expected: 4096},
		{name: "not a number", val: "abc", expected: 1024},
		{name: "zero", val: "0", expected: 1024},
		{name: "negative", val: "-1", expected: 1024},
		{name: "too large", val: "2097152", expected: 1024},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.val != "" {
				t.Setenv("BUFFER_SIZE", tt.val)
			} else {
				os.Unsetenv("BUFFER_SIZE")
			}
			assert.Equal(t, tt.expected, parseBufferSize())
		})
	}
}

func TestParseDirectory(t *testing.T) {
	tests := []struct {
		name      string
		args      []string
		def       string
		expectErr bool
		expected  string
	}{
		{name: "no args keeps default", args: nil, def: "/srv/files", expected: "/srv/files"},
		{name: "directory pair overrides", args: []string{"--directory", "/tmp/files"}, def: "/srv/files", expected: "/tmp/files"},
		{name: "missing path", args: []string{"--directory"}, expectErr: true},
		{name: "unknown flag", args: []string{"--dir", "/tmp"}, expectErr: true},
		{name: "extra args", args: []string{"--directory", "/tmp", "x"}, expectErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir, err := parseDirectory(tt.args, tt.def)
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, dir)
		})
	}
}

func TestMustLoadDefaults(t *testing.T) {
	os.Unsetenv("HOST")
	os.Unsetenv("PORT")
	os.Unsetenv("BUFFER_SIZE")
	os.Unsetenv("DIRECTORY")
	os.Unsetenv("PPROF_ENABLED")
	os.Unsetenv("PPROF_PORT")

	conf, err := MustLoad(nil)
	require.NoError(t, err)

	assert.Equal(t, "localhost", conf.Host())
	assert.Equal(t, "4221", conf.Port())
	assert.Equal(t, 1024, conf.BufferSize())
	assert.Equal(t, "", conf.Directory())
	assert.False(t, conf.PprofEnabled())
	assert.Equal(t, "6060", conf.PprofPort())
}

func TestMustLoadFromEnv(t *testing.T) {
	t.Setenv("HOST", "0.0.0.0")
	t.Setenv("PORT", "8080")
	t.Setenv("DIRECTORY", "/srv/files")

	conf, err := MustLoad(nil)
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", conf.Host())
	assert.Equal(t, "8080", conf.Port())
	assert.Equal(t, "/srv/files", conf.Directory())
}

func TestMustLoadDirectoryFlagWinsOverEnv(t *testing.T) {
	t.Setenv("DIRECTORY", "/srv/files")

	conf, err := MustLoad([]string{"--directory", "/tmp/override"})
	require.NoError(t, err)
	assert.Equal(t, "/tmp/override", conf.Directory())
}

func TestMustLoadBadArgs(t *testing.T) {
	conf, err := MustLoad([]string{"--bogus"})
	assert.Error(t, err)
	assert.Nil(t, conf)
}
