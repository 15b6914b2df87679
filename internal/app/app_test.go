package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vk/numwords/internal/words"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "numwords.hcl")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestRun_Interactive(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	testApp, out, logs, err := SetupAppTest(t, &Config{}, "21\ny\n100\nn\n")
	require.NoError(t, err)

	// --- Act ---
	err = testApp.Run(context.Background())

	// --- Assert ---
	require.NoError(t, err)
	require.Contains(t, out.String(), "Your number means: twenty-one")
	require.Contains(t, out.String(), "Your number means: one hundred")
	require.Contains(t, out.String(), "Goodbye!")
	require.Contains(t, logs.String(), "Interactive session finished.")
	require.Contains(t, logs.String(), "conversions=2")
	require.Contains(t, logs.String(), "mode=interactive")
	require.NotContains(t, out.String(), "level=", "logs must not leak into the dialogue")
}

func TestRun_OneShot(t *testing.T) {
	t.Parallel()

	testApp, out, _, err := SetupAppTest(t, &Config{Numbers: []string{"7", "+0", "1005"}}, "")
	require.NoError(t, err)

	err = testApp.Run(context.Background())

	require.NoError(t, err)
	require.Equal(t, "7: seven\n0: zero\n1005: one thousand five\n", out.String())
}

func TestRun_OneShotRejectsBadNumberWithoutPartialOutput(t *testing.T) {
	t.Parallel()

	testApp, out, _, err := SetupAppTest(t, &Config{Numbers: []string{"1", "4294967296"}, Bits: 32}, "")
	require.NoError(t, err)

	err = testApp.Run(context.Background())

	require.ErrorIs(t, err, words.ErrOutOfRange)
	require.Empty(t, out.String())
}

func TestNewApp_ConfigFileAndOverrides(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	path := writeConfig(t, `
		prompts {
			goodbye = "see you"
		}
		style {
			bits      = 32
			hyphenate = false
		}
	`)

	// --- Act ---
	testApp, out, _, err := SetupAppTest(t, &Config{ConfigPath: path, Bits: 64, UseAnd: true}, "")
	require.NoError(t, err)
	require.NoError(t, testApp.Run(context.Background()))

	// --- Assert ---
	m := testApp.Model()
	require.Equal(t, 64, m.Style.Bits, "the command line wins over the file")
	require.True(t, m.Style.UseAnd)
	require.False(t, m.Style.Hyphenate)
	require.Contains(t, out.String(), "see you")
}

func TestNewApp_Errors(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		config  func(t *testing.T) *Config
		wantErr string
	}{
		{
			name: "missing config file",
			config: func(t *testing.T) *Config {
				return &Config{ConfigPath: filepath.Join(t.TempDir(), "missing.hcl")}
			},
			wantErr: "failed to load configuration",
		},
		{
			name: "invalid hcl",
			config: func(t *testing.T) *Config {
				return &Config{ConfigPath: writeConfig(t, "style {")}
			},
			wantErr: "failed to parse",
		},
		{
			name: "invalid model",
			config: func(t *testing.T) *Config {
				return &Config{ConfigPath: writeConfig(t, "style {\n bits = 16\n}\n")}
			},
			wantErr: "invalid configuration: style.bits must be 32 or 64, got 16",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			testApp, _, _, err := SetupAppTest(t, tc.config(t), "")

			require.Nil(t, testApp)
			require.ErrorContains(t, err, tc.wantErr)
		})
	}
}

func TestNewConfig(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		in      Config
		wantErr string
	}{
		{name: "zero value", in: Config{}},
		{name: "all set", in: Config{LogFormat: "JSON", LogLevel: "Debug", Bits: 32}},
		{name: "bad bits", in: Config{Bits: 8}, wantErr: "bits must be 32 or 64, got 8"},
		{name: "bad format", in: Config{LogFormat: "yaml"}, wantErr: "invalid log format"},
		{name: "bad level", in: Config{LogLevel: "loud"}, wantErr: "invalid log level"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			cfg, err := NewConfig(tc.in)
			if tc.wantErr != "" {
				require.ErrorContains(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, cfg)
		})
	}
}
