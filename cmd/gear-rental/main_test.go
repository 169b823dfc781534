package main

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/iwvelando/gear-rental/internal/config"
	"github.com/iwvelando/gear-rental/pkg/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd, _ := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append(args, "--log-level", "error", "--config", filepath.Join(t.TempDir(), "absent.yaml")))
	err := cmd.Execute()
	return out.String(), err
}

func executeWithConfig(t *testing.T, content string, args ...string) (string, error) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cmd, _ := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs(append(args, "--log-level", "error", "--config", path))
	err := cmd.Execute()
	return out.String(), err
}

func TestExplicitMissingConfigFails(t *testing.T) {
	_, err := execute(t, "discount")
	assert.Error(t, err)
}

const budgetKitConfig = `
inventory:
  - kind: kit
    name: Budget Kit
    children:
      - kind: camera
        brand: Arri Alexa Mini
        price: 18500
      - kind: lens
        brand: Zeiss CP.3 Kit
        price: 7500
        lensType: Prime
`

func TestDiscountCommand(t *testing.T) {
	out, err := executeWithConfig(t, budgetKitConfig, "discount", "--discount", "0.05")
	require.NoError(t, err)
	assert.Contains(t, out, "Budget Kit:")
	assert.Contains(t, out, "Total before discount: R26,000.00")
	assert.Contains(t, out, "Total after discount:  R24,700.00")
	assert.Contains(t, out, "Total discount amount: R1,300.00")
}

func TestDiscountCommandUsesConfiguredDiscount(t *testing.T) {
	out, err := executeWithConfig(t, "discount: 0.5\noutput:\n  format: csv\n"+budgetKitConfig, "discount")
	require.NoError(t, err)
	assert.Equal(t, "kit,total before,total after,discount\nBudget Kit,26000.00,13000.00,13000.00\n", out)
}

func TestAdjustCommand(t *testing.T) {
	cfg := `
inventory:
  - kind: kit
    name: Solo Kit
    children:
      - kind: highspeed
        brand: Phantom 4K Flex
        price: 30000
`
	out, err := executeWithConfig(t, cfg, "adjust", "--discount", "0.05", "--adjust", "0.12", "--sign=+", "--output-format", "csv")
	require.NoError(t, err)
	assert.Equal(t, "kit,total before,total after,discount\nSolo Kit,33600.00,31920.00,1680.00\n", out)
}

func TestAdjustCommandDefaultsToSample(t *testing.T) {
	out, err := executeWithConfig(t, "adjustment:\n  fraction: 0.12\n  sign: \"+\"\n", "adjust", "--output-format", "csv")
	require.NoError(t, err)
	// Budget Kit: 74500 * 1.12 = 83440, less 5% = 79268
	assert.Contains(t, out, "Budget Kit,83440.00,79268.00,4172.00")
}

func TestAdjustCommandRejectsUnknownSign(t *testing.T) {
	_, err := executeWithConfig(t, budgetKitConfig, "adjust", "--sign", "*")
	assert.ErrorIs(t, err, validation.ErrInvalidArgument)
}

func TestInvalidOutputFormat(t *testing.T) {
	_, err := executeWithConfig(t, budgetKitConfig, "discount", "--output-format", "xml")
	assert.Error(t, err)
}

func TestInvalidInventoryKind(t *testing.T) {
	_, err := executeWithConfig(t, "inventory:\n  - kind: tripod\n", "discount")
	assert.ErrorIs(t, err, validation.ErrInvalidArgument)
}

func TestInitializeLogger(t *testing.T) {
	tests := []struct {
		name      string
		config    config.LoggingConfig
		override  string
		wantError bool
	}{
		{name: "Defaults", config: config.LoggingConfig{}},
		{name: "Console debug", config: config.LoggingConfig{Level: "debug", Format: "console"}},
		{name: "Override wins", config: config.LoggingConfig{Level: "bogus"}, override: "warn"},
		{name: "Invalid level", config: config.LoggingConfig{Level: "verbose"}, wantError: true},
		{name: "Invalid format", config: config.LoggingConfig{Format: "xml"}, wantError: true},
		{name: "Log file", config: config.LoggingConfig{OutputFile: filepath.Join(t.TempDir(), "logs", "gear-rental.log")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, err := initializeLogger(tt.config, tt.override)
			if tt.wantError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, logger)
		})
	}
}

// logFatal reports err the way main does, but panics instead of exiting.
func logFatal(a *app, w io.Writer, err error) {
	a.errorLogger(w, zap.OnFatal(zapcore.WriteThenPanic)).Fatal(err.Error(),
		zap.String("op", "main"),
	)
}

func decodeEntry(t *testing.T, line string) map[string]interface{} {
	t.Helper()
	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(line), &entry), "log line is not valid JSON: %s", line)
	return entry
}

func TestCommandFailureIsLoggedWithConfiguredLogger(t *testing.T) {
	dir := t.TempDir()
	logFile := filepath.Join(dir, "gear-rental.log")
	path := filepath.Join(dir, "config.yaml")
	content := "logging:\n  format: json\n  outputFile: " + logFile + "\n" + budgetKitConfig
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cmd, a := newRootCmd()
	cmd.SetOut(io.Discard)
	cmd.SetArgs([]string{"adjust", "--sign", "x", "--config", path})
	err := cmd.Execute()
	require.ErrorIs(t, err, validation.ErrInvalidArgument)
	require.NotNil(t, a.logger)

	var stderr bytes.Buffer
	assert.Panics(t, func() { logFatal(a, &stderr, err) })
	assert.Zero(t, stderr.Len(), "configured logger writes to its own output")

	raw, readErr := os.ReadFile(logFile)
	require.NoError(t, readErr)
	lines := strings.Split(strings.TrimSpace(string(raw)), "\n")
	entry := decodeEntry(t, lines[len(lines)-1])
	assert.Equal(t, "fatal", entry["level"])
	assert.Equal(t, "main", entry["op"])
	assert.Equal(t, err.Error(), entry["msg"])
	assert.Contains(t, entry["msg"], `"x"`)
}

func TestCommandFailureBeforeLoggerIsValidJSON(t *testing.T) {
	cmd, a := newRootCmd()
	cmd.SetOut(io.Discard)
	cmd.SetArgs([]string{"discount", "--config", filepath.Join(t.TempDir(), "absent.yaml")})
	err := cmd.Execute()
	require.Error(t, err)
	require.Nil(t, a.logger)

	var stderr bytes.Buffer
	quoted := validation.ValidateSign("x")
	require.Error(t, quoted)
	assert.Panics(t, func() { logFatal(a, &stderr, quoted) })

	entry := decodeEntry(t, strings.TrimSpace(stderr.String()))
	assert.Equal(t, "fatal", entry["level"])
	assert.Equal(t, "main", entry["op"])
	assert.Equal(t, quoted.Error(), entry["msg"])
}
