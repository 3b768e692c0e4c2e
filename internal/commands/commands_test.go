package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mockbok-dev/mockbok/internal/config"
)

// quietConfig writes a config with simulation disabled so command runs are
// fast and never hit a simulated failure.
func quietConfig(t *testing.T) string {
	t.Helper()
	cfg := config.Default()
	cfg.Simulation = config.SimulationConfig{}
	cfg.Logging.Level = "error"
	path := filepath.Join(t.TempDir(), "mockbok.yaml")
	require.NoError(t, config.Save(path, cfg))
	return path
}

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestGenerate_PrintsSummary(t *testing.T) {
	out, err := runCommand(t, "generate", "--config", quietConfig(t))
	require.NoError(t, err)
	assert.Contains(t, out, "Generated 100 transactions")
	assert.Contains(t, out, "Debit total:")
	assert.Contains(t, out, "Net:")
}

func TestGenerate_ExportsCSV(t *testing.T) {
	outDir := filepath.Join(t.TempDir(), "export")
	_, err := runCommand(t, "generate", "--config", quietConfig(t), "--size", "30", "--out", outDir)
	require.NoError(t, err)

	for _, name := range []string{"accounts.csv", "transactions.csv"} {
		info, statErr := os.Stat(filepath.Join(outDir, name))
		require.NoError(t, statErr, name)
		assert.Greater(t, info.Size(), int64(0), name)
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	cfgPath := quietConfig(t)
	first, err := runCommand(t, "generate", "--config", cfgPath)
	require.NoError(t, err)
	second, err := runCommand(t, "generate", "--config", cfgPath)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestQuery_FiltersRevenue(t *testing.T) {
	out, err := runCommand(t, "query", "--config", quietConfig(t), "--class", "4", "--page-size", "10")
	require.NoError(t, err)
	assert.Contains(t, out, "CREDIT")
	assert.NotContains(t, out, "DEBIT", "revenue pages carry only credits")
	assert.Contains(t, out, "matching transactions")
}

func TestQuery_ValidationErrorListsFields(t *testing.T) {
	out, err := runCommand(t, "query", "--config", quietConfig(t), "--min", "500", "--max", "100")
	require.Error(t, err)
	assert.Contains(t, out, "minAmount")
}
