package integration

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pensionview/retirement-projection/internal/calculation"
	"github.com/pensionview/retirement-projection/internal/output"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutputGeneration(t *testing.T) {
	results, err := calculation.NewProjectionEngine().RunScenarios(context.Background(), loadExample(t))
	require.NoError(t, err)

	dir := t.TempDir()
	for _, format := range output.AvailableFormatterNames() {
		t.Run(format, func(t *testing.T) {
			files, err := output.GenerateReport(results, format, dir, output.Options{CurrencySymbol: "€"})
			require.NoError(t, err)
			require.Len(t, files, 1)
			data, err := os.ReadFile(files[0])
			require.NoError(t, err)
			assert.NotEmpty(t, data)
			assert.Equal(t, "."+output.Extension(format), filepath.Ext(files[0]))

			switch format {
			case "pdf":
				assert.True(t, bytes.HasPrefix(data, []byte("%PDF-")))
			case "console":
				assert.Contains(t, string(data), "€321,913")
			case "csv":
				assert.Contains(t, string(data), "Baseline,2055,")
			}
		})
	}
}

func TestSaveConfiguration_RoundTrip(t *testing.T) {
	cfg := loadExample(t)
	out := filepath.Join(t.TempDir(), "scenarios.yaml")
	require.NoError(t, output.SaveConfiguration(cfg, out))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(data), "market_rate: 6.1"))
}
