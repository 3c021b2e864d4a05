package output

import (
	"os"

	"github.com/pensionview/retirement-projection/internal/domain"
	"gopkg.in/yaml.v3"
)

// GenerateReport writes results in format to a timestamped file in dir and
// returns the file names written. "all" writes the console and detailed CSV
// reports.
func GenerateReport(results *domain.ScenarioComparison, format, dir string, opts Options) ([]string, error) {
	formats := []string{format}
	if NormalizeFormatName(format) == "all" {
		formats = []string{"console", "detailed-csv"}
	}

	var written []string
	for _, name := range formats {
		f, err := GetFormatter(name, opts)
		if err != nil {
			return written, err
		}
		filename, err := WriteFormatted(f, results, dir, Extension(name))
		if err != nil {
			return written, err
		}
		written = append(written, filename)
	}
	return written, nil
}

// SaveConfiguration writes a scenario file as YAML.
func SaveConfiguration(config *domain.Configuration, filename string) error {
	b, err := yaml.Marshal(config)
	if err != nil {
		return err
	}
	return os.WriteFile(filename, b, 0644)
}
