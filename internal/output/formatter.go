package output

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/pensionview/retirement-projection/internal/domain"
)

// ErrUnsupportedFormat is returned for unknown report formats.
var ErrUnsupportedFormat = errors.New("unsupported format")

// Formatter defines a pluggable output formatter that returns a byte slice.
// Implementations should be pure (no side effects besides deterministic formatting).
type Formatter interface {
	Format(results *domain.ScenarioComparison) ([]byte, error)
	// Name returns a short identifier for logging / debugging.
	Name() string
}

// FormatterFunc adapter to allow ordinary functions to act as a Formatter.
type FormatterFunc struct {
	ID string
	F  func(*domain.ScenarioComparison) ([]byte, error)
}

func (ff FormatterFunc) Format(r *domain.ScenarioComparison) ([]byte, error) { return ff.F(r) }
func (ff FormatterFunc) Name() string                                        { return ff.ID }

// Options configure the built-in formatters.
type Options struct {
	CurrencySymbol string
}

// builtInFormatters maps canonical names to constructors.
var builtInFormatters = map[string]func(Options) Formatter{
	"console":      func(o Options) Formatter { return ConsoleFormatter{Symbol: o.CurrencySymbol} },
	"csv":          func(Options) Formatter { return CSVYearlyExporter{} },
	"detailed-csv": func(Options) Formatter { return CSVDetailedExporter{} },
	"summary-csv":  func(Options) Formatter { return CSVSummarizer{} },
	"json":         func(Options) Formatter { return JSONFormatter{} },
	"pdf":          func(o Options) Formatter { return PDFFormatter{Symbol: o.CurrencySymbol} },
}

// extensions maps canonical names to file extensions.
var extensions = map[string]string{
	"console":      "txt",
	"csv":          "csv",
	"detailed-csv": "csv",
	"summary-csv":  "csv",
	"json":         "json",
	"pdf":          "pdf",
}

// GetFormatter returns the named formatter configured with opts.
func GetFormatter(name string, opts Options) (Formatter, error) {
	ctor, ok := builtInFormatters[NormalizeFormatName(name)]
	if !ok {
		return nil, fmt.Errorf("%w: %q. Try one of: %s (aliases: %s)", ErrUnsupportedFormat, name,
			strings.Join(AvailableFormatterNames(), ", "), strings.Join(AvailableFormatAliases(), ", "))
	}
	return ctor(opts), nil
}

// GetFormatterByName fetches a registered formatter with default options, or nil.
func GetFormatterByName(name string) Formatter {
	f, err := GetFormatter(name, Options{})
	if err != nil {
		return nil
	}
	return f
}

// Extension returns the file extension used for a format.
func Extension(name string) string {
	if ext, ok := extensions[NormalizeFormatName(name)]; ok {
		return ext
	}
	return "txt"
}

// WriteFormatted runs a formatter and writes output to a timestamped file in dir.
func WriteFormatted(f Formatter, results *domain.ScenarioComparison, dir, ext string) (string, error) {
	data, err := f.Format(results)
	if err != nil {
		return "", err
	}
	filename := filepath.Join(dir, fmt.Sprintf("retirement_projection_%s_%s.%s", f.Name(), time.Now().Format("20060102_150405"), ext))
	if err := os.WriteFile(filename, data, 0644); err != nil {
		return "", err
	}
	return filename, nil
}

// aliasMap provides user-friendly synonyms for format names.
var aliasMap = map[string]string{
	"table":        "console",
	"text":         "console",
	"csv-yearly":   "csv",
	"csv-detailed": "detailed-csv",
	"csv-summary":  "summary-csv",
	"json-pretty":  "json",
	"report":       "pdf",
}

// NormalizeFormatName lowers and resolves aliases.
func NormalizeFormatName(name string) string {
	n := strings.ToLower(strings.TrimSpace(name))
	if mapped, ok := aliasMap[n]; ok {
		return mapped
	}
	return n
}

// AvailableFormatterNames returns the canonical formatter names.
func AvailableFormatterNames() []string {
	names := make([]string, 0, len(builtInFormatters))
	for name := range builtInFormatters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// AvailableFormatAliases returns the supported alias keys.
func AvailableFormatAliases() []string {
	keys := make([]string, 0, len(aliasMap))
	for k := range aliasMap {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
