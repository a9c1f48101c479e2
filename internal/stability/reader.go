package stability

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Report file suffixes emitted by the compiler's reports directory.
const (
	classesSuffix     = "-classes.txt"
	composablesSuffix = "-composables.txt"
)

// LoadDir reads every stability report in dir and returns the parsed
// records in filename order. It fails when dir holds no report files or
// when a report cannot be read; unrecognized content inside a report is
// skipped by the parser, not an error here.
func LoadDir(dir string) ([]Record, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading report directory %s: %w", dir, err)
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if hasReportSuffix(name) {
			paths = append(paths, filepath.Join(dir, name))
		}
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no stability reports in %s (expected *%s or *%s files)", dir, classesSuffix, composablesSuffix)
	}
	sort.Strings(paths)

	var records []Record
	for _, path := range paths {
		data, err := os.ReadFile(path) // #nosec G304 -- paths come from the directory listing above
		if err != nil {
			return nil, fmt.Errorf("reading report %s: %w", path, err)
		}
		records = append(records, Parse(string(data))...)
	}
	return records, nil
}

func hasReportSuffix(name string) bool {
	return strings.HasSuffix(name, classesSuffix) || strings.HasSuffix(name, composablesSuffix)
}
