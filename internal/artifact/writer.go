package artifact

import (
	"fmt"
	"os"
	"path/filepath"
)

// WriteToFile stores the indented artifact at path, creating its directory first
func (a ReportArtifact) WriteToFile(path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create report dir: %w", err)
		}
	}

	data, err := a.ToJSON()
	if err != nil {
		return fmt.Errorf("encode report: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}
