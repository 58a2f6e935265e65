package directory

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/opsdesk-inc/opsdesk/internal/domain/employee"
)

// BackupFile keeps the last good employee list on disk so restarts survive an HR outage.
type BackupFile struct {
	path string
}

func NewBackupFile(path string) *BackupFile {
	return &BackupFile{path: path}
}

// Save replaces the file atomically.
func (b *BackupFile) Save(employees []employee.Employee) error {
	data, err := json.MarshalIndent(employees, "", "    ")
	if err != nil {
		return fmt.Errorf("encode backup: %w", err)
	}

	dir := filepath.Dir(b.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create backup dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".employees-*.json")
	if err != nil {
		return fmt.Errorf("create backup temp file: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("write backup: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("close backup: %w", err)
	}
	if err := os.Rename(tmpPath, b.path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("replace backup: %w", err)
	}
	return nil
}

func (b *BackupFile) Load() ([]employee.Employee, error) {
	data, err := os.ReadFile(b.path)
	if err != nil {
		return nil, fmt.Errorf("read backup: %w", err)
	}
	var employees []employee.Employee
	if err := json.Unmarshal(data, &employees); err != nil {
		return nil, fmt.Errorf("decode backup: %w", err)
	}
	return employees, nil
}
