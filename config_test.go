package docextract

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("DefaultConfig() is invalid: %v", err)
	}
	if cfg.ParallelFields {
		t.Error("ParallelFields should default to false")
	}
	if cfg.MaxFileSize <= 0 {
		t.Errorf("MaxFileSize = %d, want a positive default", cfg.MaxFileSize)
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "docextract.yaml")
	yaml := "parallel_fields: true\nmax_pages: 3\n"
	if err := os.WriteFile(path, []byte(yaml), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error: %v", err)
	}
	if !cfg.ParallelFields {
		t.Error("ParallelFields = false, want true")
	}
	if cfg.MaxPages != 3 {
		t.Errorf("MaxPages = %d, want 3", cfg.MaxPages)
	}
	// Keys absent from the file keep their default.
	if cfg.MaxFileSize != DefaultConfig().MaxFileSize {
		t.Errorf("MaxFileSize = %d, want default %d", cfg.MaxFileSize, DefaultConfig().MaxFileSize)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	dir := t.TempDir()
	tests := map[string]string{
		"negative limit": "max_file_size: -1\n",
		"malformed":      "max_pages: [1, 2\n",
	}
	for name, content := range tests {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name+".yaml")
			if err := os.WriteFile(path, []byte(content), 0644); err != nil {
				t.Fatal(err)
			}
			if _, err := LoadConfig(path); err == nil {
				t.Error("expected error")
			}
		})
	}

	if _, err := LoadConfig(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}
