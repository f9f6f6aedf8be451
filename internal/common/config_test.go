package common

import "testing"

func TestLoadConfigDefaults(t *testing.T) {
	cfg := LoadConfig()
	if cfg.Batch.Workers < 1 {
		t.Fatalf("workers default must be >= 1, got %d", cfg.Batch.Workers)
	}
	if len(cfg.Batch.IncludeExts) != 1 || cfg.Batch.IncludeExts[0] != "pdf" {
		t.Fatalf("unexpected default extensions: %v", cfg.Batch.IncludeExts)
	}
	if !cfg.Batch.SkipHidden {
		t.Fatal("hidden files should be skipped by default")
	}
	if cfg.Export.SheetName != "Acordaos" {
		t.Fatalf("unexpected default sheet name: %q", cfg.Export.SheetName)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should validate: %v", err)
	}
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	t.Setenv("BATCH_WORKERS", "3")
	t.Setenv("BATCH_EXTENSIONS", "pdf, txt")
	t.Setenv("BATCH_SKIP_HIDDEN", "false")
	t.Setenv("EXPORT_SHEET_NAME", "Rulings")

	cfg := LoadConfig()
	if cfg.Batch.Workers != 3 {
		t.Fatalf("workers: got %d", cfg.Batch.Workers)
	}
	if len(cfg.Batch.IncludeExts) != 2 || cfg.Batch.IncludeExts[1] != "txt" {
		t.Fatalf("extensions: got %v", cfg.Batch.IncludeExts)
	}
	if cfg.Batch.SkipHidden {
		t.Fatal("skip hidden should be disabled")
	}
	if cfg.Export.SheetName != "Rulings" {
		t.Fatalf("sheet name: got %q", cfg.Export.SheetName)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	cfg := LoadConfig()
	cfg.Batch.Workers = 0
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for zero workers")
	}
}
