package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/lubomirsilny/arbes-assignment/core/output"
	"github.com/lubomirsilny/arbes-assignment/internal/config"
)

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write temp file: %v", err)
	}
	return path
}

func TestCreateFormatter(t *testing.T) {
	defer func() {
		outputFormat = ""
		config.Set(config.Default())
	}()

	tests := []struct {
		name          string
		flag          string
		configDefault string
		wantFormat    output.Format
		wantErr       string
	}{
		{name: "config default", configDefault: "cli", wantFormat: output.FormatCLI},
		{name: "json from config", configDefault: "json", wantFormat: output.FormatJSON},
		{name: "flag wins over config", flag: "cli", configDefault: "json", wantFormat: output.FormatCLI},
		{name: "json flag", flag: "json", configDefault: "cli", wantFormat: output.FormatJSON},
		{name: "unknown format", flag: "xml", configDefault: "cli", wantErr: "unknown output format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			outputFormat = tt.flag
			cfg := config.Default()
			cfg.Output.DefaultFormat = tt.configDefault
			config.Set(cfg)

			f, err := createFormatter(billCmd)
			if tt.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
					t.Fatalf("expected error containing %q, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if f.Format() != tt.wantFormat {
				t.Errorf("expected %s formatter, got %s", tt.wantFormat, f.Format())
			}
		})
	}
}

func TestLoadTariff(t *testing.T) {
	defer func() {
		tariffFile = ""
		config.Set(config.Default())
	}()

	flagFile := writeTempFile(t, "flag.hcl", `tariff { standard_rate = "2.00" }`)
	configFile := writeTempFile(t, "config.hcl", `tariff { standard_rate = "3.00" }`)

	tests := []struct {
		name       string
		flag       string
		configFile string
		want       string
	}{
		{name: "built-in", want: "1"},
		{name: "flag file", flag: flagFile, want: "2"},
		{name: "config file", configFile: configFile, want: "3"},
		{name: "flag wins over config", flag: flagFile, configFile: configFile, want: "2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tariffFile = tt.flag
			cfg := config.Default()
			cfg.Tariff.File = tt.configFile
			config.Set(cfg)

			rates, err := loadTariff()
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			want := decimal.RequireFromString(tt.want)
			if !rates.StandardRate.Equal(want) {
				t.Errorf("expected standard rate %s, got %s", want, rates.StandardRate)
			}
		})
	}
}

func TestLoadTariffMissingFile(t *testing.T) {
	defer func() { tariffFile = "" }()

	tariffFile = filepath.Join(t.TempDir(), "missing.hcl")
	if _, err := loadTariff(); err == nil {
		t.Fatal("expected error for missing tariff file")
	}
}

func TestReadLog(t *testing.T) {
	path := writeTempFile(t, "calls.log", "420774577453,13-01-2020 18:10:15,13-01-2020 18:12:57\n")

	got, err := readLog([]string{path})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(got, "420774577453") {
		t.Errorf("unexpected log text %q", got)
	}

	if _, err := readLog([]string{filepath.Join(t.TempDir(), "missing.log")}); err == nil {
		t.Fatal("expected error for missing log file")
	}
}
