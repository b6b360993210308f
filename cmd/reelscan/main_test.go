package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"reelscan/internal/inventory"
)

func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCommand()
	buf := &bytes.Buffer{}
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func writeTestConfig(t *testing.T, root string) string {
	t.Helper()
	base := t.TempDir()
	cfgPath := filepath.Join(base, "reelscan.toml")
	content := `
[paths]
roots = ["` + root + `"]
log_dir = "` + filepath.Join(base, "logs") + `"
state_dir = "` + filepath.Join(base, "state") + `"

[output]
csv_path = "` + filepath.Join(base, "inventory.csv") + `"
db_path = "` + filepath.Join(base, "inventory.db") + `"

[ffprobe]
binary = "sh"
`
	if err := os.WriteFile(cfgPath, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return cfgPath
}

func TestRootCommandShowsHelp(t *testing.T) {
	output, err := executeCommand(t)
	if err != nil {
		t.Fatalf("root command failed: %v", err)
	}
	if !strings.Contains(output, "scan") || !strings.Contains(output, "report") {
		t.Fatalf("expected subcommands in help output:\n%s", output)
	}
}

func TestConfigInitWritesSampleOnce(t *testing.T) {
	target := filepath.Join(t.TempDir(), "config.toml")

	output, err := executeCommand(t, "config", "init", "--path", target)
	if err != nil {
		t.Fatalf("config init failed: %v", err)
	}
	if !strings.Contains(output, target) {
		t.Fatalf("expected target path in output:\n%s", output)
	}
	raw, err := os.ReadFile(target)
	if err != nil {
		t.Fatalf("read sample: %v", err)
	}
	if !strings.Contains(string(raw), "[paths]") {
		t.Fatalf("unexpected sample content:\n%s", raw)
	}

	if _, err := executeCommand(t, "config", "init", "--path", target); err == nil {
		t.Fatal("expected error without --overwrite")
	}
	if _, err := executeCommand(t, "config", "init", "--path", target, "--overwrite"); err != nil {
		t.Fatalf("config init --overwrite failed: %v", err)
	}
}

func TestConfigValidate(t *testing.T) {
	root := t.TempDir()
	cfgPath := writeTestConfig(t, root)

	output, err := executeCommand(t, "--config", cfgPath, "config", "validate")
	if err != nil {
		t.Fatalf("config validate failed: %v", err)
	}
	if !strings.Contains(output, "Configuration valid") {
		t.Fatalf("unexpected output:\n%s", output)
	}
}

func TestConfigShowPrintsResolvedValues(t *testing.T) {
	root := t.TempDir()
	cfgPath := writeTestConfig(t, root)

	output, err := executeCommand(t, "--config", cfgPath, "config", "show")
	if err != nil {
		t.Fatalf("config show failed: %v", err)
	}
	if !strings.Contains(output, "[paths]") || !strings.Contains(output, root) {
		t.Fatalf("expected resolved config in output:\n%s", output)
	}
	if !strings.Contains(output, "probe_timeout_seconds = 120") {
		t.Fatalf("expected defaults applied:\n%s", output)
	}
}

func TestScanWithNoMatchingFiles(t *testing.T) {
	root := t.TempDir()
	cfgPath := writeTestConfig(t, root)

	output, err := executeCommand(t, "--config", cfgPath, "scan", "--no-progress")
	if err != nil {
		t.Fatalf("scan failed: %v", err)
	}
	if !strings.Contains(output, "nothing to do") {
		t.Fatalf("expected clean early termination message:\n%s", output)
	}
}

func TestReportWithoutDatabase(t *testing.T) {
	root := t.TempDir()
	cfgPath := writeTestConfig(t, root)

	if _, err := executeCommand(t, "--config", cfgPath, "report"); err == nil {
		t.Fatal("expected error when database is missing")
	}
}

func TestRenderInventoryTable(t *testing.T) {
	records := []inventory.Record{
		{
			Filename:      "movie.mkv",
			Container:     "matroska,webm",
			DurationMin:   2.09,
			SizeMB:        1000.00,
			VideoCodec:    "h264",
			AudioCodec:    "aac",
			AudioLangs:    "eng",
			Resolution:    "1920x1080",
			EstSizeH265MB: 650.00,
		},
	}
	rendered := renderInventoryTable(records)
	if !strings.Contains(rendered, "movie.mkv") {
		t.Fatalf("missing filename:\n%s", rendered)
	}
	if !strings.Contains(rendered, "English") {
		t.Fatalf("expected humanized language name:\n%s", rendered)
	}
	if !strings.Contains(rendered, "650.00") {
		t.Fatalf("expected estimate column:\n%s", rendered)
	}
}
