package preflight

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"golang.org/x/sys/unix"

	"reelscan/internal/config"
)

// minFreeBytes is the least free space accepted on an output filesystem.
const minFreeBytes = 16 << 20

// Result captures the outcome of one check.
type Result struct {
	Name   string
	Passed bool
	Detail string
}

// Run evaluates all checks for the given config.
func Run(cfg *config.Config) []Result {
	results := []Result{CheckProber(cfg.FFprobe.Binary)}
	for _, root := range cfg.Paths.Roots {
		results = append(results, CheckRoot(root))
	}
	results = append(results, CheckOutputDir("CSV output", filepath.Dir(cfg.Output.CSVPath)))
	results = append(results, CheckOutputDir("Database output", filepath.Dir(cfg.Output.DBPath)))
	results = append(results, CheckOutputDir("Log directory", cfg.Paths.LogDir))
	return results
}

// AllPassed reports whether every check succeeded.
func AllPassed(results []Result) bool {
	for _, result := range results {
		if !result.Passed {
			return false
		}
	}
	return true
}

// Failures returns the details of failed checks.
func Failures(results []Result) []string {
	var failures []string
	for _, result := range results {
		if !result.Passed {
			failures = append(failures, fmt.Sprintf("%s: %s", result.Name, result.Detail))
		}
	}
	return failures
}

// CheckProber verifies the ffprobe executable can be resolved.
func CheckProber(binary string) Result {
	const name = "ffprobe"
	cleaned := strings.TrimSpace(binary)
	if cleaned == "" {
		cleaned = "ffprobe"
	}
	resolved, err := exec.LookPath(cleaned)
	if err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s not found (%v)", cleaned, err)}
	}
	return Result{Name: name, Passed: true, Detail: resolved}
}

// CheckRoot verifies a scan root exists and is readable.
func CheckRoot(path string) Result {
	name := fmt.Sprintf("root %s", path)
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Result{Name: name, Detail: "does not exist"}
		}
		return Result{Name: name, Detail: fmt.Sprintf("stat: %v", err)}
	}
	if !info.IsDir() {
		return Result{Name: name, Detail: "is not a directory"}
	}
	if err := unix.Access(path, unix.R_OK|unix.X_OK); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("insufficient permissions: %v", err)}
	}
	return Result{Name: name, Passed: true, Detail: "readable"}
}

// CheckOutputDir verifies the directory is writable and its filesystem has
// free space for the run's outputs.
func CheckOutputDir(name, path string) Result {
	if err := os.MkdirAll(path, 0o755); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("create: %v", err)}
	}
	if err := unix.Access(path, unix.W_OK|unix.X_OK); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("insufficient permissions: %v", err)}
	}

	var stat unix.Statfs_t
	if err := unix.Statfs(path, &stat); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("statfs: %v", err)}
	}
	free := uint64(stat.Bavail) * uint64(stat.Bsize)
	if free < minFreeBytes {
		return Result{Name: name, Detail: fmt.Sprintf("only %d bytes free", free)}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (writable)", path)}
}
