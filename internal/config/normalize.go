package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	if err := c.normalizeOutput(); err != nil {
		return err
	}
	c.normalizeScan()
	c.normalizeFFprobe()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	roots := make([]string, 0, len(c.Paths.Roots))
	for i, root := range c.Paths.Roots {
		trimmed := strings.TrimSpace(root)
		if trimmed == "" {
			continue
		}
		expanded, expandErr := ExpandPath(trimmed)
		if expandErr != nil {
			return fmt.Errorf("paths.roots[%d]: %w", i, expandErr)
		}
		roots = append(roots, expanded)
	}
	c.Paths.Roots = roots

	if strings.TrimSpace(c.Paths.LogDir) == "" {
		c.Paths.LogDir = defaultLogDir
	}
	if c.Paths.LogDir, err = ExpandPath(c.Paths.LogDir); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.StateDir) == "" {
		c.Paths.StateDir = defaultStateDir
	}
	if c.Paths.StateDir, err = ExpandPath(c.Paths.StateDir); err != nil {
		return fmt.Errorf("paths.state_dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeOutput() error {
	var err error
	if strings.TrimSpace(c.Output.CSVPath) == "" {
		c.Output.CSVPath = defaultCSVPath
	}
	if c.Output.CSVPath, err = ExpandPath(c.Output.CSVPath); err != nil {
		return fmt.Errorf("output.csv_path: %w", err)
	}
	if strings.TrimSpace(c.Output.DBPath) == "" {
		c.Output.DBPath = defaultDBPath
	}
	if c.Output.DBPath, err = ExpandPath(c.Output.DBPath); err != nil {
		return fmt.Errorf("output.db_path: %w", err)
	}
	return nil
}

func (c *Config) normalizeScan() {
	exts := make([]string, 0, len(c.Scan.Extensions))
	seen := map[string]struct{}{}
	for _, ext := range c.Scan.Extensions {
		cleaned := strings.ToLower(strings.TrimSpace(ext))
		if cleaned == "" {
			continue
		}
		if !strings.HasPrefix(cleaned, ".") {
			cleaned = "." + cleaned
		}
		if _, ok := seen[cleaned]; ok {
			continue
		}
		seen[cleaned] = struct{}{}
		exts = append(exts, cleaned)
	}
	c.Scan.Extensions = exts
	if c.Scan.ProbeTimeoutSeconds <= 0 {
		c.Scan.ProbeTimeoutSeconds = defaultProbeTimeoutSeconds
	}
}

func (c *Config) normalizeFFprobe() {
	c.FFprobe.Binary = strings.TrimSpace(c.FFprobe.Binary)
	if c.FFprobe.Binary == "" {
		if value, ok := os.LookupEnv("REELSCAN_FFPROBE"); ok && strings.TrimSpace(value) != "" {
			c.FFprobe.Binary = strings.TrimSpace(value)
		} else {
			c.FFprobe.Binary = defaultFFprobeBinary
		}
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
