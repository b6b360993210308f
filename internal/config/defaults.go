package config

const (
	defaultLogDir              = "~/.local/share/reelscan/logs"
	defaultStateDir            = "~/.local/share/reelscan"
	defaultCSVPath             = "~/.local/share/reelscan/inventory.csv"
	defaultDBPath              = "~/.local/share/reelscan/inventory.db"
	defaultFFprobeBinary       = "ffprobe"
	defaultProbeTimeoutSeconds = 120
	defaultLogFormat           = "console"
	defaultLogLevel            = "info"
)

func defaultExtensions() []string {
	return []string{".mkv", ".mp4", ".avi", ".mov", ".wmv", ".flv", ".mpg", ".mpeg", ".m4v", ".webm", ".ts"}
}

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			LogDir:   defaultLogDir,
			StateDir: defaultStateDir,
		},
		Scan: Scan{
			Extensions:          defaultExtensions(),
			ProbeTimeoutSeconds: defaultProbeTimeoutSeconds,
		},
		Output: Output{
			CSVPath: defaultCSVPath,
			DBPath:  defaultDBPath,
		},
		FFprobe: FFprobe{
			Binary: defaultFFprobeBinary,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
