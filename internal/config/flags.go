package config

import (
	"flag"
	"time"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-source source kind: http or postgres
//	-a remote HTTP API base address
//	-d remote database DSN
//	-request-timeout fetch/mutation timeout (e.g., "15s")
//	-s local state database path
//	-i background sync interval (e.g., "30s", "1m")
//	-sound enable the notification sound
//	-desktop enable desktop notifications
//	-copies default number of printed copies
//	-paper default paper size (A4, A5, Letter)
//	-orientation default page orientation (portrait, landscape)
//	-pdf-dir directory for PDF exports
//	-c/-config json file path with configs
func ParseFlags() *StructuredConfig {
	var sourceKind string
	var httpAddress string
	var sourceDSN string
	var requestTimeout time.Duration
	var statePath string
	var syncInterval time.Duration
	var sound bool
	var desktop bool
	var copies int
	var paper string
	var orientation string
	var pdfDir string
	var jsonConfigPath string

	flag.StringVar(&sourceKind, "source", "", "Record source kind (http or postgres)")
	flag.StringVar(&httpAddress, "a", "", "Remote HTTP API base address")
	flag.StringVar(&sourceDSN, "d", "", "Remote database DSN")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 15s)")
	flag.StringVar(&statePath, "s", "", "Local state database path")
	flag.DurationVar(&syncInterval, "i", 0, "Background sync interval (e.g., 30s, 1m)")
	flag.BoolVar(&sound, "sound", false, "Enable notification sound")
	flag.BoolVar(&desktop, "desktop", false, "Enable desktop notifications")
	flag.IntVar(&copies, "copies", 0, "Default number of printed copies")
	flag.StringVar(&paper, "paper", "", "Default paper size (A4, A5, Letter)")
	flag.StringVar(&orientation, "orientation", "", "Default page orientation (portrait, landscape)")
	flag.StringVar(&pdfDir, "pdf-dir", "", "Directory for PDF exports")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	flag.Parse()

	return &StructuredConfig{
		Source: Source{
			Kind:           sourceKind,
			HTTPAddress:    httpAddress,
			DSN:            sourceDSN,
			RequestTimeout: requestTimeout,
		},
		Storage: Storage{
			StatePath: statePath,
		},
		Sync: Sync{
			Interval: syncInterval,
		},
		Notify: Notify{
			Sound:   sound,
			Desktop: desktop,
		},
		Print: Print{
			Copies:      copies,
			Paper:       paper,
			Orientation: orientation,
			OutputDir:   pdfDir,
		},
		JSONFilePath: jsonConfigPath,
	}
}
