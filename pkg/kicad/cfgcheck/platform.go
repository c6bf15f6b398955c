package cfgcheck

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

// Platform resolves the per-OS configuration directory and the install
// locations of the libraries bundled with KiCad.
type Platform interface {
	// ConfigDir returns the canonical KiCad 6 configuration directory.
	ConfigDir() (string, error)

	// LibraryDefaults returns the bundled symbol and footprint library paths.
	LibraryDefaults() (symbols, footprints string)
}

// Detect returns the Platform for the running operating system. Platforms
// without a known KiCad 6 layout fail explicitly rather than guess paths.
func Detect() (Platform, error) {
	switch runtime.GOOS {
	case "linux":
		return linuxPlatform{}, nil
	default:
		return nil, fmt.Errorf("unsupported platform %q: only linux is supported", runtime.GOOS)
	}
}

type linuxPlatform struct{}

func (linuxPlatform) ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot resolve home directory: %w", err)
	}
	return filepath.Join(home, ".config", "kicad", "6.0"), nil
}

func (linuxPlatform) LibraryDefaults() (string, string) {
	return "/usr/share/kicad/symbols", "/usr/share/kicad/footprints"
}
