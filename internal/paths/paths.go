package paths

import (
	"os"
	"path/filepath"
)

// ConfigFileName is the primary configuration file probed inside ConfigDir.
const ConfigFileName = "config.toml"

// AltConfigFileName is accepted when the primary file is absent.
const AltConfigFileName = "config.yaml"

// ConfigDir returns the sdkrun configuration directory following the XDG
// convention: $XDG_CONFIG_HOME/sdkrun, falling back to $HOME/.config/sdkrun.
func ConfigDir() string {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		base = filepath.Join(os.Getenv("HOME"), ".config")
	}
	return filepath.Join(base, "sdkrun")
}

// ConfigFile returns the expected primary configuration file path. The file
// may not exist; callers name this path when reporting a missing
// configuration.
func ConfigFile() string {
	return filepath.Join(ConfigDir(), ConfigFileName)
}

// FileExists reports whether a path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}

// DirExists reports whether a path exists and is a directory.
func DirExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}
