package paths

import (
	"os"
	"path/filepath"
)

const appDirName = "psel"

// AppDataDir returns the application data directory for logs and other
// application-managed files. Uses os.UserConfigDir() which returns:
//   - macOS: ~/Library/Application Support
//   - Linux: $XDG_CONFIG_HOME or ~/.config
//   - Windows: %AppData% (roaming)
func AppDataDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "."
	}

	path := filepath.Join(dir, appDirName)

	// Use restrictive permissions for application data
	_ = os.MkdirAll(path, 0700)

	return path
}

// ConfigFilePath returns the path to the user configuration file.
func ConfigFilePath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(home, ".pselrc"), nil
}

// LogFilePath returns the path to the application log file.
// Logs are stored in the application data directory:
//   - macOS: ~/Library/Application Support/psel/psel.log
//   - Linux: $XDG_CONFIG_HOME/psel/psel.log or ~/.config/psel/psel.log
//   - Windows: %AppData%\psel\psel.log
func LogFilePath() string {
	return filepath.Join(AppDataDir(), "psel.log")
}
