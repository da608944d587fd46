// Package paths resolves the directories csvgate reads and writes.
package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

// AppName is the application name used for directory naming.
const AppName = "csvgate"

// DefaultDirPerm is the default permission for newly created directories (private).
const DefaultDirPerm = 0o700

// EnsureDir creates the directory and any necessary parents with specified permissions.
// If perm is 0, DefaultDirPerm (0700) is used.
// This function is idempotent; it returns nil if the directory already exists.
func EnsureDir(path string, perm os.FileMode) error {
	if perm == 0 {
		perm = DefaultDirPerm
	}
	return os.MkdirAll(path, perm)
}

// ConfigHome returns the XDG config home directory.
// On Linux: ~/.config
// On macOS: ~/Library/Application Support
// On Windows: %LOCALAPPDATA%
func ConfigHome() string {
	return xdg.ConfigHome
}

// DataHome returns the XDG data home directory.
func DataHome() string {
	return xdg.DataHome
}

// AppConfigDir returns the application's own config directory.
// Returns: <ConfigHome>/csvgate/
func AppConfigDir() string {
	return filepath.Join(ConfigHome(), AppName)
}

// SchemaDirs returns the directories searched for schema documents, in
// precedence order: the working directory, ./schemas, and the user-level
// schema directory under the app config dir.
func SchemaDirs() []string {
	return []string{
		".",
		"schemas",
		filepath.Join(AppConfigDir(), "schemas"),
	}
}
