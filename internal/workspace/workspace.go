// Package workspace resolves the cargo workspace root directory and decides
// whether the shim is running from it.
package workspace

import (
	"path/filepath"
	"runtime"

	"github.com/spf13/viper"
)

const (
	// DirectoryEnvironmentVariable overrides workspace root discovery when
	// set and non-empty. The repository sets it via .cargo/config.toml so
	// the override tracks the hosting workspace rather than this module.
	DirectoryEnvironmentVariable = "CARGO_WORKSPACE_DIR"

	workspaceDirectoryConfigurationKey = "workspace.directory"

	// parentDirectoriesAboveSource is the number of parents between this
	// source file's directory and the module root.
	parentDirectoriesAboveSource = 2
)

// sourceLocation anchors fallback discovery to a location known at build
// time, the equivalent of a compile-time manifest directory.
var _, sourceLocation, _, _ = runtime.Caller(0)

// Dir resolves the workspace root directory: the environment override when
// it is set and non-empty, otherwise a fixed walk upward from the build-time
// source location.
func Dir() string {
	environment := viper.New()
	_ = environment.BindEnv(workspaceDirectoryConfigurationKey, DirectoryEnvironmentVariable)
	if overrideDirectory := environment.GetString(workspaceDirectoryConfigurationKey); overrideDirectory != "" {
		return overrideDirectory
	}

	fallbackDirectory := filepath.Dir(sourceLocation)
	for parentIndex := 0; parentIndex < parentDirectoriesAboveSource; parentIndex++ {
		parentDirectory := filepath.Dir(fallbackDirectory)
		if parentDirectory == fallbackDirectory {
			break
		}
		fallbackDirectory = parentDirectory
	}
	return fallbackDirectory
}

// IsRoot reports whether the provided working directory is the workspace
// root. Paths are compared after cleaning; symlinks are not resolved.
func IsRoot(workingDirectory string) bool {
	if workingDirectory == "" {
		return false
	}
	return filepath.Clean(workingDirectory) == filepath.Clean(Dir())
}
