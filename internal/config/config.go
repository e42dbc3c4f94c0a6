// Package config loads the shim's layered application configuration: an
// optional global file under the user's home directory overlaid by an
// optional local file in the working directory.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/romnn/clippy-shim/internal/utils"
)

const (
	// VerboseEnvironmentVariable enables debug diagnostics when set to a
	// truthy value.
	VerboseEnvironmentVariable = "CLIPPY_SHIM_VERBOSE"

	verboseConfigurationKey = "verbose"
)

// LoadOptions controls how application configuration is discovered.
type LoadOptions struct {
	WorkingDirectory string
	ExplicitFilePath string
}

// ApplicationConfiguration holds shim-wide settings. Configuration never
// alters the defaulting rules or the strict lint baseline; those are the
// repository contract.
type ApplicationConfiguration struct {
	Cargo   CargoConfiguration `mapstructure:"cargo"`
	Verbose *bool              `mapstructure:"verbose"`
}

// CargoConfiguration selects the cargo executable used to run clippy.
type CargoConfiguration struct {
	Binary string `mapstructure:"binary"`
}

// LoadApplicationConfiguration loads configuration from the global and local
// files, the local file overriding the global one. Absent files are not
// errors.
func LoadApplicationConfiguration(options LoadOptions) (ApplicationConfiguration, error) {
	workingDirectory := options.WorkingDirectory
	if workingDirectory == utils.EmptyString {
		currentDirectory, workingDirectoryError := os.Getwd()
		if workingDirectoryError != nil {
			return ApplicationConfiguration{}, fmt.Errorf("determine working directory: %w", workingDirectoryError)
		}
		workingDirectory = currentDirectory
	}

	var merged ApplicationConfiguration

	if homeDirectory, homeDirectoryError := os.UserHomeDir(); homeDirectoryError == nil && homeDirectory != utils.EmptyString {
		globalPath := filepath.Join(homeDirectory, utils.GlobalConfigDirectoryName, utils.ConfigFileName)
		globalConfiguration, loadError := loadConfigurationFromPath(globalPath)
		if loadError != nil {
			return ApplicationConfiguration{}, loadError
		}
		merged = merged.Merge(globalConfiguration)
	}

	localPath, resolveError := resolveLocalConfigPath(workingDirectory, options.ExplicitFilePath)
	if resolveError != nil {
		return ApplicationConfiguration{}, resolveError
	}
	if localPath != utils.EmptyString {
		localConfiguration, loadError := loadConfigurationFromPath(localPath)
		if loadError != nil {
			return ApplicationConfiguration{}, loadError
		}
		merged = merged.Merge(localConfiguration)
	}

	return merged, nil
}

// VerboseEnabled reports whether debug diagnostics were requested, either in
// configuration or through the environment.
func (configuration ApplicationConfiguration) VerboseEnabled() bool {
	if configuration.Verbose != nil {
		return *configuration.Verbose
	}
	environment := viper.New()
	_ = environment.BindEnv(verboseConfigurationKey, VerboseEnvironmentVariable)
	return environment.GetBool(verboseConfigurationKey)
}

// Merge overlays override onto the receiver returning the combined
// configuration.
func (configuration ApplicationConfiguration) Merge(override ApplicationConfiguration) ApplicationConfiguration {
	result := configuration
	if override.Cargo.Binary != utils.EmptyString {
		result.Cargo.Binary = override.Cargo.Binary
	}
	if override.Verbose != nil {
		result.Verbose = cloneBool(override.Verbose)
	}
	return result
}

func resolveLocalConfigPath(workingDirectory, explicitPath string) (string, error) {
	if explicitPath != utils.EmptyString {
		if filepath.IsAbs(explicitPath) {
			return explicitPath, nil
		}
		if workingDirectory == utils.EmptyString {
			absolutePath, absoluteError := filepath.Abs(explicitPath)
			if absoluteError != nil {
				return utils.EmptyString, fmt.Errorf("resolve configuration path %s: %w", explicitPath, absoluteError)
			}
			return absolutePath, nil
		}
		return filepath.Join(workingDirectory, explicitPath), nil
	}
	if workingDirectory == utils.EmptyString {
		return utils.EmptyString, nil
	}
	return filepath.Join(workingDirectory, utils.ConfigFileName), nil
}

func loadConfigurationFromPath(path string) (ApplicationConfiguration, error) {
	if path == utils.EmptyString {
		return ApplicationConfiguration{}, nil
	}
	fileInformation, statError := os.Stat(path)
	if statError != nil {
		if os.IsNotExist(statError) {
			return ApplicationConfiguration{}, nil
		}
		return ApplicationConfiguration{}, fmt.Errorf("stat configuration %s: %w", path, statError)
	}
	if fileInformation.IsDir() {
		return ApplicationConfiguration{}, fmt.Errorf("configuration path %s is a directory", path)
	}

	reader := viper.New()
	reader.SetConfigFile(path)
	if readError := reader.ReadInConfig(); readError != nil {
		return ApplicationConfiguration{}, fmt.Errorf("read configuration from %s: %w", path, readError)
	}
	var configuration ApplicationConfiguration
	if decodeError := reader.Unmarshal(&configuration); decodeError != nil {
		return ApplicationConfiguration{}, fmt.Errorf("decode configuration from %s: %w", path, decodeError)
	}
	return configuration, nil
}

func cloneBool(value *bool) *bool {
	if value == nil {
		return nil
	}
	cloned := *value
	return &cloned
}
