// Package utils provides shared constants, the application logger, and
// version retrieval.
package utils

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime/debug"
	"strings"
)

const (
	unknownVersion        = "unknown"
	developmentVersion    = "(devel)"
	gitExecutableName     = "git"
	gitDescribeSubcommand = "describe"
)

// GetApplicationVersion determines the application version from Go build
// info, falling back to git describe when the binary was built from a
// checkout without embedded version data.
func GetApplicationVersion() string {
	buildInfo, buildInfoAvailable := debug.ReadBuildInfo()
	if buildInfoAvailable && buildInfo.Main.Version != EmptyString && buildInfo.Main.Version != developmentVersion {
		return buildInfo.Main.Version
	}

	gitDirectoryPath, gitDirectoryError := findGitDirectory(".")
	if gitDirectoryError == nil && gitDirectoryPath != EmptyString {
		// #nosec G204
		gitDescribeCommand := exec.Command(gitExecutableName, gitDescribeSubcommand, "--tags", "--always", "--dirty")
		gitDescribeCommand.Dir = gitDirectoryPath
		gitDescribeOutput, gitDescribeError := gitDescribeCommand.Output()
		if gitDescribeError == nil && len(gitDescribeOutput) > 0 {
			return strings.TrimSpace(string(gitDescribeOutput))
		}
	}

	return unknownVersion
}

// findGitDirectory searches upward from the starting directory for a
// directory containing the .git folder.
func findGitDirectory(startDirectory string) (string, error) {
	absoluteStartDirectory, absoluteError := filepath.Abs(startDirectory)
	if absoluteError != nil {
		return EmptyString, fmt.Errorf("failed to get absolute path for %s: %w", startDirectory, absoluteError)
	}

	currentDirectory := absoluteStartDirectory
	for {
		gitPath := filepath.Join(currentDirectory, GitDirectoryName)
		fileInformation, statError := os.Stat(gitPath)
		if statError == nil && fileInformation.IsDir() {
			return currentDirectory, nil
		}

		parentDirectory := filepath.Dir(currentDirectory)
		if parentDirectory == currentDirectory {
			break
		}
		currentDirectory = parentDirectory
	}

	return EmptyString, fmt.Errorf("%s directory not found in or above %s", GitDirectoryName, absoluteStartDirectory)
}
