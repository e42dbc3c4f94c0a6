package workspace_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/romnn/clippy-shim/internal/workspace"
)

func TestDirPrefersEnvironmentOverride(t *testing.T) {
	overrideDirectory := t.TempDir()
	t.Setenv(workspace.DirectoryEnvironmentVariable, overrideDirectory)

	assert.Equal(t, overrideDirectory, workspace.Dir())
}

func TestDirIgnoresEmptyEnvironmentOverride(t *testing.T) {
	t.Setenv(workspace.DirectoryEnvironmentVariable, "")

	resolvedDirectory := workspace.Dir()
	assert.NotEmpty(t, resolvedDirectory)
	assert.True(t, filepath.IsAbs(resolvedDirectory))
}

func TestIsRoot(t *testing.T) {
	workspaceDirectory := t.TempDir()
	t.Setenv(workspace.DirectoryEnvironmentVariable, workspaceDirectory)

	testCases := []struct {
		name             string
		workingDirectory string
		expectedIsRoot   bool
	}{
		{
			name:             "exact_workspace_directory_is_root",
			workingDirectory: workspaceDirectory,
			expectedIsRoot:   true,
		},
		{
			name:             "unclean_path_to_workspace_directory_is_root",
			workingDirectory: filepath.Join(workspaceDirectory, "crates", ".."),
			expectedIsRoot:   true,
		},
		{
			name:             "package_subdirectory_is_not_root",
			workingDirectory: filepath.Join(workspaceDirectory, "crates", "my_crate"),
			expectedIsRoot:   false,
		},
		{
			name:             "empty_working_directory_is_not_root",
			workingDirectory: "",
			expectedIsRoot:   false,
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			assert.Equal(t, testCase.expectedIsRoot, workspace.IsRoot(testCase.workingDirectory))
		})
	}
}
