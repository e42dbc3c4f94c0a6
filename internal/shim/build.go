package shim

// StripWorkspaceIfContradictory removes every exact --workspace token from
// the cargo arguments when the caller also selected a package or manifest
// path. An explicit narrow scope always wins over a broad one.
func StripWorkspaceIfContradictory(cargoArguments []string, detectedFlags DetectedFlags) []string {
	if !detectedFlags.Scope.HasPackage && !detectedFlags.Scope.HasManifestPath {
		return cargoArguments
	}

	strippedArguments := make([]string, 0, len(cargoArguments))
	for _, argument := range cargoArguments {
		if argument == workspaceFlag {
			continue
		}
		strippedArguments = append(strippedArguments, argument)
	}
	return strippedArguments
}

// BuildClippyArguments assembles the final cargo-level argument list: the
// caller-supplied prefix, then each default the caller did not decide, then
// the user arguments unchanged.
//
// The workspace default applies only when running from the workspace root
// with no explicit scope; tools that iterate packages run this shim from
// each package directory without forwarding -p, and must not be widened back
// to the whole workspace.
func BuildClippyArguments(prefixArguments []string, cargoArguments []string, detectedFlags DetectedFlags, isWorkspaceRoot bool) []string {
	builtArguments := make([]string, 0, len(prefixArguments)+len(cargoArguments)+4)
	builtArguments = append(builtArguments, prefixArguments...)

	if isWorkspaceRoot &&
		!detectedFlags.Scope.HasPackage &&
		!detectedFlags.Scope.HasManifestPath &&
		!detectedFlags.Scope.HasWorkspace {
		builtArguments = append(builtArguments, workspaceFlag)
	}

	if !detectedFlags.HasTargetSelection {
		builtArguments = append(builtArguments, allTargetsFlag)
	}

	// Dependency crates must not turn the strict lint baseline into hard
	// errors, so --no-deps is on unless the caller passed it already.
	if !detectedFlags.HasNoDeps {
		builtArguments = append(builtArguments, noDepsFlag)
	}

	if !detectedFlags.FeatureSelection.HasAllFeatures &&
		!detectedFlags.FeatureSelection.HasFeatures &&
		!detectedFlags.FeatureSelection.HasNoDefaultFeatures {
		builtArguments = append(builtArguments, allFeaturesFlag)
	}

	builtArguments = append(builtArguments, cargoArguments...)
	return builtArguments
}
