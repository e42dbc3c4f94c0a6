package shim

import "strings"

// DetectFlags scans the cargo-arguments segment and records every
// default-affecting decision the caller made explicitly. Each token is
// evaluated independently; booleans only ever turn true.
func DetectFlags(cargoArguments []string) DetectedFlags {
	var detectedFlags DetectedFlags

	for _, argument := range cargoArguments {
		switch argument {
		case packageShortFlag, packageLongFlag:
			detectedFlags.Scope.HasPackage = true
		case manifestPathFlag:
			detectedFlags.Scope.HasManifestPath = true
		case workspaceFlag:
			detectedFlags.Scope.HasWorkspace = true
		case noDepsFlag:
			detectedFlags.HasNoDeps = true
		case allTargetsFlag, libTargetFlag, binsTargetFlag, testsTargetFlag,
			benchesTargetFlag, examplesTargetFlag, targetsFlag,
			binTargetFlag, testTargetFlag, benchTargetFlag, exampleTargetFlag:
			detectedFlags.HasTargetSelection = true
		case allFeaturesFlag:
			detectedFlags.FeatureSelection.HasAllFeatures = true
		case featuresFlag:
			detectedFlags.FeatureSelection.HasFeatures = true
		case noDefaultFeaturesFlag:
			detectedFlags.FeatureSelection.HasNoDefaultFeatures = true
		default:
			if strings.HasPrefix(argument, packageJoinedPrefix) {
				detectedFlags.Scope.HasPackage = true
			}
			// The attached-value form is intentionally broad: any token
			// sharing the -p prefix and longer than two characters selects
			// package scope.
			if strings.HasPrefix(argument, packageShortFlag) && len(argument) > packageShortFlagMinimumLength {
				detectedFlags.Scope.HasPackage = true
			}
			if strings.HasPrefix(argument, manifestPathJoinedPrefix) {
				detectedFlags.Scope.HasManifestPath = true
			}
			if strings.HasPrefix(argument, binTargetJoinedPrefix) ||
				strings.HasPrefix(argument, testTargetJoinedPrefix) ||
				strings.HasPrefix(argument, benchTargetJoinedPrefix) ||
				strings.HasPrefix(argument, exampleTargetJoinedPrefix) {
				detectedFlags.HasTargetSelection = true
			}
			if strings.HasPrefix(argument, featuresJoinedPrefix) {
				detectedFlags.FeatureSelection.HasFeatures = true
			}
		}
	}

	return detectedFlags
}
