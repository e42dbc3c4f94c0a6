// Package shim rewrites cargo clippy argument lists so the repository's
// default lint configuration applies unless the caller already decided
// otherwise.
package shim

const (
	// DoubleDashSeparator divides cargo arguments from clippy arguments.
	DoubleDashSeparator = "--"

	packageShortFlag         = "-p"
	packageLongFlag          = "--package"
	packageJoinedPrefix      = "--package="
	manifestPathFlag         = "--manifest-path"
	manifestPathJoinedPrefix = "--manifest-path="
	workspaceFlag            = "--workspace"
	noDepsFlag               = "--no-deps"

	allTargetsFlag     = "--all-targets"
	libTargetFlag      = "--lib"
	binsTargetFlag     = "--bins"
	testsTargetFlag    = "--tests"
	benchesTargetFlag  = "--benches"
	examplesTargetFlag = "--examples"
	targetsFlag        = "--targets"
	binTargetFlag      = "--bin"
	testTargetFlag     = "--test"
	benchTargetFlag    = "--bench"
	exampleTargetFlag  = "--example"

	binTargetJoinedPrefix     = "--bin="
	testTargetJoinedPrefix    = "--test="
	benchTargetJoinedPrefix   = "--bench="
	exampleTargetJoinedPrefix = "--example="

	allFeaturesFlag       = "--all-features"
	featuresFlag          = "--features"
	featuresJoinedPrefix  = "--features="
	noDefaultFeaturesFlag = "--no-default-features"

	fixFlag         = "--fix"
	allowDirtyFlag  = "--allow-dirty"
	allowStagedFlag = "--allow-staged"

	// packageShortFlagMinimumLength marks the attached-value form of -p:
	// any longer token sharing the -p prefix selects package scope.
	packageShortFlagMinimumLength = 2
)

// ScopeFlags records which scope-selection flags appeared in the cargo
// arguments.
type ScopeFlags struct {
	HasPackage      bool
	HasWorkspace    bool
	HasManifestPath bool
}

// FeatureSelectionFlags records which feature-selection flags appeared in the
// cargo arguments.
type FeatureSelectionFlags struct {
	HasAllFeatures       bool
	HasFeatures          bool
	HasNoDefaultFeatures bool
}

// DetectedFlags is the complete record of default-affecting decisions the
// caller already made. The record is a pure function of the cargo-arguments
// segment and is never mutated after detection.
type DetectedFlags struct {
	Scope              ScopeFlags
	FeatureSelection   FeatureSelectionFlags
	HasNoDeps          bool
	HasTargetSelection bool
}

// FixitPrefixArguments returns the flags injected before any defaults when
// clippy runs in fix mode.
func FixitPrefixArguments() []string {
	return []string{fixFlag, allowDirtyFlag, allowStagedFlag}
}
