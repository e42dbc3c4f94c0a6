package shim

// Options carries the explicit inputs for composing one cargo clippy
// invocation. Environment lookups stay with the caller so the pipeline
// remains pure.
type Options struct {
	PrefixArguments []string
	RawArguments    []string
	IsWorkspaceRoot bool
}

// Invocation is the composed argument material for the clippy subprocess.
type Invocation struct {
	CargoArguments  []string
	ClippyArguments []string
}

// Compose runs the full rewriting pipeline: split the raw arguments on the
// first "--", detect explicit decisions, drop contradictory --workspace
// tokens, and append the missing defaults.
func Compose(options Options) Invocation {
	cargoArguments, clippyArguments := SplitArgumentsOnDoubleDash(options.RawArguments)
	detectedFlags := DetectFlags(cargoArguments)
	cargoArguments = StripWorkspaceIfContradictory(cargoArguments, detectedFlags)

	return Invocation{
		CargoArguments:  BuildClippyArguments(options.PrefixArguments, cargoArguments, detectedFlags, options.IsWorkspaceRoot),
		ClippyArguments: clippyArguments,
	}
}
