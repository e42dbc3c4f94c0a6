package shim

// SplitArgumentsOnDoubleDash divides raw arguments into cargo arguments and
// clippy arguments at the first "--" token. The separator itself is dropped;
// later "--" tokens are ordinary clippy arguments. Order is preserved on both
// sides, and an input without a separator yields an empty clippy segment.
func SplitArgumentsOnDoubleDash(arguments []string) ([]string, []string) {
	cargoArguments := []string{}
	clippyArguments := []string{}

	seenDoubleDash := false
	for _, argument := range arguments {
		if !seenDoubleDash && argument == DoubleDashSeparator {
			seenDoubleDash = true
			continue
		}
		if seenDoubleDash {
			clippyArguments = append(clippyArguments, argument)
		} else {
			cargoArguments = append(cargoArguments, argument)
		}
	}
	return cargoArguments, clippyArguments
}
