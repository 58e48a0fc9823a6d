package config

const SourceFileExt = ".ski"

// SourceFileExtensions are all recognized source file extensions
var SourceFileExtensions = []string{".ski", ".lam"}

// DefaultMaxSteps bounds CLI reductions so a non-terminating term cannot
// hang the tool. 0 lifts the bound.
const DefaultMaxSteps = 10000

// DefaultBasisName selects the combinator basis when none is given.
const DefaultBasisName = "full"

// DefaultDemoIters is the automaton iteration budget.
const DefaultDemoIters = 100

// REPL prompt.
const ReplPrompt = "> "
