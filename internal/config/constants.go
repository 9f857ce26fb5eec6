package config

// Version is reported by the -version flag.
const Version = "0.1.0"

// DefaultConfigFile is looked up in the working directory when no explicit
// -config flag is given.
const DefaultConfigFile = "signum.yaml"

// SourceFileExt is the canonical extension for expression files.
const SourceFileExt = ".sg"

// SourceFileExtensions lists every extension the CLI accepts without a
// warning.
var SourceFileExtensions = []string{SourceFileExt, ".signum"}

// Color output modes for the CLI.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)
