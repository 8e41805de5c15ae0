// Package fabrikt compiles a generation target configuration into the command
// line arguments of the fabrikt OpenAPI code generator.
//
// This package includes:
//   - Configuration, the resolved configuration of one generation target
//   - Compile, a pure function from a Configuration to an argument vector
//   - the vocabulary mapping configuration values to fabrikt's canonical names
package fabrikt
