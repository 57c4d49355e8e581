// Package config holds the engine options: the source level that decides
// whether boxing and variable arity exist, the batch parallelism and the
// severity of advisory diagnostics. Options are read from YAML or TOML.
package config
