// Package config loads and validates the run configuration of spanviz.
//
// Values come from, in increasing priority: built-in defaults, an optional
// spanviz.yaml (or an explicit file), SPANVIZ_* environment variables, and
// whatever the caller binds on the viper instance afterwards (CLI flags).
//
//	size               lattice side, 2..60           (20)
//	shape              core shape name               (grid)
//	speed              pacing multiplier, (0, 1]     (0.5)
//	algorithm          mst catalog key or "both"     (both)
//	seed               generator seed, 0 = time      (0)
//	connection_chance  lattice edge probability      (0.85)
//	weights            uniform|integer|constant|exponential (uniform)
//	log_level          debug|info|warn|error         (info)
//	log_development    human-readable console logs   (false)
package config
