// Package calcs implements the industry load-profile calculators. Each
// vertical gets one file holding its token maps, benchmark constants, and
// compute function; behavior shared by every calculator (token resolution,
// legacy field bridging, contributor finalization, duty-cycle scheduling)
// lives in steps.go.
//
// Every calculator follows the same eight steps: normalize categorical
// tokens, bridge legacy field names, compute a base load through the SSOT
// estimator, add named supplemental loads, decompose peak into the eight
// canonical contributors, assign a duty cycle, enforce the contributor-sum
// invariant, and assemble the result. Calculators never fail a request:
// malformed input degrades to a documented default plus a warning.
package calcs
