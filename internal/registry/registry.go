// Package registry resolves stable calculator ids to their contracts. It
// is a pure lookup layer: no construction logic, no lifecycle. Multiple
// contract generations for the same industry coexist under distinct ids;
// the caller (normally the template layer) chooses which id a flow binds
// to, or asks for the latest generation by semver.
package registry

import (
	"fmt"
	"sort"

	"github.com/Masterminds/semver/v3"

	"github.com/evergrid/quoteflow/internal/calcs"
	"github.com/evergrid/quoteflow/internal/contract"
)

type entry struct {
	industry string
	version  *semver.Version
	contract contract.Contract
}

// calculators indexes every shipped contract by id. Built once at package
// init from the calcs registrations; read-only afterwards.
//
//nolint:gochecknoglobals // Package-level lookup table, initialized once.
var calculators = buildIndex()

func buildIndex() map[string]entry {
	idx := make(map[string]entry)
	for _, reg := range calcs.Registrations() {
		v, err := semver.NewVersion(reg.Version)
		if err != nil {
			// A bad registration version is a programming error; surface
			// it at startup rather than mid-request.
			panic(fmt.Sprintf("registry: invalid version %q for %s: %v", reg.Version, reg.Contract.ID, err))
		}
		if _, dup := idx[reg.Contract.ID]; dup {
			panic(fmt.Sprintf("registry: duplicate calculator id %q", reg.Contract.ID))
		}
		idx[reg.Contract.ID] = entry{industry: reg.Industry, version: v, contract: reg.Contract}
	}
	return idx
}

// Get returns the contract registered under id.
func Get(id string) (contract.Contract, bool) {
	e, ok := calculators[id]
	if !ok {
		return contract.Contract{}, false
	}
	return e.contract, true
}

// IDs returns every registered calculator id, sorted.
func IDs() []string {
	out := make([]string, 0, len(calculators))
	for id := range calculators {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// Industries returns the industry slugs with at least one registered
// calculator, sorted.
func Industries() []string {
	seen := map[string]bool{}
	for _, e := range calculators {
		seen[e.industry] = true
	}
	out := make([]string, 0, len(seen))
	for slug := range seen {
		out = append(out, slug)
	}
	sort.Strings(out)
	return out
}

// Latest returns the highest-versioned contract generation registered for
// an industry.
func Latest(industry string) (contract.Contract, bool) {
	var best entry
	found := false
	for _, e := range calculators {
		if e.industry != industry {
			continue
		}
		if !found || e.version.GreaterThan(best.version) {
			best = e
			found = true
		}
	}
	if !found {
		return contract.Contract{}, false
	}
	return best.contract, true
}

// VersionOf returns the generation version registered for a calculator id.
func VersionOf(id string) (string, bool) {
	e, ok := calculators[id]
	if !ok {
		return "", false
	}
	return e.version.String(), true
}
