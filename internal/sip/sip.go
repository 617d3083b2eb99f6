// Package sip detects whether System Integrity Protection filesystem protections are active.
//
// Three probes are provided. Each reads the current system state on its own, may be
// run in any order or skipped, and may disagree with the others. Results are never
// merged; the caller decides how to present them.
package sip

import (
	"context"
	"fmt"
	"strings"

	"github.com/samber/lo"
)

// Result is the outcome of a single probe.
type Result int

const (
	// Indeterminate means the probe could not reach a verdict.
	Indeterminate Result = iota
	// Protected means filesystem protections are enabled.
	Protected
	// Unprotected means filesystem protections are disabled.
	Unprotected
)

// Bool returns the verdict and whether there is one.
func (r Result) Bool() (protected, ok bool) {
	switch r {
	case Protected:
		return true, true
	case Unprotected:
		return false, true
	default:
		return false, false
	}
}

func (r Result) String() string {
	switch r {
	case Protected:
		return "enabled"
	case Unprotected:
		return "disabled"
	default:
		return "unknown"
	}
}

func protectedIf(protected bool) Result {
	return lo.Ternary(protected, Protected, Unprotected)
}

// Probe is a named detection strategy.
type Probe struct {
	Name        string
	Description string
	Run         func(ctx context.Context) Result
}

// Probe names.
const (
	ProbeSystemLibrary = "system-library"
	ProbeCommand       = "csrutil"
	ProbeFilesystem    = "filesystem"
)

// Probes returns every probe, fastest first.
func Probes() []Probe {
	return []Probe{
		{
			Name:        ProbeSystemLibrary,
			Description: "csr_get_active_config from libSystem",
			Run:         func(context.Context) Result { return FromSystemLibrary() },
		},
		{
			Name:        ProbeCommand,
			Description: "csrutil status",
			Run:         FromCommand,
		},
		{
			Name:        ProbeFilesystem,
			Description: "write access to " + ProtectedDir,
			Run:         func(context.Context) Result { return FromFilesystem() },
		},
	}
}

// Select returns the probes with the given names, in the order given.
// No names selects every probe.
func Select(names []string) ([]Probe, error) {
	all := Probes()
	if len(names) == 0 {
		return all, nil
	}

	byName := lo.KeyBy(all, func(p Probe) string { return p.Name })
	selected := make([]Probe, 0, len(names))

	for _, name := range lo.Uniq(names) {
		p, ok := byName[name]
		if !ok {
			return nil, fmt.Errorf("unknown probe %q (available: %s)", name,
				strings.Join(lo.Map(all, func(p Probe, _ int) string { return p.Name }), ", "))
		}

		selected = append(selected, p)
	}

	return selected, nil
}
