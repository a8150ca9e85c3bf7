// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for text rendering.
// This file defines:
//   - RenderOption (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherRenderOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package matrix

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultVerb is the fmt verb used to render each element.
	// "%v" matches fmt.Sprint, so 1.0 renders as "1" and 0.5 as "0.5".
	DefaultVerb = "%v"
)

// RenderOption configures Render.
type RenderOption func(*renderOptions)

// renderOptions holds the resolved rendering configuration.
type renderOptions struct {
	verb string // fmt verb applied to each element
}

// defaultRenderOptions returns the zero-configuration rendering policy.
func defaultRenderOptions() renderOptions {
	return renderOptions{verb: DefaultVerb}
}

// WithVerb sets the fmt verb used for element text, e.g. "%.2f" or "%6.3g".
// Panics if verb is empty.
func WithVerb(verb string) RenderOption {
	if verb == "" {
		panic("matrix: WithVerb: empty verb")
	}

	return func(o *renderOptions) { o.verb = verb }
}

// gatherRenderOptions applies opts over the defaults in order (last wins).
func gatherRenderOptions(opts []RenderOption) renderOptions {
	o := defaultRenderOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
