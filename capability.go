package ggwin

// Capabilities describes the GPU surface attributes negotiated once at
// startup and shared read-only by every window: framebuffer transparency,
// multisample count and stencil buffer depth.
//
// The set is immutable after negotiation; there is no renegotiation.
type Capabilities struct {
	// Transparent reports whether the framebuffer supports an alpha
	// channel for per-pixel window transparency.
	Transparent bool

	// Samples is the multisample anti-aliasing sample count.
	// Zero disables multisampling.
	Samples int

	// StencilBits is the stencil buffer depth in bits.
	StencilBits int
}

// preferCapability reports the preferred of two candidates. A candidate
// supporting transparency beats one that does not, regardless of sample
// count; among candidates with equal transparency support, the lower sample
// count wins (cheaper is preferred when the difference is only antialiasing).
func preferCapability(a, b Capabilities) Capabilities {
	if a.Transparent != b.Transparent {
		if a.Transparent {
			return a
		}
		return b
	}
	if b.Samples < a.Samples {
		return b
	}
	return a
}

// negotiateCapabilities reduces the candidate sets offered by the windowing
// driver pairwise, left to right, to a single winner. The selection is
// deterministic for a fixed candidate ordering and runs exactly once per
// process, during [NewApp].
//
// Returns ErrNoCapabilities if the driver offers no candidates.
func negotiateCapabilities(candidates []Capabilities) (Capabilities, error) {
	if len(candidates) == 0 {
		return Capabilities{}, ErrNoCapabilities
	}
	best := candidates[0]
	for _, c := range candidates[1:] {
		best = preferCapability(best, c)
	}
	return best, nil
}
