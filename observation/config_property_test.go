package observation_test

import (
	"fmt"
	"testing"

	"pgregory.net/rapid"

	"github.com/tailored-agentic-units/observation/observation"
)

// For any interleaved sequence of handler, predicate, and tags-provider
// registrations, each collection preserves its own insertion order exactly,
// with no drops and no dedup.
func TestProperty_RegistrationOrderPreserved(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		cfg := observation.NewRegistry().Config()

		numOps := rapid.IntRange(1, 40).Draw(rt, "numOps")

		var wantHandlers []observation.Handler
		var wantProviders []observation.TagsProvider
		wantPredicates := 0

		for i := 0; i < numOps; i++ {
			switch rapid.IntRange(0, 2).Draw(rt, fmt.Sprintf("op_%d", i)) {
			case 0:
				h := &markerHandler{name: fmt.Sprintf("h%d", i)}
				cfg.ObservationHandler(h)
				wantHandlers = append(wantHandlers, h)
			case 1:
				cfg.ObservationPredicate(func(string, *observation.Context) bool { return true })
				wantPredicates++
			case 2:
				tp := staticTags{}
				cfg.TagsProvider(tp)
				wantProviders = append(wantProviders, tp)
			}
		}

		gotHandlers := cfg.Handlers()
		if len(gotHandlers) != len(wantHandlers) {
			rt.Fatalf("Handlers() has %d entries, want %d", len(gotHandlers), len(wantHandlers))
		}
		for i := range wantHandlers {
			if gotHandlers[i] != wantHandlers[i] {
				rt.Errorf("Handlers()[%d] out of order", i)
			}
		}

		gotProviders := cfg.TagsProviders()
		if len(gotProviders) != len(wantProviders) {
			rt.Fatalf("TagsProviders() has %d entries, want %d", len(gotProviders), len(wantProviders))
		}

		// All-true predicates in any number (zero included) keep
		// observations enabled.
		if !cfg.IsObservationEnabled("any", nil) {
			rt.Errorf("IsObservationEnabled() = false with %d accepting predicates", wantPredicates)
		}
	})
}
