package normalize

import "github.com/gaurav-prasanna/cargotab/core"

// registry is the dispatch table from source code to normalizer.
// Supporting a new source means adding one entry here.
var registry = map[core.Source]func() core.Normalizer{
	core.SourceSkyCargo: func() core.Normalizer { return NewSectionNormalizer() },
	core.SourceSeaLine:  func() core.Normalizer { return NewHeaderNormalizer() },
}

// ForSource returns the normalizer for the given source, or an
// UnsupportedSourceError for identifiers outside the registry.
func ForSource(source core.Source) (core.Normalizer, error) {
	build, ok := registry[source]
	if !ok {
		return nil, &core.UnsupportedSourceError{Source: string(source)}
	}
	return build(), nil
}
