// Package similarity computes similarity scores between normalized search
// keys and caches intermediate results. Inputs are assumed already
// normalized (see package normalize) — this package performs no
// normalization of its own.
package similarity

// Algorithm identifies a similarity metric supported by Compare.
type Algorithm string

const (
	// AlgorithmJaroWinkler is the classical Jaro similarity with a
	// common-prefix bonus (scaling factor 0.1, prefix capped at 4 runes).
	AlgorithmJaroWinkler Algorithm = "jaro_winkler"

	// AlgorithmNGram is Sørensen-Dice coefficient over padded trigram
	// windows (see ngram.go for the padding scheme).
	AlgorithmNGram Algorithm = "ngram"

	// AlgorithmCosine is cosine similarity over whitespace-separated
	// token-frequency vectors.
	AlgorithmCosine Algorithm = "cosine"
)

// DefaultNGramSize is the window width used by AlgorithmNGram when no
// explicit size is configured.
const DefaultNGramSize = 3

// Engine computes similarity scores, optionally caching intermediates.
// The zero value is a ready-to-use engine with trigrams and no cache.
type Engine struct {
	ngramSize int
	cache     *cache
}

// Options configures an Engine.
type Options struct {
	// NGramSize is the window width for AlgorithmNGram. Default: 3.
	NGramSize int
	// CacheCapacity bounds the number of cached (algorithm, a, b) score
	// entries using LRU eviction. 0 disables the cache.
	CacheCapacity int
	// OnCacheEvict, if set, is called once for every entry the cache evicts
	// to make room for a new one. Intended for diagnostic logging; never
	// called on a cache miss or a plain overwrite of an existing key.
	OnCacheEvict func()
}

// NewEngine builds an Engine from Options, applying defaults for zero
// values.
func NewEngine(opts Options) *Engine {
	n := opts.NGramSize
	if n <= 0 {
		n = DefaultNGramSize
	}
	e := &Engine{ngramSize: n}
	if opts.CacheCapacity > 0 {
		e.cache = newCache(opts.CacheCapacity, opts.OnCacheEvict)
	}
	return e
}

// Compare returns the similarity of a and b under algorithm, in [0.0, 1.0].
// Compare is symmetric in a and b. Degenerate input never panics: an empty
// operand always scores 0.0, even against another empty string, and two
// equal non-empty operands score 1.0.
func (e *Engine) Compare(a, b string, algorithm Algorithm) float64 {
	if a == "" || b == "" {
		return 0.0
	}
	if a == b {
		return 1.0
	}
	if e.cache != nil {
		if score, ok := e.cache.get(algorithm, a, b); ok {
			return score
		}
	}

	var score float64
	switch algorithm {
	case AlgorithmJaroWinkler:
		score = jaroWinkler(a, b)
	case AlgorithmNGram:
		score = ngramScore(a, b, e.ngramSize)
	case AlgorithmCosine:
		score = cosineScore(a, b)
	default:
		score = jaroWinkler(a, b)
	}

	if e.cache != nil {
		e.cache.put(algorithm, a, b, score)
	}
	return score
}

// Compare is a package-level convenience that builds a throwaway Engine
// with default trigram sizing and no cache. Prefer a shared *Engine for
// anything beyond a single one-off comparison — the dispatcher keeps one
// Engine per Finder so its cache is reused across a query's full record
// scan.
func Compare(a, b string, algorithm Algorithm) float64 {
	return (&Engine{ngramSize: DefaultNGramSize}).Compare(a, b, algorithm)
}
