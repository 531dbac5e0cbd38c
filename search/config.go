package search

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/omar-hanafy/countrysearch/internal/obslog"
	"github.com/omar-hanafy/countrysearch/similarity"
)

// DefaultMaxResults is the result-count cap applied at every stage's
// output when Config.MaxResults is left at its zero value.
const DefaultMaxResults = 50

// StrictAlgorithm selects the substring-matching algorithm behind the
// strict stage.
type StrictAlgorithm string

const (
	// StrictAlgorithmBoyerMoore scans with a compiled Boyer-Moore-Horspool
	// pattern (package substring). It is currently the only supported
	// value and the default.
	StrictAlgorithmBoyerMoore StrictAlgorithm = "boyer_moore_horspool"
)

// Config enumerates a Finder's tunables.
type Config struct {
	// MaxResults bounds the length of every returned list. Must be a
	// positive integer; zero selects DefaultMaxResults.
	MaxResults int

	// StrictAlgorithm selects the strict-substring matching algorithm.
	// Zero value selects StrictAlgorithmBoyerMoore, the only implementation
	// this package currently provides.
	StrictAlgorithm StrictAlgorithm

	// Similarity configures the n-gram window width and the bounded LRU
	// cache shared by the fuzzy-fill stage's similarity comparisons.
	Similarity similarity.Options

	// Logger, if set, receives construction and cache-eviction diagnostics.
	// WhereText and FirstMatch never log; this is purely for
	// host-application observability around Finder setup.
	Logger *obslog.Logger
}

// NewFinder validates config and constructs a ready-to-use Finder.
//
// This is one of exactly two fallible entry points in this library (the
// other is BuildRecords, which can fail only through a misbehaving
// Resolver at the caller's own risk); the hot-path search operations never
// return an error.
func NewFinder(config Config) (*Finder, error) {
	maxResults := config.MaxResults
	if maxResults == 0 {
		maxResults = DefaultMaxResults
	}
	if maxResults < 0 {
		return nil, fmt.Errorf("search: MaxResults must be positive, got %d", maxResults)
	}

	strictAlgorithm := config.StrictAlgorithm
	if strictAlgorithm == "" {
		strictAlgorithm = StrictAlgorithmBoyerMoore
	}
	if strictAlgorithm != StrictAlgorithmBoyerMoore {
		return nil, fmt.Errorf("search: unsupported StrictAlgorithm %q", strictAlgorithm)
	}

	logger := config.Logger
	similarityOpts := config.Similarity
	if logger != nil {
		similarityOpts.OnCacheEvict = func() {
			logger.Debug("similarity cache evicted entry")
		}
	}

	f := &Finder{
		maxResults:      maxResults,
		strictAlgorithm: strictAlgorithm,
		engine:          similarity.NewEngine(similarityOpts),
		logger:          logger,
	}

	if logger != nil {
		logger.Info("finder constructed",
			zap.Int("max_results", maxResults),
			zap.String("strict_algorithm", string(strictAlgorithm)),
		)
	}

	return f, nil
}
