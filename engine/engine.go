// Package engine provides the whole-catalog dispatch facade. It answers
// classification, extraction, and replacement queries by consulting every
// assembled family handler, so consuming tools never deal with individual
// families.
package engine

import (
	"fmt"

	"github.com/partdetect/partclass/catalog"
	"github.com/partdetect/partclass/handler"
	"github.com/partdetect/partclass/internal/config"
	"github.com/partdetect/partclass/internal/logging"
	"github.com/partdetect/partclass/internal/monitoring"
	"github.com/partdetect/partclass/mpn"
	"github.com/partdetect/partclass/taxonomy"
)

// Engine dispatches queries across the catalog. It is immutable after
// New and safe for concurrent use.
type Engine struct {
	cat     *catalog.Catalog
	log     *logging.Logger
	metrics *monitoring.Metrics
}

// Option configures the engine.
type Option func(*Engine)

// WithLogger attaches a logger.
func WithLogger(log *logging.Logger) Option {
	return func(e *Engine) {
		if log != nil {
			e.log = log
		}
	}
}

// WithMetrics attaches a metrics sink.
func WithMetrics(m *monitoring.Metrics) Option {
	return func(e *Engine) {
		e.metrics = m
	}
}

// New creates an engine over an assembled catalog.
func New(cat *catalog.Catalog, opts ...Option) (*Engine, error) {
	if cat == nil {
		return nil, fmt.Errorf("engine: nil catalog")
	}
	e := &Engine{cat: cat, log: logging.NewNop()}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// Default assembles an engine from the built-in catalog and the
// environment configuration.
func Default() (*Engine, error) {
	cfg := config.LoadOrDefault()

	log, err := logging.New(logging.Config{
		Level:       cfg.Logging.Level,
		Development: cfg.Logging.Development,
	})
	if err != nil {
		log = logging.NewNop()
	}

	cat, err := catalog.Load(
		catalog.WithLogger(log),
		catalog.WithDisabledFamilies(cfg.Catalog.DisabledFamilies...),
	)
	if err != nil {
		return nil, err
	}

	opts := []Option{WithLogger(log)}
	if cfg.Metrics.Enabled {
		opts = append(opts, WithMetrics(monitoring.New(cfg.Metrics.Namespace, nil)))
	}
	return New(cat, opts...)
}

// Classify reports whether the part number belongs to kind, asking every
// handler that claims the kind directly or through the hierarchy.
func (e *Engine) Classify(part string, kind taxonomy.Kind) bool {
	matched := false
	for _, h := range e.cat.Handlers() {
		if h.Match(part, kind, e.cat.Registry()) {
			matched = true
			break
		}
	}
	e.metrics.RecordClassify(kind, matched)
	return matched
}

// Identify returns the specialized kind of the first handler that
// recognizes the part number under any of its supported kinds.
func (e *Engine) Identify(part string) (taxonomy.Kind, bool) {
	for _, h := range e.cat.Handlers() {
		for _, k := range h.Kinds().Kinds() {
			if h.Match(part, k, e.cat.Registry()) {
				return k, true
			}
		}
	}
	return "", false
}

// Series returns the first non-empty series extraction among the
// handlers that recognize the part number.
func (e *Engine) Series(part string) string {
	for _, h := range e.cat.Handlers() {
		if !e.owns(h, part) {
			continue
		}
		if s := h.Series(part); s != "" {
			e.metrics.RecordExtract("series", true)
			return s
		}
	}
	e.metrics.RecordExtract("series", false)
	return ""
}

// PackageCode returns the first non-empty package extraction among the
// handlers that recognize the part number.
func (e *Engine) PackageCode(part string) string {
	for _, h := range e.cat.Handlers() {
		if !e.owns(h, part) {
			continue
		}
		if p := h.PackageCode(part); p != "" {
			e.metrics.RecordExtract("package", true)
			return p
		}
	}
	e.metrics.RecordExtract("package", false)
	return ""
}

// Replaces reports whether a officially replaces b under the policy of
// any family that accepts the pair. Direction matters: rating-based
// families only substitute upward.
func (e *Engine) Replaces(a, b string) bool {
	for _, h := range e.cat.Handlers() {
		if h.Replaces(a, b) {
			e.metrics.RecordReplacement(true)
			return true
		}
	}
	e.metrics.RecordReplacement(false)
	return false
}

// Equivalent reports whether two part numbers reduce to the same base
// once packaging suffixes are stripped.
func (e *Engine) Equivalent(a, b string) bool {
	return mpn.Equivalent(a, b)
}

// Variations returns the lookup candidates for a part number, most
// literal first.
func (e *Engine) Variations(part string) []string {
	return mpn.SearchVariations(part)
}

// Handlers exposes the catalog's handlers in dispatch order.
func (e *Engine) Handlers() []handler.Handler {
	return e.cat.Handlers()
}

// owns reports whether the handler recognizes the part under any of its
// supported kinds.
func (e *Engine) owns(h handler.Handler, part string) bool {
	for _, k := range h.Kinds().Kinds() {
		if h.Match(part, k, e.cat.Registry()) {
			return true
		}
	}
	return false
}
