package objload

import "log/slog"

// HeaderPolicy decides what happens when the first line does not mark the
// file as a blender OBJ export.
type HeaderPolicy int

const (
	// HeaderAbort fails the parse with ErrInvalidHeader.
	HeaderAbort HeaderPolicy = iota
	// HeaderWarn logs the problem, records a diagnostic and keeps going. The
	// first line is then read like any other line.
	HeaderWarn
)

// Option configures a parse.
type Option func(*options)

type options struct {
	header   HeaderPolicy
	strict   bool
	skip_bad bool
	logger   *slog.Logger
}

func default_options() options {
	return options{
		header: HeaderAbort,
	}
}

// WithHeaderPolicy sets the header policy. The default is HeaderAbort.
func WithHeaderPolicy(p HeaderPolicy) Option {
	return func(o *options) {
		o.header = p
	}
}

// WithStrict makes an object that contains both line and face records an
// error (ErrMixedPrimitives). Without it the last primitive kind seen decides
// the object's style and the vertices of both kinds stay in one list.
func WithStrict(strict bool) Option {
	return func(o *options) {
		o.strict = strict
	}
}

// WithSkipBadRecords drops records that cannot be assembled (bad indices,
// non-quad faces, unparsable numbers) instead of failing the parse. Each
// dropped record is logged and kept as a DiagSkippedRecord diagnostic.
func WithSkipBadRecords(skip bool) Option {
	return func(o *options) {
		o.skip_bad = skip
	}
}

// WithLogger sets the logger for this parse only.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}
