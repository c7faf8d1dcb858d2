// Package xlsx2tsv flattens one worksheet of an xlsx workbook into tab-separated text.
package xlsx2tsv

import (
	"go.uber.org/zap"

	"github.com/ukaji3/xlsx2tsv-go/pkg/xlsx2tsv/parser"
)

// Options configures extraction behavior.
type Options struct {
	// Strict makes malformed cell references and out-of-range shared string
	// indices fatal. By default they decode to column 0 and "" respectively.
	Strict bool
	// TrimSpace trims surrounding white space from every cell value.
	TrimSpace bool
	// Logger receives progress and anomaly reports. Nil means no logging.
	Logger *zap.Logger
}

// DefaultOptions returns default extraction options.
func DefaultOptions() Options {
	return Options{}
}

func (o Options) logger() *zap.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return zap.NewNop()
}

func (o Options) flattenOptions() parser.FlattenOptions {
	return parser.FlattenOptions{
		Strict:    o.Strict,
		TrimSpace: o.TrimSpace,
		Logger:    o.logger(),
	}
}
