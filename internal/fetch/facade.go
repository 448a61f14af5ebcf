// Package fetch presents one entry point over the three source adapters.
// The indicator code's prefix picks the adapter; the prefix is stripped
// before forwarding.
package fetch

import (
	"context"
	"strings"

	"fairdex/domain/core"
	"fairdex/domain/table"
	"fairdex/internal/notify"
	"fairdex/internal/source"
)

// Prefixes on the facade's indicator-code wire format.
const (
	PrefixWorldBank   = "WB_"
	PrefixIMF         = "IMF_"
	PrefixDataCommons = "DC_"
)

// DispatchMode selects how an unrecognized prefix is answered.
type DispatchMode int

const (
	// DispatchLenient notifies and returns an empty canonical table.
	DispatchLenient DispatchMode = iota
	// DispatchStrict returns an invalid-argument error.
	DispatchStrict
)

// Adapter is the shape shared by all source adapters.
type Adapter interface {
	Fetch(ctx context.Context, indicator string, countries []string, years table.YearRange) table.Table
}

// Options configures facade dispatch behavior.
type Options struct {
	Mode DispatchMode
	// TranslateLegacyCodes rewrites embedded '-' to '/' in the native code
	// after prefix stripping. Only UN-style two-part codes ever carried a
	// dash, so this is off unless legacy codes are in play.
	TranslateLegacyCodes bool
}

// Facade routes prefixed indicator codes to the right adapter.
type Facade struct {
	worldBank   Adapter
	imf         Adapter
	dataCommons Adapter
	opts        Options
	notify      notify.Notifier
}

func New(wb, imf, dc Adapter, opts Options, n notify.Notifier) *Facade {
	if n == nil {
		n = notify.NewLog("Fetch")
	}
	return &Facade{worldBank: wb, imf: imf, dataCommons: dc, opts: opts, notify: n}
}

// NewFromSources wires a facade directly from the concrete adapters.
func NewFromSources(wb *source.WorldBank, imf *source.IMF, dc *source.DataCommons, opts Options, n notify.Notifier) *Facade {
	return New(wb, imf, dc, opts, n)
}

// Fetch dispatches by prefix and returns the canonical table. In lenient
// mode an unknown prefix notifies and yields an empty table with a nil
// error; in strict mode it returns core.ErrUnknownPrefix.
func (f *Facade) Fetch(ctx context.Context, code string, countries []string, years table.YearRange) (table.Table, error) {
	adapter, native, ok := f.route(code)
	if !ok {
		if f.opts.Mode == DispatchStrict {
			return table.Empty(code), core.NewUnknownPrefixError(code)
		}
		f.notify.Errorf("unknown indicator prefix in %q, expected WB_, IMF_ or DC_", code)
		return table.Empty(code), nil
	}

	if f.opts.TranslateLegacyCodes {
		native = strings.ReplaceAll(native, "-", "/")
	}

	return adapter.Fetch(ctx, native, countries, years), nil
}

func (f *Facade) route(code string) (Adapter, string, bool) {
	switch {
	case strings.HasPrefix(code, PrefixWorldBank):
		return f.worldBank, strings.TrimPrefix(code, PrefixWorldBank), true
	case strings.HasPrefix(code, PrefixIMF):
		return f.imf, strings.TrimPrefix(code, PrefixIMF), true
	case strings.HasPrefix(code, PrefixDataCommons):
		return f.dataCommons, strings.TrimPrefix(code, PrefixDataCommons), true
	default:
		return nil, "", false
	}
}
