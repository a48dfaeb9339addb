package stellar

import (
	"sort"

	"github.com/reoring/xdrkit/dsl"
)

// registry maps type names to type-erased codecs for callers that pick a
// codec at runtime, such as the command line tool.
var registry = map[string]dsl.AnyCodec{
	"AccountID":      dsl.Of(AccountID),
	"MuxedAccount":   dsl.Of(MuxedAccount),
	"Asset":          dsl.Of(Asset),
	"AlphaNum4":      dsl.Of(AlphaNum4),
	"AlphaNum12":     dsl.Of(AlphaNum12),
	"Memo":           dsl.Of(Memo),
	"Price":          dsl.Of(Price),
	"TimeBounds":     dsl.Of(TimeBounds),
	"LedgerBounds":   dsl.Of(LedgerBounds),
	"SequenceNumber": dsl.Of(SequenceNumber),
	"Int128":         dsl.Of(Int128),
	"Uint128":        dsl.Of(Uint128),
	"Int256":         dsl.Of(Int256),
	"Uint256":        dsl.Of(Uint256),
}

// Lookup returns the type-erased codec for a registered type name.
func Lookup(name string) (dsl.AnyCodec, bool) {
	c, ok := registry[name]
	return c, ok
}

// Names returns the registered type names, sorted.
func Names() []string {
	out := make([]string, 0, len(registry))
	for name := range registry {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
