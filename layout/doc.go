/*
Package layout turns flyer data into a paintable Result.

Wrapping must run before planning: the footer height depends on the number of
wrapped lines, and the wrapped lines depend on real glyph metrics supplied by a
Measurer. Planning itself only looks at counts.
*/
package layout

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'flyer.layout'
func tracer() tracing.Trace {
	return tracing.Select("flyer.layout")
}
