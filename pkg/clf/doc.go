// Package clf parses Common LUT Format (CLF) documents into a validated,
// strongly typed in-memory model.
//
// A CLF document describes an ordered colour transformation pipeline as a
// ProcessList of process nodes: lookup tables, matrices, range remaps,
// logarithmic and exponent curves and ASC CDL corrections. The parser turns
// the attribute-driven XML into typed values, enforcing the cross-field
// rules the format requires: array shapes must match their declared
// dimensions and the owning node kind, bit depth and interpolation tokens
// come from closed sets, and adjacent nodes must agree on their bit depths.
//
// Parsing is all-or-nothing. A document is either fully understood and
// returned as a ProcessList, or rejected with an error that pinpoints the
// offending node, attribute and value. Unknown process node tags fail the
// whole document, since silently skipping a pipeline stage would change the
// meaning of the transform.
//
// Each call to Parse is an independent pure function with no shared state,
// so concurrent parses need no coordination.
package clf
