/*
Package dump renders the internal page layout of a segmented array, for
debugging purposes.

Three output formats are supported:

  - Console writes page by page to a fixed-width terminal, using colors to
    set page headers and holes apart from values.
  - Dot writes the page table in Graphviz DOT format.
  - HTML writes the page table as an HTML table.

None of these are meant for large arrays; every slot is printed.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package dump

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'segarray'
func tracer() tracing.Trace {
	return tracing.Select("segarray")
}

// HoleMark is printed in place of empty slots.
const HoleMark = "·"
