/*
Package formatter outputs lists and cursor positions to consoles.

Debugging code which edits a list through cursors is tedious if one cannot
see where a cursor currently sits. This package renders a list together with
a cursor mark, like

	[0 1 2 | 3 4]

Values are colored, and long lists are cut down to a window around the cursor
mark, fitting the width of the output device:

	[… 8 9 | 10 11 12 …]

Widths of values are measured with respect to UAX#11 (East Asian Width) and
UAX#29 (graphemes), as values may be arbitrary text.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package formatter

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'fwdlist'
func tracer() tracing.Trace {
	return tracing.Select("fwdlist")
}
