/*
Package textfile provides API helpers to load UTF-8 text files as lists of strings.

A text is split into fragments, either lines or line-wrap segments (UAX#14),
and every fragment becomes one value of a fwdlist.List. Reading is done by a
producer goroutine, which broadcasts fragments to the list builder through a
bounded prefetch queue, while preserving a synchronous `Load` API.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package textfile

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'fwdlist'
func tracer() tracing.Trace {
	return tracing.Select("fwdlist")
}
