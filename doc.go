/*
Package fwdlist offers a singly linked list with editing cursors.

Lists

A List is a forward linked list: every node owns its value and the link to the
rest of the chain. The list itself holds the head link and caches the number
of nodes, so Len is O(1). Pushing and popping at the front is O(1), operations
at the back have to walk the chain and are O(n).

	Operation         |   List          |  Slice
	------------------+-----------------+--------
	PushFront         |   O(1)          |   O(n)
	PushBack          |   O(n)          |   O(1)*
	Insert at cursor  |   O(1)          |   O(n)
	Remove at cursor  |   O(1)          |   O(n)
	Truncate          |   O(1)          |   O(1)
	Index             |   O(n)          |   O(1)

A list created by

	List[T]{}

is a valid object and behaves like an empty list.

Cursors

Linked lists are interesting only if clients are able to edit them at a
given location without walking the chain again and again. A Cursor is a
handle to such a location. Conceptually, a cursor sits between nodes, like the
cursor of a text editor. Given the list [0 1 2 3 4], a fresh cursor sits in
front of the first node:

	|0 1 2 3 4

After c.Next() it sits between 0 and 1:

	0|1 2 3 4

and after c.Nth(4) it sits behind the last node:

	0 1 2 3 4|

A cursor really is an abstraction of the link owning "everything after
me". Through it, clients may insert and remove nodes, cut off the tail of the
list, or splice in complete other lists, all in O(1) (splicing has to step
over the spliced nodes and is O(m) for a donor list of length m).

At any time only a single handle may edit a chain. Creating a new cursor for
a list invalidates all existing cursors of the list, and so does editing the
list through its own methods. A cursor may hand out a checkpoint, which is a
second cursor at the same location; the parent cursor is frozen until the
checkpoint is released. Violating these rules is a programming error and will
result in a panic.

Cursors are the basis for the more complex operations of a list. For example,
the package's merge sort is implemented by repeatedly splitting off runs and
splicing merged runs into a result list.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

*/
package fwdlist

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'fwdlist'
func tracer() tracing.Trace {
	return tracing.Select("fwdlist")
}

// ListError is an error type for the fwdlist module
type ListError string

func (e ListError) Error() string {
	return string(e)
}

// ErrIndexOutOfBounds is flagged whenever a list position is
// greater than the length of the list.
const ErrIndexOutOfBounds = ListError("index out of bounds")

// ErrIllegalArguments is flagged whenever function parameters are invalid.
const ErrIllegalArguments = ListError("illegal arguments")

// ErrCursorFrozen is flagged if a cursor is used while one of its checkpoints
// is still alive.
const ErrCursorFrozen = ListError("cursor is frozen by a live checkpoint")

// ErrCursorReleased is flagged if a cursor is used after it has been released.
const ErrCursorReleased = ListError("cursor has been released")

// ErrCursorStale is flagged if a cursor is used after its list has been
// modified by some other handle.
const ErrCursorStale = ListError("list has been modified outside of cursor")

// ErrInvariantViolated is returned by the invariant checkers.
const ErrInvariantViolated = ListError("list invariant violated")

// ErrAssertion is flagged if an internal precondition does not hold.
const ErrAssertion = ListError("assertion failed")

// assert panics with an error wrapping ErrAssertion if condition is false.
func assert(condition bool, msg string) {
	if !condition {
		panic(fmt.Errorf("%w: %s", ErrAssertion, msg))
	}
}
