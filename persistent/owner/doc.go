/*
Package owner implements shared ownership handles for values which have to be
disposed of exactly once, i.e., when the last owner lets go of them.

Go collects garbage, but a persistent data structure often needs to know *when*
a shared part becomes unreachable: to account for memory, to recycle nodes, or
to release resources attached to a value. Handles of this package carry this
information explicitly. A value is acquired by a single handle; copying the handle
adds an owner, releasing a handle removes one. Releasing the last owner disposes
of the value, calling its Dispose method if it implements Disposer.

Two interchangeable flavours are provided:

	Counted   // a separate share counter, allocated alongside the value
	Linked    // no counter; all owners of a value form a doubly-linked ring

Clients select a flavour by Kind and then only talk to the Ref interface.
No code outside this package may depend on the flavour in use.

Handles are not safe for concurrent use, not even for concurrent readers which
copy or release handles: counters and rings are updated without synchronization.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package owner

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'fp.owner'.
func tracer() tracing.Trace {
	return tracing.Select("fp.owner")
}

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("owner: "+msg, msgargs...)
		panic(msg)
	}
}
