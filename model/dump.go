package model

import (
	"io"

	"github.com/davecgh/go-spew/spew"
)

// Dump writes a structural dump of v (typically a *Model or an *Opcode)
// to w, in the same spirit as the upstream tool's spew.Dump(isa) call in
// its main(): a debugging aid, not a stable serialization format.
func Dump(w io.Writer, v interface{}) {
	spew.Fdump(w, v)
}
