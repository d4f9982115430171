// Package mos65xx holds the MOS 65xx architecture detail record.
package mos65xx

// Details is the per-instruction detail record for the MOS 65xx
// architecture. It is an opaque placeholder destined to be bridged to
// the native disassembler's cs_mos65xx struct; nothing reads its
// fields from Go. The package test pins its size and alignment so
// layout drift is caught before the bridge is.
type Details struct {
	x uint32
}
