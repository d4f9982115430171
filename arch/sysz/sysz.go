// Package sysz holds the SystemZ architecture detail record.
package sysz

// Details is the per-instruction detail record for the SystemZ
// architecture. It is an opaque placeholder destined to be bridged to
// the native disassembler's cs_sysz struct; nothing reads its fields
// from Go. The package test pins its size and alignment so layout
// drift is caught before the bridge is.
type Details struct {
	x uint32
}
