package sysz

import (
	"testing"
	"unsafe"
)

// Expected layout of the cs_sysz bridge record. Update in lock step
// with the native struct.
const (
	detailsSize  = 4
	detailsAlign = 4
)

func TestDetailsSizeAndAlignment(t *testing.T) {
	if got := unsafe.Sizeof(Details{}); got != detailsSize {
		t.Errorf("sizeof(Details) = %d, want %d", got, detailsSize)
	}
	if got := unsafe.Alignof(Details{}); got != detailsAlign {
		t.Errorf("alignof(Details) = %d, want %d", got, detailsAlign)
	}
}
