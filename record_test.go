package fzlog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSentinel(t *testing.T) {
	rec := Sentinel("free", 900)
	assert.Equal(t, Record{
		Solutions: "0",
		Time:      900,
		Nodes:     "999999999",
		Policy:    PolicyUnknown,
		Objective: 0,
		Status:    StatusUnknown,
		Variant:   "free",
		BuildTime: 900,
	}, rec)
}

func TestRecord_Tuple(t *testing.T) {
	rec := Record{
		Solutions: "5",
		Time:      12.5,
		Nodes:     "340",
		Policy:    PolicyMin,
		Objective: 1000,
		Status:    StatusProof,
		Variant:   "fixed",
		BuildTime: 0.45,
	}
	assert.Equal(t, []any{"5", 12.5, "340", "MIN", 1000, "proof", "fixed", 0.45}, rec.Tuple())
}
