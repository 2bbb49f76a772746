package fzlog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScanState_SolutionWindow(t *testing.T) {
	var st scanState
	st.observe("% 1 Solutions, Resolution 0.5s, 10 Nodes")
	assert.Equal(t, "% 1 Solutions, Resolution 0.5s, 10 Nodes", st.lastSolution)
	assert.Empty(t, st.prevSolution)

	st.observe("% comment line")
	st.observe("% 2 Solutions, Resolution 1.0s, 20 Nodes")
	assert.Equal(t, "% 2 Solutions, Resolution 1.0s, 20 Nodes", st.lastSolution)
	assert.Equal(t, "% 1 Solutions, Resolution 0.5s, 10 Nodes", st.prevSolution)

	st.observe("% 3 Solutions, Resolution 1.5s, 30 Nodes")
	assert.Equal(t, "% 3 Solutions, Resolution 1.5s, 30 Nodes", st.lastSolution)
	assert.Equal(t, "% 2 Solutions, Resolution 1.0s, 20 Nodes", st.prevSolution)
}

func TestScanState_LastStatusWins(t *testing.T) {
	var st scanState
	st.observe("=====UNKNOWN=====")
	st.observe("x = 3;")
	st.observe("==========")
	assert.Equal(t, "==========", st.lastStatus)
}

func TestScanState_StatusMustStartLine(t *testing.T) {
	var st scanState
	st.observe("% saw ========== earlier")
	assert.Empty(t, st.lastStatus)
}

func TestScanState_FirstBuildWins(t *testing.T) {
	var st scanState
	st.observe("% building model from instance file a.fzn in 0.45s, ok")
	st.observe("% building model from instance file a.fzn in 9.99s, ok")
	assert.Equal(t, "% building model from instance file a.fzn in 0.45s, ok", st.firstBuild)
}

func TestScanState_RulesFireIndependently(t *testing.T) {
	// A line matching several patterns updates every matching slot.
	var st scanState
	line := "% building done, 1 Solutions, Resolution 0.5s, 10 Nodes"
	st.observe(line)
	assert.Equal(t, line, st.lastSolution)
	assert.Equal(t, line, st.firstBuild)
	assert.Empty(t, st.lastStatus)
}

func TestBannerStatus(t *testing.T) {
	tests := []struct {
		name   string
		banner string
		want   Status
	}{
		{"no banner", "", StatusNone},
		{"complete", "==========", StatusProof},
		{"unsatisfiable", "=====UNSATISFIABLE=====", StatusProof},
		{"unbounded", "=====UNBOUNDED=====", StatusUnbounded},
		{"unknown banner", "=====UNKNOWN=====", StatusUnknown},
		{"unrecognized banner", "=====ERROR=====", StatusUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, bannerStatus(tt.banner))
		})
	}
}
