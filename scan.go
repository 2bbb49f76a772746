package fzlog

import "regexp"

// Line classification patterns. A line may match more than one pattern;
// each rule fires independently of the others.
var (
	solutionReport   = regexp.MustCompile(`%.*Solutions,.*`)
	terminalStatus   = regexp.MustCompile(`^=====.*`)
	buildMarker      = regexp.MustCompile(`%.building.*`)
	optimizationMark = regexp.MustCompile(`%.*(MINIMIZE|MAXIMIZE).*`)
)

// Terminal banners printed after search ends. bannerUnknown is
// recognized but maps to the same status as an unrecognized banner.
const (
	bannerComplete      = "=========="
	bannerUnsatisfiable = "=====UNSATISFIABLE====="
	bannerUnknown       = "=====UNKNOWN====="
	bannerUnbounded     = "=====UNBOUNDED====="
)

// scanState accumulates the lines retained while scanning one log:
// a two-line solution-report window plus the last terminal banner and
// the first build marker.
type scanState struct {
	lastSolution string
	prevSolution string
	lastStatus   string
	firstBuild   string
}

// observe classifies one line and updates the matching slots.
func (s *scanState) observe(line string) {
	if solutionReport.MatchString(line) {
		s.prevSolution = s.lastSolution
		s.lastSolution = line
	}
	if terminalStatus.MatchString(line) {
		s.lastStatus = line
	}
	if s.firstBuild == "" && buildMarker.MatchString(line) {
		s.firstBuild = line
	}
}

// bannerStatus maps the last terminal banner to a Status. A log without
// a banner reports StatusNone; an unrecognized banner reports
// StatusUnknown.
func bannerStatus(line string) Status {
	switch line {
	case "":
		return StatusNone
	case bannerComplete, bannerUnsatisfiable:
		return StatusProof
	case bannerUnbounded:
		return StatusUnbounded
	default:
		return StatusUnknown
	}
}
