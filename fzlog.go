package fzlog

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
)

// Options control how a solver log is interpreted.
type Options struct {
	// OldSchema selects the older solution-report token layout.
	OldSchema bool

	// MaxTime is the time limit of the run in seconds. It caps the
	// extracted solve time and fills the sentinel record when the log
	// is missing. Must be strictly positive.
	MaxTime float64
}

// Extract reads the log file "<name>+<variant>.log" under dir and
// returns its Record. A log that does not exist or cannot be opened is
// not an error: the run left nothing behind, and the sentinel record is
// returned in its place.
func Extract(dir, name, variant string, opts Options) (Record, error) {
	path := filepath.Join(dir, name+"+"+variant+".log")
	f, err := os.Open(path)
	if err != nil {
		zap.L().Debug("log not readable, reporting sentinel record",
			zap.String("path", path), zap.Error(err))
		return Sentinel(variant, opts.MaxTime), nil
	}
	defer f.Close()

	rec, err := Parse(f, variant, opts)
	if err != nil {
		return Record{}, eris.Wrapf(err, "fzlog: parse %s", path)
	}
	return rec, nil
}

// Parse scans one solver log from r and assembles its Record. The
// variant is echoed into the record untouched.
func Parse(r io.Reader, variant string, opts Options) (Record, error) {
	var st scanState
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		st.observe(sc.Text())
	}
	if err := sc.Err(); err != nil {
		return Record{}, eris.Wrap(err, "fzlog: scan log")
	}
	return assemble(st, variant, opts)
}

// assemble derives the record from the retained lines.
func assemble(st scanState, variant string, opts Options) (Record, error) {
	stripped := stripSeconds(st.lastSolution)
	parts := strings.Fields(stripped)
	prev := strings.Fields(stripSeconds(st.prevSolution))

	if len(parts) == 0 {
		// No solution was ever reported. Everything except the build
		// time degrades to the sentinel values.
		rec := Sentinel(variant, opts.MaxTime)
		bt, err := extractBuildTime(st.firstBuild)
		if err != nil {
			return Record{}, err
		}
		rec.BuildTime = bt
		zap.L().Debug("no solution report in log, reporting sentinel record",
			zap.String("variant", variant))
		return rec, nil
	}

	lay := layouts[layoutKey{old: opts.OldSchema, opt: optimizationMark.MatchString(stripped)}]

	// A final report repeating the previous count is a duplicate with a
	// different optimality annotation; the earlier line is authoritative.
	if len(prev) > 0 {
		cur, err := token(parts, lay.count, "solution count")
		if err != nil {
			return Record{}, err
		}
		dup, err := token(prev, lay.count, "solution count")
		if err != nil {
			return Record{}, err
		}
		if cur == dup {
			zap.L().Debug("duplicate final solution report, using the earlier line",
				zap.String("count", cur))
			parts = prev
		}
	}

	rec := Record{Variant: variant}

	count, err := token(parts, lay.count, "solution count")
	if err != nil {
		return Record{}, err
	}
	rec.Solutions = count

	timeTok, err := token(parts, lay.time, "solve time")
	if err != nil {
		return Record{}, err
	}
	rec.Time, err = parseSeconds(timeTok)
	if err != nil {
		return Record{}, eris.Wrap(err, "fzlog: solve time")
	}

	rec.Nodes, err = token(parts, lay.nodes, "node count")
	if err != nil {
		return Record{}, err
	}

	if lay.policy >= 0 {
		sense, err := token(parts, lay.policy, "policy")
		if err != nil {
			return Record{}, err
		}
		rec.Policy = PolicyMax
		if sense == "MINIMIZE" {
			rec.Policy = PolicyMin
		}

		objTok, err := token(parts, lay.obj, "objective")
		if err != nil {
			return Record{}, err
		}
		rec.Objective, err = parseGroupedInt(objTok)
		if err != nil {
			return Record{}, eris.Wrap(err, "fzlog: objective")
		}
	} else {
		rec.Policy = PolicySat
	}

	rec.Status = bannerStatus(st.lastStatus)

	if rec.Time >= opts.MaxTime {
		rec.Time = opts.MaxTime
	}

	rec.BuildTime, err = extractBuildTime(st.firstBuild)
	if err != nil {
		return Record{}, err
	}
	return rec, nil
}

// extractBuildTime pulls the model build time out of the first build
// marker line, 0 when the log never reported one.
func extractBuildTime(line string) (float64, error) {
	parts := strings.Fields(stripSeconds(line))
	if len(parts) == 0 {
		return 0, nil
	}
	tok, err := token(parts, buildTimeIndex, "build time")
	if err != nil {
		return 0, err
	}
	v, err := parseSeconds(tok)
	if err != nil {
		return 0, eris.Wrap(err, "fzlog: build time")
	}
	return v, nil
}
