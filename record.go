package fzlog

// Policy identifies the resolution policy of a solver run.
type Policy string

const (
	PolicyMin     Policy = "MIN"
	PolicyMax     Policy = "MAX"
	PolicySat     Policy = "SAT"
	PolicyUnknown Policy = "UNK"
)

// Status identifies the terminal status the solver reported after search.
type Status string

const (
	StatusProof     Status = "proof"
	StatusUnbounded Status = "unbounded"
	StatusUnknown   Status = "unknown"
	// StatusNone marks a log that reported solutions but no terminal banner.
	StatusNone Status = "  "
)

// maxNodes is the node sentinel used when a run left no usable log.
const maxNodes = "999999999"

// Record is the fixed eight-field summary of one solver run. Solutions
// and Nodes keep the raw token text as written in the log.
type Record struct {
	Solutions string  `json:"solutions"`
	Time      float64 `json:"time"`
	Nodes     string  `json:"nodes"`
	Policy    Policy  `json:"policy"`
	Objective int     `json:"objective"`
	Status    Status  `json:"status"`
	Variant   string  `json:"variant"`
	BuildTime float64 `json:"build_time"`
}

// Sentinel returns the fallback record for a run whose log file does not
// exist: zero solutions, time and build time pinned to maxTime, and the
// node count pinned to a large sentinel.
func Sentinel(variant string, maxTime float64) Record {
	return Record{
		Solutions: "0",
		Time:      maxTime,
		Nodes:     maxNodes,
		Policy:    PolicyUnknown,
		Objective: 0,
		Status:    StatusUnknown,
		Variant:   variant,
		BuildTime: maxTime,
	}
}

// Tuple returns the record as an ordered eight-element row for
// positional consumers such as report tables and bulk inserts.
func (r Record) Tuple() []any {
	return []any{r.Solutions, r.Time, r.Nodes, string(r.Policy), r.Objective, string(r.Status), r.Variant, r.BuildTime}
}
