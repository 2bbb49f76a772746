// Package fzlog extracts fixed-shape benchmark records from FlatZinc
// solver logs.
//
// A benchmark run leaves one log file per solver configuration, named
// "<base>+<variant>.log". Extract scans the log once, keeps the
// authoritative solution report together with the terminal banner and
// the first build marker, and distills them into an eight-field Record.
// Missing files and logs without solutions degrade to sentinel values
// instead of errors, so an aggregation sweep never stops on a run that
// timed out before printing anything.
//
// Quick start:
//
//	rec, err := fzlog.Extract("results/queens", "queens-8", "free", fzlog.Options{
//	    MaxTime: 900,
//	})
//	if err != nil {
//	    log.Fatal(err) // a matched line did not fit the expected layout
//	}
//	fmt.Println(rec.Solutions, rec.Time, rec.Status)
//
// Extract keeps no state between calls and is safe to use concurrently
// as long as each call targets a distinct file.
package fzlog
