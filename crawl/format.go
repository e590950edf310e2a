package crawl

import (
	"fmt"
	"strings"
	"time"
)

// FormatProgress renders a progress event as one log line:
//
//	[OK ]    3/ 350 | id=   3 |  412.07 ms
//	[ERR]    4/ 350 | id=   4 |   98.10 ms | car 4: stats section not found
func FormatProgress(e ProgressEvent) string {
	status := "OK "
	if e.Error != nil {
		status = "ERR"
	}
	line := fmt.Sprintf("[%s] %4d/%4d | id=%4d | %7.2f ms",
		status, e.Completed, e.Total, e.ID, millis(e.Elapsed))
	if e.Error != nil {
		line += " | " + e.Error.Error()
	}
	return line
}

// FormatReport renders the closing summary of a batch.
func FormatReport(r *Report) string {
	var b strings.Builder
	fmt.Fprintf(&b, "succeeded: %d, failed: %d\n", len(r.Cars), len(r.Failures))
	fmt.Fprintf(&b, "total time: %.2f s\n", r.Elapsed.Seconds())
	if len(r.Cars) > 0 {
		fmt.Fprintf(&b, "average per car: %.2f ms\n", millis(r.AveragePerCar()))
	}
	if len(r.Failures) > 0 {
		fmt.Fprintf(&b, "failed IDs: %v\n", r.FailedIDs())
	}
	return b.String()
}

func millis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
