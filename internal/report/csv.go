// Package report serializes analysis records into the downloadable CSV report.
//
// The format is a fixed contract: the exact header below, then one line per
// record in store order, every field wrapped in double quotes with embedded
// quotes doubled. encoding/csv cannot produce this layout (it quotes only
// when forced and never pads the header), so the format is written out
// explicitly.
package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/ovumlab/ovumsort/internal/model"
)

// header is the exact column row of the report.
const header = "Timestamp, Batch Number, Analysis Type, Predicted Gender, Confidence, AI Reasoning"

// Render produces the CSV report bytes for the given records.
func Render(records []model.AnalysisRecord) []byte {
	var b strings.Builder
	b.WriteString(header)
	b.WriteString("\n")

	for _, r := range records {
		fields := []string{
			r.Timestamp.Format(time.RFC3339),
			r.BatchNumber,
			string(r.AnalysisType),
			string(r.Gender),
			string(r.Confidence),
			r.Reasoning,
		}
		for i, f := range fields {
			if i > 0 {
				b.WriteString(",")
			}
			b.WriteString(quote(f))
		}
		b.WriteString("\n")
	}

	return []byte(b.String())
}

// Filename returns the default report filename for the given date.
func Filename(now time.Time) string {
	return fmt.Sprintf("ovumsort_report_%s.csv", now.Format("2006-01-02"))
}

// quote wraps a field in double quotes, doubling any embedded quotes.
func quote(field string) string {
	return `"` + strings.ReplaceAll(field, `"`, `""`) + `"`
}
