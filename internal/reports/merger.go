package reports

import (
	"encoding/json"

	"github.com/pkg/errors"
)

// MergeReports flattens several reports into one JSON-ready document. Later
// reports win on key collisions; report names stay out of the document and
// are only used for error context.
func MergeReports(reports ...Report) (map[string]interface{}, error) {
	merged := make(map[string]interface{}, 0)

	for _, report := range reports {
		reportDump, err := report.DumpReport()
		reportName := report.ReportName()

		if err != nil {
			return nil, errors.WithMessagef(err, "dump report '%s'", reportName)
		}

		if err := json.Unmarshal(reportDump, &merged); err != nil {
			return nil, errors.WithMessagef(err, "merge with report '%s'", reportName)
		}
	}

	return merged, nil
}
