package dto

import "github.com/spec-kit/performance-dashboard/internal/domain"

// DepartmentResponse is the JSON form of a department record.
type DepartmentResponse struct {
	Name      string  `json:"name"`
	Enrolled  int     `json:"enrolled"`
	Failed    int     `json:"failed"`
	Passed    int     `json:"passed"`
	PctPassed float64 `json:"pct_passed"`
	PctFailed float64 `json:"pct_failed"`
}

// RenderChartRequest is the body of POST /api/v1/chart.
type RenderChartRequest struct {
	Departments []string `json:"departments"`
}

// DepartmentResponses converts records, always returning a non-nil slice.
func DepartmentResponses(records []domain.DepartmentRecord) []DepartmentResponse {
	out := make([]DepartmentResponse, 0, len(records))
	for _, rec := range records {
		out = append(out, DepartmentResponse{
			Name:      rec.Name,
			Enrolled:  rec.Enrolled,
			Failed:    rec.Failed,
			Passed:    rec.Passed,
			PctPassed: rec.PctPassed,
			PctFailed: rec.PctFailed,
		})
	}
	return out
}
