package service

import "github.com/spec-kit/performance-dashboard/internal/domain"

// Project returns the records visible for the given selection.
//
// An empty selection means no filter and returns records unchanged. Otherwise
// the result keeps the records whose name is selected, in their original
// order; selected names without a matching record are ignored.
func Project(records []domain.DepartmentRecord, selection domain.Selection) []domain.DepartmentRecord {
	if selection.IsEmpty() {
		return records
	}

	view := make([]domain.DepartmentRecord, 0, len(selection))
	for _, rec := range records {
		if selection.Contains(rec.Name) {
			view = append(view, rec)
		}
	}
	return view
}
