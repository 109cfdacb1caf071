package domain

// DepartmentRecord holds the performance statistics of one academic department.
// Enrolled is always Passed + Failed and the percentages are derived from the
// counts when the record is built.
type DepartmentRecord struct {
	Name      string
	Enrolled  int
	Failed    int
	Passed    int
	PctPassed float64
	PctFailed float64
}
