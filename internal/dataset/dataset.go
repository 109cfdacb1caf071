package dataset

import (
	"errors"
	"fmt"
	"math"
	"sync"

	"github.com/spec-kit/performance-dashboard/internal/domain"
)

var (
	// ErrLengthMismatch is returned when the name and count columns differ in length.
	ErrLengthMismatch = errors.New("dataset columns have different lengths")
	// ErrNegativeCount is returned for a negative passed or failed count.
	ErrNegativeCount = errors.New("dataset count is negative")
	// ErrDuplicateName is returned when two rows share a department name.
	ErrDuplicateName = errors.New("dataset department name is duplicated")
)

// Table is the immutable, ordered set of department records.
type Table struct {
	records []domain.DepartmentRecord
	index   map[string]int
}

// Build constructs a Table from parallel columns aligned by index. Any
// construction error discards the whole table.
func Build(names []string, passed, failed []int) (*Table, error) {
	if len(names) != len(passed) || len(names) != len(failed) {
		return nil, fmt.Errorf("%w: names=%d passed=%d failed=%d", ErrLengthMismatch, len(names), len(passed), len(failed))
	}

	t := &Table{
		records: make([]domain.DepartmentRecord, 0, len(names)),
		index:   make(map[string]int, len(names)),
	}
	for i, name := range names {
		if passed[i] < 0 || failed[i] < 0 {
			return nil, fmt.Errorf("%w: %q passed=%d failed=%d", ErrNegativeCount, name, passed[i], failed[i])
		}
		if _, exists := t.index[name]; exists {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateName, name)
		}
		t.index[name] = i
		t.records = append(t.records, newRecord(name, passed[i], failed[i]))
	}
	return t, nil
}

var loadDefault = sync.OnceValues(func() (*Table, error) {
	return Build(departmentNames, passedCounts, failedCounts)
})

// Default returns the built-in twenty department table. It is built on first
// use and every later call returns the same *Table.
func Default() (*Table, error) {
	return loadDefault()
}

// Records returns a copy of the rows in dataset order.
func (t *Table) Records() []domain.DepartmentRecord {
	out := make([]domain.DepartmentRecord, len(t.records))
	copy(out, t.records)
	return out
}

// Names returns department names in dataset order.
func (t *Table) Names() []string {
	names := make([]string, len(t.records))
	for i, rec := range t.records {
		names[i] = rec.Name
	}
	return names
}

// Lookup finds a record by exact name.
func (t *Table) Lookup(name string) (domain.DepartmentRecord, bool) {
	i, ok := t.index[name]
	if !ok {
		return domain.DepartmentRecord{}, false
	}
	return t.records[i], true
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return len(t.records)
}

func newRecord(name string, passed, failed int) domain.DepartmentRecord {
	enrolled := passed + failed
	return domain.DepartmentRecord{
		Name:      name,
		Enrolled:  enrolled,
		Failed:    failed,
		Passed:    passed,
		PctPassed: percentage(passed, enrolled),
		PctFailed: percentage(failed, enrolled),
	}
}

// percentage is part/total*100 rounded to one decimal; zero when total is zero.
func percentage(part, total int) float64 {
	if total <= 0 {
		return 0
	}
	v := float64(part) / float64(total) * 100
	return math.Round(v*10) / 10
}
