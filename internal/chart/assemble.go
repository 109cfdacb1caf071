package chart

import (
	"strconv"

	"github.com/spec-kit/performance-dashboard/internal/domain"
)

const (
	Title = "Student Performance Dashboard"

	SeriesEnrolled  = "Enrolled"
	SeriesFailed    = "Failed"
	SeriesPassed    = "Passed"
	SeriesPctPassed = "% Passed"
	SeriesPctFailed = "% Failed"

	countsAxisTitle  = "Students"
	percentAxisTitle = "Percentages"

	defaultHeight = 700
	tickAngle     = -45
)

// Assemble maps a filtered view onto the fixed five-series dashboard chart:
// three grouped count bars on the left axis and two labelled percentage lines
// on the right axis, which is pinned to [0,100].
func Assemble(view []domain.DepartmentRecord) Spec {
	n := len(view)
	categories := make([]string, n)
	enrolled := make([]float64, n)
	failed := make([]float64, n)
	passed := make([]float64, n)
	pctPassed := make([]float64, n)
	pctFailed := make([]float64, n)
	enrolledLabels := make([]string, n)
	pctPassedLabels := make([]string, n)
	pctFailedLabels := make([]string, n)

	for i, rec := range view {
		categories[i] = rec.Name
		enrolled[i] = float64(rec.Enrolled)
		failed[i] = float64(rec.Failed)
		passed[i] = float64(rec.Passed)
		pctPassed[i] = rec.PctPassed
		pctFailed[i] = rec.PctFailed
		enrolledLabels[i] = strconv.Itoa(rec.Enrolled)
		pctPassedLabels[i] = PercentLabel(rec.PctPassed)
		pctFailedLabels[i] = PercentLabel(rec.PctFailed)
	}

	return Spec{
		Title:      Title,
		Categories: categories,
		Series: []Series{
			{
				Name:          SeriesEnrolled,
				Kind:          KindBar,
				Axis:          AxisCounts,
				Values:        enrolled,
				Labels:        enrolledLabels,
				LabelPosition: "outside",
				Color:         "blue",
			},
			{Name: SeriesFailed, Kind: KindBar, Axis: AxisCounts, Values: failed, Color: "red"},
			{Name: SeriesPassed, Kind: KindBar, Axis: AxisCounts, Values: passed, Color: "green"},
			{
				Name:          SeriesPctPassed,
				Kind:          KindLine,
				Axis:          AxisPercent,
				Values:        pctPassed,
				Labels:        pctPassedLabels,
				LabelPosition: "top center",
				Color:         "orange",
				LineWidth:     1.5,
				Markers:       true,
			},
			{
				Name:          SeriesPctFailed,
				Kind:          KindLine,
				Axis:          AxisPercent,
				Values:        pctFailed,
				Labels:        pctFailedLabels,
				LabelPosition: "bottom center",
				Color:         "purple",
				LineWidth:     1.5,
				Dashed:        true,
				Markers:       true,
			},
		},
		YAxis:  Axis{Title: countsAxisTitle},
		Y2Axis: Axis{Title: percentAxisTitle, Range: &[2]float64{0, 100}},
		Layout: Layout{
			Height:    defaultHeight,
			BarMode:   "group",
			TickAngle: tickAngle,
			Legend: Legend{
				Orientation: "h",
				XAnchor:     "right",
				YAnchor:     "bottom",
				X:           1,
				Y:           1.02,
			},
		},
	}
}

// PercentLabel formats a percentage point label, e.g. "85.6%".
func PercentLabel(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64) + "%"
}
