package models

import "fmt"

// ReportLine is the immutable summary of one computed workout.
type ReportLine struct {
	TrainingType string
	Duration     float64
	Distance     float64
	MeanSpeed    float64
	Calories     float64
}

// NewReportLine snapshots the derived metrics of a workout.
func NewReportLine(w Workout) ReportLine {
	return ReportLine{
		TrainingType: w.Name(),
		Duration:     w.Duration(),
		Distance:     w.Distance(),
		MeanSpeed:    w.MeanSpeed(),
		Calories:     w.Calories(),
	}
}

// Message renders the report template. Field order and the three decimal
// places on every numeric field are part of the output contract.
func (r ReportLine) Message() string {
	return fmt.Sprintf(
		"Training type: %s; Duration: %.3f h.; Distance: %.3f km; Avg. speed: %.3f km/h; Calories burned: %.3f.",
		r.TrainingType, r.Duration, r.Distance, r.MeanSpeed, r.Calories,
	)
}
