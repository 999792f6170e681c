package models

import (
	"fmt"
	"math"
)

const (
	lenStep    = 0.65 // Length of one step, meters.
	lenStroke  = 1.38 // Length of one swimming stroke, meters.
	mInKm      = 1000 // Meters in a kilometer.
	hoursToMin = 60   // Hours to minutes.
)

const (
	runCalorie1 = 18 // Two coefficients for the running
	runCalorie2 = 20 // calorie formula.

	wlkCalorie1 = 0.035 // Two coefficients for the sports
	wlkCalorie2 = 0.029 // walking calorie formula.

	swmCalorie1 = 1.1 // Two coefficients for the swimming
	swmCalorie2 = 2   // calorie formula.
)

// Workout is a single recorded training of one of the supported disciplines.
// There is no shared calorie formula, so every discipline must bring its own
// Calories implementation; the shared reading base alone never satisfies
// this interface.
type Workout interface {
	// Name returns the discipline identifier, used verbatim in reports.
	Name() string
	// Duration returns the workout length in hours.
	Duration() float64
	// Distance returns the covered distance in kilometers.
	Distance() float64
	// MeanSpeed returns the average speed in km/h.
	MeanSpeed() float64
	// Calories returns the spent kilocalories.
	Calories() float64
}

// session holds the sensor readings common to all disciplines.
type session struct {
	action   int     // Steps or strokes counted by the sensor.
	hours    float64 // Duration in hours.
	weightKg float64
}

func newSession(action int, hours, weightKg float64) (session, error) {
	if hours <= 0 {
		return session{}, fmt.Errorf("workout duration must be positive, got %v h", hours)
	}

	return session{action: action, hours: hours, weightKg: weightKg}, nil
}

func (s session) Duration() float64 {
	return s.hours
}

func (s session) distance(unitLength float64) float64 {
	return float64(s.action) * unitLength / mInKm
}

// Running is a running workout: step count, duration and body weight.
type Running struct {
	session
}

func NewRunning(steps int, hours, weightKg float64) (Running, error) {
	s, err := newSession(steps, hours, weightKg)
	if err != nil {
		return Running{}, err
	}

	return Running{session: s}, nil
}

func (r Running) Name() string {
	return "Running"
}

func (r Running) Distance() float64 {
	return r.distance(lenStep)
}

func (r Running) MeanSpeed() float64 {
	return r.Distance() / r.hours
}

func (r Running) Calories() float64 {
	return (runCalorie1*r.MeanSpeed() - runCalorie2) * r.weightKg / mInKm * r.hours * hoursToMin
}

// SportsWalking is a walking workout; it additionally needs the walker's
// height for the calorie formula.
type SportsWalking struct {
	session
	heightCm float64
}

func NewSportsWalking(steps int, hours, weightKg, heightCm float64) (SportsWalking, error) {
	s, err := newSession(steps, hours, weightKg)
	if err != nil {
		return SportsWalking{}, err
	}

	return SportsWalking{session: s, heightCm: heightCm}, nil
}

func (w SportsWalking) Name() string {
	return "SportsWalking"
}

func (w SportsWalking) Distance() float64 {
	return w.distance(lenStep)
}

func (w SportsWalking) MeanSpeed() float64 {
	return w.Distance() / w.hours
}

func (w SportsWalking) Calories() float64 {
	speed := w.MeanSpeed()
	// The squared speed over height term is floored, not truncated or
	// rounded; the reference formula depends on that.
	return (wlkCalorie1*w.weightKg + math.Floor(speed*speed/w.heightCm)*wlkCalorie2*w.weightKg) * w.hours * hoursToMin
}

// Swimming is a pool workout: stroke count plus pool length and lap count,
// which drive its own mean speed formula.
type Swimming struct {
	session
	poolLengthM float64
	poolLaps    int
}

func NewSwimming(strokes int, hours, weightKg, poolLengthM float64, poolLaps int) (Swimming, error) {
	s, err := newSession(strokes, hours, weightKg)
	if err != nil {
		return Swimming{}, err
	}

	return Swimming{session: s, poolLengthM: poolLengthM, poolLaps: poolLaps}, nil
}

func (s Swimming) Name() string {
	return "Swimming"
}

func (s Swimming) Distance() float64 {
	return s.distance(lenStroke)
}

// MeanSpeed for swimming comes from the pool geometry, not from the stroke
// count the generic distance path uses.
func (s Swimming) MeanSpeed() float64 {
	return s.poolLengthM * float64(s.poolLaps) / mInKm / s.hours
}

func (s Swimming) Calories() float64 {
	return (s.MeanSpeed() + swmCalorie1) * swmCalorie2 * s.weightKg
}
