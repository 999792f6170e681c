package sensor

import (
	"errors"
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/VanishSun/fittrack/internal/models"
)

// Workout-type codes as sent by the tracker firmware.
const (
	CodeSwimming      = "SWM"
	CodeRunning       = "RUN"
	CodeSportsWalking = "WLK"
)

// ErrUnknownWorkout reports a packet whose code has no entry in the dispatch
// table. Malformed readings for a known code produce a plain construction
// error instead, so callers can tell the two apart.
var ErrUnknownWorkout = errors.New("unknown workout type")

// Package is one packet received from the sensors: a workout-type code plus
// the raw readings, whose count and meaning depend on the code.
type Package struct {
	Code     string    `toml:"code"`
	Readings []float64 `toml:"readings"`
}

type packageList struct {
	Packages []Package `toml:"package"`
}

// ParsePackages decodes a TOML document with one [[package]] table per packet.
func ParsePackages(data []byte) ([]Package, error) {
	var list packageList
	if err := toml.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("failed to parse sensor packages: %w", err)
	}

	return list.Packages, nil
}

var decoders = map[string]func([]float64) (models.Workout, error){
	CodeSwimming:      decodeSwimming,
	CodeRunning:       decodeRunning,
	CodeSportsWalking: decodeSportsWalking,
}

// Decode builds the workout matching the packet's code.
func Decode(pkg Package) (models.Workout, error) {
	decode, ok := decoders[pkg.Code]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownWorkout, pkg.Code)
	}

	return decode(pkg.Readings)
}

func decodeRunning(r []float64) (models.Workout, error) {
	if len(r) != 3 {
		return nil, fmt.Errorf("running packet expects 3 readings, got %d", len(r))
	}

	w, err := models.NewRunning(int(r[0]), r[1], r[2])
	if err != nil {
		return nil, err
	}

	return w, nil
}

func decodeSportsWalking(r []float64) (models.Workout, error) {
	if len(r) != 4 {
		return nil, fmt.Errorf("sports walking packet expects 4 readings, got %d", len(r))
	}

	w, err := models.NewSportsWalking(int(r[0]), r[1], r[2], r[3])
	if err != nil {
		return nil, err
	}

	return w, nil
}

func decodeSwimming(r []float64) (models.Workout, error) {
	if len(r) != 5 {
		return nil, fmt.Errorf("swimming packet expects 5 readings, got %d", len(r))
	}

	w, err := models.NewSwimming(int(r[0]), r[1], r[2], r[3], int(r[4]))
	if err != nil {
		return nil, err
	}

	return w, nil
}
