// SPDX-License-Identifier: MIT
// Package: mallpath/builder
//
// config.go — layout parameters consumed by Build.

package builder

import "fmt"

// MinFloorDim is the smallest row or column count that still leaves an
// interior behind the perimeter.
const MinFloorDim = 3

// Config describes a facility to be generated procedurally.
type Config struct {
	Rows   int
	Cols   int
	Floors int

	// Elevators is the number of elevator columns; each spans every floor.
	Elevators int
	// Stairs is the number of stair pairs between each pair of adjacent floors.
	Stairs int

	StoresPerFloor int
	// ObstaclesPerFloor overrides the density option when > 0.
	ObstaclesPerFloor int
}

// Validate reports the first reason cfg cannot be built, wrapped in ErrInvalidConfig.
func (cfg Config) Validate() error {
	switch {
	case cfg.Rows < MinFloorDim || cfg.Cols < MinFloorDim:
		return fmt.Errorf("%w: floor %dx%d is smaller than %dx%d",
			ErrInvalidConfig, cfg.Rows, cfg.Cols, MinFloorDim, MinFloorDim)
	case cfg.Floors < 1:
		return fmt.Errorf("%w: floors=%d", ErrInvalidConfig, cfg.Floors)
	case cfg.Elevators < 0 || cfg.Stairs < 0 || cfg.ObstaclesPerFloor < 0:
		return fmt.Errorf("%w: negative count", ErrInvalidConfig)
	case cfg.StoresPerFloor < 1:
		return fmt.Errorf("%w: stores_per_floor=%d", ErrInvalidConfig, cfg.StoresPerFloor)
	case cfg.Floors > 1 && cfg.Elevators+cfg.Stairs == 0:
		return fmt.Errorf("%w: %d floors need an elevator or stairs", ErrInvalidConfig, cfg.Floors)
	case cfg.Floors > 1 && cfg.Stairs > 0 && cfg.Cols < MinFloorDim+1:
		return fmt.Errorf("%w: stairs need at least %d columns", ErrInvalidConfig, MinFloorDim+1)
	}
	return nil
}
