package feature

import "fmt"

// CorridorOptions bounds the length of random corridors. The range is [MinLength, MaxLength).
type CorridorOptions struct {
	MinLength int
	MaxLength int
}

// Validate checks the length range
func (o CorridorOptions) Validate() error {
	if err := validateRange(o.MinLength, o.MaxLength); err != nil {
		return fmt.Errorf("corridor length: %w", err)
	}
	return nil
}

// RoomOptions bounds the interior size of random rooms. Ranges are half-open.
type RoomOptions struct {
	MinWidth  int
	MaxWidth  int
	MinHeight int
	MaxHeight int
}

// Validate checks the width and height ranges
func (o RoomOptions) Validate() error {
	if err := validateRange(o.MinWidth, o.MaxWidth); err != nil {
		return fmt.Errorf("room width: %w", err)
	}
	if err := validateRange(o.MinHeight, o.MaxHeight); err != nil {
		return fmt.Errorf("room height: %w", err)
	}
	return nil
}

func validateRange(min, max int) error {
	if min < 1 || min >= max {
		return fmt.Errorf("[%d, %d): %w", min, max, ErrInvalidRange)
	}
	return nil
}
