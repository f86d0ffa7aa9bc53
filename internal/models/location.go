package models

import (
	"fmt"
	"math"
)

// Location - точка WGS84
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Validate проверяет диапазоны координат
func (l Location) Validate() error {
	if math.IsNaN(l.Latitude) || l.Latitude < -90 || l.Latitude > 90 {
		return fmt.Errorf("%w: latitude %v out of range [-90, 90]", ErrInvalidInput, l.Latitude)
	}
	if math.IsNaN(l.Longitude) || l.Longitude < -180 || l.Longitude > 180 {
		return fmt.Errorf("%w: longitude %v out of range [-180, 180]", ErrInvalidInput, l.Longitude)
	}
	return nil
}
