package lights

import (
	"errors"
	"fmt"
	"math"

	"github.com/df07/go-raytracer-lights/pkg/core"
	"github.com/go-gl/mathgl/mgl64"
)

var (
	ErrZeroDirection       = errors.New("direction vector has zero length")
	ErrNegativeAttenuation = errors.New("attenuation coefficients must be non-negative")
	ErrCutDistance         = errors.New("cut distance must be positive")
	ErrCutoffRange         = errors.New("spot cutoff must be in (0, pi/2)")
)

// SpotConfig holds the cone parameters of a spot light
type SpotConfig struct {
	Cutoff float64 // Half-angle of the cone in radians
	SpotP  float64 // Multiplier on the falloff exponent; larger is sharper
}

// DefaultSpotConfig returns the cone used when a scene does not specify one
func DefaultSpotConfig() SpotConfig {
	return SpotConfig{
		Cutoff: 0.2,
		SpotP:  128,
	}
}

// SpotConfigDegrees builds a SpotConfig from a half-angle in degrees
func SpotConfigDegrees(cutoffDegrees, spotP float64) SpotConfig {
	return SpotConfig{
		Cutoff: mgl64.DegToRad(cutoffDegrees),
		SpotP:  spotP,
	}
}

// Validate checks the cone parameters
func (c SpotConfig) Validate() error {
	if c.Cutoff <= 0 || c.Cutoff >= math.Pi/2 {
		return fmt.Errorf("%w: got %v", ErrCutoffRange, c.Cutoff)
	}
	if c.SpotP < 0 {
		return fmt.Errorf("spot exponent must be non-negative: got %v", c.SpotP)
	}
	return nil
}

// Attenuation holds the coefficients of the 1/(c0 + c1*d + c2*d^2) falloff
type Attenuation struct {
	Constant  float64
	Linear    float64
	Quadratic float64
}

// NewAttenuation creates attenuation coefficients
func NewAttenuation(constant, linear, quadratic float64) Attenuation {
	return Attenuation{Constant: constant, Linear: linear, Quadratic: quadratic}
}

// At evaluates the falloff denominator at distance d
func (a Attenuation) At(d float64) float64 {
	return a.Constant + a.Linear*d + a.Quadratic*d*d
}

// Validate checks that no coefficient is negative
func (a Attenuation) Validate() error {
	if a.Constant < 0 || a.Linear < 0 || a.Quadratic < 0 {
		return fmt.Errorf("%w: got (%v, %v, %v)", ErrNegativeAttenuation, a.Constant, a.Linear, a.Quadratic)
	}
	return nil
}

// ValidateDirection rejects direction vectors that cannot be normalized
func ValidateDirection(v core.Vec3) error {
	if v.LengthSquared() == 0 {
		return ErrZeroDirection
	}
	return nil
}

// ValidateCutDistance rejects non-positive shadow ray bounds
func ValidateCutDistance(d float64) error {
	if !(d > 0) {
		return fmt.Errorf("%w: got %v", ErrCutDistance, d)
	}
	return nil
}
