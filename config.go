// seehuhn.de/go/sketch - incremental stroke geometry
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package sketch

// Default parameter values.
const (
	defaultMiterLimit     = 1.2
	defaultTangentEpsilon = 1e-5
	defaultGrowthFactor   = 1.5
	defaultDiscScale      = 1.1
)

// Config holds the tunable parameters of the geometry builder.
// The zero value is not useful; start from [DefaultConfig].
type Config struct {
	// MiterLimit is the miter scale at or above which a join is drawn
	// with a corner patch instead of a bevel.  Must be >= 1.
	MiterLimit float64

	// TangentEpsilon is the squared length below which the sum of two
	// segment directions counts as zero, i.e. the segments are reversed.
	TangentEpsilon float64

	// GrowthFactor is the factor by which geometry buffers grow when
	// they run out of capacity.  Must be > 1.
	GrowthFactor float64

	// DiscScale controls the size of the two corner patches which
	// render a single-point stroke, relative to the stroke width.
	DiscScale float64

	// MinTravel is the distance the pen must move away from the last
	// committed point before [Canvas.Drag] appends a new point.  Shorter
	// moves replace the last point instead.
	MinTravel float64
}

// DefaultConfig returns the default builder parameters.
func DefaultConfig() Config {
	return Config{
		MiterLimit:     defaultMiterLimit,
		TangentEpsilon: defaultTangentEpsilon,
		GrowthFactor:   defaultGrowthFactor,
		DiscScale:      defaultDiscScale,
		MinTravel:      1,
	}
}

// sanitized returns a copy of c with unusable values replaced by defaults.
func (c Config) sanitized() Config {
	if !(c.MiterLimit >= 1) {
		c.MiterLimit = defaultMiterLimit
	}
	if !(c.TangentEpsilon > 0) {
		c.TangentEpsilon = defaultTangentEpsilon
	}
	if !(c.GrowthFactor > 1) {
		c.GrowthFactor = defaultGrowthFactor
	}
	if !(c.DiscScale > 0) {
		c.DiscScale = defaultDiscScale
	}
	if c.MinTravel < 0 {
		c.MinTravel = 0
	}
	return c
}
