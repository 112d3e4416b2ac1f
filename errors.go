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

import (
	"errors"

	"seehuhn.de/go/sketch/points"
)

var (
	// ErrInvalidArgument indicates an operation that needs points was
	// given none, or a lookup outside the point sequence.
	ErrInvalidArgument = errors.New("sketch: invalid argument")

	// ErrOutOfMemory indicates that a bounded point arena is exhausted.
	ErrOutOfMemory = points.ErrOutOfMemory

	// ErrInconsistentState indicates that the tracked geometry of a stroke
	// does not match its points.  This is a bug, not a runtime condition.
	ErrInconsistentState = errors.New("sketch: inconsistent geometry state")
)
