// seehuhn.de/go/linemesh - antialiased line meshes
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

package linemesh

import "errors"

// Errors returned by the mesh builder.  Errors about individual segments
// are wrapped with the segment index; use [errors.Is] to test for them.
var (
	ErrTooFewPoints      = errors.New("linemesh: a polyline needs at least two points")
	ErrDegenerateSegment = errors.New("linemesh: zero-length segment")
	ErrNonFinite         = errors.New("linemesh: coordinate is NaN or infinite")
	ErrInvalidWidth      = errors.New("linemesh: line width must be positive and finite")
	ErrInvalidMiterLimit = errors.New("linemesh: miter limit must be at least 1")
	ErrInvalidFlatness   = errors.New("linemesh: flatness must be positive")
)
