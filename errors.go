// seehuhn.de/go/perspective - perspective projection of layered drawings
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

package perspective

import "errors"

var (
	// ErrInvalidParameter is returned for command parameters which are
	// rejected before any geometry is touched, for example an unknown
	// rotation axis or a field of view outside (0°, 180°).
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrInvalidLayer indicates a layer id which is not positive, or
	// which does not exist in the document.
	ErrInvalidLayer = errors.New("invalid layer")

	// ErrNoGeometry indicates that neither a page size nor the bounds of the
	// selected layers are available to place the world origin.
	ErrNoGeometry = errors.New("cannot compute bounds")

	// ErrSingular indicates that a matrix could not be inverted.
	ErrSingular = errors.New("singular matrix")

	// ErrDegenerateProjection indicates that a point was projected with a
	// homogeneous w coordinate too close to zero.
	ErrDegenerateProjection = errors.New("degenerate projection")
)
