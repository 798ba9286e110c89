/*
 * colors.go, part of goffea.
 *
 * Copyright 2026 The goffea developers
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package ffeaplot

import "math"

// hsv2rgb takes a hue (0-360), and saturation and value (0-1),
// and returns r,g,b (0-255).
func hsv2rgb(h, s, v float64) (uint8, uint8, uint8) {
	full := 255 * v
	if s == 0 {
		return uint8(full), uint8(full), uint8(full)
	}
	h = math.Mod(h, 360) / 60
	i := math.Floor(h)
	f := h - i
	p := 1 - s
	q := 1 - s*f
	t := 1 - s*(1-f)
	var r, g, b float64
	switch int(i) {
	case 0:
		r, g, b = 1, t, p
	case 1:
		r, g, b = q, 1, p
	case 2:
		r, g, b = p, 1, t
	case 3:
		r, g, b = p, q, 1
	case 4:
		r, g, b = t, p, 1
	default:
		r, g, b = 1, p, q
	}
	return uint8(r * full), uint8(g * full), uint8(b * full)
}

// colors spreads steps colors over the hues from red to violet,
// jumping over the yellows, which are hard to see on white.
func colors(key, steps int) (r, g, b uint8) {
	h := float64(key)*260/float64(steps) + 20
	if h < 55 {
		h -= 20
	} else {
		h += 20
	}
	return hsv2rgb(h, 1, 1)
}
