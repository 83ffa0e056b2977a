/* Copyright (C) 2020 Philipp Benner
 *
 * This program is free software: you can redistribute it and/or modify
 * it under the terms of the GNU General Public License as published by
 * the Free Software Foundation, either version 3 of the License, or
 * (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU General Public License
 * along with this program.  If not, see <http://www.gnu.org/licenses/>.
 */


package fastqanalysis

/* -------------------------------------------------------------------------- */

import "math"
import "strconv"
import "strings"

/* -------------------------------------------------------------------------- */

// Shortest decimal representation of x that parses back to the same value.
// Integral values keep a trailing `.0' and very small or very large values
// switch to exponent notation, e.g. 1000000.0, 0.0001, 2.5e-05 or 1e+16.
func formatFloat(x float64) string {
  switch {
  case math.IsNaN(x):
    return "nan"
  case math.IsInf(x, 1):
    return "inf"
  case math.IsInf(x, -1):
    return "-inf"
  case x == 0.0:
    if math.Signbit(x) {
      return "-0.0"
    }
    return "0.0"
  }
  s := strconv.FormatFloat(x, 'e', -1, 64)
  e, err := strconv.Atoi(s[strings.LastIndexByte(s, 'e')+1:])
  if err != nil || e < -4 || e >= 16 {
    return s
  }
  s = strconv.FormatFloat(x, 'f', -1, 64)
  if !strings.ContainsRune(s, '.') {
    s += ".0"
  }
  return s
}
