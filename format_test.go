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

import "strconv"
import "testing"

/* -------------------------------------------------------------------------- */

func TestFormatFloat(t *testing.T) {
  cases := []struct {
    x float64
    s string
  }{
    {1000000.0, "1000000.0"},
    {2000000.0, "2000000.0"},
    {0.0, "0.0"},
    {0.5, "0.5"},
    {0.1, "0.1"},
    {1.0/3.0, "0.3333333333333333"},
    {0.0001, "0.0001"},
    {0.00001, "1e-05"},
    {2.5e-05, "2.5e-05"},
    {123456789.125, "123456789.125"},
    {9999999999999998.0, "9999999999999998.0"},
    {1e16, "1e+16"},
    {1.5e17, "1.5e+17"},
  }
  for _, c := range cases {
    if s := formatFloat(c.x); s != c.s {
      t.Errorf("TestFormatFloat failed: formatFloat(%v) = `%s', expected `%s'", c.x, s, c.s)
    }
  }
}

func TestFormatFloatRoundTrip(t *testing.T) {
  for _, x := range []float64{1.0/7.0, 1e-300, 3.14159e12, 7000000.000000001} {
    y, err := strconv.ParseFloat(formatFloat(x), 64)
    if err != nil || y != x {
      t.Errorf("TestFormatFloatRoundTrip failed for %v", x)
    }
  }
}
