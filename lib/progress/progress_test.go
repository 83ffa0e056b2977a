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


package progress

/* -------------------------------------------------------------------------- */

import "bytes"
import "strings"
import "testing"

/* -------------------------------------------------------------------------- */

func TestProgress1(t *testing.T) {
  p := New(4, "samples")

  s := p.Exec(2)
  if !strings.HasPrefix(s, __line_del__+"|") {
    t.Error("TestProgress1 failed: missing line reset")
  }
  if !strings.Contains(s, " 50.00% (2/4 samples)") {
    t.Errorf("TestProgress1 failed: got `%s'", s)
  }
  if strings.HasSuffix(s, "\n") {
    t.Error("TestProgress1 failed: unfinished bar ends with newline")
  }
  if n := strings.Count(s, ">"); n != 19 {
    t.Errorf("TestProgress1 failed: %d markers", n)
  }
}

func TestProgress2(t *testing.T) {
  var buffer bytes.Buffer

  p := New(3, "samples")
  if err := p.Fprint(&buffer, 3); err != nil {
    t.Fatal(err)
  }
  if !strings.HasSuffix(buffer.String(), "100.00% (3/3 samples)\n") {
    t.Errorf("TestProgress2 failed: got `%s'", buffer.String())
  }
  // no samples at all
  if s := New(0, "samples").Exec(0); !strings.Contains(s, "100.00%") {
    t.Errorf("TestProgress2 failed: got `%s'", s)
  }
}
