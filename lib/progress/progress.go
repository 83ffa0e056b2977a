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
import "fmt"
import "io"
import "os"

/* -------------------------------------------------------------------------- */

// Terminal progress bar for a fixed number of items.
type Progress struct {
  N, LineWidth int
  Label        string
}

/* -------------------------------------------------------------------------- */

func New(n int, label string) Progress {
  return Progress{n, 40, label}
}

/* -------------------------------------------------------------------------- */

const __line_del__ = "\033[2K\r"

func (progress Progress) Exec(i int) string {
  var buffer bytes.Buffer

  p := 1.0
  if progress.N > 0 {
    p = float64(i)/float64(progress.N)
  }
  // carriage return
  fmt.Fprintf(&buffer, "%s|", __line_del__)

  for i := 1; i < progress.LineWidth-1; i++ {
    if float64(i)/float64(progress.LineWidth) < p {
      buffer.WriteByte('>')
    } else {
      buffer.WriteByte(' ')
    }
  }
  fmt.Fprintf(&buffer, "| %6.2f%% (%d/%d %s)", p*100, i, progress.N, progress.Label)
  // add newline if finished
  if i >= progress.N {
    buffer.WriteByte('\n')
  }
  return buffer.String()
}

func (progress Progress) Fprint(w io.Writer, i int) error {
  _, err := io.WriteString(w, progress.Exec(i))
  return err
}

func (progress Progress) PrintStderr(i int) {
  progress.Fprint(os.Stderr, i)
}
