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

import   "bufio"
import   "fmt"
import   "io"
import   "strings"

import   "github.com/pkg/errors"

/* -------------------------------------------------------------------------- */

// pileup lines of deeply covered positions can be long
const maxPileupLineLength = 256*1024*1024

// Copy the position and depth columns (second and fourth tab separated
// column) of a samtools mpileup table to w, one tab separated pair per
// line. Lines with fewer than four columns are an error.
func CutPileup(w io.Writer, reader io.Reader) error {
  scanner := bufio.NewScanner(reader)
  scanner.Buffer(make([]byte, 64*1024), maxPileupLineLength)

  for i := 1; scanner.Scan(); i++ {
    line := scanner.Text()
    if line == "" {
      continue
    }
    fields := strings.SplitN(line, "\t", 5)
    if len(fields) < 4 {
      return fmt.Errorf("pileup line %d has %d columns, expected at least four", i, len(fields))
    }
    if _, err := fmt.Fprintf(w, "%s\t%s\n", fields[1], fields[3]); err != nil {
      return err
    }
  }
  return scanner.Err()
}

// Cut a pileup file into a depth table. The output is replaced only if
// the whole pileup could be processed.
func CutPileupFile(filenameIn, filenameOut string) error {
  err := withFileReader(filenameIn, func(reader io.Reader) error {
    return writeFileAtomic(filenameOut, func(w io.Writer) error {
      return CutPileup(w, reader)
    })
  })
  if err != nil {
    return errors.Wrapf(err, "cutting pileup `%s'", filenameIn)
  }
  return nil
}
