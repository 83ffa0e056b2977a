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
import   "io"
import   "strings"

import   "github.com/pkg/errors"

/* -------------------------------------------------------------------------- */

// Name of the first sequence in a fasta file, i.e. the first header line
// without the leading `>' and truncated at the first white space. The
// name is used as chromosome name in normalized tracks.
func ReadReferenceName(reader io.Reader) (string, error) {
  scanner := bufio.NewScanner(reader)
  for scanner.Scan() {
    line := strings.TrimSpace(scanner.Text())
    if len(line) == 0 {
      continue
    }
    if line[0] != '>' {
      return "", errors.New("invalid fasta file: sequence data before first header")
    }
    fields := strings.Fields(line[1:])
    if len(fields) == 0 {
      return "", errors.New("invalid fasta file: header without sequence name")
    }
    return fields[0], nil
  }
  if err := scanner.Err(); err != nil {
    return "", err
  }
  return "", errors.New("fasta file contains no sequence")
}

func ImportReferenceName(filename string) (string, error) {
  var name string
  err := withFileReader(filename, func(reader io.Reader) error {
    s, err := ReadReferenceName(reader)
    name = s
    return err
  })
  if err != nil {
    return "", errors.Wrapf(err, "reading reference name from `%s'", filename)
  }
  return name, nil
}
