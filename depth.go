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
import   "math"
import   "strconv"
import   "strings"

import   "github.com/pkg/errors"

/* -------------------------------------------------------------------------- */

// Normalized tracks are scaled so that all depths sum up to this value.
const NormalizationTarget = 10000000.0

var ErrZeroTotalDepth    = errors.New("total depth is zero")
var ErrInvalidTotalDepth = errors.New("total depth is not a finite non-negative number")

/* -------------------------------------------------------------------------- */

// Read coverage at a single reference position.
type DepthRecord struct {
  Position int
  Depth    float64
}

// A depth track holds per-position read depths of a single reference
// sequence. Records are kept in the order in which they were reported
// upstream and are never sorted.
type DepthTrack []DepthRecord

/* -------------------------------------------------------------------------- */

type MalformedRecordError struct {
  Line   int
  Text   string
  Reason string
}

func (err MalformedRecordError) Error() string {
  return fmt.Sprintf("malformed depth record on line %d `%s': %s", err.Line, err.Text, err.Reason)
}

/* -------------------------------------------------------------------------- */

func (track DepthTrack) Length() int {
  return len(track)
}

func (track DepthTrack) Clone() DepthTrack {
  r := make(DepthTrack, len(track))
  copy(r, track)
  return r
}

// Sum of all depth values.
func (track DepthTrack) Total() float64 {
  total := 0.0
  for _, record := range track {
    total += record.Depth
  }
  return total
}

// Rescale all depths so that a track with the given total sums up to
// NormalizationTarget. The result is a new track with the same positions
// in the same order. An empty track is returned unchanged, a zero total
// on a non-empty track is an error.
func (track DepthTrack) Normalize(total float64) (DepthTrack, error) {
  if len(track) == 0 {
    return DepthTrack{}, nil
  }
  if math.IsNaN(total) || math.IsInf(total, 0) || total < 0.0 {
    return nil, ErrInvalidTotalDepth
  }
  if total == 0.0 {
    return nil, ErrZeroTotalDepth
  }
  r := make(DepthTrack, len(track))
  for i, record := range track {
    r[i].Position = record.Position
    r[i].Depth    = (record.Depth/total)*NormalizationTarget
  }
  return r, nil
}

/* i/o
 * -------------------------------------------------------------------------- */

func parseDepthRecord(line string) (DepthRecord, string) {
  fields := strings.Fields(line)
  if len(fields) < 2 {
    return DepthRecord{}, "expected at least two columns"
  }
  t1, err := strconv.ParseInt(fields[0], 10, 64)
  if err != nil {
    return DepthRecord{}, "position is not an integer"
  }
  if t1 < 0 {
    return DepthRecord{}, "position is negative"
  }
  // positions are written back exactly as they were read
  if strconv.FormatInt(t1, 10) != fields[0] {
    return DepthRecord{}, "position is not a plain decimal integer"
  }
  t2, err := strconv.ParseFloat(fields[1], 64)
  if err != nil {
    return DepthRecord{}, "depth is not a number"
  }
  if math.IsNaN(t2) || math.IsInf(t2, 0) {
    return DepthRecord{}, "depth is not finite"
  }
  if t2 < 0.0 {
    return DepthRecord{}, "depth is negative"
  }
  return DepthRecord{int(t1), t2}, ""
}

// Read a whitespace separated table where the first column is the position
// and the second column the read depth. Additional columns are ignored. A
// single malformed line fails the whole table.
func ReadDepthTrack(reader io.Reader) (DepthTrack, error) {
  track   := DepthTrack{}
  scanner := bufio.NewScanner(reader)

  for i := 1; scanner.Scan(); i++ {
    line := scanner.Text()
    if strings.TrimSpace(line) == "" {
      continue
    }
    record, reason := parseDepthRecord(line)
    if reason != "" {
      return nil, MalformedRecordError{Line: i, Text: line, Reason: reason}
    }
    track = append(track, record)
  }
  if err := scanner.Err(); err != nil {
    return nil, err
  }
  return track, nil
}

// Import a depth table from file. Gzipped files are detected automatically.
func ImportDepthTrack(filename string) (DepthTrack, error) {
  var track DepthTrack
  err := withFileReader(filename, func(reader io.Reader) error {
    t, err := ReadDepthTrack(reader)
    track = t
    return err
  })
  if err != nil {
    return nil, errors.Wrapf(err, "reading depth table `%s'", filename)
  }
  return track, nil
}
