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
import   "os"
import   "strconv"
import   "strings"

import   "github.com/pkg/errors"

/* -------------------------------------------------------------------------- */

// Extension of normalized track files.
const NormalizedWiggleExt = ".norm.wig"

/* -------------------------------------------------------------------------- */

// Export the track in variableStep wiggle format with a span of one. Every
// record is printed, including zero values, in track order.
func (track DepthTrack) WriteWiggle(w io.Writer, reference string) error {
  if _, err := fmt.Fprintf(w, "track\nvariableStep chrom=%s span=1\n", reference); err != nil {
    return err
  }
  for _, record := range track {
    if _, err := fmt.Fprintf(w, "%d\t%s\n", record.Position, formatFloat(record.Depth)); err != nil {
      return err
    }
  }
  return nil
}

func (track DepthTrack) ExportWiggle(filename, reference string) error {
  return writeFileAtomic(filename, func(w io.Writer) error {
    return track.WriteWiggle(w, reference)
  })
}

/* -------------------------------------------------------------------------- */

// Name of the normalized track for a given depth table, i.e. the extension
// of filename is replaced by `.norm.wig'.
func NormalizedWiggleFilename(filename string) string {
  return replaceExtension(filename, NormalizedWiggleExt)
}

// Read a depth table, scale it to NormalizationTarget and write the result
// next to the input file. The name of the output file is returned. If any
// step fails no output file is left behind, including one from an earlier
// run.
func NormalizeFile(filename, reference string) (string, error) {
  filenameOut := NormalizedWiggleFilename(filename)
  fail := func(err error) (string, error) {
    if e := os.Remove(filenameOut); e != nil && !os.IsNotExist(e) {
      return "", errors.Wrapf(err, "removing stale output `%s' failed (%v)", filenameOut, e)
    }
    return "", err
  }
  track, err := ImportDepthTrack(filename)
  if err != nil {
    return fail(err)
  }
  normalized, err := track.Normalize(track.Total())
  if err != nil {
    return fail(errors.Wrapf(err, "normalizing `%s'", filename))
  }
  if err := normalized.ExportWiggle(filenameOut, reference); err != nil {
    return fail(errors.Wrapf(err, "writing normalized track `%s'", filenameOut))
  }
  return filenameOut, nil
}

/* -------------------------------------------------------------------------- */

func readWiggle_header(line string) error {
  fields := fieldsQuoted(line)

  for i := 1; i < len(fields); i++ {
    headerFields := strings.SplitN(fields[i], "=", 2)
    if len(headerFields) != 2 {
      return errors.New("invalid track definition line")
    }
    if headerFields[0] == "type" && removeQuotes(headerFields[1]) != "wiggle_0" {
      return errors.New("unsupported wiggle format")
    }
  }
  return nil
}

func readWiggle_variableStep(line string) (string, error) {
  fields  := fieldsQuoted(line)
  seqname := ""

  for i := 1; i < len(fields); i++ {
    headerFields := strings.SplitN(fields[i], "=", 2)
    if len(headerFields) != 2 {
      return "", errors.New("invalid declaration line")
    }
    switch headerFields[0] {
    case "chrom":
      seqname = removeQuotes(headerFields[1])
    case "span":
      t, err := strconv.ParseInt(headerFields[1], 10, 64)
      if err != nil {
        return "", err
      }
      if t != 1 {
        return "", errors.New("only a span of one is supported")
      }
    }
  }
  if seqname == "" {
    return "", errors.New("declaration line is missing the chromosome name")
  }
  return seqname, nil
}

// Read a single variableStep track as written by WriteWiggle. Returns the
// name of the reference sequence and the track.
func ReadWiggle(reader io.Reader) (string, DepthTrack, error) {
  seqname := ""
  header  := false
  track   := DepthTrack{}
  scanner := bufio.NewScanner(reader)

  for i := 1; scanner.Scan(); i++ {
    line   := scanner.Text()
    fields := strings.Fields(line)
    if len(fields) == 0 {
      continue
    }
    switch fields[0] {
    case "browser":
      // skip any browser options
    case "track":
      if header {
        return "", nil, errors.New("file contains more than one track definition line")
      }
      header = true
      if err := readWiggle_header(line); err != nil {
        return "", nil, err
      }
    case "variableStep":
      if seqname != "" {
        return "", nil, errors.New("file contains more than one variableStep declaration")
      }
      if s, err := readWiggle_variableStep(line); err != nil {
        return "", nil, err
      } else {
        seqname = s
      }
    case "fixedStep":
      return "", nil, errors.New("fixedStep tracks are not supported")
    default:
      if seqname == "" {
        return "", nil, errors.New("data line before variableStep declaration")
      }
      record, reason := parseDepthRecord(line)
      if reason != "" {
        return "", nil, MalformedRecordError{Line: i, Text: line, Reason: reason}
      }
      track = append(track, record)
    }
  }
  if err := scanner.Err(); err != nil {
    return "", nil, err
  }
  return seqname, track, nil
}

func ImportWiggle(filename string) (string, DepthTrack, error) {
  var seqname string
  var track   DepthTrack
  err := withFileReader(filename, func(reader io.Reader) error {
    s, t, err := ReadWiggle(reader)
    seqname, track = s, t
    return err
  })
  if err != nil {
    return "", nil, errors.Wrapf(err, "reading wiggle file `%s'", filename)
  }
  return seqname, track, nil
}
