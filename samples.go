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

import   "fmt"
import   "io/ioutil"
import   "path/filepath"
import   "sort"
import   "strings"

import   "github.com/pkg/errors"

/* -------------------------------------------------------------------------- */

// A pair of fastq files from a paired-end run.
type Sample struct {
  Name    string
  Forward string
  Reverse string
}

func (sample Sample) String() string {
  return sample.Name
}

// A problem found while checking the pipeline input. Sample is empty if
// the problem is not tied to a single sample.
type Failure struct {
  Sample string
  Err    error
}

func (failure Failure) Error() string {
  if failure.Sample == "" {
    return failure.Err.Error()
  }
  return fmt.Sprintf("sample `%s': %v", failure.Sample, failure.Err)
}

/* -------------------------------------------------------------------------- */

// longest extensions first
var fastqExtensions = []string{".fastq.gz", ".fq.gz", ".fastq", ".fq"}

// Split a file name like `name_R1.fq' into sample name and mate number.
func parseFastqFilename(filename string) (string, int, bool) {
  for _, ext := range fastqExtensions {
    if !strings.HasSuffix(filename, ext) {
      continue
    }
    base := strings.TrimSuffix(filename, ext)
    switch {
    case strings.HasSuffix(base, "_R1"):
      return strings.TrimSuffix(base, "_R1"), 1, true
    case strings.HasSuffix(base, "_R2"):
      return strings.TrimSuffix(base, "_R2"), 2, true
    }
    return "", 0, false
  }
  return "", 0, false
}

// Collect sample pairs from a folder of fastq files named `<name>_R1.fq'
// and `<name>_R2.fq' (also .fastq and gzipped variants). Samples are
// sorted by name. Samples with a missing or ambiguous mate are reported
// as failures and are not part of the result.
func DiscoverSamples(folder string) ([]Sample, []Failure, error) {
  entries, err := ioutil.ReadDir(folder)
  if err != nil {
    return nil, nil, errors.Wrapf(err, "reading fastq folder `%s'", folder)
  }
  mates    := make(map[string]*[2][]string)
  names    := []string{}
  failures := []Failure{}

  for _, entry := range entries {
    if entry.IsDir() {
      continue
    }
    name, mate, ok := parseFastqFilename(entry.Name())
    if !ok || name == "" {
      continue
    }
    m, ok := mates[name]
    if !ok {
      m = &[2][]string{}
      mates[name] = m
      names = append(names, name)
    }
    m[mate-1] = append(m[mate-1], filepath.Join(folder, entry.Name()))
  }
  sort.Strings(names)

  samples := []Sample{}
  for _, name := range names {
    m  := mates[name]
    ok := true
    for i, files := range m {
      switch {
      case len(files) == 0:
        failures = append(failures, Failure{name, fmt.Errorf("fastq file for read %d (`%s_R%d.fq') is missing", i+1, name, i+1)})
        ok = false
      case len(files) > 1:
        failures = append(failures, Failure{name, fmt.Errorf("multiple fastq files for read %d: %s", i+1, strings.Join(files, ", "))})
        ok = false
      }
    }
    if ok {
      samples = append(samples, Sample{Name: name, Forward: m[0][0], Reverse: m[1][0]})
    }
  }
  return samples, failures, nil
}
