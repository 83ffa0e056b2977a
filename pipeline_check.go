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
import   "os"

import   "github.com/pkg/errors"

/* -------------------------------------------------------------------------- */

// Input of a pipeline run.
type Plan struct {
  Samples   []Sample
  Reference string
}

/* -------------------------------------------------------------------------- */

// Check that all folders, files and programs required by the pipeline are
// available and collect the samples to process. Output folders are created
// if missing. All problems are returned at once; the plan should only be
// executed if there are none.
func Check(config Config, lookup ToolLookup) (Plan, []Failure) {
  plan     := Plan{}
  failures := []Failure{}

  fail := func(err error) {
    failures = append(failures, Failure{Err: err})
  }
  // output folders
  for _, folder := range []string{config.MappedFolder, config.ReadcountsFolder} {
    if err := os.MkdirAll(folder, 0755); err != nil {
      fail(errors.Wrapf(err, "creating folder `%s'", folder))
    }
  }
  // input folders and files
  if !isDir(config.ScriptsFolder) {
    fail(fmt.Errorf("scripts folder `%s' is missing", config.ScriptsFolder))
  }
  if !fileExists(config.SafFile()) {
    fail(fmt.Errorf("SAF file `%s' is missing or improperly named", config.SafFile()))
  }
  if !fileExists(config.FastaFile()) {
    fail(fmt.Errorf("fasta file `%s' is missing or improperly named", config.FastaFile()))
  } else {
    if reference, err := ImportReferenceName(config.FastaFile()); err != nil {
      fail(err)
    } else {
      plan.Reference = reference
    }
  }
  // programs
  tools := []string{"bowtie2", "samtools"}
  if config.RemoveDuplicates {
    tools = append(tools, "java")
    if !fileExists(config.PicardJar()) {
      fail(fmt.Errorf("picard `%s' is missing", config.PicardJar()))
    }
  }
  if fc := config.FeatureCounts(); !isExecutable(fc) {
    tools = append(tools, fc)
  }
  for _, tool := range tools {
    if _, err := lookup.Look(tool); err != nil {
      fail(fmt.Errorf("program `%s' not found", tool))
    }
  }
  // samples
  samples, sampleFailures, err := DiscoverSamples(config.FastqFolder)
  if err != nil {
    fail(err)
  } else if len(samples) == 0 && len(sampleFailures) == 0 {
    fail(fmt.Errorf("no fastq file pairs found in `%s'", config.FastqFolder))
  }
  plan.Samples = samples
  failures     = append(failures, sampleFailures...)

  return plan, failures
}
