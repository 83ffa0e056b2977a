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
import   "sync"

import   "github.com/grailbio/base/log"
import   "github.com/pbenner/threadpool"

import   "github.com/pbenner/fastqanalysis/lib/progress"

/* -------------------------------------------------------------------------- */

// Error of a single pipeline stage.
type StageError struct {
  Sample string
  Stage  string
  Err    error
}

func (err StageError) Error() string {
  return fmt.Sprintf("sample `%s' failed at stage `%s': %v", err.Sample, err.Stage, err.Err)
}

// Implements the causer interface of github.com/pkg/errors.
func (err StageError) Cause() error {
  return err.Err
}

/* -------------------------------------------------------------------------- */

// Outcome of processing a single sample.
type Result struct {
  Sample Sample
  Counts CountsFile
  Wiggle WiggleFile
  Plot   string
  Err    error
}

/* -------------------------------------------------------------------------- */

type Pipeline struct {
  Config Config
  Stages Stages
}

func NewPipeline(config Config, runner Runner) Pipeline {
  return Pipeline{config, DefaultStages(config, runner)}
}

/* -------------------------------------------------------------------------- */

// Map a sample and turn the alignments into read counts and a normalized
// track. Stages run in a fixed order and processing stops at the first
// failing stage. A failing plot is logged but does not fail the sample.
func (pipeline Pipeline) ProcessSample(sample Sample, reference string) Result {
  stages := pipeline.Stages
  result := Result{Sample: sample}

  fail := func(stage string, err error) Result {
    result.Err = StageError{sample.Name, stage, err}
    log.Error.Printf("%v", result.Err)
    return result
  }
  log.Printf("Now processing: %s", sample.Name)

  sam, err := stages.Aligner.Align(sample)
  if err != nil {
    return fail("align", err)
  }
  bam, err := stages.BamConverter.ToBam(sample, sam)
  if err != nil {
    return fail("convert", err)
  }
  bam, err = stages.BamSorter.Sort(sample, bam)
  if err != nil {
    return fail("sort", err)
  }
  if pipeline.Config.RemoveDuplicates {
    bam, err = stages.DuplicateMarker.RemoveDuplicates(sample, bam)
    if err != nil {
      return fail("remove duplicates", err)
    }
  }
  result.Counts, err = stages.FeatureCounter.Count(sample, bam)
  if err != nil {
    return fail("count", err)
  }
  pileup, err := stages.PileupGenerator.Pileup(sample, bam)
  if err != nil {
    return fail("pileup", err)
  }
  cut, err := stages.ColumnCutter.Cut(sample, pileup)
  if err != nil {
    return fail("cut", err)
  }
  result.Wiggle, err = stages.Normalizer.Normalize(sample, cut, reference)
  if err != nil {
    return fail("normalize", err)
  }
  if pipeline.Config.Plot && stages.TrackPlotter != nil {
    // a failing plot does not fail the sample
    if plot, err := stages.TrackPlotter.Plot(sample, result.Wiggle); err != nil {
      log.Error.Printf("%v", StageError{sample.Name, "plot", err})
    } else {
      result.Plot = plot
    }
  }
  log.Printf("Processing complete: %s", sample.Name)
  return result
}

// Process all samples of the plan. Samples are distributed over
// Config.Threads workers and results are returned in plan order.
func (pipeline Pipeline) Run(plan Plan) []Result {
  threads := pipeline.Config.Threads
  if threads < 1 {
    threads = 1
  }
  results := make([]Result, len(plan.Samples))
  pool    := threadpool.New(threads, 100*threads)
  defer pool.Stop()
  g       := pool.NewJobGroup()

  mutex := sync.Mutex{}
  done  := 0
  bar   := progress.New(len(plan.Samples), "samples")
  if pipeline.Config.Status {
    bar.Fprint(os.Stderr, 0)
  }
  for i := 0; i < len(plan.Samples); i++ {
    // make a thread safe copy of i
    j := i
    pool.AddJob(g, func(pool threadpool.ThreadPool, erf func() error) error {
      results[j] = pipeline.ProcessSample(plan.Samples[j], plan.Reference)
      if pipeline.Config.Status {
        mutex.Lock()
        done++
        bar.Fprint(os.Stderr, done)
        mutex.Unlock()
      }
      return nil
    })
  }
  pool.Wait(g)

  return results
}

// Number of samples that failed.
func CountFailed(results []Result) int {
  n := 0
  for _, r := range results {
    if r.Err != nil {
      n++
    }
  }
  return n
}
