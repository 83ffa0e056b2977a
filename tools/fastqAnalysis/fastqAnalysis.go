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


package main

/* -------------------------------------------------------------------------- */

import   "bufio"
import   "fmt"
import   "io"
import   "os"
import   "strings"

import   "github.com/grailbio/base/log"
import   "github.com/pborman/getopt"

import . "github.com/pbenner/fastqanalysis"

/* -------------------------------------------------------------------------- */

func PrintStderr(config Config, level int, format string, args ...interface{}) {
  if config.Verbose >= level {
    fmt.Fprintf(os.Stderr, format, args...)
  }
}

/* -------------------------------------------------------------------------- */

// Ask a yes/no question on stdin. Anything but `y' or `yes' is a no.
func askYesNo(reader *bufio.Reader, question string) bool {
  fmt.Fprint(os.Stdout, question)
  answer, err := reader.ReadString('\n')
  if err != nil && err != io.EOF {
    log.Fatal(err)
  }
  switch strings.ToLower(strings.TrimSpace(answer)) {
  case "y", "yes":
    return true
  }
  return false
}

func interactive(config Config) Config {
  reader := bufio.NewReader(os.Stdin)
  if !askYesNo(reader, fmt.Sprintf("Should the fastq files be mapped to genome `%s'? (Y/N): ", config.Genome)) {
    fmt.Println("User selected cancel. Exiting.")
    os.Exit(0)
  }
  config.RemoveDuplicates = askYesNo(reader, "Do you want to remove PCR duplicates with Picard? (Y/N) ")
  return config
}

/* -------------------------------------------------------------------------- */

func check(config Config, runner ShellRunner) Plan {
  PrintStderr(config, 1, "Checking files, folders and programs... ")
  plan, failures := Check(config, runner)
  if len(failures) > 0 {
    PrintStderr(config, 1, "failed\n")
    for _, failure := range failures {
      log.Error.Printf("%v", failure)
    }
    log.Fatalf("found %d problem(s), please fix them and try again", len(failures))
  }
  PrintStderr(config, 1, "done\n")

  fmt.Println("Processing the following samples:")
  for _, sample := range plan.Samples {
    fmt.Println(sample.Name)
  }
  fmt.Println()
  return plan
}

func fastqAnalysis(config Config) {
  runner   := NewShellRunner(config.Verbose)
  plan     := check(config, runner)
  pipeline := NewPipeline(config, runner)
  results  := pipeline.Run(plan)

  for _, r := range results {
    if r.Err != nil {
      log.Error.Printf("%v", r.Err)
    } else {
      PrintStderr(config, 1, "%s: read counts `%s', normalized track `%s'\n", r.Sample.Name, r.Counts, r.Wiggle)
    }
  }
  if n := CountFailed(results); n > 0 {
    log.Fatalf("%d of %d sample(s) failed", n, len(results))
  }
}

/* -------------------------------------------------------------------------- */

func main() {

  config  := DefaultConfig()
  options := getopt.New()

  optGenome      := options. StringLong("genome",            0 , config.Genome,           "genome name, prefix of the bowtie2 index, fasta and SAF file")
  optRemoveDups  := options.   BoolLong("remove-duplicates", 0 ,                          "remove PCR and optical duplicates with picard")
  optFastq       := options. StringLong("fastq-folder",      0 , config.FastqFolder,      "folder with <NAME>_R1.fq and <NAME>_R2.fq files")
  optMapped      := options. StringLong("mapped-folder",     0 , config.MappedFolder,     "output folder for alignments and tracks")
  optReadcounts  := options. StringLong("readcounts-folder", 0 , config.ReadcountsFolder, "output folder for read counts")
  optGenomeDir   := options. StringLong("genome-folder",     0 , config.GenomeFolder,     "folder with bowtie2 index, fasta and SAF file")
  optScripts     := options. StringLong("scripts-folder",    0 , config.ScriptsFolder,    "folder with picard.jar and featureCounts")
  optThreads     := options.    IntLong("threads",           0 , config.Threads,          "number of samples processed in parallel")
  optPlot        := options.   BoolLong("plot",              0 ,                          "save a png plot of every normalized track")
  optInteractive := options.   BoolLong("interactive",       0 ,                          "confirm genome and duplicate removal on stdin")
  optStatus      := options.   BoolLong("status",            0 ,                          "print a progress bar")
  optHelp        := options.   BoolLong("help",             'h',                          "print help")
  optVerbose     := options.CounterLong("verbose",          'v',                          "verbose level [-v or -vv]")

  options.SetParameters("")
  options.Parse(os.Args)

  if *optHelp {
    options.PrintUsage(os.Stdout)
    os.Exit(0)
  }
  if len(options.Args()) != 0 {
    options.PrintUsage(os.Stderr)
    os.Exit(1)
  }
  config.Genome           = *optGenome
  config.RemoveDuplicates = *optRemoveDups
  config.FastqFolder      = *optFastq
  config.MappedFolder     = *optMapped
  config.ReadcountsFolder = *optReadcounts
  config.GenomeFolder     = *optGenomeDir
  config.ScriptsFolder    = *optScripts
  config.Threads          = *optThreads
  config.Plot             = *optPlot
  config.Status           = *optStatus
  config.Verbose          = *optVerbose

  if *optInteractive {
    config = interactive(config)
  }
  fastqAnalysis(config)
}
