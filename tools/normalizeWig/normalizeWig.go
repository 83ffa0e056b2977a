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

import   "fmt"
import   "os"

import   "github.com/grailbio/base/log"
import   "github.com/pborman/getopt"

import . "github.com/pbenner/fastqanalysis"

/* -------------------------------------------------------------------------- */

type SessionConfig struct {
  Verbose int
  Plot    string
}

/* -------------------------------------------------------------------------- */

func PrintStderr(config SessionConfig, level int, format string, args ...interface{}) {
  if config.Verbose >= level {
    fmt.Fprintf(os.Stderr, format, args...)
  }
}

/* -------------------------------------------------------------------------- */

func savePlot(config SessionConfig, filenameWig string) {
  PrintStderr(config, 1, "Plotting track `%s'... ", filenameWig)
  reference, track, err := ImportWiggle(filenameWig)
  if err == nil {
    err = track.SavePlot(config.Plot, reference)
  }
  if err != nil {
    PrintStderr(config, 1, "failed\n")
    log.Fatal(err)
  }
  PrintStderr(config, 1, "done\n")
}

func normalizeWig(config SessionConfig, filenameIn, reference string) {
  PrintStderr(config, 1, "Normalizing depth table `%s'... ", filenameIn)
  filenameOut, err := NormalizeFile(filenameIn, reference)
  if err != nil {
    PrintStderr(config, 1, "failed\n")
    log.Fatal(err)
  }
  PrintStderr(config, 1, "done\n")
  PrintStderr(config, 1, "Wrote normalized track to `%s'\n", filenameOut)

  if config.Plot != "" {
    savePlot(config, filenameOut)
  }
}

/* -------------------------------------------------------------------------- */

func main() {

  config  := SessionConfig{}
  options := getopt.New()

  optPlot    := options. StringLong("plot",     0 , "", "save a plot of the normalized track to the given file")
  optHelp    := options.   BoolLong("help",    'h',     "print help")
  optVerbose := options.CounterLong("verbose", 'v',     "be verbose")

  options.SetParameters("<INPUT.cut> <REFERENCE>")
  options.Parse(os.Args)

  if *optHelp {
    options.PrintUsage(os.Stdout)
    fmt.Println()
    fmt.Println("Scale the depth column of a position/depth table so that all values sum")
    fmt.Println("up to 10,000,000 and write a variableStep track named <INPUT>.norm.wig.")
    os.Exit(0)
  }
  if len(options.Args()) != 2 {
    options.PrintUsage(os.Stderr)
    os.Exit(1)
  }
  config.Verbose = *optVerbose
  config.Plot    = *optPlot

  normalizeWig(config, options.Args()[0], options.Args()[1])
}
