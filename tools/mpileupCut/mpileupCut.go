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
import   "path/filepath"
import   "strings"

import   "github.com/grailbio/base/log"
import   "github.com/pborman/getopt"

import . "github.com/pbenner/fastqanalysis"

/* -------------------------------------------------------------------------- */

type SessionConfig struct {
  Verbose int
}

/* -------------------------------------------------------------------------- */

func PrintStderr(config SessionConfig, level int, format string, args ...interface{}) {
  if config.Verbose >= level {
    fmt.Fprintf(os.Stderr, format, args...)
  }
}

/* -------------------------------------------------------------------------- */

func mpileupCut(config SessionConfig, filenameIn, filenameOut string) {
  if filenameOut == "" {
    filenameOut = strings.TrimSuffix(filenameIn, filepath.Ext(filenameIn)) + ".cut"
  }
  PrintStderr(config, 1, "Cutting pileup `%s' into `%s'... ", filenameIn, filenameOut)
  if err := CutPileupFile(filenameIn, filenameOut); err != nil {
    PrintStderr(config, 1, "failed\n")
    log.Fatal(err)
  }
  PrintStderr(config, 1, "done\n")
}

/* -------------------------------------------------------------------------- */

func main() {

  config  := SessionConfig{}
  options := getopt.New()

  optHelp    := options.   BoolLong("help",    'h', "print help")
  optVerbose := options.CounterLong("verbose", 'v', "be verbose")

  options.SetParameters("<INPUT.mp> [OUTPUT.cut]")
  options.Parse(os.Args)

  if *optHelp {
    options.PrintUsage(os.Stdout)
    os.Exit(0)
  }
  if len(options.Args()) != 1 && len(options.Args()) != 2 {
    options.PrintUsage(os.Stderr)
    os.Exit(1)
  }
  config.Verbose = *optVerbose

  filenameIn  := options.Args()[0]
  filenameOut := ""
  if len(options.Args()) == 2 {
    filenameOut = options.Args()[1]
  }
  mpileupCut(config, filenameIn, filenameOut)
}
