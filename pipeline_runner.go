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

import   "path/filepath"
import   "strings"

import   "github.com/grailbio/base/log"
import   "github.com/pkg/errors"

import   "v.io/x/lib/gosh"
import   "v.io/x/lib/lookpath"

/* -------------------------------------------------------------------------- */

// Executes external programs.
type Runner interface {
  Run(name string, args ...string) error
}

// Resolves program names to executables.
type ToolLookup interface {
  Look(name string) (string, error)
}

/* -------------------------------------------------------------------------- */

// Runs programs in a gosh shell that inherits the environment of the
// current process. Every command line is logged before it is executed.
// Child output is forwarded to stdout and stderr if Verbose is positive.
type ShellRunner struct {
  Verbose int
}

func NewShellRunner(verbose int) ShellRunner {
  return ShellRunner{Verbose: verbose}
}

func (runner ShellRunner) newShell() *gosh.Shell {
  sh := gosh.NewShell(nil)
  sh.ContinueOnError = true
  return sh
}

func (runner ShellRunner) Run(name string, args ...string) error {
  log.Printf("CMD: %s", strings.Join(append([]string{name}, args...), " "))

  // gosh only searches PATH for bare names
  if strings.ContainsRune(name, filepath.Separator) {
    if abs, err := filepath.Abs(name); err == nil {
      name = abs
    }
  }
  // a new shell for every command so that runs from different samples do
  // not share error state
  sh := runner.newShell()
  defer sh.Cleanup()

  cmd := sh.Cmd(name, args...)
  cmd.PropagateOutput = runner.Verbose > 0
  cmd.Run()

  // the shell keeps the last error until it is reset
  err := cmd.Err
  sh.Err = nil

  if err != nil {
    return errors.Wrapf(err, "running `%s'", name)
  }
  return nil
}

func (runner ShellRunner) Look(name string) (string, error) {
  sh := runner.newShell()
  defer sh.Cleanup()
  return lookpath.Look(sh.Vars, name)
}
