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
import   "io/ioutil"
import   "os"
import   "path/filepath"
import   "regexp"
import   "strings"
import   "unicode"

import   "github.com/klauspost/compress/gzip"
import   "github.com/pkg/errors"

/* -------------------------------------------------------------------------- */

func isGzip(filename string) bool {

  f, err := os.Open(filename)
  if err != nil {
    return false
  }
  defer f.Close()

  b := make([]byte, 2)
  n, err := f.Read(b)
  if err != nil {
    return false
  }

  if n == 2 && b[0] == 31 && b[1] == 139 {
    return true
  }
  return false
}

// Open filename and pass a (possibly decompressed) reader to f.
func withFileReader(filename string, f func(io.Reader) error) error {
  file, err := os.Open(filename)
  if err != nil {
    return err
  }
  defer file.Close()

  if isGzip(filename) {
    g, err := gzip.NewReader(file)
    if err != nil {
      return err
    }
    defer g.Close()
    return f(g)
  }
  return f(bufio.NewReader(file))
}

// Write a file through f. The data is written to a temporary file in
// the target directory which replaces filename only if f succeeded and
// all data has been flushed. The target never holds partial output.
func writeFileAtomic(filename string, f func(io.Writer) error) (err error) {
  tmp, err := ioutil.TempFile(filepath.Dir(filename), "."+filepath.Base(filename)+".")
  if err != nil {
    return err
  }
  defer func() {
    if err != nil {
      tmp.Close()
      os.Remove(tmp.Name())
    }
  }()
  w := bufio.NewWriter(tmp)
  if err = f(w); err != nil {
    return err
  }
  if err = w.Flush(); err != nil {
    return err
  }
  if err = tmp.Chmod(0644); err != nil {
    return err
  }
  if err = tmp.Close(); err != nil {
    return err
  }
  if err = os.Rename(tmp.Name(), filename); err != nil {
    return errors.Wrapf(err, "moving output to `%s'", filename)
  }
  return nil
}

/* -------------------------------------------------------------------------- */

func replaceExtension(filename, ext string) string {
  return strings.TrimSuffix(filename, filepath.Ext(filename)) + ext
}

func fileExists(filename string) bool {
  info, err := os.Stat(filename)
  return err == nil && info.Mode().IsRegular()
}

func isDir(filename string) bool {
  info, err := os.Stat(filename)
  return err == nil && info.IsDir()
}

func isExecutable(filename string) bool {
  info, err := os.Stat(filename)
  return err == nil && info.Mode().IsRegular() && info.Mode().Perm() & 0111 != 0
}

/* -------------------------------------------------------------------------- */

func fieldsQuoted(line string) []string {
  // if quoted
  q := false
  f := func(r rune) bool {
    if r == '"' {
      q = !q
    }
    return unicode.IsSpace(r) && q == false
  }
  return strings.FieldsFunc(line, f)
}

func removeQuotes(str string) string {
  reg := regexp.MustCompile(`"([^"]*)"`)
  if reg.MatchString(str) {
    return reg.ReplaceAllString(str, "${1}")
  }
  return str
}
