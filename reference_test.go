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

import "strings"
import "testing"

/* -------------------------------------------------------------------------- */

func TestReferenceName(t *testing.T) {
  cases := [][2]string{
    {">JH642\nACGT\n",                            "JH642"},
    {"\n>NC_000964.3 Bacillus subtilis\nACGT\n",  "NC_000964.3"},
    {">chr1\r\nACGT\r\n",                         "chr1"} }
  for _, c := range cases {
    name, err := ReadReferenceName(strings.NewReader(c[0]))
    if err != nil {
      t.Error(err)
    } else if name != c[1] {
      t.Errorf("TestReferenceName failed: got `%s', expected `%s'", name, c[1])
    }
  }
  for _, input := range []string{"", "ACGT\n>chr1\n", ">\nACGT\n"} {
    if _, err := ReadReferenceName(strings.NewReader(input)); err == nil {
      t.Errorf("TestReferenceName failed: input `%s' was accepted", input)
    }
  }
}
