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

import   "github.com/pkg/errors"

import   "gonum.org/v1/plot"
import   "gonum.org/v1/plot/plotter"
import   "gonum.org/v1/plot/plotutil"
import   "gonum.org/v1/plot/vg"

/* -------------------------------------------------------------------------- */

// Draw depth against position and save the plot to filename. The image
// format is determined by the file extension (png, pdf, svg, ...).
func (track DepthTrack) SavePlot(filename, reference string) error {
  if len(track) == 0 {
    return errors.New("cannot plot an empty track")
  }
  xy := make(plotter.XYs, len(track))
  for i, record := range track {
    xy[i].X = float64(record.Position)
    xy[i].Y = record.Depth
  }
  p := plot.New()
  p.Title.Text   = reference
  p.X.Label.Text = "position"
  p.Y.Label.Text = "normalized depth"

  if err := plotutil.AddLines(p, xy); err != nil {
    return err
  }
  if err := p.Save(12*vg.Inch, 4*vg.Inch, filename); err != nil {
    return errors.Wrapf(err, "saving plot `%s'", filename)
  }
  return nil
}
