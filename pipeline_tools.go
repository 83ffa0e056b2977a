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

/* -------------------------------------------------------------------------- */

// Pipeline stages that invoke external programs through a Runner. All
// output files are placed in the mapped and read count folders and are
// named after the sample.
type ToolStages struct {
  Config Config
  Runner Runner
}

/* -------------------------------------------------------------------------- */

func (stages ToolStages) Align(sample Sample) (SamFile, error) {
  sam := stages.Config.mappedFile(sample, ".sam")
  err := stages.Runner.Run("bowtie2", "--no-mixed",
    "-x", stages.Config.GenomeIndex(),
    "-1", sample.Forward,
    "-2", sample.Reverse,
    "-S", sam)
  return SamFile(sam), err
}

func (stages ToolStages) ToBam(sample Sample, sam SamFile) (BamFile, error) {
  bam := strings.TrimSuffix(string(sam), ".sam") + ".bam"
  err := stages.Runner.Run("samtools", "view", "-bS", "-o", bam, string(sam))
  return BamFile(bam), err
}

func (stages ToolStages) Sort(sample Sample, bam BamFile) (BamFile, error) {
  sorted := stages.Config.mappedFile(sample, ".sorted.bam")
  err    := stages.Runner.Run("samtools", "sort", "-o", sorted, string(bam))
  return BamFile(sorted), err
}

// Collect alignment summary metrics, remove duplicates with picard and
// convert the result back to bam.
func (stages ToolStages) RemoveDuplicates(sample Sample, bam BamFile) (BamFile, error) {
  jar := stages.Config.PicardJar()
  if err := stages.Runner.Run("java", "-jar", jar, "CollectAlignmentSummaryMetrics",
    "R="+stages.Config.FastaFile(),
    "I="+string(bam),
    "O="+stages.Config.mappedFile(sample, ".metrics")); err != nil {
    return "", err
  }
  sam := stages.Config.mappedFile(sample, "_DR.sam")
  if err := stages.Runner.Run("java", "-jar", jar, "MarkDuplicatesWithMateCigar",
    "REMOVE_DUPLICATES=true",
    "M="+stages.Config.mappedFile(sample, ".dup.metrics"),
    "I="+string(bam),
    "O="+sam); err != nil {
    return "", err
  }
  return stages.ToBam(sample, SamFile(sam))
}

func (stages ToolStages) Count(sample Sample, bam BamFile) (CountsFile, error) {
  counts := stages.Config.readcountsFile(sample)
  err    := stages.Runner.Run(stages.Config.FeatureCounts(),
    "-a", stages.Config.SafFile(),
    "-F", "SAF",
    "-o", counts,
    string(bam))
  return CountsFile(counts), err
}

func (stages ToolStages) Pileup(sample Sample, bam BamFile) (PileupFile, error) {
  pileup := stages.Config.mappedFile(sample, ".mp")
  err    := stages.Runner.Run("samtools", "mpileup", string(bam), "-o", pileup)
  return PileupFile(pileup), err
}

/* -------------------------------------------------------------------------- */

// Pipeline stages implemented in this package.
type NativeStages struct {
  Config Config
}

func (stages NativeStages) Cut(sample Sample, pileup PileupFile) (CutFile, error) {
  cut := stages.Config.mappedFile(sample, ".cut")
  err := CutPileupFile(string(pileup), cut)
  return CutFile(cut), err
}

func (stages NativeStages) Normalize(sample Sample, cut CutFile, reference string) (WiggleFile, error) {
  wig, err := NormalizeFile(string(cut), reference)
  return WiggleFile(wig), err
}

func (stages NativeStages) Plot(sample Sample, wig WiggleFile) (string, error) {
  reference, track, err := ImportWiggle(string(wig))
  if err != nil {
    return "", err
  }
  // nothing to draw
  if track.Length() == 0 {
    return "", nil
  }
  filename := stages.Config.mappedFile(sample, ".norm.png")
  return filename, track.SavePlot(filename, reference)
}
