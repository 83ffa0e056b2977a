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

// Files passed between pipeline stages.
type SamFile    string
type BamFile    string
type CountsFile string
type PileupFile string
type CutFile    string
type WiggleFile string

/* -------------------------------------------------------------------------- */

// Maps a pair of fastq files to the reference genome.
type Aligner interface {
  Align(sample Sample) (SamFile, error)
}

type BamConverter interface {
  ToBam(sample Sample, sam SamFile) (BamFile, error)
}

// Sorts alignments by reference position.
type BamSorter interface {
  Sort(sample Sample, bam BamFile) (BamFile, error)
}

// Removes PCR and optical duplicates from a sorted alignment file.
type DuplicateMarker interface {
  RemoveDuplicates(sample Sample, bam BamFile) (BamFile, error)
}

// Counts reads per annotated feature.
type FeatureCounter interface {
  Count(sample Sample, bam BamFile) (CountsFile, error)
}

type PileupGenerator interface {
  Pileup(sample Sample, bam BamFile) (PileupFile, error)
}

// Extracts position and depth columns from a pileup.
type ColumnCutter interface {
  Cut(sample Sample, pileup PileupFile) (CutFile, error)
}

// Scales a depth table to NormalizationTarget and writes it as a track
// for the given reference.
type Normalizer interface {
  Normalize(sample Sample, cut CutFile, reference string) (WiggleFile, error)
}

type TrackPlotter interface {
  Plot(sample Sample, wig WiggleFile) (string, error)
}

/* -------------------------------------------------------------------------- */

type Stages struct {
  Aligner         Aligner
  BamConverter    BamConverter
  BamSorter       BamSorter
  DuplicateMarker DuplicateMarker
  FeatureCounter  FeatureCounter
  PileupGenerator PileupGenerator
  ColumnCutter    ColumnCutter
  Normalizer      Normalizer
  // optional
  TrackPlotter    TrackPlotter
}

// Stages backed by the external tools bowtie2, samtools, picard and
// featureCounts. Cutting, normalization and plotting run in-process.
func DefaultStages(config Config, runner Runner) Stages {
  tools  := ToolStages{config, runner}
  native := NativeStages{config}
  return Stages{
    Aligner        : tools,
    BamConverter   : tools,
    BamSorter      : tools,
    DuplicateMarker: tools,
    FeatureCounter : tools,
    PileupGenerator: tools,
    ColumnCutter   : native,
    Normalizer     : native,
    TrackPlotter   : native }
}
