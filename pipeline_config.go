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

import "path/filepath"

/* -------------------------------------------------------------------------- */

// Pipeline settings. The genome name must match a bowtie2 index, a fasta
// file and a SAF feature file in the genome folder, i.e. for genome `JH642'
// the files `JH642.*.bt2', `JH642.fasta' and `JH642.saf'.
type Config struct {
  Genome           string
  RemoveDuplicates bool
  FastqFolder      string
  MappedFolder     string
  ReadcountsFolder string
  GenomeFolder     string
  ScriptsFolder    string
  Threads          int
  Verbose          int
  // render normalized tracks as png
  Plot             bool
  // print a progress bar while samples are processed
  Status           bool
}

func DefaultConfig() Config {
  return Config{
    Genome          : "JH642",
    FastqFolder     : "fastq",
    MappedFolder    : "mapped",
    ReadcountsFolder: "read_counts",
    GenomeFolder    : "genomefiles",
    ScriptsFolder   : "scripts",
    Threads         : 1 }
}

/* -------------------------------------------------------------------------- */

func (config Config) FastaFile() string {
  return filepath.Join(config.GenomeFolder, config.Genome+".fasta")
}

func (config Config) SafFile() string {
  return filepath.Join(config.GenomeFolder, config.Genome+".saf")
}

// Prefix of the bowtie2 index files.
func (config Config) GenomeIndex() string {
  return filepath.Join(config.GenomeFolder, config.Genome)
}

func (config Config) PicardJar() string {
  return filepath.Join(config.ScriptsFolder, "picard.jar")
}

// featureCounts shipped in the scripts folder is preferred over the one
// found in PATH.
func (config Config) FeatureCounts() string {
  if filename := filepath.Join(config.ScriptsFolder, "featureCounts"); isExecutable(filename) {
    return filename
  }
  return "featureCounts"
}

func (config Config) mappedFile(sample Sample, suffix string) string {
  return filepath.Join(config.MappedFolder, sample.Name+suffix)
}

func (config Config) readcountsFile(sample Sample) string {
  return filepath.Join(config.ReadcountsFolder, "FC_"+sample.Name+".txt")
}
