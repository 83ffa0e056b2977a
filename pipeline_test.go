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

import   "fmt"
import   "io/ioutil"
import   "os"
import   "path/filepath"
import   "runtime"
import   "strings"
import   "sync"
import   "testing"
import   "time"

import   "github.com/grailbio/testutil"
import   "github.com/pkg/errors"
import   "github.com/stretchr/testify/assert"
import   "github.com/stretchr/testify/require"

/* -------------------------------------------------------------------------- */

// Records command lines instead of running them. The pileup step writes
// testPileup to its output file; commands containing failOn fail.
type recordingRunner struct {
  mutex    *sync.Mutex
  commands *[]string
  failOn   string
}

func newRecordingRunner(failOn string) recordingRunner {
  return recordingRunner{&sync.Mutex{}, &[]string{}, failOn}
}

func (runner recordingRunner) Run(name string, args ...string) error {
  line := strings.Join(append([]string{name}, args...), " ")
  runner.mutex.Lock()
  *runner.commands = append(*runner.commands, line)
  runner.mutex.Unlock()

  if runner.failOn != "" && strings.Contains(line, runner.failOn) {
    return fmt.Errorf("exit status 1")
  }
  if len(args) == 4 && args[0] == "mpileup" && args[2] == "-o" {
    return ioutil.WriteFile(args[3], []byte(testPileup), 0644)
  }
  return nil
}

func (runner recordingRunner) Commands() []string {
  runner.mutex.Lock()
  defer runner.mutex.Unlock()
  return append([]string{}, *runner.commands...)
}

type failingAligner struct{}

func (failingAligner) Align(sample Sample) (SamFile, error) {
  return "", errors.New("index not found")
}

type failingPlotter struct{}

func (failingPlotter) Plot(sample Sample, wig WiggleFile) (string, error) {
  return "", errors.New("no display")
}

func newTestPipeline(t *testing.T, dir string, runner Runner) Pipeline {
  config := testConfig(dir)
  require.NoError(t, os.MkdirAll(config.MappedFolder, 0755))
  require.NoError(t, os.MkdirAll(config.ReadcountsFolder, 0755))
  return NewPipeline(config, runner)
}

/* -------------------------------------------------------------------------- */

func TestProcessSample(t *testing.T) {
  dir, cleanup := testutil.TempDir(t, "", "")
  defer cleanup()

  runner   := newRecordingRunner("")
  pipeline := newTestPipeline(t, dir, runner)
  config   := pipeline.Config
  sample   := Sample{"s1", "fastq/s1_R1.fq", "fastq/s1_R2.fq"}

  result := pipeline.ProcessSample(sample, "JH642")
  require.NoError(t, result.Err)

  mapped := func(suffix string) string {
    return filepath.Join(config.MappedFolder, "s1"+suffix)
  }
  assert.Equal(t, []string{
    "bowtie2 --no-mixed -x " + config.GenomeIndex() + " -1 fastq/s1_R1.fq -2 fastq/s1_R2.fq -S " + mapped(".sam"),
    "samtools view -bS -o " + mapped(".bam") + " " + mapped(".sam"),
    "samtools sort -o " + mapped(".sorted.bam") + " " + mapped(".bam"),
    "featureCounts -a " + config.SafFile() + " -F SAF -o " + filepath.Join(config.ReadcountsFolder, "FC_s1.txt") + " " + mapped(".sorted.bam"),
    "samtools mpileup " + mapped(".sorted.bam") + " -o " + mapped(".mp"),
  }, runner.Commands())

  assert.Equal(t, CountsFile(filepath.Join(config.ReadcountsFolder, "FC_s1.txt")), result.Counts)
  assert.Equal(t, WiggleFile(mapped(".norm.wig")), result.Wiggle)
  assert.Empty(t, result.Plot)

  b, err := ioutil.ReadFile(mapped(".cut"))
  require.NoError(t, err)
  assert.Equal(t, "1\t2\n2\t3\n3\t0\n", string(b))

  b, err = ioutil.ReadFile(string(result.Wiggle))
  require.NoError(t, err)
  assert.Equal(t, "track\nvariableStep chrom=JH642 span=1\n1\t4000000.0\n2\t6000000.0\n3\t0.0\n", string(b))
}

func TestProcessSampleRemoveDuplicates(t *testing.T) {
  dir, cleanup := testutil.TempDir(t, "", "")
  defer cleanup()

  runner   := newRecordingRunner("")
  pipeline := newTestPipeline(t, dir, runner)
  pipeline.Config.RemoveDuplicates = true
  pipeline.Config.Plot             = true
  config   := pipeline.Config

  result := pipeline.ProcessSample(Sample{"s1", "a_R1.fq", "a_R2.fq"}, "JH642")
  require.NoError(t, result.Err)

  mapped := func(suffix string) string {
    return filepath.Join(config.MappedFolder, "s1"+suffix)
  }
  commands := runner.Commands()
  require.Len(t, commands, 8)
  assert.Equal(t, "java -jar " + config.PicardJar() + " CollectAlignmentSummaryMetrics R=" + config.FastaFile() + " I=" + mapped(".sorted.bam") + " O=" + mapped(".metrics"), commands[3])
  assert.Equal(t, "java -jar " + config.PicardJar() + " MarkDuplicatesWithMateCigar REMOVE_DUPLICATES=true M=" + mapped(".dup.metrics") + " I=" + mapped(".sorted.bam") + " O=" + mapped("_DR.sam"), commands[4])
  assert.Equal(t, "samtools view -bS -o " + mapped("_DR.bam") + " " + mapped("_DR.sam"), commands[5])
  assert.True(t, strings.HasSuffix(commands[6], " " + mapped("_DR.bam")), commands[6])
  assert.Equal(t, "samtools mpileup " + mapped("_DR.bam") + " -o " + mapped(".mp"), commands[7])

  assert.Equal(t, mapped(".norm.png"), result.Plot)
  assert.True(t, fileExists(result.Plot))
}

func TestProcessSampleFailure(t *testing.T) {
  dir, cleanup := testutil.TempDir(t, "", "")
  defer cleanup()

  runner   := newRecordingRunner("samtools sort")
  pipeline := newTestPipeline(t, dir, runner)

  result := pipeline.ProcessSample(Sample{"s1", "a_R1.fq", "a_R2.fq"}, "JH642")
  require.Error(t, result.Err)

  e, ok := result.Err.(StageError)
  require.True(t, ok)
  assert.Equal(t, "s1", e.Sample)
  assert.Equal(t, "sort", e.Stage)
  // no stage after the failing one was run
  assert.Len(t, runner.Commands(), 3)
  assert.False(t, fileExists(filepath.Join(pipeline.Config.MappedFolder, "s1.norm.wig")))

  // stages can be replaced
  pipeline.Stages.Aligner = failingAligner{}
  result = pipeline.ProcessSample(Sample{"s2", "b_R1.fq", "b_R2.fq"}, "JH642")
  require.Error(t, result.Err)
  assert.Equal(t, "align", result.Err.(StageError).Stage)
  assert.Equal(t, "index not found", errors.Cause(result.Err).Error())
}

func TestPipelineRun(t *testing.T) {
  dir, cleanup := testutil.TempDir(t, "", "")
  defer cleanup()

  runner   := newRecordingRunner("fastq/bad_R1.fq")
  pipeline := newTestPipeline(t, dir, runner)
  pipeline.Config.Threads = 2

  plan := Plan{Reference: "JH642"}
  for _, name := range []string{"s1", "bad", "s2", "s3"} {
    plan.Samples = append(plan.Samples, Sample{name, "fastq/"+name+"_R1.fq", "fastq/"+name+"_R2.fq"})
  }
  results := pipeline.Run(plan)
  require.Len(t, results, 4)

  for i, r := range results {
    assert.Equal(t, plan.Samples[i], r.Sample)
    if r.Sample.Name == "bad" {
      assert.Error(t, r.Err)
    } else {
      require.NoError(t, r.Err)
      assert.True(t, fileExists(string(r.Wiggle)))
    }
  }
  assert.Equal(t, 1, CountFailed(results))
  // 5 commands per successful sample, 1 for the failed one
  assert.Len(t, runner.Commands(), 16)
}

func TestProcessSamplePlotFailure(t *testing.T) {
  dir, cleanup := testutil.TempDir(t, "", "")
  defer cleanup()

  runner   := newRecordingRunner("")
  pipeline := newTestPipeline(t, dir, runner)
  pipeline.Config.Plot         = true
  pipeline.Stages.TrackPlotter = failingPlotter{}

  result := pipeline.ProcessSample(Sample{"s1", "a_R1.fq", "a_R2.fq"}, "JH642")
  require.NoError(t, result.Err)
  assert.Empty(t, result.Plot)
  assert.NotEmpty(t, result.Counts)
  assert.True(t, fileExists(string(result.Wiggle)))
}

func TestPipelineRunWorkers(t *testing.T) {
  dir, cleanup := testutil.TempDir(t, "", "")
  defer cleanup()

  pipeline := newTestPipeline(t, dir, newRecordingRunner(""))
  pipeline.Config.Threads = 8

  plan   := Plan{Reference: "JH642", Samples: []Sample{{"s1", "fastq/s1_R1.fq", "fastq/s1_R2.fq"}}}
  before := runtime.NumGoroutine()
  for i := 0; i < 10; i++ {
    results := pipeline.Run(plan)
    require.Len(t, results, 1)
    require.NoError(t, results[0].Err)
  }
  // workers may need a moment to return after the pool is stopped
  after := runtime.NumGoroutine()
  for deadline := time.Now().Add(2*time.Second); after > before+2 && time.Now().Before(deadline); {
    time.Sleep(10*time.Millisecond)
    after = runtime.NumGoroutine()
  }
  assert.True(t, after <= before+2, "goroutines before=%d after=%d", before, after)
}
