package main

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"runtime"
	"sync"

	"github.com/atcidulko/HW4-IB/internal/fastq"

	"github.com/spf13/cobra"
)

const defaultOutputDir = "filtered"

// filterJob is one input file and the path its kept reads go to.
type filterJob struct {
	input  string
	output string
}

type filterResult struct {
	job   filterJob
	total int
	kept  int
	err   error
}

func newFilterCommand(a *app) *cobra.Command {
	var (
		inputs    []string
		outDir    string
		gcFlag    string
		lenFlag   string
		threshold float64
		workers   int
	)
	cmd := &cobra.Command{
		Use:   "filter",
		Short: "Keep FASTQ reads within GC, length and average quality bounds",
		Long: `Filter FASTQ reads by GC-content, length and average Phred+33 quality.

Bounds are either a single upper bound ("44.4" means 0..44.4) or a min,max pair
("40,60"). Length and GC bounds are inclusive; reads whose average quality is
below the threshold are dropped. Each input is written to <out>/<input name>.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			inputs = append(inputs, args...)
			if len(inputs) == 0 {
				return fmt.Errorf("at least one input FASTQ is required")
			}
			crit := a.cfg.Criteria()
			if cmd.Flags().Changed("gc") {
				crit.GC = fastq.ParseBound(gcFlag)
			}
			if cmd.Flags().Changed("length") {
				crit.Length = fastq.ParseBound(lenFlag)
			}
			if cmd.Flags().Changed("quality") {
				crit.QualityThreshold = threshold
			}
			if outDir == "" {
				outDir = a.cfg.OutputDir
			}
			if outDir == "" {
				outDir = defaultOutputDir
			}

			gcMin, gcMax := fastq.Normalize(crit.GC, fastq.MaxGC)
			lenMin, lenMax := fastq.Normalize(crit.Length, fastq.MaxLength)
			a.logger.Info("starting filter", "inputs", len(inputs), "out_dir", outDir, "gc_min", gcMin, "gc_max", gcMax, "len_min", math.Trunc(lenMin), "len_max", math.Trunc(lenMax), "quality_threshold", crit.QualityThreshold)

			jobs := make([]filterJob, 0, len(inputs))
			for _, in := range inputs {
				jobs = append(jobs, filterJob{input: in, output: outputPath(outDir, in)})
			}
			if err := checkJobs(jobs); err != nil {
				return err
			}
			if err := os.MkdirAll(outDir, 0o755); err != nil {
				return fmt.Errorf("create output dir: %w", err)
			}

			failed := 0
			for _, r := range runFilterJobs(jobs, crit, workers) {
				if r.err != nil {
					failed++
					a.logger.Error("filter failed", "input", r.job.input, "err", r.err)
					continue
				}
				a.logger.Info("filtered", "input", r.job.input, "output", r.job.output, "records", r.total, "kept", r.kept, "dropped", r.total-r.kept)
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d inputs failed", failed, len(jobs))
			}
			return nil
		},
	}
	f := cmd.Flags()
	f.StringSliceVarP(&inputs, "in", "i", nil, "input FASTQ file(s); may repeat, '-' for stdin")
	f.StringVarP(&outDir, "out", "o", "", "output directory (default from config, else \"filtered\")")
	f.StringVar(&gcFlag, "gc", "0,100", "GC-content bounds in percent: max or min,max")
	f.StringVar(&lenFlag, "length", "0,4294967296", "read length bounds: max or min,max")
	f.Float64VarP(&threshold, "quality", "q", 0, "minimum average Phred+33 quality")
	f.IntVarP(&workers, "workers", "w", runtime.NumCPU(), "files filtered in parallel")
	return cmd
}

// outputPath places the filtered copy of input inside dir. Standard input
// goes to standard output.
func outputPath(dir, input string) string {
	if input == "-" {
		return "-"
	}
	return filepath.Join(dir, filepath.Base(input))
}

var errOutputClash = errors.New("output path clash")

// checkJobs refuses job lists where two inputs would write the same output or
// an output would overwrite an input file.
func checkJobs(jobs []filterJob) error {
	inputs := make(map[string]string, len(jobs))
	for _, j := range jobs {
		if j.input == "-" {
			continue
		}
		abs, err := filepath.Abs(j.input)
		if err != nil {
			return fmt.Errorf("resolve %s: %w", j.input, err)
		}
		inputs[abs] = j.input
	}

	outputs := make(map[string]string, len(jobs))
	for _, j := range jobs {
		key := j.output
		if key != "-" {
			abs, err := filepath.Abs(j.output)
			if err != nil {
				return fmt.Errorf("resolve %s: %w", j.output, err)
			}
			key = abs
		}
		if prev, ok := outputs[key]; ok {
			return fmt.Errorf("%w: %s and %s both write %s", errOutputClash, prev, j.input, j.output)
		}
		outputs[key] = j.input
		if key == "-" {
			continue
		}
		if in, ok := inputs[key]; ok {
			return fmt.Errorf("%w: output %s would overwrite input %s", errOutputClash, j.output, in)
		}
		if sameFileAsInput(j.output, jobs) {
			return fmt.Errorf("%w: output %s is the same file as an input", errOutputClash, j.output)
		}
	}
	return nil
}

// sameFileAsInput catches outputs that reach an input through links.
func sameFileAsInput(output string, jobs []filterJob) bool {
	oi, err := os.Stat(output)
	if err != nil {
		return false
	}
	for _, j := range jobs {
		if j.input == "-" {
			continue
		}
		if ii, err := os.Stat(j.input); err == nil && os.SameFile(oi, ii) {
			return true
		}
	}
	return false
}

// filterFile reads, filters and writes a single FASTQ file.
func filterFile(job filterJob, crit fastq.Criteria) filterResult {
	res := filterResult{job: job}
	set, err := fastq.ReadFile(job.input)
	if err != nil {
		res.err = err
		return res
	}
	kept := fastq.Filter(set, crit)
	res.total, res.kept = set.Len(), kept.Len()
	res.err = fastq.WriteFile(job.output, kept)
	return res
}

// runFilterJobs filters every job on a pool of workers. Each file is an
// independent filter call. Results come back in job order.
func runFilterJobs(jobs []filterJob, crit fastq.Criteria, workers int) []filterResult {
	if workers <= 0 {
		workers = 1
	}
	if workers > len(jobs) {
		workers = len(jobs)
	}
	results := make([]filterResult, len(jobs))
	tasks := make(chan int)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range tasks {
				results[idx] = filterFile(jobs[idx], crit)
			}
		}()
	}
	for i := range jobs {
		tasks <- i
	}
	close(tasks)
	wg.Wait()
	return results
}
