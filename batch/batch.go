// Package batch converts many containers concurrently.
package batch

import (
	"context"
	"path/filepath"
	"runtime"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/YoshihikoAbe/ozip2zip/keyring"
	"github.com/YoshihikoAbe/ozip2zip/ozip"
)

type Options struct {
	// Workers is the number of concurrent conversions. Values less than
	// one select the number of logical CPUs.
	Workers int
	// Suffix is appended to every input name to form its output name.
	Suffix string
	Keys   keyring.KeySource
	Logger *zap.SugaredLogger
}

type Result struct {
	Input    string
	Output   string
	KeyIndex int
	Err      error
}

// Run converts every container in inputs and returns one Result per
// input, in input order. Cancelling ctx skips conversions that have not
// started yet; running conversions are not interrupted. An input that
// appears more than once is converted once and shares its Result.
func Run(ctx context.Context, inputs []string, opts Options) []Result {
	workers := opts.Workers
	if workers < 1 {
		workers = runtime.NumCPU()
	}
	ks := opts.Keys
	if ks == nil {
		ks = keyring.Default
	}
	log := opts.Logger
	if log == nil {
		log = zap.NewNop().Sugar()
	}

	// index of the first occurrence of every input
	first := make([]int, len(inputs))
	seen := make(map[string]int, len(inputs))
	var jobs []int
	for i, input := range inputs {
		name := filepath.Clean(input)
		if j, ok := seen[name]; ok {
			first[i] = j
			continue
		}
		seen[name] = i
		first[i] = i
		jobs = append(jobs, i)
	}
	if workers > len(jobs) {
		workers = len(jobs)
	}

	results := make([]Result, len(inputs))
	ch := make(chan int)

	wg := sync.WaitGroup{}
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			for {
				i, ok := <-ch
				if !ok {
					return
				}
				results[i] = convert(ctx, inputs[i], opts.Suffix, ks, log)
			}
		}()
	}

	for _, i := range jobs {
		ch <- i
	}
	close(ch)
	wg.Wait()

	for i, j := range first {
		if i != j {
			results[i] = results[j]
			results[i].Input = inputs[i]
		}
	}
	return results
}

func convert(ctx context.Context, input, suffix string, ks keyring.KeySource, log *zap.SugaredLogger) Result {
	result := Result{
		Input:    input,
		Output:   ozip.OutputName(input, suffix),
		KeyIndex: -1,
	}
	if err := ctx.Err(); err != nil {
		result.Err = err
		return result
	}

	start := time.Now()
	key, err := ozip.ConvertFile(input, result.Output, ks)
	if err != nil {
		result.Err = err
		log.Errorw("conversion failed", "input", input, "error", err)
		return result
	}

	result.KeyIndex = ks.Candidates().Index(key)
	log.Infow("converted",
		"input", input,
		"output", result.Output,
		"key", result.KeyIndex,
		"elapsed", time.Since(start),
	)
	return result
}
