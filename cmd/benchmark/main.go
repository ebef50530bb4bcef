package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"slices"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/limaJavier/cardtrick/pkg/trick"
	"github.com/samber/lo"
	"github.com/schollz/progressbar/v3"
)

const (
	resultsFile        = "benchmark_results.csv"
	maxModulus  uint64 = 10000
)

type ResultType int

const (
	passed ResultType = iota
	failed
)

var resultTypes = map[ResultType]string{
	passed: "passed",
	failed: "failed",
}

type BenchmarkResult struct {
	SetSize        int
	Modulus        uint64
	Samples        int
	Failures       int
	EncodeDuration int64 // ns per call
	DecodeDuration int64 // ns per call
	Result         ResultType
}

func main() {
	sizesPtr := flag.String("sizes", "2-7", "Range of set sizes to sweep, e.g. \"2-7\" or \"5\"")
	samplesPtr := flag.Int("samples", 200, "Random sets encoded per set size and modulus")
	stridePtr := flag.Uint64("stride", 1, "Step between the moduli swept for each set size")
	seedPtr := flag.Int64("seed", 1, "Seed for the random sets")
	flag.Parse()

	sizes := parseSizes(*sizesPtr)
	if *samplesPtr <= 0 {
		log.Fatalf("samples must be greater than 0: %v", *samplesPtr)
	} else if *stridePtr == 0 {
		log.Fatal("stride must be greater than 0")
	}

	moduli := lo.Map(sizes, func(setSize int, _ int) []uint64 { return getModuli(setSize, *stridePtr) })
	total := lo.Sum(lo.Map(moduli, func(sizeModuli []uint64, _ int) int { return len(sizeModuli) }))
	bar := progressbar.Default(int64(total), "sweeping")

	results := make([]BenchmarkResult, 0, total)
	mu := sync.Mutex{}
	wg := sync.WaitGroup{}
	for _, tuple := range lo.Zip2(sizes, moduli) {
		setSize, sizeModuli := tuple.A, tuple.B
		wg.Add(1)
		go func() {
			defer wg.Done()
			rng := rand.New(rand.NewSource(*seedPtr + int64(setSize)))
			for _, modulus := range sizeModuli {
				result := measure(rng, setSize, modulus, *samplesPtr)
				mu.Lock()
				results = append(results, result)
				bar.Add(1)
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	slices.SortFunc(results, func(a, b BenchmarkResult) int {
		if a.SetSize != b.SetSize {
			return a.SetSize - b.SetSize
		}
		if a.Modulus < b.Modulus {
			return -1
		} else if a.Modulus > b.Modulus {
			return 1
		}
		return 0
	})
	toCsv(results)

	failures := lo.Filter(results, func(result BenchmarkResult, _ int) bool { return result.Result == failed })
	fmt.Printf("Swept %d configurations, %d failed\n", len(results), len(failures))
	if len(failures) > 0 {
		os.Exit(20)
	}
	os.Exit(10)
}

// getModuli returns the moduli from setSize up to the largest one setSize values can cover
func getModuli(setSize int, stride uint64) []uint64 {
	moduli := make([]uint64, 0)
	for modulus := uint64(setSize); modulus <= maxModulus && trick.Feasible(setSize, modulus); modulus += stride {
		moduli = append(moduli, modulus)
	}
	return moduli
}

func measure(rng *rand.Rand, setSize int, modulus uint64, samples int) BenchmarkResult {
	encoder, err := trick.NewEncoder(modulus)
	if err != nil {
		log.Panicf("cannot create encoder for modulus %d: %v", modulus, err)
	}

	result := BenchmarkResult{SetSize: setSize, Modulus: modulus, Samples: samples}
	var encodeDuration, decodeDuration time.Duration
	for i := 0; i < samples; i++ {
		values := lo.Map(rng.Perm(int(modulus))[:setSize], func(value int, _ int) uint64 { return uint64(value) })

		start := time.Now()
		heldOut, sequence, err := encoder.Encode(values)
		encodeDuration += time.Since(start)
		if err != nil {
			log.Panicf("cannot encode %v modulo %d: %v", values, modulus, err)
		}

		start = time.Now()
		decoded, err := encoder.Decode(sequence)
		decodeDuration += time.Since(start)
		if err != nil || decoded != heldOut {
			result.Failures++
		}
	}

	result.EncodeDuration = encodeDuration.Nanoseconds() / int64(samples)
	result.DecodeDuration = decodeDuration.Nanoseconds() / int64(samples)
	if result.Failures > 0 {
		result.Result = failed
	}
	return result
}

func toCsv(results []BenchmarkResult) {
	file, err := os.Create(resultsFile)
	if err != nil {
		log.Panicf("cannot create CSV file: %v", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	header := []string{"Set Size", "Modulus", "Samples", "Failures", "Encode(ns)", "Decode(ns)", "Result"}
	if err := writer.Write(header); err != nil {
		log.Panicf("cannot write CSV header: %v", err)
	}

	for _, result := range results {
		record := []string{
			fmt.Sprintf("%d", result.SetSize),
			fmt.Sprintf("%d", result.Modulus),
			fmt.Sprintf("%d", result.Samples),
			fmt.Sprintf("%d", result.Failures),
			fmt.Sprintf("%d", result.EncodeDuration),
			fmt.Sprintf("%d", result.DecodeDuration),
			resultTypes[result.Result],
		}
		if err := writer.Write(record); err != nil {
			log.Panicf("cannot write CSV record: %v", err)
		}
	}
}

// parseSizes parses "lo-hi" or a single size into the list of set sizes to sweep
func parseSizes(sizesStr string) []int {
	parts := strings.Split(strings.TrimSpace(sizesStr), "-")
	var low, high int
	if len(parts) == 1 {
		low = lo.Must(strconv.Atoi(parts[0]))
		high = low
	} else if len(parts) == 2 {
		low = lo.Must(strconv.Atoi(parts[0]))
		high = lo.Must(strconv.Atoi(parts[1]))
	} else {
		log.Fatalf("unexpected sizes format: %v", sizesStr)
	}

	if low < 2 || high > trick.MaxSetSize || low > high {
		log.Fatalf("sizes must lie within [2, %d] in ascending order: %v", trick.MaxSetSize, sizesStr)
	}
	return lo.RangeFrom(low, high-low+1)
}
