package main

import (
	"context"
	"encoding/csv"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"enigma/pkg/enigma"
)

// The benchmark encrypts a fixed English sample under a known configuration
// and measures how fast the searcher recovers configurations from it at
// different degrees of parallelism.
const sampleText = "The index of coincidence is useful both in the analysis of natural " +
	"language plaintext and in the analysis of ciphertext. Even when only ciphertext is " +
	"available for testing and plaintext letter identities are disguised, coincidences in " +
	"ciphertext can be caused by coincidences in the underlying plaintext."

var sampleSettings = enigma.Settings{
	Rotors:    []string{"II", "III", "I"},
	Reflector: "B",
	Offsets:   "RHD",
	Plugboard: "BQ CR DI HJ KP",
}

type benchmarkResult struct {
	Workers    int
	Pool       []string
	Duration   time.Duration
	Candidates int64
	TopScore   float64
}

func main() {
	poolPtr := flag.String("pool", "I,II,III,IV,V", "Comma-separated rotor pool to explore")
	workersPtr := flag.String("workers", "1,2,4,8", "Comma-separated worker counts to benchmark")
	resultsPtr := flag.Int("n", 5, "Number of best configurations to keep per search")
	outFilePtr := flag.String("out", "", "Path to the CSV output file; if empty, the CSV is written to the Standard Output")
	flag.Parse()

	pool := strings.Split(*poolPtr, ",")
	workerCounts := parseWorkerCounts(*workersPtr)

	ciphertext := encryptSample()
	orders := len(pool) * (len(pool) - 1) * (len(pool) - 2)
	candidates := int64(orders) * 26 * 26 * 26

	benchmarks := make([]benchmarkResult, 0, len(workerCounts))
	for _, workers := range workerCounts {
		fmt.Printf("Benchmarking search with %v workers over %v candidates\n", workers, humanize.Comma(candidates))

		started := time.Now()
		best, err := enigma.FindBestConfigurations(context.Background(), ciphertext, pool, sampleSettings.Reflector, *resultsPtr, workers, nil)
		if err != nil {
			log.Fatalf("search failed: %v", err)
		}
		duration := time.Since(started)

		benchmarks = append(benchmarks, benchmarkResult{
			Workers:    workers,
			Pool:       pool,
			Duration:   duration,
			Candidates: candidates,
			TopScore:   best[0].Score,
		})
	}

	if err := writeCsv(benchmarks, *outFilePtr); err != nil {
		log.Fatalf("cannot write results: %v", err)
	}
}

func encryptSample() string {
	machine, err := enigma.New(sampleSettings)
	if err != nil {
		log.Fatalf("cannot build sample machine: %v", err)
	}
	ciphertext, err := enigma.Encrypt(machine, sampleText)
	if err != nil {
		log.Fatalf("cannot encrypt sample: %v", err)
	}
	return ciphertext
}

func parseWorkerCounts(spec string) []int {
	var counts []int
	for _, field := range strings.Split(spec, ",") {
		count, err := strconv.Atoi(strings.TrimSpace(field))
		if err != nil || count < 1 {
			log.Fatalf("bad worker count %q", field)
		}
		counts = append(counts, count)
	}
	return counts
}

func writeCsv(benchmarks []benchmarkResult, outFile string) error {
	out := os.Stdout
	if outFile != "" {
		file, err := os.Create(outFile)
		if err != nil {
			return err
		}
		defer file.Close()
		out = file
	}

	writer := csv.NewWriter(out)
	defer writer.Flush()

	if err := writer.Write([]string{"workers", "pool", "duration_ms", "candidates", "candidates_per_second", "top_score"}); err != nil {
		return err
	}
	for _, benchmark := range benchmarks {
		rate := float64(benchmark.Candidates) / benchmark.Duration.Seconds()
		record := []string{
			strconv.Itoa(benchmark.Workers),
			strings.Join(benchmark.Pool, " "),
			strconv.FormatInt(benchmark.Duration.Milliseconds(), 10),
			strconv.FormatInt(benchmark.Candidates, 10),
			strconv.FormatFloat(rate, 'f', 0, 64),
			strconv.FormatFloat(benchmark.TopScore, 'f', 5, 64),
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}
	return writer.Error()
}
