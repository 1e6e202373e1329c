package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"runtime"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/mitchellh/mapstructure"
	"github.com/schollz/progressbar/v3"

	"enigma/internal/analysis"
	"enigma/internal/results"
	"enigma/pkg/enigma"
)

// crackJob mirrors the JSON job file:
//
//	{
//	  "ciphertext": "QMJIDO...",
//	  "rotorPool": ["I", "II", "III", "IV", "V"],
//	  "reflector": "B",
//	  "results": 10,
//	  "workers": 4,
//	  "database": "runs.db"
//	}
type crackJob struct {
	Ciphertext string   `mapstructure:"ciphertext"`
	RotorPool  []string `mapstructure:"rotorPool"`
	Reflector  string   `mapstructure:"reflector"`
	Results    int      `mapstructure:"results"`
	Workers    int      `mapstructure:"workers"`
	Database   string   `mapstructure:"database"`
}

func main() {
	// Define arguments
	textPtr := flag.String("text", "", "Ciphertext to attack; if empty, reads from -file or the Standard Input")
	filePtr := flag.String("file", "", "Path to the ciphertext file")
	poolPtr := flag.String("pool", "I,II,III,IV,V", "Comma-separated rotor pool to explore")
	reflectorPtr := flag.String("reflector", "B", "Reflector assumed during the attack")
	resultsPtr := flag.Int("n", 5, "Number of best configurations to keep")
	workersPtr := flag.Int("workers", runtime.NumCPU(), "Degree of parallelism")
	jobPtr := flag.String("job", "", "Path to a JSON job file; overrides the flags above")
	databasePtr := flag.String("db", "", "Path to a sqlite database where the run is persisted")
	flag.Parse()

	job := crackJob{
		Ciphertext: *textPtr,
		RotorPool:  strings.Split(*poolPtr, ","),
		Reflector:  *reflectorPtr,
		Results:    *resultsPtr,
		Workers:    *workersPtr,
		Database:   *databasePtr,
	}
	if *jobPtr != "" {
		var err error
		job, err = jobFromJson(*jobPtr)
		if err != nil {
			log.Fatalf("cannot parse job file: %v", err)
		}
		if job.Workers == 0 {
			job.Workers = runtime.NumCPU()
		}
		if job.Results == 0 {
			job.Results = 5
		}
	}

	if job.Ciphertext == "" {
		text, err := readCiphertext(*filePtr)
		if err != nil {
			log.Fatalf("cannot read ciphertext: %v", err)
		}
		job.Ciphertext = text
	}

	ciphertext := enigma.Normalize(job.Ciphertext)
	if ciphertext == "" {
		log.Fatal("ciphertext is empty after normalization")
	}

	orders := len(job.RotorPool) * (len(job.RotorPool) - 1) * (len(job.RotorPool) - 2)
	candidates := int64(orders) * 26 * 26 * 26
	fmt.Printf("Attacking %v letters with %v rotor orders (%v candidate configurations)\n",
		humanize.Comma(int64(len(ciphertext))), orders, humanize.Comma(candidates))

	bar := progressbar.NewOptions(orders,
		progressbar.OptionSetDescription("rotor orders"),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)
	progress := func(done, total int) {
		_ = bar.Set(done)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	started := time.Now()
	best, err := enigma.FindBestConfigurations(ctx, ciphertext, job.RotorPool, job.Reflector, job.Results, job.Workers, progress)
	if err != nil {
		log.Fatalf("search failed: %v", err)
	}
	elapsed := time.Since(started)

	rate := float64(candidates) / elapsed.Seconds()
	fmt.Printf("Swept %v candidates in %v (%v/s)\n\n",
		humanize.Comma(candidates), elapsed.Round(time.Millisecond), humanize.CommafWithDigits(rate, 0))

	for rank, configuration := range best {
		fmt.Printf("#%v  rotors: %v  reflector: %v  offsets: %v  IoC: %.5f\n",
			rank+1, strings.Join(configuration.Rotors, ", "), configuration.Reflector,
			configuration.Offsets, configuration.Score)
	}

	if job.Database != "" {
		if err := persistRun(ctx, job, ciphertext, best); err != nil {
			log.Fatalf("cannot persist run: %v", err)
		}
	}
}

func persistRun(ctx context.Context, job crackJob, ciphertext string, best []analysis.ScoredConfiguration) error {
	store := results.NewSQLiteStore(job.Database)
	if err := store.Init(ctx); err != nil {
		return err
	}
	defer store.Close()

	run := results.Run{
		ID:               results.NewRunID(),
		CreatedAt:        time.Now().UTC(),
		Reflector:        job.Reflector,
		RotorPool:        job.RotorPool,
		CiphertextLength: len(ciphertext),
		Configurations:   best,
	}
	if err := store.SaveRun(ctx, run); err != nil {
		return err
	}

	fmt.Printf("\nPersisted run %v to %v\n", run.ID, job.Database)
	return nil
}

func jobFromJson(file string) (crackJob, error) {
	bytes, err := os.ReadFile(file)
	if err != nil {
		return crackJob{}, err
	}

	var jobJson map[string]any
	if err := json.Unmarshal(bytes, &jobJson); err != nil {
		return crackJob{}, err
	}

	var job crackJob
	if err := mapstructure.Decode(jobJson, &job); err != nil {
		return crackJob{}, err
	}
	return job, nil
}

func readCiphertext(file string) (string, error) {
	if file != "" {
		bytes, err := os.ReadFile(file)
		return string(bytes), err
	}
	bytes, err := io.ReadAll(os.Stdin)
	return string(bytes), err
}
