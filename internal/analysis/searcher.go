package analysis

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/samber/lo"

	"enigma/internal/machine"
)

const stackSize = 3 // the brute force explores 3-rotor machines

var (
	// ErrInvalidArgument flags impossible search parameters (result count or
	// parallelism below one).
	ErrInvalidArgument = errors.New("invalid search argument")

	// ErrInvalidSearchSpace flags a rotor pool the search cannot explore:
	// unknown or non-stepping rotors, duplicates, or fewer rotors than the
	// machine stack holds.
	ErrInvalidSearchSpace = errors.New("invalid search space")
)

// Searcher recovers likely machine configurations from ciphertext alone by
// sweeping every rotor order and offset combination and ranking the decrypted
// candidates by index of coincidence.
type Searcher interface {
	// FindBestConfigurations enumerates all ordered selections of 3 distinct
	// rotors from the pool, decrypts the ciphertext under all 26^3 starting
	// offsets of each (rings held at AAA), and returns the resultCount
	// best-scoring configurations, descending by score. Work is spread over
	// parallelism workers; ctx cancels the sweep between offset trials.
	FindBestConfigurations(
		ctx context.Context,
		ciphertext []machine.Letter,
		rotorPool []string,
		reflectorName string,
		resultCount int,
		parallelism int,
	) ([]ScoredConfiguration, error)
}

// NewSearcher builds a brute-force searcher. progress may be nil; when set it
// is called after each completed rotor permutation with the number of
// permutations done and the total, always from a single goroutine.
func NewSearcher(progress func(done, total int)) Searcher {
	return &bruteForceSearcher{progress: progress}
}

type bruteForceSearcher struct {
	progress func(done, total int)
}

func (searcher *bruteForceSearcher) FindBestConfigurations(
	ctx context.Context,
	ciphertext []machine.Letter,
	rotorPool []string,
	reflectorName string,
	resultCount int,
	parallelism int,
) ([]ScoredConfiguration, error) {
	if resultCount <= 0 {
		return nil, fmt.Errorf("%w: result count must be positive, got %v", ErrInvalidArgument, resultCount)
	}
	if parallelism <= 0 {
		return nil, fmt.Errorf("%w: parallelism must be positive, got %v", ErrInvalidArgument, parallelism)
	}
	if err := validatePool(rotorPool); err != nil {
		return nil, err
	}
	if !machine.KnownReflector(reflectorName) {
		return nil, fmt.Errorf("%w: %v is not a valid reflector", ErrInvalidSearchSpace, reflectorName)
	}

	orders := rotorOrders(rotorPool)

	//** Scatter: one work unit per rotor order, each worker owns its machines
	workChannel := make(chan []string)
	resultChannel := make(chan *leaderboard, parallelism)
	doneChannel := make(chan struct{}, len(orders))

	var progressWait sync.WaitGroup
	if searcher.progress != nil {
		progressWait.Add(1)
		go func() {
			defer progressWait.Done()
			done := 0
			for range doneChannel {
				done++
				searcher.progress(done, len(orders))
			}
		}()
	}

	var workers sync.WaitGroup
	for i := 0; i < parallelism; i++ {
		workers.Add(1)
		go func() {
			defer workers.Done()
			best := newLeaderboard(resultCount)
			for order := range workChannel {
				searcher.sweepOffsets(ctx, ciphertext, order, reflectorName, best)
				doneChannel <- struct{}{}
			}
			resultChannel <- best
		}()
	}

	go func() {
		defer close(workChannel)
		for _, order := range orders {
			select {
			case workChannel <- order:
			case <-ctx.Done():
				return
			}
		}
	}()

	//** Gather: merge the per-worker collections once all units reported
	workers.Wait()
	close(resultChannel)
	close(doneChannel)
	progressWait.Wait()

	merged := make([]ScoredConfiguration, 0, parallelism*resultCount)
	for best := range resultChannel {
		merged = append(merged, best.Entries()...)
	}

	slices.SortFunc(merged, func(a, b ScoredConfiguration) int {
		if a.Score > b.Score {
			return -1
		} else if a.Score < b.Score {
			return 1
		}
		return 0
	})
	if len(merged) > resultCount {
		merged = merged[:resultCount]
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return merged, nil
}

// sweepOffsets tries every starting-offset vector for one rotor order,
// constructing a fresh machine per trial so no state leaks between
// candidates.
func (searcher *bruteForceSearcher) sweepOffsets(
	ctx context.Context,
	ciphertext []machine.Letter,
	order []string,
	reflectorName string,
	best *leaderboard,
) {
	indexer := NewIndexer(stackSize)

	for index := 0; index < indexer.Size(); index++ {
		if ctx.Err() != nil {
			return
		}

		offsets := machine.LettersToText(indexer.Offsets(index))
		trial, err := machine.NewMachine(machine.Settings{
			Rotors:    order,
			Reflector: reflectorName,
			Offsets:   offsets,
		})
		if err != nil {
			// Pool and reflector were validated up front.
			panic(fmt.Sprintf("trial machine construction failed: %v", err))
		}

		decrypted := trial.Encrypt(ciphertext)
		best.Offer(ScoredConfiguration{
			Rotors:    slices.Clone(order),
			Reflector: trial.Settings().Reflector,
			Offsets:   offsets,
			Score:     IndexOfCoincidence(decrypted),
		})
	}
}

func validatePool(rotorPool []string) error {
	if len(rotorPool) < stackSize {
		return fmt.Errorf("%w: pool of %v rotors cannot fill a %v-rotor stack", ErrInvalidSearchSpace, len(rotorPool), stackSize)
	}
	if len(lo.Uniq(rotorPool)) != len(rotorPool) {
		return fmt.Errorf("%w: pool has duplicate rotors", ErrInvalidSearchSpace)
	}
	for _, name := range rotorPool {
		if !machine.KnownRotor(name) {
			return fmt.Errorf("%w: %v is not a valid rotor", ErrInvalidSearchSpace, name)
		}
		rotor, _ := machine.NewRotor(name)
		if rotor.Fixed() {
			return fmt.Errorf("%w: fixed wheel %v cannot be searched in a %v-rotor stack", ErrInvalidSearchSpace, rotor.Name(), stackSize)
		}
	}
	return nil
}

// rotorOrders enumerates all ordered selections of stackSize distinct rotors
// from the pool; order is left-to-right placement in the machine.
func rotorOrders(rotorPool []string) [][]string {
	orders := make([][]string, 0, len(rotorPool)*(len(rotorPool)-1)*(len(rotorPool)-2))
	current := make([]string, 0, stackSize)
	taken := make([]bool, len(rotorPool))

	var expand func()
	expand = func() {
		if len(current) == stackSize {
			orders = append(orders, slices.Clone(current))
			return
		}
		for i, name := range rotorPool {
			if taken[i] {
				continue
			}
			taken[i] = true
			current = append(current, name)
			expand()
			current = current[:len(current)-1]
			taken[i] = false
		}
	}
	expand()

	return orders
}
