package main

import (
	"flag"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/logrusorgru/aurora"
	"github.com/panopteo/hnefatafl-engine/pkg/assess"
	"github.com/panopteo/hnefatafl-engine/pkg/models/model"
	"github.com/panopteo/hnefatafl-engine/pkg/models/tafl"
)

const (
	Goroutines = 8
	MaxPlies   = 2000
)

var (
	games   = flag.Int("games", 100, "number of self-play games")
	verbose = flag.Bool("v", false, "print the final board of every game")
)

func playOne() (tafl.Outcome, *tafl.Game) {
	g := tafl.NewGame()
	for i := 0; i < MaxPlies && !g.Outcome().Over(); i++ {
		m, err := assess.RandMove(g)
		if err != nil {
			break
		}
		if err = g.ApplyMove(m); err != nil {
			panic(err)
		}
	}
	return g.Outcome(), g
}

func main() {
	flag.Parse()

	bar := model.NewBar(*games, "self-play")

	var (
		mu        sync.Mutex
		byOutcome = make(map[string]int)
		next      atomic.Int64
		wg        sync.WaitGroup
	)

	wg.Add(Goroutines)
	for i := 0; i < Goroutines; i++ {
		go func() {
			defer wg.Done()
			for int(next.Add(1)) <= *games {
				outcome, g := playOne()

				key := outcome.String()
				if !outcome.Over() {
					key = "Unfinished"
				}

				mu.Lock()
				byOutcome[key]++
				if *verbose {
					fmt.Printf("\n%s after %d plies\n%s\n", key, g.StepCount(), g.Board())
				}
				mu.Unlock()
				bar.Add(1)
			}
		}()
	}
	wg.Wait()
	bar.Close()

	fmt.Println()
	for key, n := range byOutcome {
		colored := aurora.Yellow(key)
		if strings.HasPrefix(key, "AttackersWin") {
			colored = aurora.Red(key)
		} else if strings.HasPrefix(key, "DefendersWin") {
			colored = aurora.Green(key)
		}
		fmt.Printf("%-40s %d\n", colored, n)
	}
}
