package cli

import (
	"fmt"
	"sync"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	cube "github.com/PlayWeird/cube-combinatorics"
	"github.com/PlayWeird/cube-combinatorics/internal/render"
	"github.com/PlayWeird/cube-combinatorics/internal/statefile"
	"github.com/PlayWeird/cube-combinatorics/internal/storage"
)

var (
	solveScramble string
	solveRandom   bool
	solveLength   int
	solveSeed     int64
	solveSave     bool
	solveBatch    int
)

var solveCmd = &cobra.Command{
	Use:   "solve [state-file]",
	Short: "Solve a cube state",
	Long: `Compute a layer-by-layer solution for a cube state.

The state comes from a JSON state file, from a scramble sequence
(--scramble "R U R' ..."), or from a fresh random scramble (--random).
The raw solution and its optimized form are both printed.

With --batch N, solve N independent random scrambles concurrently and
print a summary line per scramble.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSolve,
}

func init() {
	rootCmd.AddCommand(solveCmd)

	solveCmd.Flags().StringVar(&solveScramble, "scramble", "", "Scramble sequence to solve")
	solveCmd.Flags().BoolVar(&solveRandom, "random", false, "Solve a fresh random scramble")
	solveCmd.Flags().IntVarP(&solveLength, "length", "n", 0, "Random scramble length (default from config, 25)")
	solveCmd.Flags().Int64Var(&solveSeed, "seed", 0, "Random seed (default: current time)")
	solveCmd.Flags().BoolVar(&solveSave, "save", false, "Record the solve in the history database")
	solveCmd.Flags().IntVar(&solveBatch, "batch", 0, "Solve N random scrambles concurrently")
}

func runSolve(cmd *cobra.Command, args []string) error {
	if solveBatch > 0 {
		return runSolveBatch()
	}

	var (
		state    cube.State
		scramble []cube.Move
		source   string
	)

	switch {
	case len(args) == 1:
		doc, err := statefile.Load(args[0])
		if err != nil {
			return err
		}
		state, err = doc.State()
		if err != nil {
			return err
		}
		source = args[0]

	case solveScramble != "":
		moves, err := cube.ParseMoves(solveScramble)
		if err != nil {
			return err
		}
		scramble = moves
		state = cube.ApplySequence(cube.Solved(), moves)
		source = "scramble"

	case solveRandom:
		sc := cube.NewScrambler(scrambleSeed())
		state, scramble = sc.ScrambledState(scrambleLength())
		source = "random scramble"
		fmt.Printf("Scramble: %s\n\n", cube.FormatMoves(scramble))

	default:
		return fmt.Errorf("provide a state file, --scramble, or --random")
	}

	if verbose {
		fmt.Println(render.ColorNet(state))
	}

	start := time.Now()
	sol, err := cube.Solve(state)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	opt := cube.Optimize(sol.Moves)

	fmt.Printf("Solved %s in %s\n\n", source, formatDuration(elapsed))
	if verbose {
		for _, p := range sol.Phases {
			fmt.Printf("  %-24s %3d moves  %s\n", p.Name, len(p.Moves), cube.FormatMoves(p.Moves))
		}
		fmt.Println()
	}
	fmt.Printf("Solution (%d moves):\n  %s\n\n", sol.Len(), sol)
	fmt.Printf("Optimized (%d moves):\n  %s\n", len(opt), cube.FormatMoves(opt))

	if solveSave {
		id, err := saveSolve(state, scramble, sol, opt, elapsed)
		if err != nil {
			return err
		}
		fmt.Printf("\nRecorded solve: %s\n", id)
	}

	return nil
}

func saveSolve(state cube.State, scramble []cube.Move, sol cube.Solution, opt []cube.Move, elapsed time.Duration) (string, error) {
	db, err := openDB()
	if err != nil {
		return "", err
	}
	defer db.Close()

	rec := storage.Solve{
		Solution:       cube.FormatMoves(sol.Moves),
		Optimized:      cube.FormatMoves(opt),
		MoveCount:      sol.Len(),
		OptimizedCount: len(opt),
		DurationMs:     elapsed.Milliseconds(),
	}
	if len(scramble) > 0 {
		s := cube.FormatMoves(scramble)
		rec.Scramble = &s
	} else {
		net := state.String()
		rec.StartingState = &net
	}

	return storage.NewSolveRepository(db).Create(rec)
}

// runSolveBatch fans independent scrambles out across goroutines. Every
// scramble gets its own Scrambler so results stay reproducible per seed.
func runSolveBatch() error {
	n := solveBatch
	base := scrambleSeed()
	length := scrambleLength()

	type result struct {
		scramble []cube.Move
		sol      cube.Solution
		opt      []cube.Move
		elapsed  time.Duration
		err      error
	}

	results := make([]result, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			state, scramble := cube.NewScrambler(base + int64(i)).ScrambledState(length)
			start := time.Now()
			sol, err := cube.Solve(state)
			results[i] = result{
				scramble: scramble,
				sol:      sol,
				opt:      cube.Optimize(sol.Moves),
				elapsed:  time.Since(start),
				err:      err,
			}
		}(i)
	}
	wg.Wait()

	totalMoves, totalOpt := 0, 0
	for i, r := range results {
		if r.err != nil {
			return fmt.Errorf("scramble %d: %w", i+1, r.err)
		}
		totalMoves += r.sol.Len()
		totalOpt += len(r.opt)
		fmt.Printf("#%-3d %3d moves (%3d optimized) in %-8s  %s\n",
			i+1, r.sol.Len(), len(r.opt), formatDuration(r.elapsed), cube.FormatMoves(r.scramble))
	}
	fmt.Printf("\n%d solves, %.1f moves average (%.1f optimized)\n",
		n, float64(totalMoves)/float64(n), float64(totalOpt)/float64(n))

	return nil
}

func scrambleLength() int {
	if solveLength > 0 {
		return solveLength
	}
	return viper.GetInt("scramble_length")
}

func scrambleSeed() int64 {
	if solveSeed != 0 {
		return solveSeed
	}
	return time.Now().UnixNano()
}
