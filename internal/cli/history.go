package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/PlayWeird/cube-combinatorics/internal/storage"
)

var (
	historyLimit int
	historyLast  bool
)

var historyCmd = &cobra.Command{
	Use:   "history [solve-id]",
	Short: "Show recorded solves",
	Long: `List solves recorded with 'cubecomb solve --save'. Pass a solve ID
or --last for the full solution of a single solve.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runHistory,
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().IntVar(&historyLimit, "limit", 20, "Maximum number of solves to display")
	historyCmd.Flags().BoolVar(&historyLast, "last", false, "Show the most recent solve in full")
}

func runHistory(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	repo := storage.NewSolveRepository(db)

	if historyLast || len(args) == 1 {
		var solve *storage.Solve
		if historyLast {
			solve, err = repo.GetLast()
		} else {
			solve, err = repo.Get(args[0])
		}
		if err != nil {
			return err
		}
		if solve == nil {
			return fmt.Errorf("solve not found")
		}
		return printSolveDetails(solve)
	}

	solves, err := repo.List(historyLimit)
	if err != nil {
		return err
	}

	if len(solves) == 0 {
		fmt.Println("No solves recorded yet")
		fmt.Println("Record one with: cubecomb solve --random --save")
		return nil
	}

	fmt.Printf("%-36s  %-20s  %6s  %6s  %s\n", "ID", "Solved", "Moves", "Opt", "Scramble")
	fmt.Println("------------------------------------  --------------------  ------  ------  --------")
	for _, s := range solves {
		scramble := "-"
		if s.Scramble != nil {
			scramble = *s.Scramble
			if len(scramble) > 40 {
				scramble = scramble[:37] + "..."
			}
		} else if s.StartingState != nil {
			scramble = "(state file)"
		}
		fmt.Printf("%-36s  %-20s  %6d  %6d  %s\n",
			s.SolveID,
			s.CreatedAt.Format("2006-01-02 15:04:05"),
			s.MoveCount,
			s.OptimizedCount,
			scramble,
		)
	}

	return nil
}

func printSolveDetails(s *storage.Solve) error {
	fmt.Printf("ID:        %s\n", s.SolveID)
	fmt.Printf("Solved:    %s\n", s.CreatedAt.Format("2006-01-02 15:04:05"))
	if s.Scramble != nil {
		fmt.Printf("Scramble:  %s\n", *s.Scramble)
	}
	fmt.Printf("Moves:     %d (%d optimized)\n", s.MoveCount, s.OptimizedCount)
	fmt.Println()
	fmt.Printf("Solution:\n  %s\n", s.Solution)
	fmt.Printf("Optimized:\n  %s\n", s.Optimized)
	if s.StartingState != nil {
		fmt.Printf("\nStarting state:\n%s", *s.StartingState)
	}
	return nil
}
