package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	cube "github.com/PlayWeird/cube-combinatorics"
	"github.com/PlayWeird/cube-combinatorics/internal/render"
	"github.com/PlayWeird/cube-combinatorics/internal/statefile"
)

var showNumbered bool

var showCmd = &cobra.Command{
	Use:   "show <state-file>",
	Short: "Display a saved cube state",
	Long: `Render a JSON state file as a colored net. With --numbered the net
shows slot numbers instead of color letters, which helps when editing
state files by hand.`,
	Args: cobra.ExactArgs(1),
	RunE: runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
	showCmd.Flags().BoolVar(&showNumbered, "numbered", false, "Show slot numbers instead of colors")
}

func runShow(cmd *cobra.Command, args []string) error {
	doc, err := statefile.Load(args[0])
	if err != nil {
		return err
	}
	state, err := doc.State()
	if err != nil {
		return err
	}

	if showNumbered {
		fmt.Println(render.NumberedNet(state))
	} else {
		fmt.Println(render.ColorNet(state))
	}

	if doc.MoveSequence != "" {
		fmt.Printf("Generated by: %s\n", doc.MoveSequence)
	}

	v := cube.Validate(state)
	if v.Solvable {
		fmt.Println("Solvable: yes")
	} else {
		fmt.Printf("Solvable: NO (%v)\n", v.Violations)
	}

	return nil
}
