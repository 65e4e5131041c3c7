/*
Copyright © 2023 Jonathan Taylor <jonrtaylor12@gmail.com>
*/

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"pipguide/plate"
)

var wellsCmd = &cobra.Command{
	Use:   "wells [label...]",
	Short: "Prints well numbers and labels",
	Long: `Without arguments prints all 384 wells as "number label row column".
With labels prints the same line for each label.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		wells := make([]int, 0, plate.Wells)
		if len(args) == 0 {
			for w := 1; w <= plate.Wells; w++ {
				wells = append(wells, w)
			}
		}
		for _, label := range args {
			w, err := plate.LabelToWell(label)
			if err != nil {
				return err
			}
			wells = append(wells, w)
		}
		for _, w := range wells {
			id, _ := plate.WellToID(w)
			row, _ := plate.WellToRow(w)
			col, _ := plate.WellToColumn(w)
			fmt.Fprintf(out, "%d %s %d %d\n", w, id, row, col)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(wellsCmd)
}
