/*
Copyright © 2023 Jonathan Taylor <jonrtaylor12@gmail.com>
*/

package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"pipguide/diagram"
	"pipguide/plate"
	"pipguide/server"
	"pipguide/surface/htmldom"
)

var (
	renderOutput string
	renderPPCM   float64
	renderDPI    float64
	renderWells  []string
	renderColor  string
	renderAlign  bool
)

// renderCmd represents the render command
var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Writes the host page with plates drawn in",
	Long: `Draws a plate into every configured container of the host page and
writes the page. --well highlights wells (with their row and column) on the
first container; --align shows the four corner wells instead.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ppcmSet := cmd.Flags().Changed("ppcm")
		dpiSet := cmd.Flags().Changed("dpi")
		if ppcmSet {
			if _, err := plate.Scale(renderPPCM); err != nil {
				return fmt.Errorf("--ppcm: %w", err)
			}
		}
		if dpiSet {
			if _, err := plate.Scale(renderDPI); err != nil {
				return fmt.Errorf("--dpi: %w", err)
			}
		}

		var w io.Writer = cmd.OutOrStdout()
		if renderOutput != "" {
			f, err := os.Create(renderOutput)
			if err != nil {
				return err
			}
			defer f.Close()
			w = f
		}
		return render(w, ppcmSet, dpiSet)
	},
}

func render(w io.Writer, ppcmSet, dpiSet bool) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	page, err := server.LoadPage(cfg.Page, cfg.Containers)
	if err != nil {
		return err
	}
	doc, err := htmldom.ParseString(page)
	if err != nil {
		return err
	}

	ppcm := cfg.PPCM
	if ppcmSet {
		ppcm = renderPPCM
	}
	plates := make([]*diagram.Diagram, 0, len(cfg.Containers))
	for _, id := range cfg.Containers {
		d, err := diagram.Generate(doc, id, ppcm)
		if err != nil {
			return err
		}
		if dpiSet {
			if err := d.ResizeByDPI(renderDPI); err != nil {
				return err
			}
		}
		plates = append(plates, d)
	}

	first := plates[0]
	switch {
	case renderAlign:
		color := renderColor
		if color == "" {
			color = cfg.AlignColor
		}
		if err := first.SetAlignmentMode(color); err != nil {
			return err
		}
	case len(renderWells) > 0:
		color := renderColor
		if color == "" {
			color = "red"
		}
		for _, label := range renderWells {
			if err := first.SetWellColor(label, color); err != nil {
				return fmt.Errorf("well %s on %s: %w", label, first.ContainerID(), err)
			}
		}
	}
	return doc.Render(w)
}

func init() {
	rootCmd.AddCommand(renderCmd)

	renderCmd.Flags().StringVarP(&renderOutput, "output", "o", "", "output file (default stdout)")
	renderCmd.Flags().Float64Var(&renderPPCM, "ppcm", 0, "pixels per cm (default from PIPGUIDE_PPCM)")
	renderCmd.Flags().Float64Var(&renderDPI, "dpi", 0, "size the plates for this screen density instead of --ppcm")
	renderCmd.Flags().StringSliceVar(&renderWells, "well", nil, "wells to highlight, e.g. D11")
	renderCmd.Flags().StringVar(&renderColor, "color", "", "row/column color for --well, corner color for --align")
	renderCmd.Flags().BoolVar(&renderAlign, "align", false, "show the alignment corners")
}
