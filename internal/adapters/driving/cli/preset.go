package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/slotlab/slotcheck-cli/internal/core/domain"
)

var presetCmd = &cobra.Command{
	Use:   "preset",
	Short: "Manage calibration presets",
	Long: `Commands for storing and querying inventory grid calibrations.

A preset records the grid geometry (offset, cell size, columns, rows)
calibrated for one screen resolution. The classify command resolves a
resolution to the best stored preset: exact match first, then a
same-aspect-ratio preset to scale, then built-in defaults.`,
}

var presetSave struct {
	gridLeft   int
	gridTop    int
	cellWidth  int
	cellHeight int
	columns    int
	rows       int
}

var presetSaveCmd = &cobra.Command{
	Use:   "save <WxH>",
	Short: "Save a calibration preset for a resolution",
	Args:  cobra.ExactArgs(1),
	RunE:  runPresetSave,
}

var presetGetCmd = &cobra.Command{
	Use:   "get <WxH>",
	Short: "Show the preset for an exact resolution",
	Args:  cobra.ExactArgs(1),
	RunE:  runPresetGet,
}

var presetListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored presets",
	RunE:  runPresetList,
}

var presetDeleteCmd = &cobra.Command{
	Use:   "delete <WxH>",
	Short: "Delete the preset for a resolution",
	Args:  cobra.ExactArgs(1),
	RunE:  runPresetDelete,
}

var presetClassifyCmd = &cobra.Command{
	Use:   "classify <WxH>",
	Short: "Classify a resolution against stored presets",
	Args:  cobra.ExactArgs(1),
	RunE:  runPresetClassify,
}

func init() {
	presetSaveCmd.Flags().IntVar(&presetSave.gridLeft, "grid-left", 0, "x offset of the first cell")
	presetSaveCmd.Flags().IntVar(&presetSave.gridTop, "grid-top", 0, "y offset of the first cell")
	presetSaveCmd.Flags().IntVar(&presetSave.cellWidth, "cell-width", 0, "cell width in pixels")
	presetSaveCmd.Flags().IntVar(&presetSave.cellHeight, "cell-height", 0, "cell height in pixels")
	presetSaveCmd.Flags().IntVar(&presetSave.columns, "columns", 0, "grid columns")
	presetSaveCmd.Flags().IntVar(&presetSave.rows, "rows", 0, "grid rows")

	presetCmd.AddCommand(presetSaveCmd)
	presetCmd.AddCommand(presetGetCmd)
	presetCmd.AddCommand(presetListCmd)
	presetCmd.AddCommand(presetDeleteCmd)
	presetCmd.AddCommand(presetClassifyCmd)
	rootCmd.AddCommand(presetCmd)
}

// parseResolution parses a "WxH" argument like "1920x1080".
func parseResolution(arg string) (width, height int, err error) {
	parts := strings.SplitN(strings.ToLower(arg), "x", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid resolution %q, expected WxH like 1920x1080", arg)
	}

	width, err = strconv.Atoi(parts[0])
	if err == nil {
		height, err = strconv.Atoi(parts[1])
	}
	if err != nil || width <= 0 || height <= 0 {
		return 0, 0, fmt.Errorf("invalid resolution %q, expected WxH like 1920x1080", arg)
	}

	return width, height, nil
}

func runPresetSave(cmd *cobra.Command, args []string) error {
	if presetService == nil {
		return errors.New("preset service not configured")
	}

	width, height, err := parseResolution(args[0])
	if err != nil {
		return err
	}

	saved, err := presetService.Save(cmd.Context(), domain.CalibrationPreset{
		Width:      width,
		Height:     height,
		GridLeft:   presetSave.gridLeft,
		GridTop:    presetSave.gridTop,
		CellWidth:  presetSave.cellWidth,
		CellHeight: presetSave.cellHeight,
		Columns:    presetSave.columns,
		Rows:       presetSave.rows,
	})
	if err != nil {
		return fmt.Errorf("saving preset: %w", err)
	}

	cmd.Printf("Saved preset %s for %dx%d.\n", saved.ID, saved.Width, saved.Height)
	return nil
}

func runPresetGet(cmd *cobra.Command, args []string) error {
	if presetService == nil {
		return errors.New("preset service not configured")
	}

	width, height, err := parseResolution(args[0])
	if err != nil {
		return err
	}

	preset, err := presetService.Get(cmd.Context(), width, height)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("no preset for %dx%d", width, height)
		}
		return fmt.Errorf("getting preset: %w", err)
	}

	printPreset(cmd, preset)
	return nil
}

func runPresetList(cmd *cobra.Command, _ []string) error {
	if presetService == nil {
		return errors.New("preset service not configured")
	}

	presets, err := presetService.List(cmd.Context())
	if err != nil {
		return fmt.Errorf("listing presets: %w", err)
	}

	if len(presets) == 0 {
		cmd.Println("No presets stored.")
		return nil
	}

	for i := range presets {
		p := &presets[i]
		cmd.Printf("  %dx%d  grid %dx%d cells %dx%dpx at (%d,%d)\n",
			p.Width, p.Height, p.Columns, p.Rows,
			p.CellWidth, p.CellHeight, p.GridLeft, p.GridTop)
	}
	return nil
}

func runPresetDelete(cmd *cobra.Command, args []string) error {
	if presetService == nil {
		return errors.New("preset service not configured")
	}

	width, height, err := parseResolution(args[0])
	if err != nil {
		return err
	}

	if err := presetService.Delete(cmd.Context(), width, height); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("no preset for %dx%d", width, height)
		}
		return fmt.Errorf("deleting preset: %w", err)
	}

	cmd.Printf("Deleted preset for %dx%d.\n", width, height)
	return nil
}

func runPresetClassify(cmd *cobra.Command, args []string) error {
	if presetService == nil {
		return errors.New("preset service not configured")
	}

	width, height, err := parseResolution(args[0])
	if err != nil {
		return err
	}

	preset, match, err := presetService.Classify(cmd.Context(), width, height)
	if err != nil {
		return fmt.Errorf("classifying resolution: %w", err)
	}

	cmd.Printf("Match: %s\n", match)
	if preset != nil {
		cmd.Println()
		printPreset(cmd, preset)
	}
	return nil
}

func printPreset(cmd *cobra.Command, p *domain.CalibrationPreset) {
	cmd.Printf("Resolution: %dx%d\n", p.Width, p.Height)
	cmd.Printf("Grid:       %d columns x %d rows\n", p.Columns, p.Rows)
	cmd.Printf("Cells:      %dx%d px\n", p.CellWidth, p.CellHeight)
	cmd.Printf("Offset:     (%d, %d)\n", p.GridLeft, p.GridTop)
}
