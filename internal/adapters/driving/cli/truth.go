package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/slotlab/slotcheck-cli/internal/adapters/driven/detectionfile"
	"github.com/slotlab/slotcheck-cli/internal/core/domain"
)

var truthCmd = &cobra.Command{
	Use:   "truth",
	Short: "Manage ground truth labelings",
	Long:  `Commands for importing, inspecting, and exporting ground truth labelings.`,
}

var truthImportCmd = &cobra.Command{
	Use:   "import <labelings.json>",
	Short: "Import ground truth labelings from a JSON file",
	Long: `Import labelings from a JSON array of entries:

  [
    {"image": "screenshots/inv_001.png", "items": ["Rusty Sword", "Health Potion"]}
  ]

Entries replace any stored labeling for the same image. Duplicate item
names are meaningful: the labeling is a multiset.`,
	Args: cobra.ExactArgs(1),
	RunE: runTruthImport,
}

var truthListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored labelings",
	RunE:  runTruthList,
}

var truthShowCmd = &cobra.Command{
	Use:   "show <image>",
	Short: "Show the labeling for an image",
	Args:  cobra.ExactArgs(1),
	RunE:  runTruthShow,
}

var truthDeleteCmd = &cobra.Command{
	Use:   "delete <image>",
	Short: "Delete the labeling for an image",
	Args:  cobra.ExactArgs(1),
	RunE:  runTruthDelete,
}

var truthExportCmd = &cobra.Command{
	Use:   "export <detections.json>",
	Short: "Store a pass's effective labeling as ground truth",
	Long: `Load a detection pass and store its effective labeling as the ground
truth entry for the image. Useful for bootstrapping truth from a pass
the reviewer has verified by eye.`,
	Args: cobra.ExactArgs(1),
	RunE: runTruthExport,
}

func init() {
	truthCmd.AddCommand(truthImportCmd)
	truthCmd.AddCommand(truthListCmd)
	truthCmd.AddCommand(truthShowCmd)
	truthCmd.AddCommand(truthDeleteCmd)
	truthCmd.AddCommand(truthExportCmd)
	rootCmd.AddCommand(truthCmd)
}

// truthFileEntry is the import file format for one labeling.
type truthFileEntry struct {
	Image string   `json:"image"`
	Items []string `json:"items"`
}

func runTruthImport(cmd *cobra.Command, args []string) error {
	if truthService == nil {
		return errors.New("truth service not configured")
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading labelings file: %w", err)
	}

	var raw []truthFileEntry
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("parsing labelings file: %w", err)
	}

	entries := make([]domain.GroundTruthEntry, 0, len(raw))
	for i, e := range raw {
		if strings.TrimSpace(e.Image) == "" {
			return fmt.Errorf("entry %d: missing image path", i)
		}
		entries = append(entries, domain.GroundTruthEntry{
			ImagePath: e.Image,
			Items:     e.Items,
		})
	}

	if err := truthService.Import(cmd.Context(), entries); err != nil {
		return fmt.Errorf("importing labelings: %w", err)
	}

	cmd.Printf("Imported %d labeling(s).\n", len(entries))
	return nil
}

func runTruthList(cmd *cobra.Command, _ []string) error {
	if truthService == nil {
		return errors.New("truth service not configured")
	}

	entries, err := truthService.List(cmd.Context())
	if err != nil {
		return fmt.Errorf("listing labelings: %w", err)
	}

	if len(entries) == 0 {
		cmd.Println("No labelings stored.")
		return nil
	}

	for _, entry := range entries {
		cmd.Printf("  %s (%d items)\n", entry.ImagePath, len(entry.Items))
	}
	return nil
}

func runTruthShow(cmd *cobra.Command, args []string) error {
	if truthService == nil {
		return errors.New("truth service not configured")
	}

	entry, err := truthService.Get(cmd.Context(), args[0])
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("no labeling for %q", args[0])
		}
		return fmt.Errorf("getting labeling: %w", err)
	}

	cmd.Println(entry.ImagePath)
	for _, item := range entry.Items {
		cmd.Printf("  %s\n", item)
	}
	return nil
}

func runTruthDelete(cmd *cobra.Command, args []string) error {
	if truthService == nil {
		return errors.New("truth service not configured")
	}

	if err := truthService.Delete(cmd.Context(), args[0]); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("no labeling for %q", args[0])
		}
		return fmt.Errorf("deleting labeling: %w", err)
	}

	cmd.Printf("Deleted labeling for %s.\n", args[0])
	return nil
}

func runTruthExport(cmd *cobra.Command, args []string) error {
	if truthService == nil || detectionStore == nil || correctionLedger == nil {
		return errors.New("truth service not configured")
	}

	if err := detectionfile.Load(args[0], detectionStore, correctionLedger); err != nil {
		return fmt.Errorf("loading detections: %w", err)
	}

	entry, err := truthService.ExportEffective(cmd.Context())
	if err != nil {
		return fmt.Errorf("exporting labeling: %w", err)
	}

	cmd.Printf("Stored %d item(s) as ground truth for %s.\n", len(entry.Items), entry.ImagePath)
	return nil
}
