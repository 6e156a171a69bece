package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/srikarvechalapu/folio/internal/config"
	"github.com/srikarvechalapu/folio/internal/scaffold"
)

var (
	initSkeleton bool
	initForce    bool
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a folio config and starter content with an interactive wizard",
	Long: `Runs an interactive wizard, writes .folio.yml, and creates a starter
data/ directory with one document per section. Every list carries an
"_instructions" entry that explains the format and is never rendered.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, owner, err := config.RunWizard(cfgFile)
		if err != nil {
			return err
		}

		res, err := scaffold.Write(cfg.Content.Dir, *owner, scaffold.Options{Skeleton: initSkeleton, Force: initForce})
		if err != nil {
			return err
		}
		for _, p := range res.Written {
			fmt.Printf("  created %s\n", filepath.Join(cfg.Content.Dir, p))
		}
		for _, p := range res.Skipped {
			fmt.Printf("  kept    %s (already exists)\n", filepath.Join(cfg.Content.Dir, p))
		}

		if initSkeleton && cfg.Site.Skeleton == "" {
			cfg.Site.Skeleton = filepath.Join(cfg.Content.Dir, "index.html")
			if err := cfg.Save(cfgFile); err != nil {
				return fmt.Errorf("saving config: %w", err)
			}
		}

		fmt.Println("\nNext: edit data/*.json, then run `folio serve`.")
		return nil
	},
}

func init() {
	initCmd.Flags().BoolVar(&initSkeleton, "skeleton", true, "also write an editable index.html skeleton")
	initCmd.Flags().BoolVar(&initForce, "force", false, "overwrite existing starter files")
	rootCmd.AddCommand(initCmd)
}
