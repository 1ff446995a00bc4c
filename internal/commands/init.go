package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/bursar/internal/accounts"
	"github.com/cleared-dev/bursar/internal/config"
)

// ConfigFile is the project configuration file written by init.
const ConfigFile = "bursar.yaml"

func newInitCommand() *cobra.Command {
	var name string
	var schoolType string

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Initialize a new bursar project",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			return runInit(cmd.Context(), cmd.OutOrStdout(), absDir, name, schoolType)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "school name (required)")
	_ = cmd.MarkFlagRequired("name")
	cmd.Flags().StringVar(&schoolType, "type", "boarding", "school type: day or boarding")

	return cmd
}

func runInit(ctx context.Context, out io.Writer, dir, name, schoolType string) error {
	if schoolType != "day" && schoolType != "boarding" {
		return fmt.Errorf("unknown school type %q: want day or boarding", schoolType)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating directory %s: %w", dir, err)
	}

	configPath := filepath.Join(dir, ConfigFile)
	if _, err := os.Stat(configPath); err == nil {
		return fmt.Errorf("%s already exists", configPath)
	}

	cfg := config.Default(name, schoolType)
	if err := config.Save(configPath, cfg); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	a, err := openApp(ctx, configPath)
	if err != nil {
		return err
	}
	defer a.Close()

	added, err := accounts.Seed(ctx, a.store, accounts.DefaultChart(schoolType))
	if err != nil {
		return fmt.Errorf("seeding chart of accounts: %w", err)
	}

	fmt.Fprintf(out, "Initialized bursar project for %s at %s (%d accounts)\n", name, dir, added)
	return nil
}
