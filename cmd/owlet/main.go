package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/owlet-db/owlet/cmd/owlet/commands"
	"github.com/owlet-db/owlet/config"
	"github.com/owlet-db/owlet/logger"
)

var rootCmd = &cobra.Command{
	Use:   "owlet",
	Short: "Owlet - Ontology reasoning over a labeled graph store",
	Long: `Owlet - Semantic ontology management backed by SQLite.

Owlet stores classes, properties, and instances as nodes in a generic
labeled graph and layers hierarchy traversal, property inheritance,
instance validation, and consistency checking on top.

Available commands:
  serve   - Start the ontology REST API server
  db      - Manage the graph database (migrate, stats)
  check   - Run the consistency check and structural validation
  seed    - Seed the demo university ontology
  version - Show version information

Examples:
  owlet serve              # Start API server on :5002
  owlet db migrate         # Apply pending schema migrations
  owlet db stats           # Show ontology statistics
  owlet check              # Check for circular inheritance`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}
		if err := logger.Initialize(cfg.Log.JSON); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(commands.ServeCmd)
	rootCmd.AddCommand(commands.DbCmd)
	rootCmd.AddCommand(commands.CheckCmd)
	rootCmd.AddCommand(commands.SeedCmd)
	rootCmd.AddCommand(commands.VersionCmd)
}

func main() {
	defer logger.Cleanup()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
