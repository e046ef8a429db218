package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/owlet-db/owlet/config"
	"github.com/owlet-db/owlet/db"
	"github.com/owlet-db/owlet/errors"
	"github.com/owlet-db/owlet/logger"
)

// DbCmd groups database management subcommands.
var DbCmd = &cobra.Command{
	Use:   "db",
	Short: "Manage the Owlet database",
	Long: `Manage the graph database backing the ontology.

Examples:
  owlet db migrate    # Apply pending schema migrations
  owlet db stats      # Show ontology statistics`,
}

var dbMigrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending schema migrations",
	RunE:  runDbMigrate,
}

var dbStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show ontology statistics",
	Long:  "Display counts of classes, properties by kind, instances, and the maximum hierarchy depth.",
	RunE:  runDbStats,
}

func init() {
	DbCmd.AddCommand(dbMigrateCmd)
	DbCmd.AddCommand(dbStatsCmd)
}

func runDbMigrate(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return errors.Wrap(err, "load configuration")
	}

	database, err := db.Open(cfg.Database.Path, logger.Logger)
	if err != nil {
		return errors.Wrap(err, "open database")
	}
	defer database.Close()

	if err := db.Migrate(database, logger.Logger); err != nil {
		return errors.Wrap(err, "migrate database")
	}

	fmt.Println("Migrations applied")
	return nil
}

func runDbStats(cmd *cobra.Command, args []string) error {
	svc, database, cfg, err := openService()
	if err != nil {
		return err
	}
	defer database.Close()

	stats, err := svc.Statistics()
	if err != nil {
		return errors.Wrap(err, "compute statistics")
	}

	fmt.Println("Ontology Statistics")
	fmt.Println("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━")
	fmt.Printf("Database Path:         %s\n", cfg.Database.Path)
	fmt.Printf("Total Classes:         %d\n", stats.TotalClasses)
	fmt.Printf("Total Properties:      %d\n", stats.TotalProperties)
	fmt.Printf("  Object Properties:     %d\n", stats.ObjectProperties)
	fmt.Printf("  Data Properties:       %d\n", stats.DataProperties)
	fmt.Printf("  Annotation Properties: %d\n", stats.AnnotationProperties)
	fmt.Printf("Total Instances:       %d\n", stats.TotalInstances)
	fmt.Printf("Max Hierarchy Depth:   %d\n", stats.MaxHierarchyDepth)
	return nil
}
