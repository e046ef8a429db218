package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/owlet-db/owlet/errors"
)

// SeedCmd seeds the demo university ontology.
var SeedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the demo university ontology",
	Long: `Populate the configured database with a small demo ontology:
Person with Professor/Student/Employee subclasses, required data
properties, and two instances. Does nothing if the ontology already
holds classes beyond the root.`,
	RunE: runSeed,
}

func runSeed(cmd *cobra.Command, args []string) error {
	svc, database, _, err := openService()
	if err != nil {
		return err
	}
	defer database.Close()

	if err := svc.SeedDemo(); err != nil {
		return errors.Wrap(err, "seed demo data")
	}

	fmt.Println("Demo ontology ready")
	return nil
}
