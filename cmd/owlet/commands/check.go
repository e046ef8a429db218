package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/owlet-db/owlet/errors"
)

// CheckCmd runs the consistency check and structural validation.
var CheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Check ontology consistency and structure",
	Long: `Run the reasoner's consistency check (circular inheritance detection)
and structural validation (orphaned classes) against the configured database.

Exits non-zero when the ontology is inconsistent.`,
	RunE: runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	svc, database, _, err := openService()
	if err != nil {
		return err
	}
	defer database.Close()

	report, err := svc.Consistency.ValidateStructure()
	if err != nil {
		return errors.Wrap(err, "validate ontology")
	}

	if report.Valid {
		fmt.Println("Ontology is consistent")
	} else {
		fmt.Println("Ontology is INCONSISTENT")
	}
	for _, e := range report.Errors {
		fmt.Printf("  error: %s\n", e)
	}
	for _, w := range report.Warnings {
		fmt.Printf("  warning: %s\n", w)
	}

	if !report.Valid {
		return errors.New("ontology validation failed")
	}
	return nil
}
