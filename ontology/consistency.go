package ontology

import (
	"fmt"
	"time"

	"go.uber.org/zap"
)

// ConsistencyChecker aggregates cycle detection and structural warnings
// into a reasoning report.
//
// Enforcement is lazy: cycle-forming subclass edges are accepted at write
// time and only detected here.
type ConsistencyChecker struct {
	svc *Service
	log *zap.SugaredLogger
}

// Check runs the cycle probe over every known class. Any hit marks the
// ontology inconsistent with an error naming the offending class.
func (c *ConsistencyChecker) Check() (*ReasoningReport, error) {
	start := time.Now()

	report := &ReasoningReport{
		Consistent: true,
		Errors:     []string{},
		Warnings:   []string{},
	}

	classes, err := c.svc.AllClasses()
	if err != nil {
		return nil, err
	}

	for _, cls := range classes {
		if c.svc.Hierarchy.HasCycle(cls.ID) {
			report.Consistent = false
			report.Errors = append(report.Errors,
				fmt.Sprintf("Circular inheritance detected involving '%s'", cls.ID))
		}
	}

	report.Elapsed = time.Since(start)

	c.log.Infow("Consistency check complete",
		"consistent", report.Consistent,
		"errors", len(report.Errors),
		"elapsed", report.Elapsed,
	)
	return report, nil
}

// ValidateStructure wraps Check and additionally warns on classes with an
// empty parent list (excluding the root).
//
// Class creation always assigns the root as a fallback parent, so the
// no-parent warning only fires when the graph was mutated below the
// creation API.
func (c *ConsistencyChecker) ValidateStructure() (*StructureReport, error) {
	report := &StructureReport{
		Valid:    true,
		Errors:   []string{},
		Warnings: []string{},
	}

	consistency, err := c.Check()
	if err != nil {
		return nil, err
	}
	if !consistency.Consistent {
		report.Valid = false
		report.Errors = append(report.Errors, consistency.Errors...)
	}

	classes, err := c.svc.AllClasses()
	if err != nil {
		return nil, err
	}
	for _, cls := range classes {
		if cls.ID != RootClassID && len(cls.ParentClasses) == 0 {
			report.Warnings = append(report.Warnings,
				fmt.Sprintf("Class '%s' has no parent classes", cls.ID))
		}
	}

	return report, nil
}
