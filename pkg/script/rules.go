package script

import (
	"fmt"

	"github.com/sdejongh/bcpilot/pkg/models"
)

// structureRule is one declarative validation rule applied by Build.
// Rules run in order and the first violation aborts the build.
type structureRule struct {
	name  string
	check func(commands []Command) *models.StructuralError
}

// comparisonKinds are commands that operate on a loaded folder pair
var comparisonKinds = map[Kind]bool{
	KindExpand: true,
	KindSelect: true,
	KindReport: true,
	KindSync:   true,
}

// actionKinds are commands that produce the script's actual work product.
// A script without one has nothing to execute, so load-only scripts are
// rejected rather than treated as an implicit comparison.
var actionKinds = map[Kind]bool{
	KindReport: true,
	KindSync:   true,
}

var structureRules = []structureRule{
	{
		name: "load-required",
		check: func(commands []Command) *models.StructuralError {
			for _, cmd := range commands {
				if cmd.Kind() == KindLoad {
					return nil
				}
			}
			return &models.StructuralError{
				Rule:    "load-required",
				Message: "script contains no load command",
			}
		},
	},
	{
		name: "load-before-comparison",
		check: func(commands []Command) *models.StructuralError {
			for _, cmd := range commands {
				if cmd.Kind() == KindLoad {
					return nil
				}
				if comparisonKinds[cmd.Kind()] {
					return &models.StructuralError{
						Rule:    "load-before-comparison",
						Message: fmt.Sprintf("%s command appears before any load command", cmd.Kind()),
					}
				}
			}
			return nil
		},
	},
	{
		name: "action-required",
		check: func(commands []Command) *models.StructuralError {
			for _, cmd := range commands {
				if actionKinds[cmd.Kind()] {
					return nil
				}
			}
			return &models.StructuralError{
				Rule:    "action-required",
				Message: "script contains no report or sync command",
			}
		},
	},
	{
		name: "criteria-before-sync",
		check: func(commands []Command) *models.StructuralError {
			seenCriteria := false
			for _, cmd := range commands {
				switch {
				case cmd.Kind() == KindCriteria:
					seenCriteria = true
				case cmd.Kind() == KindSync && !seenCriteria:
					return &models.StructuralError{
						Rule:    "criteria-before-sync",
						Message: "sync command requires comparison criteria to be set first",
					}
				}
			}
			return nil
		},
	},
}
