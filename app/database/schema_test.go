package database

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	tableNameRe  = regexp.MustCompile(`CREATE TABLE IF NOT EXISTS (\w+)`)
	foreignKeyRe = regexp.MustCompile(`REFERENCES\s+(\w+)\s*\([^)]+\)(?:\s+ON DELETE (CASCADE|SET NULL))?`)
)

// Deleting a school must take every dependent row with it. The chain runs
// entirely on foreign key actions, so the DDL is the contract: every foreign
// key along the school -> events -> teams/participants spine cascades, and no
// foreign key is left without an explicit ON DELETE action.
func TestSchemaDeleteActions(t *testing.T) {
	cascadeTargets := map[string]bool{
		"schools":      true,
		"events":       true,
		"teams":        true,
		"participants": true,
	}

	foreignKeys := 0
	for _, stmt := range createStatements {
		name := tableNameRe.FindStringSubmatch(stmt)
		require.NotNil(t, name, "statement without a table name: %.40q", stmt)
		table := name[1]

		for _, fk := range foreignKeyRe.FindAllStringSubmatch(stmt, -1) {
			foreignKeys++
			target, action := fk[1], fk[2]
			assert.NotEmpty(t, action,
				"%s: foreign key to %s declares no ON DELETE action", table, target)
			if cascadeTargets[target] {
				assert.Equal(t, "CASCADE", action,
					"%s: foreign key to %s must cascade", table, target)
			}
		}
	}
	// Every table except schools hangs off the tenant somewhere.
	assert.GreaterOrEqual(t, foreignKeys, len(createStatements)-1)
}
