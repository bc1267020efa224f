package repository

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSumWasherTotalsSQL(t *testing.T) {
	query := strings.Join(strings.Fields(sumWasherTotalsSQL), " ")

	assert.Contains(t, query, "COALESCE(SUM(total), 0)")
	assert.Contains(t, query, "empleado_lavador_id = ?")
	// BETWEEN includes both ends of the range.
	assert.Contains(t, query, "fecha_orden BETWEEN ? AND ?")
	// Every status counts towards earnings.
	assert.NotContains(t, query, "estado")
	assert.Equal(t, 3, strings.Count(query, "?"))
}
