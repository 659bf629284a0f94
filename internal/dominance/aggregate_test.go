package dominance

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MMY1924/Project-DA601P-Sales-Strategy-Analysis/internal/model"
)

func sale(state, method string) model.Sale {
	rev := 100.0
	return model.Sale{State: state, Method: method, Revenue: &rev, YearsAsCustomer: 5}
}

func repeat(state, method string, n int) []model.Sale {
	sales := make([]model.Sale, 0, n)
	for i := 0; i < n; i++ {
		sales = append(sales, sale(state, method))
	}
	return sales
}

func TestAggregateSharesSumTo100(t *testing.T) {
	var sales []model.Sale
	sales = append(sales, repeat("Texas", model.MethodEmail, 3)...)
	sales = append(sales, repeat("Texas", model.MethodCall, 4)...)
	sales = append(sales, repeat("Ohio", model.MethodEmailCall, 2)...)
	sales = append(sales, repeat("Ohio", model.MethodEmail, 1)...)

	rows := Aggregate(sales, model.CanonicalMethods())
	require.Len(t, rows, 2)

	for _, row := range rows {
		var sum float64
		for _, m := range model.CanonicalMethods() {
			share, ok := row.Shares[m]
			require.True(t, ok, "share for %q must be present, not missing", m)
			sum += share
		}
		assert.InDelta(t, 100.0, sum, 1e-9, "state %s", row.State)
	}
}

func TestAggregateDominance(t *testing.T) {
	var sales []model.Sale
	sales = append(sales, repeat("Texas", model.MethodEmail, 3)...)
	sales = append(sales, repeat("Texas", model.MethodCall, 7)...)

	rows := Aggregate(sales, model.CanonicalMethods())
	require.Len(t, rows, 1)

	row := rows[0]
	assert.Equal(t, model.MethodCall, row.DominantMethod)
	assert.InDelta(t, 70.0, row.Strength, 1e-9)
	assert.InDelta(t, 30.0, row.Shares[model.MethodEmail], 1e-9)
	assert.InDelta(t, 0.0, row.Shares[model.MethodEmailCall], 1e-9)
}

func TestAggregateTieBreakIsCanonicalOrder(t *testing.T) {
	// Email and Call tie at 50%. Call precedes Email in canonical order,
	// so Call must win regardless of record order.
	forward := append(repeat("Texas", model.MethodEmail, 5), repeat("Texas", model.MethodCall, 5)...)
	reversed := append(repeat("Texas", model.MethodCall, 5), repeat("Texas", model.MethodEmail, 5)...)

	for _, sales := range [][]model.Sale{forward, reversed} {
		rows := Aggregate(sales, model.CanonicalMethods())
		require.Len(t, rows, 1)
		assert.Equal(t, model.MethodCall, rows[0].DominantMethod)
		assert.InDelta(t, 50.0, rows[0].Strength, 1e-9)
	}
}

func TestAggregateStrengthMatchesDominantShare(t *testing.T) {
	var sales []model.Sale
	sales = append(sales, repeat("Iowa", model.MethodEmailCall, 6)...)
	sales = append(sales, repeat("Iowa", model.MethodEmail, 2)...)

	rows := Aggregate(sales, model.CanonicalMethods())
	require.Len(t, rows, 1)
	assert.InDelta(t, rows[0].Shares[rows[0].DominantMethod], rows[0].Strength, 1e-9)
}

func TestAggregateAttachesStateCodes(t *testing.T) {
	sales := append(repeat("Texas", model.MethodCall, 2), repeat("New York", model.MethodEmail, 3)...)

	rows := Aggregate(sales, model.CanonicalMethods())
	require.Len(t, rows, 2)

	byState := map[string]model.StateDominance{}
	for _, row := range rows {
		byState[row.State] = row
	}
	assert.Equal(t, "TX", byState["Texas"].Code)
	assert.Equal(t, "NY", byState["New York"].Code)
}

func TestAggregateKeepsUnknownStateWithEmptyCode(t *testing.T) {
	sales := repeat("Atlantis", model.MethodCall, 4)

	rows := Aggregate(sales, model.CanonicalMethods())
	require.Len(t, rows, 1)
	assert.Equal(t, "Atlantis", rows[0].State)
	assert.Empty(t, rows[0].Code)
	assert.InDelta(t, 100.0, rows[0].Strength, 1e-9)
}

func TestAggregateOutputSortedByState(t *testing.T) {
	var sales []model.Sale
	sales = append(sales, sale("Wyoming", model.MethodCall))
	sales = append(sales, sale("Alabama", model.MethodCall))
	sales = append(sales, sale("Montana", model.MethodCall))

	rows := Aggregate(sales, model.CanonicalMethods())
	require.Len(t, rows, 3)
	assert.Equal(t, "Alabama", rows[0].State)
	assert.Equal(t, "Montana", rows[1].State)
	assert.Equal(t, "Wyoming", rows[2].State)
}

func TestAggregateEmptyInput(t *testing.T) {
	rows := Aggregate(nil, model.CanonicalMethods())
	assert.Empty(t, rows)
}
