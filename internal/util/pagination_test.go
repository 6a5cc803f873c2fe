package util_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/okhotnikov/libman/internal/util"
)

func TestCalculate(t *testing.T) {
	from, limit := util.Calculate(0, 0)
	require.Equal(t, 0, from)
	require.Equal(t, 10, limit)

	from, limit = util.Calculate(3, 20)
	require.Equal(t, 40, from)
	require.Equal(t, 20, limit)

	_, limit = util.Calculate(1, 1000)
	require.Equal(t, 10, limit)
}

func TestFilterAndPage(t *testing.T) {
	items := []string{"Moby Dick", "Dune", "Dune Messiah", "Emma"}

	filtered := util.Filter(items, "dune", func(s string) string { return s })
	require.Equal(t, []string{"Dune", "Dune Messiah"}, filtered)

	require.Equal(t, items, util.Filter(items, "  ", func(s string) string { return s }))

	page := util.Page(filtered, 1, 1)
	require.Equal(t, []string{"Dune"}, page)
	page = util.Page(filtered, 2, 1)
	require.Equal(t, []string{"Dune Messiah"}, page)
	require.Nil(t, util.Page(filtered, 3, 1))
}
