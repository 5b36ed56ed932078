package listing_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/refnet-api/pkg/listing"
)

func seq(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

func TestPaginate_ListaVacia(t *testing.T) {
	assert.Empty(t, listing.Paginate([]int{}, 3, 1))
	assert.Equal(t, 0, listing.TotalPages(0, 3))
}

func TestPaginate_UltimaPaginaParcial(t *testing.T) {
	items := seq(7)
	assert.Equal(t, []int{6}, listing.Paginate(items, 3, 3))
	assert.Equal(t, []int{0, 1, 2}, listing.Paginate(items, 3, 1))
	assert.Equal(t, []int{3, 4, 5}, listing.Paginate(items, 3, 2))
	assert.Equal(t, 3, listing.TotalPages(len(items), 3))
}

func TestPaginate_FueraDeRango(t *testing.T) {
	items := seq(7)
	assert.Empty(t, listing.Paginate(items, 3, 4))
	assert.Empty(t, listing.Paginate(items, 3, 0))
	assert.Empty(t, listing.Paginate(items, 3, -1))
	assert.Empty(t, listing.Paginate(items, 0, 1))
}

func TestTotalPages(t *testing.T) {
	cases := []struct{ n, size, want int }{
		{0, 6, 0},
		{1, 6, 1},
		{6, 6, 1},
		{7, 6, 2},
		{12, 3, 4},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, listing.TotalPages(tc.n, tc.size), "n=%d size=%d", tc.n, tc.size)
	}
}

func TestTallyYFilter(t *testing.T) {
	status := []string{"pending", "approved", "pending", "declined"}
	isPending := func(s string) bool { return s == "pending" }

	assert.Equal(t, 2, listing.Tally(status, isPending))
	assert.Equal(t, []string{"pending", "pending"}, listing.Filter(status, isPending))
	assert.Equal(t, 0, listing.Tally([]string{}, isPending))
}

func TestNewPage(t *testing.T) {
	p := listing.NewPage(seq(7), listing.RestockPageSize, 3)
	assert.Equal(t, []int{6}, p.Items)
	assert.Equal(t, 7, p.Total)
	assert.Equal(t, 3, p.TotalPages)
	assert.Equal(t, 3, p.PageSize)
}
