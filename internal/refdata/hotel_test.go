package refdata_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeevamp6/travel-planner/internal/refdata"
)

func TestHotelByID(t *testing.T) {
	h, ok := refdata.HotelByID("hotel-002")
	require.True(t, ok)
	assert.Equal(t, "Budget Inn Express", h.Name)

	_, ok = refdata.HotelByID("hotel-999")
	assert.False(t, ok)
}

func TestFilterHotels(t *testing.T) {
	luxury := refdata.FilterHotels("", "luxury")
	require.NotEmpty(t, luxury)
	for _, h := range luxury {
		assert.Equal(t, "luxury", h.Category)
	}

	delhi := refdata.FilterHotels("Delhi", "")
	require.NotEmpty(t, delhi)
	for _, h := range delhi {
		assert.Equal(t, "Delhi", h.State)
	}
}

func TestHotelsAlongRoute_CorridorOrdering(t *testing.T) {
	groups := refdata.HotelsAlongRoute("Bangalore", "Kashmir", nil)

	require.NotEmpty(t, groups)
	// Nearest state first, farthest last.
	assert.Equal(t, "Maharashtra", groups[0].State)
	assert.Equal(t, "Jammu & Kashmir", groups[len(groups)-1].State)
	for i := 1; i < len(groups); i++ {
		assert.GreaterOrEqual(t, groups[i].DistanceKM, groups[i-1].DistanceKM)
	}
}

func TestHotelsAlongRoute_IncludesAttractionStates(t *testing.T) {
	// Goa is off the Bangalore-Kashmir corridor but hosts a selected
	// attraction, so its hotels join the list.
	groups := refdata.HotelsAlongRoute("Bangalore", "Kashmir", []string{"Goa"})

	var found bool
	for _, g := range groups {
		if g.State == "Goa" {
			found = true
		}
	}
	assert.True(t, found)
}

func TestHotelsAlongRoute_KarnatakaRegional(t *testing.T) {
	// Karnataka origins heading anywhere but Kashmir stay regional, with
	// Karnataka itself at distance zero.
	groups := refdata.HotelsAlongRoute("Bangalore", "Goa", nil)

	require.NotEmpty(t, groups)
	assert.Equal(t, "Karnataka", groups[0].State)
	assert.Equal(t, 0, groups[0].DistanceKM)
}

func TestHotelsAlongRoute_DefaultBucket(t *testing.T) {
	groups := refdata.HotelsAlongRoute("Chennai", "Kolkata", nil)

	require.NotEmpty(t, groups)
	want := map[string]bool{"Maharashtra": true, "Delhi": true, "Karnataka": true, "Rajasthan": true}
	for _, g := range groups {
		assert.True(t, want[g.State], "unexpected state %s", g.State)
	}
}
