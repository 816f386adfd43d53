package geo_test

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	orbgeo "github.com/paulmach/orb/geo"
	"github.com/paulmach/orb/geojson"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rolodex-crm/backend/internal/domain"
	"github.com/rolodex-crm/backend/internal/geo"
)

var (
	london  = orb.Point{-0.1276, 51.5072}
	newYork = orb.Point{-74.0060, 40.7128}
)

func TestGreatCircle_EndpointsAndCount(t *testing.T) {
	line := geo.GreatCircle(london, newYork, 50)

	require.Len(t, line, 51)
	assert.Equal(t, london, line[0])
	assert.Equal(t, newYork, line[50])
}

func TestGreatCircle_PointsLieOnShortestPath(t *testing.T) {
	line := geo.GreatCircle(london, newYork, 20)

	// Every step along a great circle has the same length, and the sum of the
	// steps equals the direct distance.
	total := orbgeo.Distance(london, newYork)
	step := total / 20
	var sum float64
	for i := 1; i < len(line); i++ {
		d := orbgeo.Distance(line[i-1], line[i])
		assert.InDelta(t, step, d, 1, "segment %d", i)
		sum += d
	}
	assert.InDelta(t, total, sum, 5)
}

func TestGreatCircle_ArcBulgesPoleward(t *testing.T) {
	line := geo.GreatCircle(london, newYork, 10)

	// The London–New York route passes north of both endpoints.
	mid := line[5]
	assert.Greater(t, mid.Lat(), math.Max(london.Lat(), newYork.Lat()))
}

func TestGreatCircle_CoincidentPoints(t *testing.T) {
	line := geo.GreatCircle(london, london, 50)

	assert.Equal(t, orb.LineString{london, london}, line)
}

func TestGreatCircle_AntipodalPoints(t *testing.T) {
	a, b := orb.Point{0, 0}, orb.Point{180, 0}

	line := geo.GreatCircle(a, b, 50)

	assert.Equal(t, orb.LineString{a, b}, line, "no unique shortest path")
}

func TestGreatCircle_ShortHopStillInterpolates(t *testing.T) {
	// Two ends of Westminster Bridge, a few hundred metres apart.
	a, b := orb.Point{-0.1246, 51.5008}, orb.Point{-0.1196, 51.5009}

	line := geo.GreatCircle(a, b, 4)

	require.Len(t, line, 5)
	assert.InDelta(t, orbgeo.Distance(a, b)/4, orbgeo.Distance(line[0], line[1]), 0.5)
}

func TestGreatCircle_NonPositiveSegments(t *testing.T) {
	line := geo.GreatCircle(london, newYork, 0)

	assert.Equal(t, orb.LineString{london, newYork}, line)
}

func TestContactCollection_ArcsFromCurrentToEachPrevious(t *testing.T) {
	contactID := uuid.New()
	current := domain.Location{ID: uuid.New(), ContactID: contactID, Type: domain.LocationCurrent, City: "London", Latitude: london.Lat(), Longitude: london.Lon()}
	past := domain.Location{ID: uuid.New(), ContactID: contactID, Type: domain.LocationPrevious, City: "New York", Latitude: newYork.Lat(), Longitude: newYork.Lon()}
	visited := domain.Location{ID: uuid.New(), ContactID: contactID, Type: domain.LocationVisited, City: "Paris", Latitude: 48.8566, Longitude: 2.3522}

	fc := geo.ContactCollection(domain.ContactDetails{
		Contact: domain.Contact{ID: contactID, FirstName: "Ada", LastName: "Lovelace"},
		Current: &current,
		Past:    []domain.Location{past},
		Visited: []domain.Location{visited},
	})

	require.Len(t, fc.Features, 4)
	assert.Equal(t, "Ada Lovelace", fc.Features[0].Properties[geo.PropName])

	arc := fc.Features[3]
	assert.Equal(t, geo.KindArc, arc.Properties[geo.PropKind])
	line, ok := arc.Geometry.(orb.LineString)
	require.True(t, ok)
	assert.Len(t, line, geo.DefaultArcSegments+1)

	// The collection must serialise as standard GeoJSON.
	raw, err := json.Marshal(fc)
	require.NoError(t, err)
	back, err := geojson.UnmarshalFeatureCollection(raw)
	require.NoError(t, err)
	assert.Len(t, back.Features, 4)
}

func TestContactCollection_NoCurrentNoArcs(t *testing.T) {
	contactID := uuid.New()
	past := domain.Location{ID: uuid.New(), ContactID: contactID, Type: domain.LocationPrevious, Latitude: 1, Longitude: 2}

	fc := geo.ContactCollection(domain.ContactDetails{
		Contact: domain.Contact{ID: contactID},
		Past:    []domain.Location{past},
	})

	require.Len(t, fc.Features, 1)
	assert.Equal(t, geo.KindLocation, fc.Features[0].Properties[geo.PropKind])
	assert.Equal(t, domain.UnknownContactName, fc.Features[0].Properties[geo.PropName])
}
