package geo

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"github.com/rolodex-crm/backend/internal/domain"
)

// Feature property keys shared with the map front end.
const (
	PropKind       = "kind"
	PropContactID  = "contact_id"
	PropLocationID = "location_id"
	PropName       = "name"
	PropCity       = "city"
	PropCountry    = "country"

	KindLocation = "location"
	KindArc      = "arc"
)

// Point returns the GeoJSON position of a location.
func Point(l domain.Location) orb.Point {
	return orb.Point{l.Longitude, l.Latitude}
}

// LocationFeature wraps a location as a Point feature. name is the display
// name of the owning contact.
func LocationFeature(l domain.Location, name string) *geojson.Feature {
	f := geojson.NewFeature(Point(l))
	f.ID = l.ID.String()
	f.Properties[PropKind] = KindLocation
	f.Properties[PropContactID] = l.ContactID.String()
	f.Properties[PropLocationID] = l.ID.String()
	f.Properties["type"] = string(l.Type)
	f.Properties[PropName] = name
	f.Properties[PropCity] = l.City
	f.Properties[PropCountry] = l.Country
	return f
}

// ContactCollection builds the map of one contact: a point for every known
// location and an arc from the current location to each previous one.
// Without a current location no arcs are drawn.
func ContactCollection(d domain.ContactDetails) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	name := d.Contact.Name().String()

	if d.Current != nil {
		fc.Append(LocationFeature(*d.Current, name))
	}
	for _, l := range d.Past {
		fc.Append(LocationFeature(l, name))
	}
	for _, l := range d.Visited {
		fc.Append(LocationFeature(l, name))
	}

	if d.Current == nil {
		return fc
	}
	for _, past := range d.Past {
		arc := geojson.NewFeature(GreatCircle(Point(*d.Current), Point(past), DefaultArcSegments))
		arc.Properties[PropKind] = KindArc
		arc.Properties[PropContactID] = d.Contact.ID.String()
		arc.Properties[PropLocationID] = past.ID.String()
		fc.Append(arc)
	}
	return fc
}
