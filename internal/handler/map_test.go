package handler_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rolodex-crm/backend/internal/domain"
	"github.com/rolodex-crm/backend/internal/handler"
)

func TestGetMap_ReturnsFeatureCollection(t *testing.T) {
	h := newHTTPHandler(handler.Services{Map: &mockMapServicer{
		overview: func(_ context.Context) (*geojson.FeatureCollection, error) {
			fc := geojson.NewFeatureCollection()
			f := geojson.NewFeature(orb.Point{-0.1278, 51.5074})
			f.Properties["name"] = "Ada Lovelace"
			fc.Append(f)
			return fc, nil
		},
	}})

	rec := do(t, h, http.MethodGet, "/map", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/geo+json", rec.Header().Get("Content-Type"))

	fc, err := geojson.UnmarshalFeatureCollection(rec.Body.Bytes())
	require.NoError(t, err)
	require.Len(t, fc.Features, 1)
	assert.Equal(t, "Ada Lovelace", fc.Features[0].Properties.MustString("name"))
}

func TestGetContactMap_NotFound_Returns404(t *testing.T) {
	h := newHTTPHandler(handler.Services{Map: &mockMapServicer{
		contactMap: func(_ context.Context, _ uuid.UUID) (*geojson.FeatureCollection, error) {
			return nil, domain.ErrNotFound
		},
	}})

	rec := do(t, h, http.MethodGet, "/contacts/"+uuid.NewString()+"/map", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetContactMap_PassesContactID(t *testing.T) {
	id := uuid.New()
	h := newHTTPHandler(handler.Services{Map: &mockMapServicer{
		contactMap: func(_ context.Context, got uuid.UUID) (*geojson.FeatureCollection, error) {
			assert.Equal(t, id, got)
			return geojson.NewFeatureCollection(), nil
		},
	}})

	rec := do(t, h, http.MethodGet, "/contacts/"+id.String()+"/map", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"type":"FeatureCollection"`)
}
