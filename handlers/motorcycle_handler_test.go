package handlers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DanielMotoForca/DanielMotos/models"
)

func TestCreateAndListMotorcycles(t *testing.T) {
	app, st, _ := newTestApp(t)
	token := loginToken(t, app)

	folder, err := st.CreateFolder(models.RootFolderID, "Estoque")
	require.NoError(t, err)

	for _, m := range []struct {
		title    string
		price    float64
		category string
	}{
		{"Fazer 250", 12000, "Naked"},
		{"Biz 125", 8000, "Scooter"},
		{"XRE 300", 15000, "Trail"},
	} {
		resp, _ := doJSON(t, app, http.MethodPost, "/api/admin/motorcycles", token, map[string]interface{}{
			"title":     m.title,
			"price":     m.price,
			"category":  m.category,
			"folder_id": folder.ID,
		})
		require.Equal(t, http.StatusCreated, resp.StatusCode)
	}

	resp, body := doJSON(t, app, http.MethodGet, "/api/motorcycles?category=Tudo&sort=asc", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	data := body["data"].([]interface{})
	require.Len(t, data, 3)
	var got []float64
	for _, item := range data {
		got = append(got, item.(map[string]interface{})["price"].(float64))
	}
	assert.Equal(t, []float64{8000, 12000, 15000}, got)

	// No match leaves an empty projection, not an error.
	resp, body = doJSON(t, app, http.MethodGet, "/api/motorcycles?q=xyz", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, body["data"])
}

func TestCreateMotorcycleValidation(t *testing.T) {
	app, st, _ := newTestApp(t)
	token := loginToken(t, app)

	folder, err := st.CreateFolder(models.RootFolderID, "Estoque")
	require.NoError(t, err)

	resp, _ := doJSON(t, app, http.MethodPost, "/api/admin/motorcycles", token, map[string]interface{}{
		"title":     "",
		"price":     10000,
		"category":  "Naked",
		"folder_id": folder.ID,
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Empty(t, st.Motorcycles("", "", ""))

	// Unknown category lands in the fallback bucket instead of failing.
	resp, body := doJSON(t, app, http.MethodPost, "/api/admin/motorcycles", token, map[string]interface{}{
		"title":     "Gold Wing",
		"price":     120000,
		"category":  "Touring",
		"folder_id": folder.ID,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created := body["data"].(map[string]interface{})
	assert.Equal(t, models.CategoryFallback, created["category"])
}

func TestGetMotorcycleWithGallery(t *testing.T) {
	app, st, _ := newTestApp(t)

	folder, err := st.CreateFolder(models.RootFolderID, "Sahara")
	require.NoError(t, err)
	item, err := st.AttachMedia(folder.ID, models.MediaTypeImage, "front.jpg", "data:image/jpeg;base64,abc")
	require.NoError(t, err)
	moto, err := st.CreateMotorcycle("Sahara 300", 28000, "Trail", folder.ID)
	require.NoError(t, err)

	// Detach after publication: the listing keeps its snapshot id but the
	// gallery simply skips what no longer resolves.
	require.NoError(t, st.DetachMedia(folder.ID, item.ID))

	resp, body := doJSON(t, app, http.MethodGet, "/api/motorcycles/"+moto.ID, "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	data := body["data"].(map[string]interface{})
	assert.Empty(t, data["media"])

	resp, _ = doJSON(t, app, http.MethodGet, "/api/motorcycles/moto-nope", "", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestDeleteMotorcycleEndpoint(t *testing.T) {
	app, st, _ := newTestApp(t)
	token := loginToken(t, app)

	moto, err := st.CreateMotorcycle("Fazer 250", 12000, "Naked", models.RootFolderID)
	require.NoError(t, err)

	resp, _ := doJSON(t, app, http.MethodDelete, "/api/admin/motorcycles/"+moto.ID, token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, st.Motorcycles("", "", ""))

	resp, _ = doJSON(t, app, http.MethodDelete, "/api/admin/motorcycles/"+moto.ID, token, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestContactLink(t *testing.T) {
	app, st, _ := newTestApp(t)

	moto, err := st.CreateMotorcycle("Sahara 300", 28000, "Trail", models.RootFolderID)
	require.NoError(t, err)

	resp, body := doJSON(t, app, http.MethodGet, "/api/motorcycles/"+moto.ID+"/contact", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	link := body["data"].(map[string]interface{})["url"].(string)
	assert.Contains(t, link, "https://wa.me/553182394144?text=")
	assert.Contains(t, link, "Sahara+300")
}
