package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/osshare/platform-api/internal/catalog/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootAndHello(t *testing.T) {
	g := newTestRouter(store.NewMemory())

	w := doJSON(t, g, http.MethodGet, "/", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Open Source Sharing Platform API is running")

	w = doJSON(t, g, http.MethodGet, "/api/hello", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Hello from the backend API!")
}

func TestSchemaEndpoint(t *testing.T) {
	g := newTestRouter(store.NewMemory())

	w := doJSON(t, g, http.MethodGet, "/schema", "")
	require.Equal(t, http.StatusOK, w.Code)

	var schemas map[string]map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &schemas))
	require.Contains(t, schemas, "dataset")
	require.Contains(t, schemas, "tool")
	require.Contains(t, schemas, "snippet")

	ds := schemas["dataset"]
	assert.ElementsMatch(t, []interface{}{"name", "description", "url"}, ds["required"])
	sn := schemas["snippet"]
	assert.ElementsMatch(t, []interface{}{"title", "description", "language", "code"}, sn["required"])
}

func TestDiagnosticEndpointConnected(t *testing.T) {
	s := store.NewMemory()
	g := newTestRouter(s)

	// seed one collection so it shows up in the listing
	w := doJSON(t, g, http.MethodPost, "/api/tools",
		`{"name":"jq","description":"CLI JSON processor","repo_url":"https://github.com/jqlang/jq"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, g, http.MethodGet, "/test", "")
	require.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "✅ Running", resp["backend"])
	assert.Equal(t, "✅ Connected & Working", resp["database"])
	assert.Equal(t, "Connected", resp["connection_status"])
	assert.Contains(t, resp["collections"], "tool")
}

func TestDiagnosticEndpointDegraded(t *testing.T) {
	g := newTestRouter(nil)

	// store down is reported in-band, never as an HTTP error
	w := doJSON(t, g, http.MethodGet, "/test", "")
	require.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "✅ Running", resp["backend"])
	assert.Equal(t, "❌ Not Available", resp["database"])
	assert.Equal(t, "Not Connected", resp["connection_status"])
}
