package reports

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/ModesteNGOMA/geofuite/internal/pkg/blobstore"
)

func newTestRouter(t *testing.T) (*gin.Engine, *Repository) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := blobstore.New(filepath.Join(t.TempDir(), "data.json"), 0)
	repo := NewRepository(store)

	router := gin.New()
	RegisterRoutes(router.Group("/api/v1"), repo)
	return router, repo
}

func postReport(t *testing.T, router *gin.Engine, payload map[string]any) *httptest.ResponseRecorder {
	t.Helper()

	body, err := json.Marshal(payload)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/v1/reports/", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

func TestCreateReportScenario(t *testing.T) {
	router, repo := newTestRouter(t)

	w := postReport(t, router, map[string]any{
		"address":       "12 Rue de la République",
		"claimantName":  "Jean Dupont",
		"claimantPhone": "0612345678",
	})

	require.Equal(t, 201, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	data := body["data"].(map[string]any)
	require.Equal(t, "list", data["nextView"])

	report := data["report"].(map[string]any)
	require.Equal(t, "NEW", report["status"])
	require.Equal(t, Today().String(), report["identificationDate"])
	require.NotEmpty(t, report["id"])
	require.Nil(t, report["coordinates"])

	require.Equal(t, int64(1), repo.Count())
	require.Equal(t, report["id"], repo.List(1, 50)[0].ID)
}

func TestCreateValidationFailure(t *testing.T) {
	router, repo := newTestRouter(t)

	w := postReport(t, router, map[string]any{
		"claimantName":  "Jean Dupont",
		"claimantPhone": "0612345678",
	})

	require.Equal(t, 422, w.Code)
	require.Equal(t, int64(0), repo.Count())
}

func TestCreateAcceptsFreeTextPhone(t *testing.T) {
	router, repo := newTestRouter(t)

	w := postReport(t, router, map[string]any{
		"address":       "12 Rue de la République",
		"claimantName":  "Jean Dupont",
		"claimantPhone": "standard: 0612345678, poste 12",
	})

	require.Equal(t, 201, w.Code)
	require.Equal(t, int64(1), repo.Count())
	require.Equal(t, "standard: 0612345678, poste 12", repo.List(1, 10)[0].ClaimantPhone)
}

func TestCreateRejectsOutOfRangeCoordinates(t *testing.T) {
	router, repo := newTestRouter(t)

	w := postReport(t, router, map[string]any{
		"address":       "12 Rue de la République",
		"claimantName":  "Jean Dupont",
		"claimantPhone": "0612345678",
		"coordinates":   map[string]any{"latitude": 123.0, "longitude": 2.35},
	})

	require.Equal(t, 422, w.Code)
	require.Equal(t, int64(0), repo.Count())
}

func TestCreateAssignsDistinctIDs(t *testing.T) {
	router, _ := newTestRouter(t)

	ids := map[string]bool{}
	for i := 0; i < 5; i++ {
		w := postReport(t, router, map[string]any{
			"address":       "12 Rue de la République",
			"claimantName":  "Jean Dupont",
			"claimantPhone": "0612345678",
		})
		require.Equal(t, 201, w.Code)

		var body map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		id := body["data"].(map[string]any)["report"].(map[string]any)["id"].(string)
		require.False(t, ids[id], "duplicate id %s", id)
		ids[id] = true
	}
	require.Len(t, ids, 5)
}

func TestCreateCoercesUnknownStatus(t *testing.T) {
	router, _ := newTestRouter(t)

	w := postReport(t, router, map[string]any{
		"address":       "12 Rue de la République",
		"claimantName":  "Jean Dupont",
		"claimantPhone": "0612345678",
		"status":        "EXPLODED",
	})

	require.Equal(t, 201, w.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	report := body["data"].(map[string]any)["report"].(map[string]any)
	require.Equal(t, "NEW", report["status"])
}

func TestSummaryWithCoordinates(t *testing.T) {
	router, repo := newTestRouter(t)

	report := testReport("with-coords", "12 Rue de la République")
	report.Coordinates = &Coordinates{Latitude: 48.8566, Longitude: 2.3522}
	require.NoError(t, repo.Create(report))

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/v1/reports/with-coords/summary", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, 200, w.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	data := body["data"].(map[string]any)
	require.Equal(t, true, data["requiresConfirmation"])
	require.Contains(t, data["navigationUrl"], "48.8566,2.3522")
	require.Contains(t, data["summary"], "12 Rue de la République")
	require.Contains(t, data["summary"], "Jean Dupont")
}

func TestSummaryWithoutCoordinates(t *testing.T) {
	router, repo := newTestRouter(t)
	require.NoError(t, repo.Create(testReport("no-coords", "3 Rue C")))

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/v1/reports/no-coords/summary", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, 200, w.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	data := body["data"].(map[string]any)
	require.Equal(t, false, data["requiresConfirmation"])
	require.NotContains(t, data, "navigationUrl")
}

func TestGetNotFound(t *testing.T) {
	router, _ := newTestRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/v1/reports/missing", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, 404, w.Code)
}

func TestListOrderAndPagination(t *testing.T) {
	router, repo := newTestRouter(t)

	for _, id := range []string{"a", "b", "c"} {
		require.NoError(t, repo.Create(testReport(id, "Rue "+id)))
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/v1/reports/?page=1&limit=2", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, 200, w.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Equal(t, float64(3), body["total"])

	items := body["data"].([]any)
	require.Len(t, items, 2)
	require.Equal(t, "c", items[0].(map[string]any)["id"])
	require.Equal(t, "b", items[1].(map[string]any)["id"])
}
