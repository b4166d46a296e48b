package http_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/medstock-api/internal/application/alerting"
	"github.com/tu-usuario/medstock-api/internal/domain/entity"
	"github.com/tu-usuario/medstock-api/internal/domain/repository"
	apphttp "github.com/tu-usuario/medstock-api/internal/interfaces/http"
)

// stubAlertRepo es un AlertRepository en memoria para los tests del handler.
type stubAlertRepo struct{ alerts map[string]*entity.Alert }

var _ repository.AlertRepository = (*stubAlertRepo)(nil)

func (s *stubAlertRepo) Create(_ context.Context, a *entity.Alert) error {
	s.alerts[a.ID] = a
	return nil
}
func (s *stubAlertRepo) Update(context.Context, *entity.Alert) error { return nil }
func (s *stubAlertRepo) GetByID(_ context.Context, id string) (*entity.Alert, error) {
	return s.alerts[id], nil
}
func (s *stubAlertRepo) GetActive(context.Context, string, string, string) (*entity.Alert, error) {
	return nil, nil
}
func (s *stubAlertRepo) Resolve(_ context.Context, id string, at time.Time) error {
	if a, ok := s.alerts[id]; ok {
		a.Resolve(at)
	}
	return nil
}
func (s *stubAlertRepo) List(_ context.Context) ([]repository.AlertRow, error) {
	var out []repository.AlertRow
	for _, a := range s.alerts {
		out = append(out, repository.AlertRow{Alert: *a, FacilityCode: "HC001", CommodityCode: "ARV001"})
	}
	return out, nil
}
func (s *stubAlertRepo) CountActive(context.Context) (int, error) { return len(s.alerts), nil }

func buildAlertApp(repo *stubAlertRepo) *fiber.App {
	app := fiber.New()
	handler := apphttp.NewAlertHandler(alerting.NewService(repo))
	app.Get("/api/alerts", handler.List)
	app.Post("/api/alerts/:id/resolve", handler.Resolve)
	return app
}

func TestAlertHandler_List(t *testing.T) {
	repo := &stubAlertRepo{alerts: map[string]*entity.Alert{
		"a1": {ID: "a1", AlertType: entity.AlertTypeStockOut, AlertLevel: entity.AlertLevelCritical},
	}}
	app := buildAlertApp(repo)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/alerts", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body []map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body, 1)
	assert.Equal(t, "STOCK_OUT", body[0]["alert_type"])
}

func TestAlertHandler_ResolveInexistente(t *testing.T) {
	app := buildAlertApp(&stubAlertRepo{alerts: map[string]*entity.Alert{}})

	resp, err := app.Test(httptest.NewRequest("POST", "/api/alerts/no-existe/resolve", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	// El cuerpo de error usa la forma {"error": mensaje}.
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var body map[string]string
	require.NoError(t, json.Unmarshal(raw, &body))
	assert.Contains(t, body, "error")
	assert.NotEmpty(t, body["error"])
}

func TestAlertHandler_ResolveIdempotente(t *testing.T) {
	repo := &stubAlertRepo{alerts: map[string]*entity.Alert{
		"a1": {ID: "a1", AlertType: entity.AlertTypeLowStock},
	}}
	app := buildAlertApp(repo)

	for i := 0; i < 2; i++ {
		resp, err := app.Test(httptest.NewRequest("POST", "/api/alerts/a1/resolve", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode, "resolver repetido sigue siendo 200")
	}
	assert.True(t, repo.alerts["a1"].IsResolved)
}
