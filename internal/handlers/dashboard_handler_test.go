package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"go_4_track_keep/internal/middleware"
	"go_4_track_keep/internal/model"
	"go_4_track_keep/internal/service/mocks"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newDashboardRouter(h *DashboardHandler) *chi.Mux {
	r := chi.NewRouter()
	r.Group(func(r chi.Router) {
		r.Use(middleware.DevUserContextMiddleware)
		r.Get("/dashboard", h.GetDashboard)
	})
	return r
}

func TestDashboardHandler_GetDashboard(t *testing.T) {
	userID := uuid.New()

	t.Run("正常系: KPI一式が返る", func(t *testing.T) {
		mockService := new(mocks.DashboardService)
		handler := NewDashboardHandler(mockService, testLogger())
		router := newDashboardRouter(handler)

		dashboard := &model.DashboardResponse{
			TotalTracks:       2,
			PublishedTracks:   1,
			TotalModules:      4,
			DoneModules:       3,
			TodoModules:       1,
			OverallProgress:   75,
			OverdueModules:    1,
			OnTimeRate:        100,
			WeeklyCompletions: []model.SeriesPoint{{Label: "S1", Count: 0}},
			DailyActivity:     []model.SeriesPoint{{Label: "06/04", Count: 2}},
		}
		mockService.On("GetDashboard", mock.Anything, userID).Return(dashboard, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
		req.Header.Set("X-User-ID", userID.String())
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		var got model.DashboardResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, 75, got.OverallProgress)
		assert.Equal(t, 3, got.DoneModules)
		assert.Equal(t, 100, got.OnTimeRate)
		mockService.AssertExpectations(t)
	})

	t.Run("異常系: 認証ヘッダーなしは401", func(t *testing.T) {
		mockService := new(mocks.DashboardService)
		handler := NewDashboardHandler(mockService, testLogger())
		router := newDashboardRouter(handler)

		req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		mockService.AssertNotCalled(t, "GetDashboard", mock.Anything, mock.Anything)
	})
}
