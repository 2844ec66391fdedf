package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/todo-tracker/internal/jwt"
	"github.com/sbilibin2017/todo-tracker/internal/middlewares"
	"github.com/sbilibin2017/todo-tracker/internal/models"
	"github.com/sbilibin2017/todo-tracker/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()

	tests := []struct {
		name         string
		query        string
		mockSetup    func(m *MockStatsComputer)
		expectedCode int
		expectedBody string
	}{
		{
			name:  "series and totals",
			query: "?range=this_month",
			mockSetup: func(m *MockStatsComputer) {
				m.EXPECT().Compute(gomock.Any(), userID, models.RangeThisMonth).Return(&models.Stats{
					Range: models.RangeThisMonth,
					Series: []models.StatsBucket{
						{Label: "2024-01-01", Count: 1},
						{Label: "2024-01-02", Count: 2},
					},
					CompletedTasks: models.CompletedTasks{ThisMonth: 3, ThisYear: 3, AllTime: 3},
				}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `{
				"labels":["2024-01-01","2024-01-02"],
				"data":[1,2],
				"range":"this_month",
				"completedTasks":{"today":0,"this_week":0,"this_month":3,"this_year":3,"all_time":3}
			}`,
		},
		{
			name:  "empty series is still arrays",
			query: "",
			mockSetup: func(m *MockStatsComputer) {
				m.EXPECT().Compute(gomock.Any(), userID, models.StatsRange("")).
					Return(&models.Stats{Range: models.RangeToday, Series: []models.StatsBucket{}}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `{
				"labels":[],
				"data":[],
				"range":"today",
				"completedTasks":{"today":0,"this_week":0,"this_month":0,"this_year":0,"all_time":0}
			}`,
		},
		{
			name:  "invalid range",
			query: "?range=bogus",
			mockSetup: func(m *MockStatsComputer) {
				m.EXPECT().Compute(gomock.Any(), userID, models.StatsRange("bogus")).Return(nil, services.ErrInvalidRange)
			},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"error":"Invalid range parameter"}`,
		},
		{
			name:  "storage failure",
			query: "?range=today",
			mockSetup: func(m *MockStatsComputer) {
				m.EXPECT().Compute(gomock.Any(), userID, models.RangeToday).Return(nil, errors.New("timeout"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: `{"error":"Internal server error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewMockStatsComputer(ctrl)
			tt.mockSetup(svc)

			req := httptest.NewRequest(http.MethodGet, "/api/stats"+tt.query, nil)
			req = req.WithContext(middlewares.WithUserID(req.Context(), userID))
			rr := httptest.NewRecorder()
			NewStatsHandler(svc)(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			assert.JSONEq(t, tt.expectedBody, rr.Body.String())
		})
	}
}

type fixedCompletions []time.Time

func (f fixedCompletions) FindCompletedSince(_ context.Context, _ uuid.UUID, start time.Time) ([]time.Time, error) {
	var out []time.Time
	for _, t := range f {
		if !t.Before(start) {
			out = append(out, t)
		}
	}
	return out, nil
}

func (f fixedCompletions) CountCompletedSince(ctx context.Context, userID uuid.UUID, start time.Time) (int64, error) {
	times, _ := f.FindCompletedSince(ctx, userID, start)
	return int64(len(times)), nil
}

// Exercises the authenticated route end to end with real tokens and aggregation.
func TestStatsRoute(t *testing.T) {
	now := time.Date(2024, 1, 20, 12, 0, 0, 0, time.UTC)
	store := fixedCompletions{
		time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC),
		time.Date(2024, 1, 2, 10, 0, 0, 0, time.UTC),
		time.Date(2024, 1, 2, 18, 0, 0, 0, time.UTC),
	}
	tokens := jwt.New(jwt.WithSecretKey("test-secret"), jwt.WithClock(func() time.Time { return now }))

	r := chi.NewRouter()
	r.With(middlewares.AuthMiddleware(tokens)).
		Get("/api/stats", NewStatsHandler(services.NewStatsService(store, func() time.Time { return now })))

	token, err := tokens.Generate(context.Background(), uuid.New())
	require.NoError(t, err)

	tests := []struct {
		name         string
		target       string
		auth         string
		expectedCode int
		expectedBody string
	}{
		{
			name:         "no authorization header",
			target:       "/api/stats",
			expectedCode: http.StatusUnauthorized,
			expectedBody: `{"error":"Authorization token missing or malformed"}`,
		},
		{
			name:         "tampered token",
			target:       "/api/stats",
			auth:         "Bearer " + token + "x",
			expectedCode: http.StatusUnauthorized,
			expectedBody: `{"error":"Invalid token"}`,
		},
		{
			name:         "bogus range",
			target:       "/api/stats?range=bogus",
			auth:         "Bearer " + token,
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"error":"Invalid range parameter"}`,
		},
		{
			name:         "this month",
			target:       "/api/stats?range=this_month",
			auth:         "Bearer " + token,
			expectedCode: http.StatusOK,
			expectedBody: `{
				"labels":["2024-01-01","2024-01-02"],
				"data":[1,2],
				"range":"this_month",
				"completedTasks":{"today":0,"this_week":0,"this_month":3,"this_year":3,"all_time":3}
			}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			if tt.auth != "" {
				req.Header.Set("Authorization", tt.auth)
			}
			rr := httptest.NewRecorder()
			r.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			assert.JSONEq(t, tt.expectedBody, rr.Body.String())
		})
	}
}
