package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"reel_lingo_backend/internal/middleware"
	"reel_lingo_backend/internal/model"
	svcmocks "reel_lingo_backend/internal/service/mocks"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newReadingRouter(userID uuid.UUID, catalog *svcmocks.CatalogService, submissions *svcmocks.SubmissionService) http.Handler {
	h := NewReadingHandler(catalog, submissions, nil)

	r := chi.NewRouter()
	r.Use(middleware.WithUserID(userID))
	r.Route("/reading", func(r chi.Router) {
		r.Get("/levels/{level_id}/texts", h.ListTexts)
		r.Get("/texts/{text_id}", h.GetText)
		r.Post("/texts/{text_id}/submit", h.Submit)
	})
	return r
}

func TestReadingHandler_Submit(t *testing.T) {
	userID := uuid.New()
	textID := uuid.New()

	t.Run("valid submission returns 201 with the result", func(t *testing.T) {
		catalog := new(svcmocks.CatalogService)
		submissions := new(svcmocks.SubmissionService)
		router := newReadingRouter(userID, catalog, submissions)

		result := &model.ReadingResult{
			AttemptID: uuid.New(),
			Score:     50,
			Correct:   1,
			Total:     2,
			Feedback:  "You got 1/2 (50%) correct.",
		}
		submissions.On("SubmitReading", mock.Anything, userID, textID, mock.AnythingOfType("*model.SubmitReadingRequest")).
			Run(func(args mock.Arguments) {
				req := args.Get(3).(*model.SubmitReadingRequest)
				assert.Equal(t, map[string]string{"q1": "Bread"}, req.Answers)
			}).Return(result, nil).Once()

		body := `{"answers":{"q1":"Bread"}}`
		req := httptest.NewRequest(http.MethodPost, fmt.Sprintf("/reading/texts/%s/submit", textID), strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusCreated, rec.Code)
		var got model.ReadingResult
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, result.AttemptID, got.AttemptID)
		assert.Equal(t, 50, got.Score)
		assert.Equal(t, "You got 1/2 (50%) correct.", got.Feedback)
		submissions.AssertExpectations(t)
	})

	t.Run("malformed JSON body returns 400", func(t *testing.T) {
		router := newReadingRouter(userID, new(svcmocks.CatalogService), new(svcmocks.SubmissionService))

		req := httptest.NewRequest(http.MethodPost, fmt.Sprintf("/reading/texts/%s/submit", textID), strings.NewReader(`{"answers":`))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		var resp model.APIErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "INVALID_REQUEST_BODY", resp.Error.Code)
	})

	t.Run("missing answers fails validation with 400", func(t *testing.T) {
		router := newReadingRouter(userID, new(svcmocks.CatalogService), new(svcmocks.SubmissionService))

		req := httptest.NewRequest(http.MethodPost, fmt.Sprintf("/reading/texts/%s/submit", textID), strings.NewReader(`{}`))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("malformed text id returns 400 without touching the service", func(t *testing.T) {
		submissions := new(svcmocks.SubmissionService)
		router := newReadingRouter(userID, new(svcmocks.CatalogService), submissions)

		req := httptest.NewRequest(http.MethodPost, "/reading/texts/not-a-uuid/submit", strings.NewReader(`{"answers":{}}`))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		submissions.AssertNotCalled(t, "SubmitReading")
	})

	t.Run("unknown text maps to 404", func(t *testing.T) {
		submissions := new(svcmocks.SubmissionService)
		router := newReadingRouter(userID, new(svcmocks.CatalogService), submissions)

		submissions.On("SubmitReading", mock.Anything, userID, textID, mock.AnythingOfType("*model.SubmitReadingRequest")).
			Return(nil, model.ErrNotFound).Once()

		req := httptest.NewRequest(http.MethodPost, fmt.Sprintf("/reading/texts/%s/submit", textID), strings.NewReader(`{"answers":{"q1":"x"}}`))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		var resp model.APIErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "NOT_FOUND", resp.Error.Code)
		submissions.AssertExpectations(t)
	})
}

func TestReadingHandler_ListTexts(t *testing.T) {
	userID := uuid.New()
	levelID := uuid.New()

	t.Run("returns texts for the level", func(t *testing.T) {
		catalog := new(svcmocks.CatalogService)
		router := newReadingRouter(userID, catalog, new(svcmocks.SubmissionService))

		texts := []model.ReadingTextResponse{{ID: uuid.New(), Title: "A Morning in Zagreb"}}
		catalog.On("ListReadingTexts", mock.Anything, levelID).Return(texts, nil).Once()

		req := httptest.NewRequest(http.MethodGet, fmt.Sprintf("/reading/levels/%s/texts", levelID), nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		var got []model.ReadingTextResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		require.Len(t, got, 1)
		assert.Equal(t, "A Morning in Zagreb", got[0].Title)
		catalog.AssertExpectations(t)
	})

	t.Run("unknown level maps to 404", func(t *testing.T) {
		catalog := new(svcmocks.CatalogService)
		router := newReadingRouter(userID, catalog, new(svcmocks.SubmissionService))

		catalog.On("ListReadingTexts", mock.Anything, levelID).Return(nil, model.ErrNotFound).Once()

		req := httptest.NewRequest(http.MethodGet, fmt.Sprintf("/reading/levels/%s/texts", levelID), nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		catalog.AssertExpectations(t)
	})
}
