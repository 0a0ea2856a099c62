package delivery

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	mock_app "github.com/songbridge/songbridge/internal/app/mocks"
	"github.com/songbridge/songbridge/internal/app/models"
	"github.com/songbridge/songbridge/internal/utils/errs"
	"github.com/songbridge/songbridge/internal/utils/logger"
)

func TestMain(m *testing.M) {
	logger.InitTestLogger()
	m.Run()
}

func TestTaskDelivery_SubmitConversion(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockOrchestrator := mock_app.NewMockOrchestrator(ctrl)
	taskDelivery := CreateTaskDelivery(mockOrchestrator)

	taskID := uuid.New()

	tests := []struct {
		name             string
		body             string
		mockSetup        func()
		expectedStatus   int
		validateResponse func(t *testing.T, body []byte)
	}{
		{
			name: "Success",
			body: `{"link":"https://open.spotify.com/track/abc123"}`,
			mockSetup: func() {
				mockOrchestrator.EXPECT().
					Submit("https://open.spotify.com/track/abc123").
					Return(taskID, nil)
			},
			expectedStatus: http.StatusAccepted,
			validateResponse: func(t *testing.T, body []byte) {
				var response map[string]string
				assert.NoError(t, json.Unmarshal(body, &response))
				assert.Equal(t, taskID.String(), response["task_id"])
			},
		},
		{
			name: "InvalidLink",
			body: `{"link":"not-a-link"}`,
			mockSetup: func() {
				mockOrchestrator.EXPECT().
					Submit("not-a-link").
					Return(uuid.Nil, errs.ErrInvalidLink)
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "MalformedBody",
			body:           `{"link":`,
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			req := httptest.NewRequest("POST", "/api/v1/conversions", bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()

			taskDelivery.SubmitConversion(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.validateResponse != nil {
				tt.validateResponse(t, w.Body.Bytes())
			}
		})
	}
}

func TestTaskDelivery_SubmitDownload(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockOrchestrator := mock_app.NewMockOrchestrator(ctrl)
	taskDelivery := CreateTaskDelivery(mockOrchestrator)

	taskID := uuid.New()

	tests := []struct {
		name           string
		body           string
		mockSetup      func()
		expectedStatus int
	}{
		{
			name: "Success",
			body: `{"catalog_id":3135556}`,
			mockSetup: func() {
				mockOrchestrator.EXPECT().
					SubmitCatalogTrack(gomock.Any(), int64(3135556)).
					Return(taskID, nil)
			},
			expectedStatus: http.StatusAccepted,
		},
		{
			name: "TrackNotFound",
			body: `{"catalog_id":99}`,
			mockSetup: func() {
				mockOrchestrator.EXPECT().
					SubmitCatalogTrack(gomock.Any(), int64(99)).
					Return(uuid.Nil, errs.ErrTrackNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "MissingCatalogID",
			body:           `{}`,
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			req := httptest.NewRequest("POST", "/api/v1/downloads", bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()

			taskDelivery.SubmitDownload(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestTaskDelivery_GetAllTasks(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockOrchestrator := mock_app.NewMockOrchestrator(ctrl)
	taskDelivery := CreateTaskDelivery(mockOrchestrator)

	views := []models.TaskView{
		{TaskID: "b", Index: 2, Kind: models.KindDownload, Title: "Second", State: models.StateRunning},
		{TaskID: "a", Index: 1, Kind: models.KindDownload, Title: "First", State: models.StateComplete},
	}
	mockOrchestrator.EXPECT().Tasks().Return(views)

	req := httptest.NewRequest("GET", "/api/v1/tasks", nil)
	w := httptest.NewRecorder()

	taskDelivery.GetAllTasks(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var got []models.TaskView
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, views, got)
}

func TestTaskDelivery_CancelTask(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockOrchestrator := mock_app.NewMockOrchestrator(ctrl)
	taskDelivery := CreateTaskDelivery(mockOrchestrator)

	taskID := uuid.New()

	tests := []struct {
		name           string
		taskID         string
		mockSetup      func()
		expectedStatus int
	}{
		{
			name:   "Success",
			taskID: taskID.String(),
			mockSetup: func() {
				mockOrchestrator.EXPECT().CancelTask(taskID)
			},
			expectedStatus: http.StatusNoContent,
		},
		{
			name:           "InvalidID",
			taskID:         "not-a-uuid",
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			req := httptest.NewRequest("DELETE", "/api/v1/tasks/"+tt.taskID, nil)
			req = mux.SetURLVars(req, map[string]string{"id": tt.taskID})
			w := httptest.NewRecorder()

			taskDelivery.CancelTask(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestTaskDelivery_ClearTasks(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockOrchestrator := mock_app.NewMockOrchestrator(ctrl)
	taskDelivery := CreateTaskDelivery(mockOrchestrator)

	mockOrchestrator.EXPECT().ClearAll()

	req := httptest.NewRequest("DELETE", "/api/v1/tasks", nil)
	w := httptest.NewRecorder()

	taskDelivery.ClearTasks(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestTaskDelivery_Search(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockOrchestrator := mock_app.NewMockOrchestrator(ctrl)
	taskDelivery := CreateTaskDelivery(mockOrchestrator)

	tests := []struct {
		name             string
		query            string
		mockSetup        func()
		expectedStatus   int
		validateResponse func(t *testing.T, body []byte)
	}{
		{
			name:  "Success",
			query: "daft punk",
			mockSetup: func() {
				mockOrchestrator.EXPECT().
					Search(gomock.Any(), "daft punk").
					Return([]models.SearchResult{
						{ID: 7, Title: "Around the World", Artist: "Daft Punk", Album: "Homework", Duration: 428},
					}, nil)
			},
			expectedStatus: http.StatusOK,
			validateResponse: func(t *testing.T, body []byte) {
				var results []models.SearchResult
				assert.NoError(t, json.Unmarshal(body, &results))
				assert.Len(t, results, 1)
				assert.Equal(t, "Around the World", results[0].Title)
			},
		},
		{
			name:           "MissingQuery",
			query:          "",
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:  "NothingFound",
			query: "void",
			mockSetup: func() {
				mockOrchestrator.EXPECT().
					Search(gomock.Any(), "void").
					Return(nil, errs.ErrTrackNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			req := httptest.NewRequest("GET", "/api/v1/search", nil)
			q := req.URL.Query()
			q.Set("q", tt.query)
			req.URL.RawQuery = q.Encode()
			w := httptest.NewRecorder()

			taskDelivery.Search(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.validateResponse != nil {
				tt.validateResponse(t, w.Body.Bytes())
			}
		})
	}
}
