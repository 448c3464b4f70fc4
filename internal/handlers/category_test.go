package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-auction-commerce/internal/models"
	"github.com/sbilibin2017/gw-auction-commerce/internal/services"
	"github.com/stretchr/testify/assert"

	"github.com/go-chi/chi/v5"
)

func TestCategoryListHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockCategoryManager(ctrl)
	mockSvc.EXPECT().List(gomock.Any()).Return([]models.CategoryDB{
		{CategoryID: uuid.New(), Name: "Electronics"},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/categories", nil)
	rr := httptest.NewRecorder()

	handler := NewCategoryListHandler(mockSvc)
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp CategoryListResponse
	err := json.NewDecoder(rr.Body).Decode(&resp)
	assert.NoError(t, err)
	assert.Len(t, resp.Categories, 1)
}

func TestCategoryCreateHandler(t *testing.T) {
	tests := []struct {
		name               string
		requestBody        any
		setupMocks         func(mockSvc *MockCategoryManager)
		expectedStatusCode int
	}{
		{
			name:        "successful creation",
			requestBody: CategoryCreateRequest{Name: "Electronics"},
			setupMocks: func(mockSvc *MockCategoryManager) {
				mockSvc.EXPECT().Create(gomock.Any(), "Electronics").Return(&models.CategoryDB{
					CategoryID: uuid.New(),
					Name:       "Electronics",
				}, nil)
			},
			expectedStatusCode: http.StatusCreated,
		},
		{
			name:        "blank name",
			requestBody: CategoryCreateRequest{Name: " "},
			setupMocks: func(mockSvc *MockCategoryManager) {
				mockSvc.EXPECT().Create(gomock.Any(), " ").Return(nil, services.ErrInvalidCategory)
			},
			expectedStatusCode: http.StatusBadRequest,
		},
		{
			name:               "invalid request body",
			requestBody:        "invalid-json",
			setupMocks:         func(mockSvc *MockCategoryManager) {},
			expectedStatusCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockSvc := NewMockCategoryManager(ctrl)
			tt.setupMocks(mockSvc)

			var bodyBytes []byte
			switch v := tt.requestBody.(type) {
			case string:
				bodyBytes = []byte(v)
			default:
				bodyBytes, _ = json.Marshal(v)
			}

			req := httptest.NewRequest(http.MethodPost, "/categories", bytes.NewReader(bodyBytes))
			rr := httptest.NewRecorder()

			handler := NewCategoryCreateHandler(mockSvc)
			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatusCode, rr.Code)
		})
	}
}

func TestCategoryDeleteHandler(t *testing.T) {
	categoryID := uuid.New()

	tests := []struct {
		name               string
		categoryParam      string
		setupMocks         func(mockSvc *MockCategoryManager)
		expectedStatusCode int
	}{
		{
			name:          "successful delete",
			categoryParam: categoryID.String(),
			setupMocks: func(mockSvc *MockCategoryManager) {
				mockSvc.EXPECT().Delete(gomock.Any(), categoryID).Return(nil)
			},
			expectedStatusCode: http.StatusNoContent,
		},
		{
			name:          "category not found",
			categoryParam: categoryID.String(),
			setupMocks: func(mockSvc *MockCategoryManager) {
				mockSvc.EXPECT().Delete(gomock.Any(), categoryID).Return(services.ErrCategoryNotFound)
			},
			expectedStatusCode: http.StatusNotFound,
		},
		{
			name:               "malformed category ID",
			categoryParam:      "not-a-uuid",
			setupMocks:         func(mockSvc *MockCategoryManager) {},
			expectedStatusCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockSvc := NewMockCategoryManager(ctrl)
			tt.setupMocks(mockSvc)

			req := httptest.NewRequest(http.MethodDelete, "/categories/"+tt.categoryParam, nil)
			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("categoryID", tt.categoryParam)
			req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
			rr := httptest.NewRecorder()

			handler := NewCategoryDeleteHandler(mockSvc)
			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatusCode, rr.Code)
		})
	}
}
