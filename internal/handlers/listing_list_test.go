package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-auction-commerce/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestListingListHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockListingIndexer(ctrl)

	mockSvc.EXPECT().List(gomock.Any()).Return([]models.ListingDB{
		{ListingID: uuid.New(), Name: "newest", Active: true},
		{ListingID: uuid.New(), Name: "older", Active: false},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/listings", nil)
	rr := httptest.NewRecorder()

	handler := NewListingListHandler(mockSvc)
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp ListingListResponse
	err := json.NewDecoder(rr.Body).Decode(&resp)
	assert.NoError(t, err)
	assert.Len(t, resp.Listings, 2)
	assert.Equal(t, "newest", resp.Listings[0].Name)
}

func TestListingListHandler_Error(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockListingIndexer(ctrl)
	mockSvc.EXPECT().List(gomock.Any()).Return(nil, assert.AnError)

	req := httptest.NewRequest(http.MethodGet, "/listings", nil)
	rr := httptest.NewRecorder()

	handler := NewListingListHandler(mockSvc)
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}
