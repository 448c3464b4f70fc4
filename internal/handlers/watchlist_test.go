package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-auction-commerce/internal/jwt"
	"github.com/sbilibin2017/gw-auction-commerce/internal/models"
	"github.com/sbilibin2017/gw-auction-commerce/internal/services"
	"github.com/stretchr/testify/assert"

	"github.com/go-chi/chi/v5"
)

func TestWatchlistToggleHandler(t *testing.T) {
	userID := uuid.New()
	listingID := uuid.New()
	validToken := "valid-token"

	tests := []struct {
		name               string
		listingParam       string
		setupMocks         func(mockToggler *MockWatchlistToggler, mockTokener *MockWatchlistTokener)
		expectedStatusCode int
		expectedWatched    *bool
	}{
		{
			name:         "toggled on",
			listingParam: listingID.String(),
			setupMocks: func(mockToggler *MockWatchlistToggler, mockTokener *MockWatchlistTokener) {
				mockTokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return(validToken, nil)
				mockTokener.EXPECT().GetClaims(gomock.Any(), validToken).Return(&jwt.Claims{UserID: userID}, nil)
				mockToggler.EXPECT().Toggle(gomock.Any(), userID, listingID).Return(true, nil)
			},
			expectedStatusCode: http.StatusOK,
			expectedWatched:    boolPtr(true),
		},
		{
			name:         "toggled off",
			listingParam: listingID.String(),
			setupMocks: func(mockToggler *MockWatchlistToggler, mockTokener *MockWatchlistTokener) {
				mockTokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return(validToken, nil)
				mockTokener.EXPECT().GetClaims(gomock.Any(), validToken).Return(&jwt.Claims{UserID: userID}, nil)
				mockToggler.EXPECT().Toggle(gomock.Any(), userID, listingID).Return(false, nil)
			},
			expectedStatusCode: http.StatusOK,
			expectedWatched:    boolPtr(false),
		},
		{
			name:         "unauthorized",
			listingParam: listingID.String(),
			setupMocks: func(mockToggler *MockWatchlistToggler, mockTokener *MockWatchlistTokener) {
				mockTokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("", http.ErrNoCookie)
			},
			expectedStatusCode: http.StatusUnauthorized,
		},
		{
			name:         "listing not found",
			listingParam: listingID.String(),
			setupMocks: func(mockToggler *MockWatchlistToggler, mockTokener *MockWatchlistTokener) {
				mockTokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return(validToken, nil)
				mockTokener.EXPECT().GetClaims(gomock.Any(), validToken).Return(&jwt.Claims{UserID: userID}, nil)
				mockToggler.EXPECT().Toggle(gomock.Any(), userID, listingID).Return(false, services.ErrListingNotFound)
			},
			expectedStatusCode: http.StatusNotFound,
		},
		{
			name:         "malformed listing ID",
			listingParam: "not-a-uuid",
			setupMocks: func(mockToggler *MockWatchlistToggler, mockTokener *MockWatchlistTokener) {
				mockTokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return(validToken, nil)
				mockTokener.EXPECT().GetClaims(gomock.Any(), validToken).Return(&jwt.Claims{UserID: userID}, nil)
			},
			expectedStatusCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockTokener := NewMockWatchlistTokener(ctrl)
			mockToggler := NewMockWatchlistToggler(ctrl)

			tt.setupMocks(mockToggler, mockTokener)

			req := httptest.NewRequest(http.MethodPost, "/listings/"+tt.listingParam+"/watchlist", nil)
			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("listingID", tt.listingParam)
			req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
			rr := httptest.NewRecorder()

			handler := NewWatchlistToggleHandler(mockToggler, mockTokener)
			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatusCode, rr.Code)

			if tt.expectedWatched != nil {
				var resp WatchlistToggleResponse
				err := json.NewDecoder(rr.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Equal(t, *tt.expectedWatched, resp.InWatchlist)
			}
		})
	}
}

func TestWatchlistListHandler(t *testing.T) {
	userID := uuid.New()
	validToken := "valid-token"

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockTokener := NewMockWatchlistListTokener(ctrl)
	mockLister := NewMockWatchlistLister(ctrl)

	mockTokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return(validToken, nil)
	mockTokener.EXPECT().GetClaims(gomock.Any(), validToken).Return(&jwt.Claims{UserID: userID}, nil)
	mockLister.EXPECT().List(gomock.Any(), userID).Return([]models.ListingDB{
		{ListingID: uuid.New(), Name: "watched"},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/watchlist", nil)
	rr := httptest.NewRecorder()

	handler := NewWatchlistListHandler(mockLister, mockTokener)
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp WatchlistListResponse
	err := json.NewDecoder(rr.Body).Decode(&resp)
	assert.NoError(t, err)
	assert.Len(t, resp.Listings, 1)
}

func TestWatchlistListHandler_Unauthorized(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockTokener := NewMockWatchlistListTokener(ctrl)
	mockLister := NewMockWatchlistLister(ctrl)

	mockTokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("", http.ErrNoCookie)

	req := httptest.NewRequest(http.MethodGet, "/watchlist", nil)
	rr := httptest.NewRecorder()

	handler := NewWatchlistListHandler(mockLister, mockTokener)
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func boolPtr(b bool) *bool { return &b }
