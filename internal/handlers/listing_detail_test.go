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

func TestListingDetailHandler(t *testing.T) {
	viewerID := uuid.New()
	listingID := uuid.New()
	validToken := "valid-token"

	view := &models.ListingView{
		Listing: models.ListingDB{
			ListingID: listingID,
			Name:      "Vintage clock",
			Price:     150.0,
			Active:    true,
		},
		BidCount: 3,
	}

	tests := []struct {
		name               string
		listingParam       string
		setupMocks         func(mockViewer *MockListingViewer, mockComments *MockCommentLister, mockTokener *MockDetailTokener)
		expectedStatusCode int
	}{
		{
			name:         "authenticated viewer",
			listingParam: listingID.String(),
			setupMocks: func(mockViewer *MockListingViewer, mockComments *MockCommentLister, mockTokener *MockDetailTokener) {
				mockTokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return(validToken, nil)
				mockTokener.EXPECT().GetClaims(gomock.Any(), validToken).Return(&jwt.Claims{UserID: viewerID}, nil)
				mockViewer.EXPECT().View(gomock.Any(), listingID, &viewerID).Return(view, nil)
				mockComments.EXPECT().List(gomock.Any(), listingID).Return([]models.CommentDB{
					{CommentID: uuid.New(), Body: "nice clock"},
				}, nil)
			},
			expectedStatusCode: http.StatusOK,
		},
		{
			name:         "anonymous viewer still gets the page",
			listingParam: listingID.String(),
			setupMocks: func(mockViewer *MockListingViewer, mockComments *MockCommentLister, mockTokener *MockDetailTokener) {
				mockTokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("", http.ErrNoCookie)
				mockViewer.EXPECT().View(gomock.Any(), listingID, (*uuid.UUID)(nil)).Return(view, nil)
				mockComments.EXPECT().List(gomock.Any(), listingID).Return(nil, nil)
			},
			expectedStatusCode: http.StatusOK,
		},
		{
			name:         "expired token treated as anonymous",
			listingParam: listingID.String(),
			setupMocks: func(mockViewer *MockListingViewer, mockComments *MockCommentLister, mockTokener *MockDetailTokener) {
				mockTokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return(validToken, nil)
				mockTokener.EXPECT().GetClaims(gomock.Any(), validToken).Return(nil, http.ErrNoCookie)
				mockViewer.EXPECT().View(gomock.Any(), listingID, (*uuid.UUID)(nil)).Return(view, nil)
				mockComments.EXPECT().List(gomock.Any(), listingID).Return(nil, nil)
			},
			expectedStatusCode: http.StatusOK,
		},
		{
			name:         "listing not found",
			listingParam: listingID.String(),
			setupMocks: func(mockViewer *MockListingViewer, mockComments *MockCommentLister, mockTokener *MockDetailTokener) {
				mockTokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("", http.ErrNoCookie)
				mockViewer.EXPECT().View(gomock.Any(), listingID, (*uuid.UUID)(nil)).Return(nil, services.ErrListingNotFound)
			},
			expectedStatusCode: http.StatusNotFound,
		},
		{
			name:         "malformed listing ID",
			listingParam: "not-a-uuid",
			setupMocks: func(mockViewer *MockListingViewer, mockComments *MockCommentLister, mockTokener *MockDetailTokener) {
				mockTokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("", http.ErrNoCookie)
			},
			expectedStatusCode: http.StatusNotFound,
		},
		{
			name:         "comment read error",
			listingParam: listingID.String(),
			setupMocks: func(mockViewer *MockListingViewer, mockComments *MockCommentLister, mockTokener *MockDetailTokener) {
				mockTokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("", http.ErrNoCookie)
				mockViewer.EXPECT().View(gomock.Any(), listingID, (*uuid.UUID)(nil)).Return(view, nil)
				mockComments.EXPECT().List(gomock.Any(), listingID).Return(nil, assert.AnError)
			},
			expectedStatusCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockTokener := NewMockDetailTokener(ctrl)
			mockViewer := NewMockListingViewer(ctrl)
			mockComments := NewMockCommentLister(ctrl)

			tt.setupMocks(mockViewer, mockComments, mockTokener)

			req := httptest.NewRequest(http.MethodGet, "/listings/"+tt.listingParam, nil)
			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("listingID", tt.listingParam)
			req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
			rr := httptest.NewRecorder()

			handler := NewListingDetailHandler(mockViewer, mockComments, mockTokener)
			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatusCode, rr.Code)

			if rr.Code == http.StatusOK {
				var resp ListingDetailResponse
				err := json.NewDecoder(rr.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Equal(t, listingID, resp.View.Listing.ListingID)
				assert.Equal(t, 3, resp.View.BidCount)
			}
		})
	}
}
