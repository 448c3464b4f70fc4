package services

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-auction-commerce/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestCommentService_Add(t *testing.T) {
	ctx := context.Background()
	listingID := uuid.New()
	authorID := uuid.New()

	tests := []struct {
		name        string
		body        string
		mockSetup   func(listings *MockListingGetter, writer *MockCommentWriter)
		expectedErr error
	}{
		{
			name: "successful comment",
			body: "Is shipping included?",
			mockSetup: func(listings *MockListingGetter, writer *MockCommentWriter) {
				listings.EXPECT().GetByID(ctx, listingID).Return(&models.ListingDB{ListingID: listingID, Active: true}, nil)
				writer.EXPECT().Save(ctx, gomock.Any(), listingID, authorID, "Is shipping included?").Return(nil)
			},
		},
		{
			name: "comment on a closed listing",
			body: "Congrats to the winner",
			mockSetup: func(listings *MockListingGetter, writer *MockCommentWriter) {
				listings.EXPECT().GetByID(ctx, listingID).Return(&models.ListingDB{ListingID: listingID, Active: false}, nil)
				writer.EXPECT().Save(ctx, gomock.Any(), listingID, authorID, "Congrats to the winner").Return(nil)
			},
		},
		{
			name:        "blank body",
			body:        "   \t  ",
			mockSetup:   func(listings *MockListingGetter, writer *MockCommentWriter) {},
			expectedErr: ErrEmptyComment,
		},
		{
			name: "listing not found",
			body: "hello",
			mockSetup: func(listings *MockListingGetter, writer *MockCommentWriter) {
				listings.EXPECT().GetByID(ctx, listingID).Return(nil, nil)
			},
			expectedErr: ErrListingNotFound,
		},
		{
			name: "save error",
			body: "hello",
			mockSetup: func(listings *MockListingGetter, writer *MockCommentWriter) {
				listings.EXPECT().GetByID(ctx, listingID).Return(&models.ListingDB{ListingID: listingID, Active: true}, nil)
				writer.EXPECT().Save(ctx, gomock.Any(), listingID, authorID, "hello").Return(errors.New("insert failed"))
			},
			expectedErr: errors.New("insert failed"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			listings := NewMockListingGetter(ctrl)
			writer := NewMockCommentWriter(ctrl)

			tt.mockSetup(listings, writer)

			svc := NewCommentService(listings, writer, nil)
			comment, err := svc.Add(ctx, listingID, authorID, tt.body)

			if tt.expectedErr != nil {
				assert.EqualError(t, err, tt.expectedErr.Error())
				assert.Nil(t, comment)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.body, comment.Body)
				assert.Equal(t, authorID, comment.UserID)
			}
		})
	}
}

func TestCommentService_List(t *testing.T) {
	ctx := context.Background()
	listingID := uuid.New()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reader := NewMockCommentReader(ctrl)
	reader.EXPECT().ListByListing(ctx, listingID).Return([]models.CommentDB{
		{CommentID: uuid.New(), Body: "second"},
		{CommentID: uuid.New(), Body: "first"},
	}, nil)

	svc := NewCommentService(nil, nil, reader)
	comments, err := svc.List(ctx, listingID)

	assert.NoError(t, err)
	assert.Len(t, comments, 2)
}
