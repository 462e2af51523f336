package impl

import (
	"context"
	"testing"

	"playfinder/internal/domain/entity"
	domainerrors "playfinder/internal/domain/errors"
	"playfinder/internal/domain/repository"
	mockRepo "playfinder/internal/mocks/repository"
	"playfinder/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newNewsletterServiceForTest(t *testing.T) (usecase.NewsletterUsecase, *mockRepo.MockNewsletterRepository) {
	mockNewsletterRepo := mockRepo.NewMockNewsletterRepository(t)

	svc := NewNewsletterService(NewsletterServiceParams{
		NewsletterRepo: mockNewsletterRepo,
		Logger:         newDiscardLogger(),
	})

	return svc, mockNewsletterRepo
}

func TestNewsletterService_Subscribe_Success(t *testing.T) {
	svc, mockNewsletterRepo := newNewsletterServiceForTest(t)

	ctx := context.Background()
	mockNewsletterRepo.On("Subscribe", ctx, "sam@example.com").
		Return(&entity.NewsletterSubscription{Email: "sam@example.com"}, nil)

	subscription, err := svc.Subscribe(ctx, "  Sam@Example.com ")
	require.NoError(t, err)
	assert.Equal(t, "sam@example.com", subscription.Email)
}

func TestNewsletterService_Subscribe_InvalidEmail(t *testing.T) {
	svc, _ := newNewsletterServiceForTest(t)

	subscription, err := svc.Subscribe(context.Background(), "not-an-email")
	assert.Nil(t, subscription)
	require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestNewsletterService_Subscribe_AlreadySubscribedIsIdempotent(t *testing.T) {
	svc, mockNewsletterRepo := newNewsletterServiceForTest(t)

	ctx := context.Background()
	mockNewsletterRepo.On("Subscribe", ctx, "sam@example.com").
		Return(nil, repository.ErrAlreadySubscribed)

	subscription, err := svc.Subscribe(ctx, "sam@example.com")
	require.NoError(t, err)
	assert.Equal(t, "sam@example.com", subscription.Email)
}
