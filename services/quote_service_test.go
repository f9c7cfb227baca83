package services

import (
	"testing"
	"time"

	"backend/entity"
	"backend/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newQuoteFixture(t *testing.T) (*gorm.DB, *QuoteService, *entity.User, *entity.DesignRequest) {
	t.Helper()
	db := newTestDB(t)
	repo := repository.NewDesignRequestRepository(db)
	svc := NewQuoteService(db, repo)

	user := createTestUser(t, db, "customer@example.com")
	dr := &entity.DesignRequest{
		ReferenceNo: "DSN-TEST0001",
		Description: "engraved band with a bezel-set sapphire",
		Status:      entity.DesignRequestNew,
		UserID:      user.ID,
	}
	require.NoError(t, db.Create(dr).Error)
	return db, svc, user, dr
}

func TestQuoteOfferThenAccept(t *testing.T) {
	db, svc, user, dr := newQuoteFixture(t)

	q, err := svc.Offer(dr.ID, 1450, time.Now().AddDate(0, 0, 14), "includes engraving")
	require.NoError(t, err)
	assert.Equal(t, entity.QuoteOffered, q.Status)

	var got entity.DesignRequest
	require.NoError(t, db.First(&got, dr.ID).Error)
	assert.Equal(t, entity.DesignRequestQuoted, got.Status)

	accepted, err := svc.Accept(user.ID, dr.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.QuoteAccepted, accepted.Status)

	require.NoError(t, db.First(&got, dr.ID).Error)
	assert.Equal(t, entity.DesignRequestAccepted, got.Status)
}

func TestQuoteDeclineReopensRequest(t *testing.T) {
	db, svc, user, dr := newQuoteFixture(t)

	_, err := svc.Offer(dr.ID, 900, time.Now().AddDate(0, 0, 7), "")
	require.NoError(t, err)

	require.NoError(t, svc.Decline(user.ID, dr.ID))

	var got entity.DesignRequest
	require.NoError(t, db.First(&got, dr.ID).Error)
	assert.Equal(t, entity.DesignRequestNew, got.Status)

	// back in the queue: the admin can quote again
	_, err = svc.Offer(dr.ID, 850, time.Now().AddDate(0, 0, 7), "revised")
	assert.NoError(t, err)
}

func TestQuoteOfferRequiresNewRequest(t *testing.T) {
	_, svc, _, dr := newQuoteFixture(t)

	_, err := svc.Offer(dr.ID, 1450, time.Now().AddDate(0, 0, 14), "")
	require.NoError(t, err)

	_, err = svc.Offer(dr.ID, 1500, time.Now().AddDate(0, 0, 14), "second")
	assert.ErrorIs(t, err, ErrWrongState)
}

func TestQuoteAcceptOnlyByRequester(t *testing.T) {
	db, svc, _, dr := newQuoteFixture(t)

	_, err := svc.Offer(dr.ID, 1450, time.Now().AddDate(0, 0, 14), "")
	require.NoError(t, err)

	other := createTestUser(t, db, "other@example.com")
	_, err = svc.Accept(other.ID, dr.ID)
	assert.ErrorIs(t, err, ErrNotRequester)
}

func TestQuoteExpiredCannotBeAccepted(t *testing.T) {
	db, svc, user, dr := newQuoteFixture(t)

	// expired offer planted directly; Offer refuses past dates
	q := &entity.Quote{
		AmountUSD:       1450,
		ValidUntil:      time.Now().Add(-time.Hour),
		Status:          entity.QuoteOffered,
		DesignRequestID: dr.ID,
	}
	require.NoError(t, db.Create(q).Error)
	require.NoError(t, db.Model(&entity.DesignRequest{}).Where("id = ?", dr.ID).
		Update("status", entity.DesignRequestQuoted).Error)

	_, err := svc.Accept(user.ID, dr.ID)
	assert.ErrorIs(t, err, ErrQuoteExpired)

	var gotQuote entity.Quote
	require.NoError(t, db.First(&gotQuote, q.ID).Error)
	assert.Equal(t, entity.QuoteExpired, gotQuote.Status)

	var gotReq entity.DesignRequest
	require.NoError(t, db.First(&gotReq, dr.ID).Error)
	assert.Equal(t, entity.DesignRequestNew, gotReq.Status)
}

func TestRejectClosesRequest(t *testing.T) {
	db, svc, _, dr := newQuoteFixture(t)

	require.NoError(t, svc.Reject(dr.ID))

	var got entity.DesignRequest
	require.NoError(t, db.First(&got, dr.ID).Error)
	assert.Equal(t, entity.DesignRequestRejected, got.Status)

	assert.ErrorIs(t, svc.Reject(dr.ID), ErrWrongState)
}
