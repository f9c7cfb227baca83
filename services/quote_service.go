package services

import (
	"errors"
	"log"
	"time"

	"backend/entity"
	"backend/repository"

	"gorm.io/gorm"
)

var (
	ErrQuoteExpired = errors.New("quote expired")
	ErrWrongState   = errors.New("wrong state")
	ErrNotRequester = errors.New("forbidden")
)

// QuoteService drives the design-request workflow:
// new -> quoted -> accepted/rejected, with decline sending the request back
// to new so the admin can re-quote.
type QuoteService struct {
	DB   *gorm.DB
	Repo *repository.DesignRequestRepository
}

func NewQuoteService(db *gorm.DB, repo *repository.DesignRequestRepository) *QuoteService {
	return &QuoteService{DB: db, Repo: repo}
}

// Offer records an admin quote against a new design request
func (s *QuoteService) Offer(requestID uint, amountUSD int64, validUntil time.Time, notes string) (*entity.Quote, error) {
	if amountUSD <= 0 {
		return nil, errors.New("amount must be positive")
	}
	if validUntil.Before(time.Now()) {
		return nil, errors.New("validity date in the past")
	}

	dr, err := s.Repo.FindByID(requestID)
	if err != nil {
		return nil, err
	}
	if dr.Status != entity.DesignRequestNew {
		return nil, ErrWrongState
	}

	q := &entity.Quote{
		AmountUSD:       amountUSD,
		ValidUntil:      validUntil,
		Notes:           notes,
		Status:          entity.QuoteOffered,
		DesignRequestID: dr.ID,
	}
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.Repo.CreateQuote(tx, q); err != nil {
			return err
		}
		return s.Repo.UpdateStatus(tx, dr.ID, entity.DesignRequestQuoted)
	})
	if err != nil {
		return nil, err
	}
	return q, nil
}

// Accept lets the requester take the standing offer. Offers past their
// validity date flip to expired instead.
func (s *QuoteService) Accept(userID, requestID uint) (*entity.Quote, error) {
	dr, err := s.Repo.FindByID(requestID)
	if err != nil {
		return nil, err
	}
	if dr.UserID != userID {
		return nil, ErrNotRequester
	}
	if dr.Status != entity.DesignRequestQuoted {
		return nil, ErrWrongState
	}

	q, err := s.Repo.LatestOfferedQuote(dr.ID)
	if err != nil {
		return nil, ErrWrongState
	}
	if time.Now().After(q.ValidUntil) {
		err := s.DB.Transaction(func(tx *gorm.DB) error {
			if err := s.Repo.UpdateQuoteStatus(tx, q.ID, entity.QuoteExpired); err != nil {
				return err
			}
			return s.Repo.UpdateStatus(tx, dr.ID, entity.DesignRequestNew)
		})
		if err != nil {
			log.Printf("quote %d expiry flip failed: %v", q.ID, err)
		}
		return nil, ErrQuoteExpired
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.Repo.UpdateQuoteStatus(tx, q.ID, entity.QuoteAccepted); err != nil {
			return err
		}
		return s.Repo.UpdateStatus(tx, dr.ID, entity.DesignRequestAccepted)
	})
	if err != nil {
		return nil, err
	}
	q.Status = entity.QuoteAccepted
	return q, nil
}

// Decline returns the request to the admin's queue
func (s *QuoteService) Decline(userID, requestID uint) error {
	dr, err := s.Repo.FindByID(requestID)
	if err != nil {
		return err
	}
	if dr.UserID != userID {
		return ErrNotRequester
	}
	if dr.Status != entity.DesignRequestQuoted {
		return ErrWrongState
	}

	q, err := s.Repo.LatestOfferedQuote(dr.ID)
	if err != nil {
		return ErrWrongState
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.Repo.UpdateQuoteStatus(tx, q.ID, entity.QuoteDeclined); err != nil {
			return err
		}
		return s.Repo.UpdateStatus(tx, dr.ID, entity.DesignRequestNew)
	})
}

// Reject closes a request without quoting
func (s *QuoteService) Reject(requestID uint) error {
	dr, err := s.Repo.FindByID(requestID)
	if err != nil {
		return err
	}
	if dr.Status != entity.DesignRequestNew && dr.Status != entity.DesignRequestQuoted {
		return ErrWrongState
	}
	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.Repo.UpdateStatus(tx, dr.ID, entity.DesignRequestRejected)
	})
}
