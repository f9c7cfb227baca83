// services/order_transitions.go
package services

import (
	"errors"

	"gorm.io/gorm"
)

var ErrInvalidTransition = errors.New("invalid_or_conflict")

// ----- Payment-driven -----

// MarkAdvancePaid moves PendingAdvance -> InProduction once the 50% advance
// clears. Guarded so a double capture cannot advance twice.
func (s *OrderService) MarkAdvancePaid(tx *gorm.DB, orderID uint) error {
	affected, err := s.Repo.UpdateStatusGuard(tx, orderID, s.Status.PendingAdvance, s.Status.InProduction)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrInvalidTransition
	}
	return nil
}

// ----- Admin actions -----

func (s *OrderService) AdminMarkShipped(orderID uint) error {
	return s.guarded(orderID, s.Status.InProduction, s.Status.Shipped)
}

func (s *OrderService) AdminMarkDelivered(orderID uint) error {
	return s.guarded(orderID, s.Status.Shipped, s.Status.Delivered)
}

// AdminCancel only applies before the advance is paid; production work is
// never cancelled unilaterally.
func (s *OrderService) AdminCancel(orderID uint) error {
	return s.guarded(orderID, s.Status.PendingAdvance, s.Status.Cancelled)
}

func (s *OrderService) guarded(orderID, from, to uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		if _, err := s.Repo.GetOrder(orderID); err != nil {
			return err
		}
		affected, err := s.Repo.UpdateStatusGuard(tx, orderID, from, to)
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrInvalidTransition
		}
		return nil
	})
}
