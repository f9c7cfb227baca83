package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"backend/entity"
	"backend/repository"

	"github.com/plutov/paypal/v4"
	"gorm.io/gorm"
)

var ErrPayPalNotConfigured = errors.New("paypal not configured")

// PayPalService takes the 50% advance through PayPal Orders v2: one order per
// advance, captured on the customer's approval return.
type PayPalService struct {
	DB     *gorm.DB
	client *paypal.Client

	Payments *repository.PaymentRepository
	Orders   *OrderService

	statusCreated  uint
	statusCaptured uint
	statusFailed   uint
}

func NewPayPalService(
	db *gorm.DB,
	clientID, secret string,
	live bool,
	payments *repository.PaymentRepository,
	orders *OrderService,
) (*PayPalService, error) {
	s := &PayPalService{DB: db, Payments: payments, Orders: orders}

	if id, err := payments.GetStatusIDByName("Created"); err == nil {
		s.statusCreated = id
	}
	if id, err := payments.GetStatusIDByName("Captured"); err == nil {
		s.statusCaptured = id
	}
	if id, err := payments.GetStatusIDByName("Failed"); err == nil {
		s.statusFailed = id
	}

	if clientID == "" || secret == "" {
		// storefront still works, checkout endpoints answer 502
		return s, nil
	}

	base := paypal.APIBaseSandBox
	if live {
		base = paypal.APIBaseLive
	}
	client, err := paypal.NewClient(clientID, secret, base)
	if err != nil {
		return nil, err
	}
	s.client = client
	return s, nil
}

type AdvancePaymentRes struct {
	PaymentID     uint   `json:"paymentId"`
	PayPalOrderID string `json:"paypalOrderId"`
	AmountUSD     int64  `json:"amountUSD"`
}

// CreateAdvanceOrder opens a PayPal order for the order's advance amount and
// records a pending payment row. Nothing is persisted when PayPal refuses.
func (s *PayPalService) CreateAdvanceOrder(ctx context.Context, userID, orderID uint) (*AdvancePaymentRes, error) {
	if s.client == nil {
		return nil, ErrPayPalNotConfigured
	}

	o, err := s.Orders.Repo.GetOrderForUser(orderID, userID)
	if err != nil {
		return nil, errors.New("order not found")
	}
	if o.OrderStatusID != s.Orders.Status.PendingAdvance {
		return nil, errors.New("order is not awaiting the advance")
	}

	if _, err := s.client.GetAccessToken(ctx); err != nil {
		return nil, err
	}
	ppOrder, err := s.client.CreateOrder(ctx, paypal.OrderIntentCapture,
		[]paypal.PurchaseUnitRequest{{
			ReferenceID: o.ReferenceNo,
			Description: fmt.Sprintf("Advance payment for %s", o.ReferenceNo),
			Amount: &paypal.PurchaseUnitAmount{
				Currency: "USD",
				Value:    fmt.Sprintf("%d.00", o.AdvanceDueUSD),
			},
		}}, nil, nil)
	if err != nil {
		return nil, err
	}

	p := &entity.Payment{
		AmountUSD:       o.AdvanceDueUSD,
		Kind:            "Advance",
		PayPalOrderID:   ppOrder.ID,
		OrderID:         o.ID,
		PaymentStatusID: s.statusCreated,
	}
	if err := s.Payments.Create(p); err != nil {
		return nil, err
	}

	return &AdvancePaymentRes{PaymentID: p.ID, PayPalOrderID: ppOrder.ID, AmountUSD: p.AmountUSD}, nil
}

// CaptureAdvance captures the approved PayPal order and, on success, moves the
// jewelry order into production.
func (s *PayPalService) CaptureAdvance(ctx context.Context, userID, orderID uint, paypalOrderID string) error {
	if s.client == nil {
		return ErrPayPalNotConfigured
	}

	o, err := s.Orders.Repo.GetOrderForUser(orderID, userID)
	if err != nil {
		return errors.New("order not found")
	}
	p, err := s.Payments.FindByPayPalOrderID(paypalOrderID)
	if err != nil || p.OrderID != o.ID {
		return errors.New("payment not found")
	}

	if _, err := s.client.GetAccessToken(ctx); err != nil {
		return err
	}
	captured, err := s.client.CaptureOrder(ctx, paypalOrderID, paypal.CaptureOrderRequest{})
	if err != nil {
		_ = s.Payments.Update(p.ID, map[string]any{"payment_status_id": s.statusFailed})
		return err
	}

	captureID := ""
	for _, pu := range captured.PurchaseUnits {
		if pu.Payments == nil {
			continue
		}
		for _, cp := range pu.Payments.Captures {
			captureID = cp.ID
		}
	}

	now := time.Now()
	return s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&entity.Payment{}).Where("id = ?", p.ID).
			Updates(map[string]any{
				"payment_status_id":  s.statusCaptured,
				"pay_pal_capture_id": captureID,
				"paid_at":            &now,
			}).Error; err != nil {
			return err
		}
		return s.Orders.MarkAdvancePaid(tx, o.ID)
	})
}
