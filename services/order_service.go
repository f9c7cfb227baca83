package services

import (
	"errors"
	"math"

	"backend/entity"
	"backend/repository"
	"backend/utils"

	"gorm.io/gorm"
)

type StatusIDs struct {
	PendingAdvance uint
	InProduction   uint
	Shipped        uint
	Delivered      uint
	Cancelled      uint
}

type OrderService struct {
	DB          *gorm.DB
	Repo        *repository.OrderRepository
	ProductRepo *repository.ProductRepository
	DesignRepo  *repository.DesignRequestRepository

	Status StatusIDs
}

func NewOrderService(
	db *gorm.DB,
	repo *repository.OrderRepository,
	productRepo *repository.ProductRepository,
	designRepo *repository.DesignRequestRepository,
) *OrderService {
	s := &OrderService{DB: db, Repo: repo, ProductRepo: productRepo, DesignRepo: designRepo}

	if id, err := repo.GetStatusIDByName("PendingAdvance"); err == nil {
		s.Status.PendingAdvance = id
	}
	if id, err := repo.GetStatusIDByName("InProduction"); err == nil {
		s.Status.InProduction = id
	}
	if id, err := repo.GetStatusIDByName("Shipped"); err == nil {
		s.Status.Shipped = id
	}
	if id, err := repo.GetStatusIDByName("Delivered"); err == nil {
		s.Status.Delivered = id
	}
	if id, err := repo.GetStatusIDByName("Cancelled"); err == nil {
		s.Status.Cancelled = id
	}

	return s
}

// ----- DTOs from Controller -----

type OrderItemIn struct {
	ProductID uint `json:"productId"`
	Qty       int  `json:"qty"`
}
type CreateOrderReq struct {
	Items           []OrderItemIn `json:"items"`
	QuoteID         *uint         `json:"quoteId"`
	ShippingAddress string        `json:"shippingAddress"`
}

type CreateOrderRes struct {
	ID            uint   `json:"id"`
	ReferenceNo   string `json:"referenceNo"`
	TotalUSD      int64  `json:"totalUSD"`
	AdvanceDueUSD int64  `json:"advanceDueUSD"`
}

// CreateOrder builds an order from catalog lines and/or one accepted quote.
// The advance due is half the total, rounded up (50% upfront policy).
func (s *OrderService) CreateOrder(userID uint, req CreateOrderReq) (*CreateOrderRes, error) {
	if len(req.Items) == 0 && req.QuoteID == nil {
		return nil, errors.New("empty order")
	}

	type line struct {
		description string
		qty         int
		unitUSD     int64
		productID   *uint
		quoteID     *uint
	}
	lines := make([]line, 0, len(req.Items)+1)
	subtotal := int64(0)

	for _, it := range req.Items {
		if it.Qty < 1 {
			return nil, errors.New("qty must be at least 1")
		}
		p, err := s.ProductRepo.FindByID(it.ProductID)
		if err != nil {
			return nil, errors.New("product not found")
		}
		if p.ProductStatus.StatusName != "Published" {
			return nil, errors.New("product not available")
		}
		unit := int64(math.Round(p.CalculatedPriceUSD))
		pid := p.ID
		lines = append(lines, line{description: p.Name, qty: it.Qty, unitUSD: unit, productID: &pid})
		subtotal += unit * int64(it.Qty)
	}

	if req.QuoteID != nil {
		q, err := s.DesignRepo.FindQuote(*req.QuoteID)
		if err != nil {
			return nil, errors.New("quote not found")
		}
		if q.Status != entity.QuoteAccepted {
			return nil, errors.New("quote not accepted")
		}
		dr, err := s.DesignRepo.FindByID(q.DesignRequestID)
		if err != nil {
			return nil, err
		}
		if dr.UserID != userID {
			return nil, errors.New("forbidden")
		}
		qid := q.ID
		lines = append(lines, line{
			description: "Custom design " + dr.ReferenceNo,
			qty:         1,
			unitUSD:     q.AmountUSD,
			quoteID:     &qid,
		})
		subtotal += q.AmountUSD
	}

	total := subtotal
	advance := (total + 1) / 2

	var res *CreateOrderRes
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		// one bespoke piece per quote; a replayed quoteId must not open a second order
		if req.QuoteID != nil {
			var used int64
			if err := tx.Model(&entity.OrderItem{}).Where("quote_id = ?", *req.QuoteID).Count(&used).Error; err != nil {
				return err
			}
			if used > 0 {
				return errors.New("quote already used on an order")
			}
		}

		order := entity.Order{
			ReferenceNo:     utils.NewReferenceNo("ORD"),
			SubtotalUSD:     subtotal,
			TotalUSD:        total,
			AdvanceDueUSD:   advance,
			ShippingAddress: req.ShippingAddress,
			UserID:          userID,
			OrderStatusID:   s.Status.PendingAdvance,
		}
		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		for _, l := range lines {
			oi := entity.OrderItem{
				Description:  l.description,
				Qty:          l.qty,
				UnitPriceUSD: l.unitUSD,
				TotalUSD:     l.unitUSD * int64(l.qty),
				OrderID:      order.ID,
				ProductID:    l.productID,
				QuoteID:      l.quoteID,
			}
			if err := tx.Create(&oi).Error; err != nil {
				return err
			}
		}

		res = &CreateOrderRes{
			ID:            order.ID,
			ReferenceNo:   order.ReferenceNo,
			TotalUSD:      order.TotalUSD,
			AdvanceDueUSD: order.AdvanceDueUSD,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}
