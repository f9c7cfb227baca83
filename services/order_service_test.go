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

func newOrderFixture(t *testing.T) (*gorm.DB, *OrderService, *entity.User) {
	t.Helper()
	db := newTestDB(t)
	svc := NewOrderService(db,
		repository.NewOrderRepository(db),
		repository.NewProductRepository(db),
		repository.NewDesignRequestRepository(db),
	)
	require.NotZero(t, svc.Status.PendingAdvance)
	user := createTestUser(t, db, "buyer@example.com")
	return db, svc, user
}

func createPublishedProduct(t *testing.T, db *gorm.DB, name string, priceUSD float64) *entity.Product {
	t.Helper()
	var status entity.ProductStatus
	if err := db.Where("status_name = ?", "Published").First(&status).Error; err != nil {
		status = entity.ProductStatus{StatusName: "Published"}
		require.NoError(t, db.Create(&status).Error)
	}
	cat := entity.ProductCategory{CategoryName: "Rings"}
	require.NoError(t, db.FirstOrCreate(&cat, cat).Error)

	p := &entity.Product{
		Name:               name,
		CalculatedPriceUSD: priceUSD,
		MetalType:          "18k Gold",
		ProductCategoryID:  cat.ID,
		ProductStatusID:    status.ID,
	}
	require.NoError(t, db.Create(p).Error)
	return p
}

func TestCreateOrderFromCatalogLines(t *testing.T) {
	db, svc, user := newOrderFixture(t)
	ring := createPublishedProduct(t, db, "Aurelia Ring", 1000)
	band := createPublishedProduct(t, db, "Plain Band", 251)

	res, err := svc.CreateOrder(user.ID, CreateOrderReq{
		Items: []OrderItemIn{
			{ProductID: ring.ID, Qty: 1},
			{ProductID: band.ID, Qty: 2},
		},
		ShippingAddress: "12 MG Road, Bengaluru",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(1502), res.TotalUSD)
	// advance is half the total, rounded up
	assert.Equal(t, int64(751), res.AdvanceDueUSD)
	assert.NotEmpty(t, res.ReferenceNo)

	items, err := svc.Repo.Items(res.ID)
	require.NoError(t, err)
	assert.Len(t, items, 2)

	o, err := svc.Repo.GetOrder(res.ID)
	require.NoError(t, err)
	assert.Equal(t, svc.Status.PendingAdvance, o.OrderStatusID)
}

func TestCreateOrderFromAcceptedQuote(t *testing.T) {
	db, svc, user := newOrderFixture(t)

	dr := &entity.DesignRequest{
		ReferenceNo: "DSN-ABCD1234",
		Description: "custom pendant",
		Status:      entity.DesignRequestAccepted,
		UserID:      user.ID,
	}
	require.NoError(t, db.Create(dr).Error)
	q := &entity.Quote{
		AmountUSD:       2301,
		ValidUntil:      time.Now().AddDate(0, 0, 7),
		Status:          entity.QuoteAccepted,
		DesignRequestID: dr.ID,
	}
	require.NoError(t, db.Create(q).Error)

	qid := q.ID
	res, err := svc.CreateOrder(user.ID, CreateOrderReq{QuoteID: &qid})
	require.NoError(t, err)
	assert.Equal(t, int64(2301), res.TotalUSD)
	assert.Equal(t, int64(1151), res.AdvanceDueUSD)
}

func TestCreateOrderRejectsReusedQuote(t *testing.T) {
	db, svc, user := newOrderFixture(t)

	dr := &entity.DesignRequest{
		ReferenceNo: "DSN-EFGH5678",
		Description: "custom brooch",
		Status:      entity.DesignRequestAccepted,
		UserID:      user.ID,
	}
	require.NoError(t, db.Create(dr).Error)
	q := &entity.Quote{
		AmountUSD:       900,
		ValidUntil:      time.Now().AddDate(0, 0, 7),
		Status:          entity.QuoteAccepted,
		DesignRequestID: dr.ID,
	}
	require.NoError(t, db.Create(q).Error)

	qid := q.ID
	_, err := svc.CreateOrder(user.ID, CreateOrderReq{QuoteID: &qid})
	require.NoError(t, err)

	// the same bespoke piece cannot be ordered twice
	_, err = svc.CreateOrder(user.ID, CreateOrderReq{QuoteID: &qid})
	assert.Error(t, err)

	var orders int64
	require.NoError(t, db.Model(&entity.Order{}).Count(&orders).Error)
	assert.Equal(t, int64(1), orders)
}

func TestCreateOrderRejectsUnacceptedQuote(t *testing.T) {
	db, svc, user := newOrderFixture(t)

	dr := &entity.DesignRequest{ReferenceNo: "DSN-X", Description: "x", Status: entity.DesignRequestQuoted, UserID: user.ID}
	require.NoError(t, db.Create(dr).Error)
	q := &entity.Quote{AmountUSD: 500, ValidUntil: time.Now().AddDate(0, 0, 7), Status: entity.QuoteOffered, DesignRequestID: dr.ID}
	require.NoError(t, db.Create(q).Error)

	qid := q.ID
	_, err := svc.CreateOrder(user.ID, CreateOrderReq{QuoteID: &qid})
	assert.Error(t, err)
}

func TestCreateOrderRejectsForeignQuote(t *testing.T) {
	db, svc, user := newOrderFixture(t)
	other := createTestUser(t, db, "other@example.com")

	dr := &entity.DesignRequest{ReferenceNo: "DSN-Y", Description: "y", Status: entity.DesignRequestAccepted, UserID: other.ID}
	require.NoError(t, db.Create(dr).Error)
	q := &entity.Quote{AmountUSD: 500, ValidUntil: time.Now().AddDate(0, 0, 7), Status: entity.QuoteAccepted, DesignRequestID: dr.ID}
	require.NoError(t, db.Create(q).Error)

	qid := q.ID
	_, err := svc.CreateOrder(user.ID, CreateOrderReq{QuoteID: &qid})
	assert.Error(t, err)
}

func TestOrderTransitions(t *testing.T) {
	db, svc, user := newOrderFixture(t)
	ring := createPublishedProduct(t, db, "Aurelia Ring", 1000)

	res, err := svc.CreateOrder(user.ID, CreateOrderReq{Items: []OrderItemIn{{ProductID: ring.ID, Qty: 1}}})
	require.NoError(t, err)

	// cannot ship before the advance is paid
	assert.ErrorIs(t, svc.AdminMarkShipped(res.ID), ErrInvalidTransition)

	require.NoError(t, db.Transaction(func(tx *gorm.DB) error {
		return svc.MarkAdvancePaid(tx, res.ID)
	}))

	// double capture cannot advance twice
	err = db.Transaction(func(tx *gorm.DB) error {
		return svc.MarkAdvancePaid(tx, res.ID)
	})
	assert.ErrorIs(t, err, ErrInvalidTransition)

	require.NoError(t, svc.AdminMarkShipped(res.ID))
	require.NoError(t, svc.AdminMarkDelivered(res.ID))

	// delivered orders cannot be cancelled
	assert.ErrorIs(t, svc.AdminCancel(res.ID), ErrInvalidTransition)
}

func TestCancelBeforeAdvance(t *testing.T) {
	db, svc, user := newOrderFixture(t)
	ring := createPublishedProduct(t, db, "Aurelia Ring", 1000)

	res, err := svc.CreateOrder(user.ID, CreateOrderReq{Items: []OrderItemIn{{ProductID: ring.ID, Qty: 1}}})
	require.NoError(t, err)

	require.NoError(t, svc.AdminCancel(res.ID))

	o, err := svc.Repo.GetOrder(res.ID)
	require.NoError(t, err)
	assert.Equal(t, svc.Status.Cancelled, o.OrderStatusID)
}
