package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Althaj-p/Ecom-Backend/entity"
)

type fakeLinkClient struct {
	gotData map[string]interface{}
	resp    map[string]interface{}
	err     error
}

func (f *fakeLinkClient) Create(data map[string]interface{}, extraHeaders map[string]string) (map[string]interface{}, error) {
	f.gotData = data
	return f.resp, f.err
}

func seedOrder(t *testing.T, db *gorm.DB, userID uint, total string) *entity.Order {
	t.Helper()
	o := &entity.Order{
		UserID:        userID,
		TotalPrice:    d(t, total),
		Status:        entity.OrderStatusPending,
		PaymentStatus: entity.PaymentStatusPending,
	}
	require.NoError(t, db.Create(o).Error)
	return o
}

func TestRecordPaymentSettlesOrder(t *testing.T) {
	db := newTestDB(t)
	payments := newPaymentService(db, nil)

	user := seedUser(t, db, "buyer@example.com")
	order := seedOrder(t, db, user.ID, "250.00")

	err := payments.Record(user.ID, &RecordPaymentIn{
		OrderID:       order.ID,
		PaymentMethod: "card",
		TransactionID: "txn-001",
		Amount:        d(t, "250.00"),
	})
	require.NoError(t, err)

	var got entity.Order
	require.NoError(t, db.First(&got, order.ID).Error)
	assert.Equal(t, entity.PaymentStatusCompleted, got.PaymentStatus)
	assert.Equal(t, entity.OrderStatusProcessing, got.Status)

	var count int64
	require.NoError(t, db.Model(&entity.Payment{}).Where("order_id = ?", order.ID).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestRecordPaymentAmountMismatch(t *testing.T) {
	db := newTestDB(t)
	payments := newPaymentService(db, nil)

	user := seedUser(t, db, "buyer@example.com")
	order := seedOrder(t, db, user.ID, "250.00")

	err := payments.Record(user.ID, &RecordPaymentIn{
		OrderID:       order.ID,
		PaymentMethod: "card",
		TransactionID: "txn-001",
		Amount:        d(t, "249.99"),
	})
	assert.ErrorIs(t, err, ErrAmountMismatch)

	var got entity.Order
	require.NoError(t, db.First(&got, order.ID).Error)
	assert.Equal(t, entity.PaymentStatusPending, got.PaymentStatus)
	assert.Equal(t, entity.OrderStatusPending, got.Status)

	var count int64
	require.NoError(t, db.Model(&entity.Payment{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestRecordPaymentTwice(t *testing.T) {
	db := newTestDB(t)
	payments := newPaymentService(db, nil)

	user := seedUser(t, db, "buyer@example.com")
	order := seedOrder(t, db, user.ID, "250.00")

	in := &RecordPaymentIn{
		OrderID:       order.ID,
		PaymentMethod: "card",
		TransactionID: "txn-001",
		Amount:        d(t, "250.00"),
	}
	require.NoError(t, payments.Record(user.ID, in))

	in.TransactionID = "txn-002"
	err := payments.Record(user.ID, in)
	assert.ErrorIs(t, err, ErrAlreadyPaid)

	var count int64
	require.NoError(t, db.Model(&entity.Payment{}).Where("order_id = ?", order.ID).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestRecordPaymentDuplicateTransaction(t *testing.T) {
	db := newTestDB(t)
	payments := newPaymentService(db, nil)

	user := seedUser(t, db, "buyer@example.com")
	first := seedOrder(t, db, user.ID, "100.00")
	second := seedOrder(t, db, user.ID, "100.00")

	require.NoError(t, payments.Record(user.ID, &RecordPaymentIn{
		OrderID:       first.ID,
		PaymentMethod: "card",
		TransactionID: "txn-001",
		Amount:        d(t, "100.00"),
	}))

	// The same provider transaction cannot settle two orders.
	err := payments.Record(user.ID, &RecordPaymentIn{
		OrderID:       second.ID,
		PaymentMethod: "card",
		TransactionID: "txn-001",
		Amount:        d(t, "100.00"),
	})
	assert.ErrorIs(t, err, ErrDuplicateTransaction)

	var got entity.Order
	require.NoError(t, db.First(&got, second.ID).Error)
	assert.Equal(t, entity.PaymentStatusPending, got.PaymentStatus)
}

func TestRecordPaymentScopedToOwner(t *testing.T) {
	db := newTestDB(t)
	payments := newPaymentService(db, nil)

	owner := seedUser(t, db, "owner@example.com")
	stranger := seedUser(t, db, "stranger@example.com")
	order := seedOrder(t, db, owner.ID, "50.00")

	err := payments.Record(stranger.ID, &RecordPaymentIn{
		OrderID:       order.ID,
		PaymentMethod: "card",
		TransactionID: "txn-001",
		Amount:        d(t, "50.00"),
	})
	assert.ErrorIs(t, err, ErrOrderNotFound)
}

func TestCreateSessionBuildsPaymentLink(t *testing.T) {
	db := newTestDB(t)
	fake := &fakeLinkClient{resp: map[string]interface{}{"short_url": "https://rzp.io/l/abc123"}}
	payments := newPaymentService(db, fake)

	user := seedUser(t, db, "buyer@example.com")
	order := seedOrder(t, db, user.ID, "250.00")

	out, err := payments.CreateSession(user.ID, order.ID)
	require.NoError(t, err)
	assert.Equal(t, "https://rzp.io/l/abc123", out.PaymentURL)
	assert.NotEmpty(t, out.ReferenceID)

	// Provider amount is in the smallest currency unit.
	assert.EqualValues(t, int64(25000), fake.gotData["amount"])
	assert.Equal(t, "https://shop.test/success", fake.gotData["callback_url"])
}

func TestCreateSessionForPaidOrder(t *testing.T) {
	db := newTestDB(t)
	payments := newPaymentService(db, &fakeLinkClient{})

	user := seedUser(t, db, "buyer@example.com")
	order := seedOrder(t, db, user.ID, "250.00")
	require.NoError(t, db.Model(order).Update("payment_status", entity.PaymentStatusCompleted).Error)

	_, err := payments.CreateSession(user.ID, order.ID)
	assert.ErrorIs(t, err, ErrAlreadyPaid)
}

func TestCreateSessionWithoutProvider(t *testing.T) {
	db := newTestDB(t)
	payments := newPaymentService(db, nil)

	user := seedUser(t, db, "buyer@example.com")
	order := seedOrder(t, db, user.ID, "250.00")

	_, err := payments.CreateSession(user.ID, order.ID)
	assert.ErrorIs(t, err, ErrPaymentsDisabled)
}
