package store_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"food-delivery-analytics/models"
	"food-delivery-analytics/store"
)

func placeBareOrder(t *testing.T, st *store.Store, f *fixtureData, at time.Time) *models.Order {
	t.Helper()
	order := models.Order{UserID: f.User.ID, RestaurantID: f.Restaurant.ID, OrderTime: at}
	items := []models.OrderItem{{MenuID: f.Items[0].ID, Quantity: 1}}
	require.NoError(t, st.PlaceOrder(&order, items, nil))
	return &order
}

func TestCreateTrackingOnePerOrder(t *testing.T) {
	st, f := newFixture(t)
	order := placeBareOrder(t, st, f, time.Now().UTC())

	first := models.DeliveryTracking{OrderID: order.ID}
	require.NoError(t, st.CreateTracking(&first))

	second := models.DeliveryTracking{OrderID: order.ID}
	requireConstraint(t, st.CreateTracking(&second), "uq_delivery_tracking_order_id")
}

func TestCreateTrackingUnknownOrder(t *testing.T) {
	st, _ := newFixture(t)
	tracking := models.DeliveryTracking{OrderID: 999}
	requireConstraint(t, st.CreateTracking(&tracking), "fk_delivery_tracking_order")
}

func TestDeliveryLifecycle(t *testing.T) {
	st, f := newFixture(t)
	orderTime := time.Date(2024, 4, 10, 12, 30, 0, 0, time.UTC)
	order := placeBareOrder(t, st, f, orderTime)
	require.NoError(t, st.CreateTracking(&models.DeliveryTracking{OrderID: order.ID}))

	dispatch := orderTime.Add(8 * time.Minute)
	require.NoError(t, st.MarkDispatched(order.ID, 42, dispatch, dispatch.Add(25*time.Minute)))
	require.NoError(t, st.UpdateDeliveryStatus(order.ID, models.DeliveryInTransit))

	delivered := dispatch.Add(28 * time.Minute)
	require.NoError(t, st.MarkDelivered(order.ID, delivered))

	got, err := st.GetOrder(order.ID)
	require.NoError(t, err)
	require.NotNil(t, got.Tracking)
	assert.Equal(t, models.DeliveryDelivered, got.Tracking.DeliveryStatus)
	assert.EqualValues(t, 42, got.Tracking.DeliveryPartnerID)
	require.NotNil(t, got.Tracking.ActualDeliveryTime)
	assert.True(t, got.Tracking.ActualDeliveryTime.Equal(delivered))
}

func TestMarkDeliveredBeforeDispatchRejected(t *testing.T) {
	st, f := newFixture(t)
	orderTime := time.Date(2024, 4, 10, 12, 30, 0, 0, time.UTC)
	order := placeBareOrder(t, st, f, orderTime)
	require.NoError(t, st.CreateTracking(&models.DeliveryTracking{OrderID: order.ID}))

	dispatch := orderTime.Add(10 * time.Minute)
	require.NoError(t, st.MarkDispatched(order.ID, 7, dispatch, dispatch.Add(30*time.Minute)))

	err := st.MarkDelivered(order.ID, dispatch.Add(-5*time.Minute))
	requireConstraint(t, err, "chk_delivery_tracking_actual_after_dispatch")
}

func TestUpdateDeliveryStatusRejectsUnknownValue(t *testing.T) {
	st, f := newFixture(t)
	order := placeBareOrder(t, st, f, time.Now().UTC())
	require.NoError(t, st.CreateTracking(&models.DeliveryTracking{OrderID: order.ID}))

	requireConstraint(t, st.UpdateDeliveryStatus(order.ID, "Lost"), "chk_delivery_tracking_status_enum")
}
