package store_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"food-delivery-analytics/models"
)

func TestSessionLifecycle(t *testing.T) {
	st, f := newFixture(t)

	start := time.Date(2024, 6, 3, 18, 0, 0, 0, time.UTC)
	sess := models.UserSession{
		UserID: f.User.ID, SessionStart: start,
		PagesViewed: 12, DeviceType: models.DeviceMobile,
	}
	require.NoError(t, st.StartSession(&sess))

	var stored models.UserSession
	require.NoError(t, st.DB().First(&stored, sess.ID).Error)
	assert.Nil(t, stored.SessionEnd)
	assert.False(t, stored.OrderPlaced)

	require.NoError(t, st.EndSession(sess.ID, start.Add(20*time.Minute), nil))
	require.NoError(t, st.DB().First(&stored, sess.ID).Error)
	require.NotNil(t, stored.SessionEnd)
	assert.False(t, stored.OrderPlaced)
}

func TestEndSessionLinksOrder(t *testing.T) {
	st, f := newFixture(t)

	start := time.Date(2024, 6, 3, 20, 0, 0, 0, time.UTC)
	order := placeBareOrder(t, st, f, start.Add(5*time.Minute))

	sess := models.UserSession{UserID: f.User.ID, SessionStart: start, DeviceType: models.DeviceDesktop}
	require.NoError(t, st.StartSession(&sess))
	require.NoError(t, st.EndSession(sess.ID, start.Add(15*time.Minute), &order.ID))

	var stored models.UserSession
	require.NoError(t, st.DB().First(&stored, sess.ID).Error)
	assert.True(t, stored.OrderPlaced)
	require.NotNil(t, stored.OrderID)
	assert.Equal(t, order.ID, *stored.OrderID)
}

func TestEndSessionBeforeStartRejected(t *testing.T) {
	st, f := newFixture(t)

	start := time.Date(2024, 6, 3, 20, 0, 0, 0, time.UTC)
	sess := models.UserSession{UserID: f.User.ID, SessionStart: start}
	require.NoError(t, st.StartSession(&sess))

	err := st.EndSession(sess.ID, start.Add(-time.Minute), nil)
	requireConstraint(t, err, "chk_user_sessions_end_after_start")
}

func TestEndSessionRejectsForeignOrder(t *testing.T) {
	st, f := newFixture(t)

	other := models.User{
		Username: "meera", Email: "meera@example.com",
		CityID: f.City.ID, SignUpDate: time.Now().UTC(),
		AcquisitionChannelID: f.Channel.ID,
	}
	require.NoError(t, st.CreateUser(&other, "pw-123456"))
	order := models.Order{UserID: other.ID, RestaurantID: f.Restaurant.ID, OrderTime: time.Now().UTC()}
	require.NoError(t, st.PlaceOrder(&order, []models.OrderItem{{MenuID: f.Items[0].ID, Quantity: 1}}, nil))

	sess := models.UserSession{UserID: f.User.ID, SessionStart: time.Now().UTC()}
	require.NoError(t, st.StartSession(&sess))

	requireConstraint(t, st.EndSession(sess.ID, time.Now().UTC().Add(time.Minute), &order.ID), "chk_user_sessions_order_user_match")
}

func TestStartSessionUnknownUser(t *testing.T) {
	st, _ := newFixture(t)
	sess := models.UserSession{UserID: 999, SessionStart: time.Now().UTC()}
	requireConstraint(t, st.StartSession(&sess), "fk_user_sessions_user")
}
