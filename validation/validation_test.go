package validation_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"food-delivery-analytics/models"
	"food-delivery-analytics/validation"
)

func assertViolation(t *testing.T, err error, constraint string) {
	t.Helper()
	ce, ok := validation.IsConstraint(err)
	require.True(t, ok, "expected a constraint violation, got %v", err)
	assert.Equal(t, constraint, ce.Constraint)
}

func validOrder() (*models.Order, []models.OrderItem) {
	at := time.Date(2024, 3, 15, 19, 24, 0, 0, time.UTC)
	o := &models.Order{
		UserID:         1,
		RestaurantID:   1,
		OrderTime:      at,
		OrderDate:      time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
		OrderDay:       "Friday",
		OrderHour:      19,
		TotalAmount:    decimal.RequireFromString("450.00"),
		DeliveryFee:    decimal.RequireFromString("40.00"),
		DiscountAmount: decimal.RequireFromString("0.00"),
		FinalAmount:    decimal.RequireFromString("490.00"),
		OrderStatus:    models.OrderPlaced,
		PaymentMethod:  models.PaymentUPI,
	}
	items := []models.OrderItem{{
		MenuID: 1, Quantity: 3,
		ItemPrice: decimal.RequireFromString("150.00"),
		Subtotal:  decimal.RequireFromString("450.00"),
	}}
	return o, items
}

func TestOrderAccepted(t *testing.T) {
	o, items := validOrder()
	assert.NoError(t, validation.Order(o, items))
}

func TestOrderFinalAmountIdentity(t *testing.T) {
	o, items := validOrder()
	o.FinalAmount = decimal.RequireFromString("500.00")
	assertViolation(t, validation.Order(o, items), "chk_orders_final_amount")
}

func TestOrderDerivedTimeColumns(t *testing.T) {
	o, items := validOrder()
	o.OrderDate = o.OrderDate.AddDate(0, 0, 1)
	assertViolation(t, validation.Order(o, items), "chk_orders_order_date")

	o, items = validOrder()
	o.OrderDay = "Saturday"
	assertViolation(t, validation.Order(o, items), "chk_orders_order_day")

	o, items = validOrder()
	o.OrderHour = 20
	assertViolation(t, validation.Order(o, items), "chk_orders_order_hour")
}

func TestOrderEnumDomains(t *testing.T) {
	o, items := validOrder()
	o.OrderStatus = "Lost"
	assertViolation(t, validation.Order(o, items), "chk_orders_status_enum")

	o, items = validOrder()
	o.PaymentMethod = "Barter"
	assertViolation(t, validation.Order(o, items), "chk_orders_payment_method_enum")
}

func TestOrderNegativeMoneyRejected(t *testing.T) {
	o, items := validOrder()
	o.DiscountAmount = decimal.RequireFromString("-5.00")
	assertViolation(t, validation.Order(o, items), "chk_orders_discount_amount")
}

func TestOrderItemSubtotalIdentity(t *testing.T) {
	it := &models.OrderItem{
		MenuID: 1, Quantity: 2,
		ItemPrice: decimal.RequireFromString("100.00"),
		Subtotal:  decimal.RequireFromString("200.00"),
	}
	assert.NoError(t, validation.OrderItem(it))

	it.Subtotal = decimal.RequireFromString("199.00")
	assertViolation(t, validation.OrderItem(it), "chk_order_items_subtotal")
}

func TestRestaurantRatingRange(t *testing.T) {
	r := &models.Restaurant{Name: "Spice Route", CityID: 1, Rating: decimal.RequireFromString("4.30")}
	assert.NoError(t, validation.Restaurant(r))

	r.Rating = decimal.RequireFromString("5.10")
	assertViolation(t, validation.Restaurant(r), "chk_restaurants_rating_range")

	r.Rating = decimal.RequireFromString("-1.00")
	assertViolation(t, validation.Restaurant(r), "chk_restaurants_rating_range")
}

func TestUserEmailFormat(t *testing.T) {
	u := &models.User{
		Username: "asha", Email: "not-an-email",
		CityID: 1, AcquisitionChannelID: 1, SignUpDate: time.Now(),
	}
	assertViolation(t, validation.User(u), "chk_users_email_format")

	u.Email = "asha@example.com"
	assert.NoError(t, validation.User(u))
}

func TestUserSelfReferral(t *testing.T) {
	self := uint(7)
	u := &models.User{
		ID: 7, Username: "asha", Email: "asha@example.com",
		CityID: 1, AcquisitionChannelID: 1, SignUpDate: time.Now(),
		ReferredBy: &self,
	}
	assertViolation(t, validation.User(u), "chk_users_no_self_referral")
}

func TestTrackingTemporalOrder(t *testing.T) {
	dispatch := time.Date(2024, 4, 1, 12, 0, 0, 0, time.UTC)
	early := dispatch.Add(-10 * time.Minute)
	tr := &models.DeliveryTracking{
		OrderID: 1, DispatchTime: dispatch,
		ActualDeliveryTime: &early, DeliveryStatus: models.DeliveryDelivered,
	}
	assertViolation(t, validation.Tracking(tr), "chk_delivery_tracking_actual_after_dispatch")

	onTime := dispatch.Add(25 * time.Minute)
	tr.ActualDeliveryTime = &onTime
	assert.NoError(t, validation.Tracking(tr))
}

func TestSessionTemporalOrder(t *testing.T) {
	start := time.Date(2024, 4, 1, 18, 0, 0, 0, time.UTC)
	early := start.Add(-time.Minute)
	s := &models.UserSession{UserID: 1, SessionStart: start, SessionEnd: &early}
	assertViolation(t, validation.Session(s), "chk_user_sessions_end_after_start")

	end := start.Add(12 * time.Minute)
	s.SessionEnd = &end
	assert.NoError(t, validation.Session(s))
}

func TestReferralSelfReferral(t *testing.T) {
	r := &models.Referral{ReferrerUserID: 3, ReferredUserID: 3, RewardStatus: models.RewardPending}
	assertViolation(t, validation.Referral(r), "chk_referrals_no_self_referral")
}

func TestMenuItemPricePositive(t *testing.T) {
	m := &models.MenuItem{RestaurantID: 1, ItemName: "Paneer Tikka", Price: decimal.Zero}
	assertViolation(t, validation.MenuItem(m), "chk_menu_items_price_positive")
}
