// Package validation replicates the schema's check constraints at the
// application level. Every violated rule is reported as a *ConstraintError
// carrying the table and the stable constraint name, mirroring the names the
// database itself uses, so callers always learn exactly which constraint a
// rejected write broke.
package validation

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"food-delivery-analytics/models"
)

// ConstraintError identifies the specific constraint a write violated.
type ConstraintError struct {
	Table      string
	Constraint string
	Message    string
}

func (e *ConstraintError) Error() string {
	return e.Table + ": constraint " + e.Constraint + " violated: " + e.Message
}

// IsConstraint reports whether err is a constraint violation and returns it.
func IsConstraint(err error) (*ConstraintError, bool) {
	var ce *ConstraintError
	if errors.As(err, &ce) {
		return ce, true
	}
	return nil, false
}

func violation(table, constraint, message string) *ConstraintError {
	return &ConstraintError{Table: table, Constraint: constraint, Message: message}
}

var validate = validator.New()

// require runs a validator tag against a single value.
func require(table, constraint string, value any, tag, message string) error {
	if err := validate.Var(value, tag); err != nil {
		return violation(table, constraint, message)
	}
	return nil
}

// City checks the required columns of the cities dimension.
func City(c *models.City) error {
	if err := require("cities", "chk_cities_city_name_required", c.CityName, "required", "city_name must not be empty"); err != nil {
		return err
	}
	return require("cities", "chk_cities_state_required", c.State, "required", "state must not be empty")
}

// Channel checks the required columns of the acquisition-channels dimension.
// Name uniqueness is the database's unique index.
func Channel(c *models.AcquisitionChannel) error {
	return require("acquisition_channels", "chk_acquisition_channels_channel_name_required",
		c.ChannelName, "required", "channel_name must not be empty")
}

// User checks every users-table constraint except email uniqueness, which
// only the database can decide.
func User(u *models.User) error {
	if err := require("users", "chk_users_username_required", u.Username, "required", "username must not be empty"); err != nil {
		return err
	}
	if err := require("users", "chk_users_email_format", u.Email, "required,email", "email must be a valid address"); err != nil {
		return err
	}
	if err := require("users", "fk_users_city", u.CityID, "required", "city_id must reference a city"); err != nil {
		return err
	}
	if err := require("users", "fk_users_acquisition_channel", u.AcquisitionChannelID, "required", "acquisition_channel_id must reference a channel"); err != nil {
		return err
	}
	if u.SignUpDate.IsZero() {
		return violation("users", "chk_users_sign_up_date_required", "sign_up_date must be set")
	}
	if u.ReferredBy != nil && u.ID != 0 && *u.ReferredBy == u.ID {
		return violation("users", "chk_users_no_self_referral", "a user cannot refer itself")
	}
	return nil
}

// Restaurant checks rating bounds and required fields.
func Restaurant(r *models.Restaurant) error {
	if err := require("restaurants", "chk_restaurants_name_required", r.Name, "required", "name must not be empty"); err != nil {
		return err
	}
	if err := require("restaurants", "fk_restaurants_city", r.CityID, "required", "city_id must reference a city"); err != nil {
		return err
	}
	if r.Rating.IsNegative() || r.Rating.GreaterThan(decimal.NewFromInt(5)) {
		return violation("restaurants", "chk_restaurants_rating_range", "rating must be between 0 and 5")
	}
	return nil
}

// MenuItem checks the positive-price rule and required fields.
func MenuItem(m *models.MenuItem) error {
	if err := require("menu_items", "fk_menu_items_restaurant", m.RestaurantID, "required", "restaurant_id must reference a restaurant"); err != nil {
		return err
	}
	if err := require("menu_items", "chk_menu_items_item_name_required", m.ItemName, "required", "item_name must not be empty"); err != nil {
		return err
	}
	if !m.Price.IsPositive() {
		return violation("menu_items", "chk_menu_items_price_positive", "price must be greater than zero")
	}
	return nil
}

// Order checks the derived-field identities and money domains of a fully
// populated order together with its items. Derivation itself happens in the
// store; by the time an order reaches here every stored column is set.
func Order(o *models.Order, items []models.OrderItem) error {
	if err := require("orders", "fk_orders_user", o.UserID, "required", "user_id must reference a user"); err != nil {
		return err
	}
	if err := require("orders", "fk_orders_restaurant", o.RestaurantID, "required", "restaurant_id must reference a restaurant"); err != nil {
		return err
	}
	if o.OrderTime.IsZero() {
		return violation("orders", "chk_orders_order_time_required", "order_time must be set")
	}
	if !sameDate(o.OrderDate, o.OrderTime) {
		return violation("orders", "chk_orders_order_date", "order_date must equal date(order_time)")
	}
	if o.OrderDay != o.OrderTime.Weekday().String() {
		return violation("orders", "chk_orders_order_day", "order_day must equal the weekday of order_time")
	}
	if o.OrderHour != o.OrderTime.Hour() {
		return violation("orders", "chk_orders_order_hour", "order_hour must equal the hour of order_time")
	}
	if o.TotalAmount.IsNegative() {
		return violation("orders", "chk_orders_total_amount", "total_amount must not be negative")
	}
	if o.DeliveryFee.IsNegative() {
		return violation("orders", "chk_orders_delivery_fee", "delivery_fee must not be negative")
	}
	if o.DiscountAmount.IsNegative() {
		return violation("orders", "chk_orders_discount_amount", "discount_amount must not be negative")
	}
	if o.FinalAmount.IsNegative() {
		return violation("orders", "chk_orders_final_amount_nonnegative", "final_amount must not be negative")
	}
	want := o.TotalAmount.Add(o.DeliveryFee).Sub(o.DiscountAmount)
	if !o.FinalAmount.Equal(want) {
		return violation("orders", "chk_orders_final_amount",
			"final_amount must equal total_amount + delivery_fee - discount_amount")
	}
	if !o.OrderStatus.Valid() {
		return violation("orders", "chk_orders_status_enum", "unknown order_status "+string(o.OrderStatus))
	}
	if o.PaymentMethod != "" && !o.PaymentMethod.Valid() {
		return violation("orders", "chk_orders_payment_method_enum", "unknown payment_method "+string(o.PaymentMethod))
	}
	if len(items) == 0 {
		return violation("order_items", "chk_order_items_min_one", "an order needs at least one item")
	}
	for i := range items {
		if err := OrderItem(&items[i]); err != nil {
			return err
		}
	}
	return nil
}

// OrderItem checks quantity/price positivity and the subtotal identity.
func OrderItem(it *models.OrderItem) error {
	if err := require("order_items", "fk_order_items_menu_item", it.MenuID, "required", "menu_id must reference a menu item"); err != nil {
		return err
	}
	if err := require("order_items", "chk_order_items_quantity_positive", it.Quantity, "gt=0", "quantity must be greater than zero"); err != nil {
		return err
	}
	if !it.ItemPrice.IsPositive() {
		return violation("order_items", "chk_order_items_item_price_positive", "item_price must be greater than zero")
	}
	want := it.ItemPrice.Mul(decimal.NewFromInt(int64(it.Quantity)))
	if !it.Subtotal.Equal(want) {
		return violation("order_items", "chk_order_items_subtotal", "subtotal must equal item_price * quantity")
	}
	return nil
}

// Tracking checks the 1:1 order link and temporal ordering of a delivery row.
func Tracking(t *models.DeliveryTracking) error {
	if err := require("delivery_tracking", "fk_delivery_tracking_order", t.OrderID, "required", "order_id must reference an order"); err != nil {
		return err
	}
	if !t.DeliveryStatus.Valid() {
		return violation("delivery_tracking", "chk_delivery_tracking_status_enum", "unknown delivery_status "+string(t.DeliveryStatus))
	}
	if t.ActualDeliveryTime != nil && t.ActualDeliveryTime.Before(t.DispatchTime) {
		return violation("delivery_tracking", "chk_delivery_tracking_actual_after_dispatch",
			"actual_delivery_time must not precede dispatch_time")
	}
	return nil
}

// CartItem checks the positive-quantity rule and required links.
func CartItem(c *models.CartItem) error {
	if err := require("cart_items", "fk_cart_items_user", c.UserID, "required", "user_id must reference a user"); err != nil {
		return err
	}
	if err := require("cart_items", "fk_cart_items_restaurant", c.RestaurantID, "required", "restaurant_id must reference a restaurant"); err != nil {
		return err
	}
	if err := require("cart_items", "fk_cart_items_menu_item", c.MenuID, "required", "menu_id must reference a menu item"); err != nil {
		return err
	}
	if err := require("cart_items", "chk_cart_items_quantity_positive", c.Quantity, "gt=0", "quantity must be greater than zero"); err != nil {
		return err
	}
	if c.AddedAt.IsZero() {
		return violation("cart_items", "chk_cart_items_added_at_required", "added_at must be set")
	}
	return nil
}

// Session checks temporal ordering and domains of a user session.
func Session(s *models.UserSession) error {
	if err := require("user_sessions", "fk_user_sessions_user", s.UserID, "required", "user_id must reference a user"); err != nil {
		return err
	}
	if s.SessionStart.IsZero() {
		return violation("user_sessions", "chk_user_sessions_start_required", "session_start must be set")
	}
	if s.SessionEnd != nil && s.SessionEnd.Before(s.SessionStart) {
		return violation("user_sessions", "chk_user_sessions_end_after_start",
			"session_end must not precede session_start")
	}
	if err := require("user_sessions", "chk_user_sessions_pages_viewed", s.PagesViewed, "gte=0", "pages_viewed must not be negative"); err != nil {
		return err
	}
	if s.DeviceType != "" && !s.DeviceType.Valid() {
		return violation("user_sessions", "chk_user_sessions_device_type_enum", "unknown device_type "+string(s.DeviceType))
	}
	return nil
}

// Referral checks the self-referral prohibition and reward domain. The
// referred-at-most-once rule is the database's unique index.
func Referral(r *models.Referral) error {
	if err := require("referrals", "fk_referrals_referrer_user", r.ReferrerUserID, "required", "referrer_user_id must reference a user"); err != nil {
		return err
	}
	if err := require("referrals", "fk_referrals_referred_user", r.ReferredUserID, "required", "referred_user_id must reference a user"); err != nil {
		return err
	}
	if r.ReferrerUserID == r.ReferredUserID {
		return violation("referrals", "chk_referrals_no_self_referral", "a user cannot refer itself")
	}
	if r.RewardAmount.IsNegative() {
		return violation("referrals", "chk_referrals_reward_amount", "reward_amount must not be negative")
	}
	if !r.RewardStatus.Valid() {
		return violation("referrals", "chk_referrals_reward_status_enum", "unknown reward_status "+string(r.RewardStatus))
	}
	return nil
}

func sameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
