package store_test

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"food-delivery-analytics/config"
	"food-delivery-analytics/models"
	"food-delivery-analytics/store"
	"food-delivery-analytics/validation"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_pragma=foreign_keys(1)", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, config.Migrate(db))
	return db
}

type fixtureData struct {
	City       models.City
	Channel    models.AcquisitionChannel
	User       models.User
	Restaurant models.Restaurant
	Items      []models.MenuItem
}

// newFixture seeds the minimal parent graph most write tests need.
func newFixture(t *testing.T) (*store.Store, *fixtureData) {
	t.Helper()
	st := store.New(setupTestDB(t))
	f := &fixtureData{
		City:    models.City{CityName: "Mumbai", State: "MH"},
		Channel: models.AcquisitionChannel{ChannelName: "Organic Search", Description: "Users from search engines"},
	}
	require.NoError(t, st.CreateCity(&f.City))
	require.NoError(t, st.CreateAcquisitionChannel(&f.Channel))

	f.User = models.User{
		Username:             "ananya",
		Email:                "ananya@example.com",
		Address:              "12 Marine Drive, Mumbai",
		CityID:               f.City.ID,
		SignUpDate:           time.Date(2024, 1, 5, 10, 0, 0, 0, time.UTC),
		AcquisitionChannelID: f.Channel.ID,
	}
	require.NoError(t, st.CreateUser(&f.User, "correct-horse-battery"))

	f.Restaurant = models.Restaurant{
		Name:    "Paradise Biryani - Mumbai 1",
		CityID:  f.City.ID,
		Cuisine: "North Indian",
		Rating:  decimal.RequireFromString("4.20"),
	}
	require.NoError(t, st.CreateRestaurant(&f.Restaurant))

	f.Items = []models.MenuItem{
		{RestaurantID: f.Restaurant.ID, ItemName: "Butter Chicken", Price: decimal.RequireFromString("100.00"), Category: "Main Course"},
		{RestaurantID: f.Restaurant.ID, ItemName: "Garlic Naan", Price: decimal.RequireFromString("250.00"), Category: "Bread"},
	}
	for i := range f.Items {
		require.NoError(t, st.CreateMenuItem(&f.Items[i]))
	}
	return st, f
}

// requireConstraint asserts err is a constraint violation with the given name.
func requireConstraint(t *testing.T, err error, constraint string) {
	t.Helper()
	ce, ok := validation.IsConstraint(err)
	require.True(t, ok, "expected a constraint violation, got %v", err)
	assert.Equal(t, constraint, ce.Constraint)
}

func TestCreateUserHashesPassword(t *testing.T) {
	st, f := newFixture(t)

	var stored models.User
	require.NoError(t, st.DB().First(&stored, f.User.ID).Error)
	assert.NotEqual(t, "correct-horse-battery", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("correct-horse-battery")))
}

func TestCreateUserDuplicateEmailRejected(t *testing.T) {
	st, f := newFixture(t)

	dup := models.User{
		Username:             "someone-else",
		Email:                f.User.Email,
		CityID:               f.City.ID,
		SignUpDate:           time.Now().UTC(),
		AcquisitionChannelID: f.Channel.ID,
	}
	err := st.CreateUser(&dup, "another-password")
	requireConstraint(t, err, "uq_users_email")

	var count int64
	st.DB().Model(&models.User{}).Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestCreateUserUnknownParentsRejected(t *testing.T) {
	st, f := newFixture(t)

	u := models.User{
		Username:             "ghost",
		Email:                "ghost@example.com",
		CityID:               999,
		SignUpDate:           time.Now().UTC(),
		AcquisitionChannelID: f.Channel.ID,
	}
	requireConstraint(t, st.CreateUser(&u, "pw-123456"), "fk_users_city")

	u.CityID = f.City.ID
	u.AcquisitionChannelID = 999
	requireConstraint(t, st.CreateUser(&u, "pw-123456"), "fk_users_acquisition_channel")
}

func TestDeleteCityBlockedWhileReferenced(t *testing.T) {
	st, f := newFixture(t)

	thane := models.City{CityName: "Thane", State: "Maharashtra"}
	require.NoError(t, st.CreateCity(&thane))

	resident := models.User{
		Username:             "dev",
		Email:                "dev@example.com",
		CityID:               thane.ID,
		SignUpDate:           time.Now().UTC(),
		AcquisitionChannelID: f.Channel.ID,
	}
	require.NoError(t, st.CreateUser(&resident, "pw-123456"))

	requireConstraint(t, st.DeleteCity(thane.ID), "fk_users_city")

	require.NoError(t, st.DeleteUser(resident.ID))
	require.NoError(t, st.DeleteCity(thane.ID))
}

func TestDeleteChannelBlockedWhileReferenced(t *testing.T) {
	st, f := newFixture(t)
	requireConstraint(t, st.DeleteAcquisitionChannel(f.Channel.ID), "fk_users_acquisition_channel")
}

func TestDeleteUserBlockedByOrders(t *testing.T) {
	st, f := newFixture(t)

	order := models.Order{
		UserID:       f.User.ID,
		RestaurantID: f.Restaurant.ID,
		OrderTime:    time.Date(2024, 3, 15, 19, 24, 0, 0, time.UTC),
	}
	items := []models.OrderItem{{MenuID: f.Items[0].ID, Quantity: 1}}
	require.NoError(t, st.PlaceOrder(&order, items, nil))

	err := st.DeleteUser(f.User.ID)
	_, ok := validation.IsConstraint(err)
	require.True(t, ok, "expected a constraint violation, got %v", err)
}

func TestTouchLastLoginAndSetActive(t *testing.T) {
	st, f := newFixture(t)

	at := time.Date(2024, 6, 1, 8, 30, 0, 0, time.UTC)
	require.NoError(t, st.TouchLastLogin(f.User.ID, at))
	require.NoError(t, st.SetUserActive(f.User.ID, false))

	var stored models.User
	require.NoError(t, st.DB().First(&stored, f.User.ID).Error)
	require.NotNil(t, stored.LastLoginDate)
	assert.True(t, stored.LastLoginDate.Equal(at))
	assert.False(t, stored.IsActive)

	assert.ErrorIs(t, st.TouchLastLogin(999, at), store.ErrNotFound)
}

func TestCreateRestaurantRatingBounds(t *testing.T) {
	st, f := newFixture(t)

	r := models.Restaurant{Name: "Overrated", CityID: f.City.ID, Rating: decimal.RequireFromString("5.01")}
	requireConstraint(t, st.CreateRestaurant(&r), "chk_restaurants_rating_range")

	r.Rating = decimal.RequireFromString("-0.10")
	requireConstraint(t, st.CreateRestaurant(&r), "chk_restaurants_rating_range")

	r.Rating = decimal.RequireFromString("5.00")
	assert.NoError(t, st.CreateRestaurant(&r))
}

func TestDeleteRestaurantBlockedByMenu(t *testing.T) {
	st, f := newFixture(t)

	err := st.DeleteRestaurant(f.Restaurant.ID)
	_, ok := validation.IsConstraint(err)
	require.True(t, ok, "expected a constraint violation, got %v", err)

	for _, item := range f.Items {
		require.NoError(t, st.DeleteMenuItem(item.ID))
	}
	require.NoError(t, st.DeleteRestaurant(f.Restaurant.ID))
}

func TestCreateMenuItemPricePositive(t *testing.T) {
	st, f := newFixture(t)

	m := models.MenuItem{RestaurantID: f.Restaurant.ID, ItemName: "Free Lunch", Price: decimal.Zero}
	requireConstraint(t, st.CreateMenuItem(&m), "chk_menu_items_price_positive")

	m.Price = decimal.RequireFromString("-5.00")
	requireConstraint(t, st.CreateMenuItem(&m), "chk_menu_items_price_positive")
}
