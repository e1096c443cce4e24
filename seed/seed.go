// Package seed generates a simulated year of food-delivery activity:
// dimension rows, users with channel-weighted acquisition and referrals,
// restaurants and menus, orders with lunch/dinner peaks and weekend boosts,
// delivery tracking, sessions and carts (including abandoned ones). Every
// row goes through the store, so the generated dataset satisfies all schema
// constraints. Runs are deterministic for a given Config.Seed.
package seed

import (
	"fmt"
	"math"
	"math/rand"
	"strings"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"

	"food-delivery-analytics/models"
	"food-delivery-analytics/store"
)

type Config struct {
	Start time.Time
	End   time.Time

	Cities      int
	Users       int
	Restaurants int

	TargetOrders            int
	BotUsers                int
	SessionsPerUserPerMonth int
	AbandonedCartRate       float64

	Seed int64
	Log  *logrus.Logger
}

// DefaultConfig simulates calendar year 2024 at a scale that seeds in
// seconds. Raise the counts for analytics-sized datasets.
func DefaultConfig() Config {
	return Config{
		Start:                   time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		End:                     time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC),
		Cities:                  50,
		Users:                   500,
		Restaurants:             60,
		TargetOrders:            3000,
		BotUsers:                5,
		SessionsPerUserPerMonth: 1,
		AbandonedCartRate:       0.30,
		Seed:                    42,
	}
}

type seeder struct {
	st    *store.Store
	cfg   Config
	rng   *rand.Rand
	faker *gofakeit.Faker
	log   *logrus.Logger

	cities      []models.City
	channels    []models.AcquisitionChannel
	users       []models.User
	restaurants []models.Restaurant
	menus       map[uint][]models.MenuItem

	// user pools for order patterns
	powerUsers   []int
	weekendUsers []int
	botUsers     []int
	regularUsers []int

	ordersByUser map[uint][]orderRec
	orderCount   int
	cartRows     int
}

type orderRec struct {
	id uint
	at time.Time
}

// Run populates the database through st according to cfg.
func Run(st *store.Store, cfg Config) error {
	log := cfg.Log
	if log == nil {
		log = logrus.StandardLogger()
	}
	s := &seeder{
		st:    st,
		cfg:   cfg,
		rng:   rand.New(rand.NewSource(cfg.Seed)),
		faker: gofakeit.New(uint64(cfg.Seed)),
		log:   log,
		menus: make(map[uint][]models.MenuItem),

		ordersByUser: make(map[uint][]orderRec),
	}

	// bulk load; the default bcrypt cost would dominate seeding time
	prevCost := store.BcryptCost
	store.BcryptCost = bcrypt.MinCost
	defer func() { store.BcryptCost = prevCost }()

	steps := []struct {
		name string
		fn   func() error
	}{
		{"cities", s.seedCities},
		{"acquisition channels", s.seedChannels},
		{"users", s.seedUsers},
		{"referrals", s.seedReferrals},
		{"restaurants", s.seedRestaurants},
		{"menu items", s.seedMenus},
		{"orders", s.seedOrders},
		{"bot orders", s.seedBotOrders},
		{"sessions", s.seedSessions},
		{"abandoned carts", s.seedAbandonedCarts},
	}
	for _, step := range steps {
		if err := step.fn(); err != nil {
			return fmt.Errorf("seeding %s: %w", step.name, err)
		}
		s.log.Infof("seeded %s", step.name)
	}
	s.log.Infof("seeding complete: %d users, %d restaurants, %d orders, %d cart rows",
		len(s.users), len(s.restaurants), s.orderCount, s.cartRows)
	return nil
}

func (s *seeder) seedCities() error {
	n := s.cfg.Cities
	if n > len(indianCities) {
		n = len(indianCities)
	}
	for _, pair := range indianCities[:n] {
		city := models.City{CityName: pair[0], State: pair[1]}
		if err := s.st.CreateCity(&city); err != nil {
			return err
		}
		s.cities = append(s.cities, city)
	}
	return nil
}

func (s *seeder) seedChannels() error {
	for _, pair := range acquisitionChannels {
		channel := models.AcquisitionChannel{ChannelName: pair[0], Description: pair[1]}
		if err := s.st.CreateAcquisitionChannel(&channel); err != nil {
			return err
		}
		s.channels = append(s.channels, channel)
	}
	return nil
}

func (s *seeder) seedUsers() error {
	days := int(s.cfg.End.Sub(s.cfg.Start).Hours() / 24)
	for i := 0; i < s.cfg.Users; i++ {
		city := s.cities[s.rng.Intn(len(s.cities))]
		channel := s.channels[s.pickWeighted(channelWeights)]
		signUp := s.cfg.Start.AddDate(0, 0, s.rng.Intn(days+1))
		lastLogin := signUp.AddDate(0, 0, s.rng.Intn(31))
		prefs := fmt.Sprintf(`{"dietary":%q}`, dietaryPreferences[s.rng.Intn(len(dietaryPreferences))])

		user := models.User{
			Username:             s.faker.Username(),
			Email:                fmt.Sprintf("%s%d@%s", strings.ToLower(s.faker.Username()), i, s.faker.DomainName()),
			Phone:                s.faker.Phone(),
			Address:              s.faker.Address().Address,
			CityID:               city.ID,
			SignUpDate:           signUp,
			AcquisitionChannelID: channel.ID,
			LastLoginDate:        &lastLogin,
			IsActive:             s.rng.Intn(100) < 95,
			Preferences:          datatypes.JSON(prefs),
		}
		if err := s.st.CreateUser(&user, "seeded-password"); err != nil {
			return err
		}
		s.users = append(s.users, user)
	}
	s.partitionUsers()
	return nil
}

// partitionUsers splits users into the pools that drive order patterns:
// power users place 80% of orders, weekend users only order on weekends,
// bot users burst-order on a single day.
func (s *seeder) partitionUsers() {
	idx := s.rng.Perm(len(s.users))
	nPower := len(s.users) / 5
	nWeekend := len(s.users) * 15 / 100
	nBots := s.cfg.BotUsers
	if nPower+nWeekend+nBots > len(s.users) {
		nBots = 0
	}
	s.powerUsers = idx[:nPower]
	s.weekendUsers = idx[nPower : nPower+nWeekend]
	s.botUsers = idx[nPower+nWeekend : nPower+nWeekend+nBots]
	s.regularUsers = idx[nPower+nWeekend+nBots:]
}

func (s *seeder) seedReferrals() error {
	referralChannelID := s.channels[referralChannelIndex].ID
	rewards := []int64{50, 75, 100}
	statuses := []models.RewardStatus{models.RewardPaid, models.RewardPaid, models.RewardPaid, models.RewardPending}

	for i := range s.users {
		referred := &s.users[i]
		if referred.AcquisitionChannelID != referralChannelID {
			continue
		}
		referrer := s.earlierSignup(referred)
		if referrer == nil {
			continue
		}
		referral := models.Referral{
			ReferrerUserID: referrer.ID,
			ReferredUserID: referred.ID,
			ReferralDate:   referred.SignUpDate,
			RewardAmount:   decimal.NewFromInt(rewards[s.rng.Intn(len(rewards))]),
			RewardStatus:   statuses[s.rng.Intn(len(statuses))],
		}
		if err := s.st.CreateReferral(&referral); err != nil {
			return err
		}
		ref := referrer.ID
		referred.ReferredBy = &ref
	}
	return nil
}

// earlierSignup finds a random user who signed up strictly before u.
func (s *seeder) earlierSignup(u *models.User) *models.User {
	var candidates []int
	for i := range s.users {
		if s.users[i].ID != u.ID && s.users[i].SignUpDate.Before(u.SignUpDate) {
			candidates = append(candidates, i)
		}
	}
	if len(candidates) == 0 {
		return nil
	}
	return &s.users[candidates[s.rng.Intn(len(candidates))]]
}

func (s *seeder) seedRestaurants() error {
	for i := 0; i < s.cfg.Restaurants; i++ {
		city := s.cities[s.rng.Intn(len(s.cities))]
		rating := 3.0 + s.rng.Float64()*2.0
		if metroCities[city.CityName] {
			rating += 0.3
		}
		rating = math.Min(rating, 5.0)
		opened := s.cfg.Start.AddDate(0, -6-s.rng.Intn(54), 0)

		restaurant := models.Restaurant{
			Name:           fmt.Sprintf("%s - %s %d", restaurantNames[s.rng.Intn(len(restaurantNames))], city.CityName, i+1),
			Address:        s.faker.Address().Address,
			CityID:         city.ID,
			Cuisine:        cuisines[s.rng.Intn(len(cuisines))],
			Rating:         decimal.NewFromFloat(rating).Round(2),
			OperatingHours: "10:00 AM - 11:00 PM",
			ContactNumber:  s.faker.Phone(),
			IsActive:       s.rng.Intn(100) < 95,
			OpeningDate:    opened,
		}
		if err := s.st.CreateRestaurant(&restaurant); err != nil {
			return err
		}
		s.restaurants = append(s.restaurants, restaurant)
	}
	return nil
}

func (s *seeder) seedMenus() error {
	for _, restaurant := range s.restaurants {
		base := menuItemsByCuisine[restaurant.Cuisine]
		if len(base) == 0 {
			base = genericMenuItems
		}
		numItems := 20 + s.rng.Intn(21)
		for i := 0; i < numItems; i++ {
			category := menuCategories[s.rng.Intn(len(menuCategories))]
			name := strings.TrimSpace(base[s.rng.Intn(len(base))] + " " + itemSuffixes[s.rng.Intn(len(itemSuffixes))])

			item := models.MenuItem{
				RestaurantID: restaurant.ID,
				ItemName:     name,
				Description:  s.faker.Sentence(10),
				Price:        s.priceFor(category),
				Category:     category,
				CuisineType:  restaurant.Cuisine,
				IsVegetarian: s.rng.Intn(2) == 0,
				IsAvailable:  s.rng.Intn(100) < 90,
			}
			if err := s.st.CreateMenuItem(&item); err != nil {
				return err
			}
			s.menus[restaurant.ID] = append(s.menus[restaurant.ID], item)
		}
	}
	return nil
}

func (s *seeder) priceFor(category string) decimal.Decimal {
	band, ok := priceRanges[category]
	if !ok {
		band = defaultPriceRange
	}
	price := band[0] + s.rng.Float64()*(band[1]-band[0])
	return decimal.NewFromFloat(price).Round(2)
}

func (s *seeder) seedOrders() error {
	span := int(s.cfg.End.Sub(s.cfg.Start).Hours()/24) + 1
	baseDaily := float64(s.cfg.TargetOrders) / float64(span)
	carry := 0.0
	for day := s.cfg.Start; !day.After(s.cfg.End); day = day.AddDate(0, 0, 1) {
		daysPassed := int(day.Sub(s.cfg.Start).Hours() / 24)
		monthFactor := 1 + float64(daysPassed)/30*0.03
		daily := baseDaily * monthFactor
		weekend := day.Weekday() == time.Saturday || day.Weekday() == time.Sunday
		if weekend {
			daily *= 1.4
		}
		carry += daily
		count := int(carry)
		carry -= float64(count)
		for i := 0; i < count; i++ {
			user := s.pickOrderingUser(weekend)
			at := day.Add(time.Duration(s.peakHour())*time.Hour + time.Duration(s.rng.Intn(60))*time.Minute)
			if err := s.placeSeedOrder(user, at, false); err != nil {
				return err
			}
		}
	}
	return nil
}

// seedBotOrders gives bot users a burst of 50-100 single-item orders on one
// day, the anomaly pattern analysts hunt for.
func (s *seeder) seedBotOrders() error {
	span := int(s.cfg.End.Sub(s.cfg.Start).Hours()/24) + 1
	for _, idx := range s.botUsers {
		user := &s.users[idx]
		day := s.cfg.Start.AddDate(0, 0, s.rng.Intn(span))
		burst := 50 + s.rng.Intn(51)
		for i := 0; i < burst; i++ {
			at := day.Add(time.Duration(s.rng.Intn(24))*time.Hour + time.Duration(s.rng.Intn(60))*time.Minute)
			if err := s.placeSeedOrder(user, at, true); err != nil {
				return err
			}
		}
	}
	return nil
}

// placeSeedOrder builds one order for the user at the given time, creates
// its cart rows and, for delivered orders, the tracking row.
func (s *seeder) placeSeedOrder(user *models.User, at time.Time, bot bool) error {
	restaurant := s.pickRestaurant(user, bot)
	if restaurant == nil {
		return nil
	}
	available := s.availableMenu(restaurant.ID)
	if len(available) == 0 {
		return nil
	}

	numItems := 1
	if !bot {
		numItems = s.pickWeighted([]float64{0.55, 0.30, 0.10, 0.05}) + 1
	}
	if numItems > len(available) {
		numItems = len(available)
	}

	var items []models.OrderItem
	total := decimal.Zero
	for _, pick := range s.rng.Perm(len(available))[:numItems] {
		menuItem := available[pick]
		quantity := []int{1, 1, 1, 2}[s.rng.Intn(4)]
		if bot {
			quantity = 1
		}
		subtotal := menuItem.Price.Mul(decimal.NewFromInt(int64(quantity)))
		total = total.Add(subtotal)
		items = append(items, models.OrderItem{
			MenuID:    menuItem.ID,
			Quantity:  quantity,
			ItemPrice: menuItem.Price,
			Subtotal:  subtotal,
		})
	}

	fee := decimal.Zero
	discount := decimal.Zero
	status := models.OrderDelivered
	payment := models.PaymentUPI
	if !bot {
		fees := []int64{0, 0, 30, 40, 50, 60}
		fee = decimal.NewFromInt(fees[s.rng.Intn(len(fees))])
		if total.GreaterThan(decimal.NewFromInt(500)) {
			rates := []float64{0, 0, 0.10, 0.15}
			discount = total.Mul(decimal.NewFromFloat(rates[s.rng.Intn(len(rates))])).Round(2)
		}
		if s.rng.Intn(100) >= 90 {
			status = models.OrderCancelled
		}
		payments := []models.PaymentMethod{
			models.PaymentCreditCard, models.PaymentDebitCard,
			models.PaymentUPI, models.PaymentUPI, models.PaymentUPI,
			models.PaymentCashOnDelivery,
		}
		payment = payments[s.rng.Intn(len(payments))]
	}

	order := models.Order{
		UserID:          user.ID,
		RestaurantID:    restaurant.ID,
		OrderTime:       at,
		TotalAmount:     total,
		DeliveryFee:     fee,
		DiscountAmount:  discount,
		OrderStatus:     status,
		DeliveryAddress: user.Address,
		PaymentMethod:   payment,
	}

	var tracking *models.DeliveryTracking
	if status == models.OrderDelivered {
		tracking = s.buildTracking(at)
	}

	if err := s.st.PlaceOrder(&order, items, tracking); err != nil {
		return err
	}
	s.orderCount++
	s.ordersByUser[user.ID] = append(s.ordersByUser[user.ID], orderRec{id: order.ID, at: at})

	// every ordered line started life in the cart a few minutes earlier
	for _, item := range items {
		cart := models.CartItem{
			UserID:       user.ID,
			RestaurantID: restaurant.ID,
			MenuID:       item.MenuID,
			Quantity:     item.Quantity,
			AddedAt:      at.Add(-time.Duration(1+s.rng.Intn(10)) * time.Minute),
		}
		if err := s.st.AddCartItem(&cart); err != nil {
			return err
		}
		if err := s.st.MarkCartItemOrdered(cart.ID, order.ID); err != nil {
			return err
		}
		s.cartRows++
	}
	return nil
}

func (s *seeder) buildTracking(orderedAt time.Time) *models.DeliveryTracking {
	dispatch := orderedAt.Add(time.Duration(5+s.rng.Intn(11)) * time.Minute)
	estimatedMinutes := 20 + s.rng.Intn(21)
	actualMinutes := estimatedMinutes + s.rng.Intn(26) - 10
	if s.rng.Intn(100) < 5 {
		actualMinutes = 60 + s.rng.Intn(61)
	}
	if actualMinutes < 1 {
		actualMinutes = 1
	}
	actual := dispatch.Add(time.Duration(actualMinutes) * time.Minute)
	return &models.DeliveryTracking{
		DispatchTime:          dispatch,
		EstimatedDeliveryTime: dispatch.Add(time.Duration(estimatedMinutes) * time.Minute),
		ActualDeliveryTime:    &actual,
		DeliveryPartnerID:     uint(1 + s.rng.Intn(1000)),
		DeliveryStatus:        models.DeliveryDelivered,
	}
}

func (s *seeder) pickOrderingUser(weekend bool) *models.User {
	// power users carry 80% of volume
	if len(s.powerUsers) > 0 && s.rng.Float64() < 0.80 {
		return &s.users[s.powerUsers[s.rng.Intn(len(s.powerUsers))]]
	}
	pool := s.regularUsers
	if weekend && len(s.weekendUsers) > 0 {
		pool = append(append([]int{}, s.regularUsers...), s.weekendUsers...)
	}
	if len(pool) == 0 {
		pool = s.powerUsers
	}
	return &s.users[pool[s.rng.Intn(len(pool))]]
}

// pickRestaurant prefers an active restaurant in the user's own city.
func (s *seeder) pickRestaurant(user *models.User, anyCity bool) *models.Restaurant {
	var sameCity, active []*models.Restaurant
	for i := range s.restaurants {
		r := &s.restaurants[i]
		if !r.IsActive {
			continue
		}
		active = append(active, r)
		if r.CityID == user.CityID {
			sameCity = append(sameCity, r)
		}
	}
	pool := sameCity
	if anyCity || len(pool) == 0 {
		pool = active
	}
	if len(pool) == 0 {
		return nil
	}
	return pool[s.rng.Intn(len(pool))]
}

func (s *seeder) availableMenu(restaurantID uint) []models.MenuItem {
	var available []models.MenuItem
	for _, item := range s.menus[restaurantID] {
		if item.IsAvailable {
			available = append(available, item)
		}
	}
	return available
}

// peakHour reproduces the lunch/dinner demand curve: 40% dinner, 25% lunch,
// 15% evening snacks, 10% morning, 10% late night.
func (s *seeder) peakHour() int {
	r := s.rng.Float64()
	switch {
	case r < 0.40:
		return 19 + s.rng.Intn(4)
	case r < 0.65:
		return 12 + s.rng.Intn(4)
	case r < 0.80:
		return 16 + s.rng.Intn(3)
	case r < 0.90:
		return 8 + s.rng.Intn(4)
	default:
		return []int{23, 0, 1}[s.rng.Intn(3)]
	}
}

func (s *seeder) seedSessions() error {
	devices := []models.DeviceType{
		models.DeviceMobile, models.DeviceMobile, models.DeviceMobile,
		models.DeviceDesktop, models.DeviceTablet,
	}
	for i := range s.users {
		user := &s.users[i]
		activeDays := int(s.cfg.End.Sub(user.SignUpDate).Hours() / 24)
		if activeDays < 0 {
			activeDays = 0
		}
		monthsActive := activeDays / 30
		if monthsActive < 1 {
			monthsActive = 1
		}
		for n := 0; n < monthsActive*s.cfg.SessionsPerUserPerMonth; n++ {
			start := user.SignUpDate.AddDate(0, 0, s.rng.Intn(activeDays+1)).
				Add(time.Duration(s.rng.Intn(24))*time.Hour + time.Duration(s.rng.Intn(60))*time.Minute)
			end := start.Add(time.Duration(2+s.rng.Intn(29)) * time.Minute)

			orderID := s.orderWithin(user.ID, start, end)
			pages := 1 + s.rng.Intn(8)
			if orderID != nil {
				pages = 5 + s.rng.Intn(16)
			}
			sess := models.UserSession{
				UserID:       user.ID,
				SessionStart: start,
				PagesViewed:  pages,
				DeviceType:   devices[s.rng.Intn(len(devices))],
			}
			if err := s.st.StartSession(&sess); err != nil {
				return err
			}
			if err := s.st.EndSession(sess.ID, end, orderID); err != nil {
				return err
			}
		}
	}
	return nil
}

func (s *seeder) orderWithin(userID uint, start, end time.Time) *uint {
	for _, rec := range s.ordersByUser[userID] {
		if !rec.at.Before(start) && !rec.at.After(end) {
			id := rec.id
			return &id
		}
	}
	return nil
}

func (s *seeder) seedAbandonedCarts() error {
	rate := s.cfg.AbandonedCartRate
	if rate <= 0 || rate >= 1 {
		return nil
	}
	target := int(float64(s.cartRows) * rate / (1 - rate))
	for i := 0; i < target; i++ {
		user := &s.users[s.rng.Intn(len(s.users))]
		restaurant := s.pickRestaurant(user, true)
		if restaurant == nil {
			continue
		}
		available := s.availableMenu(restaurant.ID)
		if len(available) == 0 {
			continue
		}
		item := available[s.rng.Intn(len(available))]
		days := int(s.cfg.End.Sub(s.cfg.Start).Hours() / 24)
		cart := models.CartItem{
			UserID:       user.ID,
			RestaurantID: restaurant.ID,
			MenuID:       item.ID,
			Quantity:     []int{1, 1, 2}[s.rng.Intn(3)],
			AddedAt:      s.cfg.Start.AddDate(0, 0, s.rng.Intn(days+1)),
		}
		if err := s.st.AddCartItem(&cart); err != nil {
			return err
		}
	}
	return nil
}

// pickWeighted returns an index drawn according to the given weights.
func (s *seeder) pickWeighted(weights []float64) int {
	r := s.rng.Float64()
	acc := 0.0
	for i, w := range weights {
		acc += w
		if r < acc {
			return i
		}
	}
	return len(weights) - 1
}
