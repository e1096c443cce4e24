package seed

// Constant pools for generated data. The city, channel, cuisine and price
// tables match the historical dataset this schema was built for.

var indianCities = [][2]string{
	{"Mumbai", "Maharashtra"}, {"Delhi", "Delhi"}, {"Bangalore", "Karnataka"},
	{"Hyderabad", "Telangana"}, {"Chennai", "Tamil Nadu"}, {"Kolkata", "West Bengal"},
	{"Pune", "Maharashtra"}, {"Ahmedabad", "Gujarat"}, {"Jaipur", "Rajasthan"},
	{"Surat", "Gujarat"}, {"Lucknow", "Uttar Pradesh"}, {"Kanpur", "Uttar Pradesh"},
	{"Nagpur", "Maharashtra"}, {"Indore", "Madhya Pradesh"}, {"Thane", "Maharashtra"},
	{"Bhopal", "Madhya Pradesh"}, {"Visakhapatnam", "Andhra Pradesh"}, {"Pimpri-Chinchwad", "Maharashtra"},
	{"Patna", "Bihar"}, {"Vadodara", "Gujarat"}, {"Ghaziabad", "Uttar Pradesh"},
	{"Ludhiana", "Punjab"}, {"Agra", "Uttar Pradesh"}, {"Nashik", "Maharashtra"},
	{"Faridabad", "Haryana"}, {"Meerut", "Uttar Pradesh"}, {"Rajkot", "Gujarat"},
	{"Kalyan-Dombivali", "Maharashtra"}, {"Vasai-Virar", "Maharashtra"}, {"Varanasi", "Uttar Pradesh"},
	{"Srinagar", "Jammu and Kashmir"}, {"Aurangabad", "Maharashtra"}, {"Dhanbad", "Jharkhand"},
	{"Amritsar", "Punjab"}, {"Navi Mumbai", "Maharashtra"}, {"Allahabad", "Uttar Pradesh"},
	{"Ranchi", "Jharkhand"}, {"Howrah", "West Bengal"}, {"Coimbatore", "Tamil Nadu"},
	{"Jabalpur", "Madhya Pradesh"}, {"Gwalior", "Madhya Pradesh"}, {"Vijayawada", "Andhra Pradesh"},
	{"Jodhpur", "Rajasthan"}, {"Madurai", "Tamil Nadu"}, {"Raipur", "Chhattisgarh"},
	{"Kota", "Rajasthan"}, {"Chandigarh", "Chandigarh"}, {"Guwahati", "Assam"},
	{"Solapur", "Maharashtra"}, {"Hubli-Dharwad", "Karnataka"},
}

// metros get a small rating bias and denser restaurant coverage.
var metroCities = map[string]bool{
	"Mumbai": true, "Delhi": true, "Bangalore": true, "Hyderabad": true, "Chennai": true,
}

var acquisitionChannels = [][2]string{
	{"Organic Search", "Users from search engines"},
	{"Google Ads", "Google advertising"},
	{"Facebook Ads", "Facebook advertising"},
	{"Instagram Ads", "Instagram advertising"},
	{"Referral Program", "User referrals"},
	{"App Store Featured", "App store featuring"},
	{"Email Marketing", "Email campaigns"},
	{"Influencer Marketing", "Influencer promotions"},
	{"Direct", "Direct visits"},
	{"YouTube Ads", "YouTube advertising"},
}

// channelWeights distribute users across acquisition channels, in the same
// order as acquisitionChannels. Index 4 is the referral program.
var channelWeights = []float64{0.30, 0.15, 0.12, 0.10, 0.15, 0.05, 0.05, 0.03, 0.03, 0.02}

const referralChannelIndex = 4

var cuisines = []string{
	"North Indian", "South Indian", "Chinese", "Italian", "Continental",
	"Fast Food", "Desserts", "Beverages", "Bakery", "Street Food",
	"Mughlai", "Bengali", "Punjabi", "Gujarati", "Rajasthani",
}

var restaurantNames = []string{
	"The Great Kabab Factory", "Barbeque Nation", "Mainland China", "Paradise Biryani",
	"Dominos Pizza", "Pizza Hut", "KFC", "McDonalds", "Subway", "Burger King",
	"Cafe Coffee Day", "Starbucks", "The Beer Cafe", "Social", "The Brew House",
	"Haldirams", "Bikanervala", "Sagar Ratna", "Saravana Bhavan", "MTR",
	"Kareem's", "Moti Mahal", "Punjab Grill", "Oh! Calcutta", "Arsalan",
	"Empire Restaurant", "Meghana Foods", "Truffles", "Toit", "Smoke House Deli",
}

var menuCategories = []string{"Appetizer", "Main Course", "Dessert", "Beverage", "Bread", "Salad", "Soup"}

// priceRanges give the rupee band per category.
var priceRanges = map[string][2]float64{
	"Appetizer":   {50, 250},
	"Main Course": {150, 600},
	"Dessert":     {80, 200},
	"Beverage":    {30, 150},
	"Bread":       {20, 80},
	"Salad":       {100, 250},
	"Soup":        {80, 180},
}

var defaultPriceRange = [2]float64{100, 400}

var menuItemsByCuisine = map[string][]string{
	"North Indian": {"Paneer Tikka", "Butter Chicken", "Dal Makhani", "Naan", "Biryani", "Tandoori Chicken"},
	"South Indian": {"Dosa", "Idli", "Vada", "Uttapam", "Sambar", "Coconut Chutney"},
	"Chinese":      {"Fried Rice", "Chowmein", "Manchurian", "Spring Rolls", "Soup", "Hakka Noodles"},
	"Italian":      {"Pizza Margherita", "Pasta Alfredo", "Lasagna", "Garlic Bread", "Bruschetta", "Tiramisu"},
	"Fast Food":    {"Burger", "French Fries", "Pizza", "Sandwich", "Wrap", "Nuggets"},
	"Desserts":     {"Ice Cream", "Cake", "Brownie", "Pastry", "Gulab Jamun", "Rasmalai"},
}

var genericMenuItems = []string{"Special Dish", "House Special", "Chef Special"}

var itemSuffixes = []string{"Deluxe", "Special", "Classic", "Royal", ""}

var dietaryPreferences = []string{"None", "Vegetarian", "Vegan", "Jain"}
