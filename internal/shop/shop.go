// Package shop holds the static tea shop and drink log data shown in the
// demo sheets, and renders it as sheet content.
package shop

import "time"

// Item is a featured menu item.
type Item struct {
	Name  string
	Price string
}

// Review is a customer review. Rating is 1 to 5.
type Review struct {
	User    string
	Rating  int
	Comment string
}

// Shop is a tea shop listing.
type Shop struct {
	ID             int
	Name           string
	Rating         float64
	Location       string
	Hours          string
	IsOpen         bool
	DistanceMetres float64
	Phone          string
	Website        string
	Description    string // markdown
	Featured       []Item
	Reviews        []Review
}

// Drink is one entry of the drink log.
type Drink struct {
	Name      string
	Shop      string
	Sugar     string
	Ice       string
	Size      string
	Rating    int // 0 when unrated
	Price     string
	CreatedAt time.Time
}

// Catalog returns the shops near the user, closest first.
func Catalog() []Shop {
	return []Shop{
		{
			ID:             1,
			Name:           "Ten Ren Tea",
			Rating:         4.8,
			Location:       "Floor 2, 9 On Pong Rd, Tai Po",
			Hours:          "TODAY 11:00-22:00",
			IsOpen:         true,
			DistanceMetres: 200,
			Phone:          "+852 2345 6789",
			Website:        "tenren.com.hk",
			Description: "Ten Ren Tea Co. Ltd. is dedicated to the fine art of enjoying **Chinese tea** " +
				"and the distribution of the finest teas available worldwide.\n\n" +
				"Founded in Taiwan in 1953, it has expanded to more than 100 retail stores worldwide.",
			Featured: []Item{
				{"Bubble Milk Tea", "HK$28"},
				{"Oolong Tea", "HK$25"},
				{"Green Tea Latte", "HK$32"},
			},
			Reviews: []Review{
				{"Sarah Chen", 5, "Amazing bubble tea! The pearls are perfectly chewy and the tea has great flavor."},
				{"Mike Wong", 4, "Good quality tea, authentic taste. Staff is friendly and service is quick."},
				{"Lisa Kim", 5, "Best tea shop in the area! Love their seasonal specials."},
				{"Tom Lau", 4, "Solid oolong, a little sweet for me."},
			},
		},
		{
			ID:             2,
			Name:           "Tiger Sugar",
			Rating:         4.9,
			Location:       "Shop 15, Tai Po Plaza",
			Hours:          "TODAY 10:00-23:00",
			IsOpen:         true,
			DistanceMetres: 500,
			Phone:          "+852 2876 5432",
			Website:        "tigersugar.com",
			Description: "Famous for its signature **brown sugar boba** milk tea with the tiger stripe " +
				"pattern. Each cup is crafted with premium ingredients.",
			Featured: []Item{
				{"Brown Sugar Boba", "HK$35"},
				{"Tiger Milk Tea", "HK$38"},
			},
			Reviews: []Review{
				{"Jenny Liu", 5, "The brown sugar boba is incredible! Worth the wait."},
			},
		},
		{
			ID:             3,
			Name:           "CHICHA San Chen",
			Rating:         4.7,
			Location:       "G/F, 123 Kwong Fuk Road",
			Hours:          "TODAY 11:30-21:30",
			IsOpen:         false,
			DistanceMetres: 800,
			Phone:          "+852 2987 6543",
			Website:        "chichasanchen.com",
			Description: "Premium tea drinks with a focus on traditional Taiwanese tea culture " +
				"and modern brewing techniques.",
			Featured: []Item{
				{"Cheese Tea", "HK$42"},
			},
			Reviews: []Review{
				{"David Park", 4, "Unique flavors and high quality ingredients. A bit pricey but worth it."},
			},
		},
		{
			ID:             4,
			Name:           "Gong Cha",
			Rating:         4.6,
			Location:       "Unit 5, Tai Po Market",
			Hours:          "TODAY 09:00-22:30",
			IsOpen:         true,
			DistanceMetres: 1200,
			Phone:          "+852 2765 4321",
			Website:        "gongcha.com.hk",
			Description:    "A wide variety of freshly brewed teas with customizable *sweetness* and *ice* levels.",
			Featured: []Item{
				{"Taro Milk Tea", "HK$30"},
				{"Milk Foam Black Tea", "HK$29"},
			},
			Reviews: []Review{
				{"Amy Zhang", 5, "Consistent every time, and the queue moves fast."},
			},
		},
	}
}

// DrinkLog returns the demo drink log relative to now, newest first.
func DrinkLog(now time.Time) []Drink {
	return []Drink{
		{"Brown Sugar Boba", "Tiger Sugar", "Regular", "Less", "Large", 5, "HK$35", now.Add(-2 * time.Hour)},
		{"Oolong Tea", "Ten Ren Tea", "None", "Normal", "Medium", 4, "HK$25", now.Add(-26 * time.Hour)},
		{"Cheese Tea", "CHICHA San Chen", "Half", "No ice", "Large", 0, "HK$42", now.Add(-9 * 24 * time.Hour)},
	}
}
