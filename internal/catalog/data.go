package catalog

import "github.com/shubhpanwar/shophub-vibrant-market/internal/domain"

var products = []domain.Product{
	{
		ID:          1,
		Name:        "OnePlus Nord CE 3 Lite 5G",
		Description: "8GB RAM, 128GB Storage, 108MP Camera, Pastel Lime",
		Price:       19999,
		Image:       "https://images.unsplash.com/photo-1598327105666-5b89351aff97?auto=format&fit=crop&q=80&w=2727&ixlib=rb-4.0.3",
		Category:    "Electronics",
		Rating:      4.5,
		Reviews:     2456,
		Stock:       35,
		Discount:    10,
	},
	{
		ID:          2,
		Name:        "HP Laptop 15s",
		Description: "Intel Core i5-1235U, 16GB RAM, 512GB SSD, 15.6-inch FHD",
		Price:       59990,
		Image:       "https://images.unsplash.com/photo-1588872657578-7efd1f1555ed?auto=format&fit=crop&q=80&w=2940&ixlib=rb-4.0.3",
		Category:    "Electronics",
		Rating:      4.3,
		Reviews:     1850,
		Stock:       20,
		Discount:    15,
	},
	{
		ID:          3,
		Name:        "Men's Regular Fit Shirt",
		Description: "Cotton Blend Full Sleeve Casual Shirt",
		Price:       1299,
		Image:       "https://images.unsplash.com/photo-1620012253295-c15cc3e65df4?auto=format&fit=crop&q=80&w=2725&ixlib=rb-4.0.3",
		Category:    "Fashion",
		Rating:      4.2,
		Reviews:     3200,
		Stock:       150,
		Discount:    5,
	},
	{
		ID:          4,
		Name:        "Sony WH-1000XM5",
		Description: "Wireless Noise Cancelling Headphones with Auto Noise Cancelling Optimizer, Black",
		Price:       29990,
		Image:       "https://images.unsplash.com/photo-1505740420928-5e560c06d30e?auto=format&fit=crop&q=80&w=2940&ixlib=rb-4.0.3",
		Category:    "Electronics",
		Rating:      4.8,
		Reviews:     1245,
		Stock:       12,
		Discount:    20,
	},
	{
		ID:          5,
		Name:        "Apple iPad 10th Generation",
		Description: "10.9-inch, Wi-Fi, 64GB, Blue",
		Price:       44900,
		Image:       "https://images.unsplash.com/photo-1544244015-0df4b3ffc6b0?auto=format&fit=crop&q=80&w=3103&ixlib=rb-4.0.3",
		Category:    "Electronics",
		Rating:      4.6,
		Reviews:     987,
		Stock:       8,
	},
	{
		ID:          6,
		Name:        "Women's Cotton Kurti",
		Description: "Floral Printed Straight Kurti for Women",
		Price:       899,
		Image:       "https://images.unsplash.com/photo-1551232864-3f0890e580d9?auto=format&fit=crop&q=80&w=2787&ixlib=rb-4.0.3",
		Category:    "Fashion",
		Rating:      4.1,
		Reviews:     2410,
		Stock:       230,
		Discount:    12,
	},
	{
		ID:          7,
		Name:        "Prestige Electric Kettle",
		Description: "1.5L Stainless Steel Electric Kettle with Auto Shut Off",
		Price:       1499,
		Image:       "https://images.unsplash.com/photo-1594226590268-320ec511fea8?auto=format&fit=crop&q=80&w=2940&ixlib=rb-4.0.3",
		Category:    "Appliances",
		Rating:      4.0,
		Reviews:     5670,
		Stock:       48,
		Discount:    8,
	},
	{
		ID:          8,
		Name:        "American Tourister Trolley Bag",
		Description: "55cm Hard Sided Cabin Luggage, Black",
		Price:       3599,
		Image:       "https://images.unsplash.com/photo-1581605405669-fcdf81165afa?auto=format&fit=crop&q=80&w=2787&ixlib=rb-4.0.3",
		Category:    "Travel",
		Rating:      4.4,
		Reviews:     2310,
		Stock:       15,
		Discount:    18,
	},
	{
		ID:          9,
		Name:        "Milton Water Bottle",
		Description: "1L Steel Water Bottle, Thermosteel Flask",
		Price:       699,
		Image:       "https://images.unsplash.com/photo-1605000797499-95a51c5269ae?auto=format&fit=crop&q=80&w=2671&ixlib=rb-4.0.3",
		Category:    "Home",
		Rating:      4.2,
		Reviews:     6750,
		Stock:       85,
		Discount:    5,
	},
	{
		ID:          10,
		Name:        "Boat Airdopes 141",
		Description: "Bluetooth Truly Wireless Earbuds with 42H Playtime",
		Price:       1399,
		Image:       "https://images.unsplash.com/photo-1606220945770-b5b6c2c55bf1?auto=format&fit=crop&q=80&w=2532&ixlib=rb-4.0.3",
		Category:    "Electronics",
		Rating:      4.3,
		Reviews:     9870,
		Stock:       42,
		Discount:    22,
	},
}

var categories = []domain.Category{
	{
		ID:    1,
		Name:  "Electronics",
		Image: "https://images.unsplash.com/photo-1468495244123-6c6c332eeece?auto=format&fit=crop&q=80&w=2942&ixlib=rb-4.0.3",
	},
	{
		ID:    2,
		Name:  "Fashion",
		Image: "https://images.unsplash.com/photo-1445205170230-053b83016050?auto=format&fit=crop&q=80&w=2788&ixlib=rb-4.0.3",
	},
	{
		ID:    3,
		Name:  "Appliances",
		Image: "https://images.unsplash.com/photo-1556911220-bda9f7f7d522?auto=format&fit=crop&q=80&w=2835&ixlib=rb-4.0.3",
	},
	{
		ID:    4,
		Name:  "Home",
		Image: "https://images.unsplash.com/photo-1513694203232-719a280e022f?auto=format&fit=crop&q=80&w=2938&ixlib=rb-4.0.3",
	},
	{
		ID:    5,
		Name:  "Travel",
		Image: "https://images.unsplash.com/photo-1499591934245-40b55745b905?auto=format&fit=crop&q=80&w=2952&ixlib=rb-4.0.3",
	},
}

// Seed users for the mock authentication directory.
var seedUsers = []domain.User{
	{ID: 1, Name: "John Doe", Email: "john@example.com", Password: "password123"},
	{ID: 2, Name: "Jane Smith", Email: "jane@example.com", Password: "password123"},
}

// SeedUsers returns copies of the built-in demo accounts.
func SeedUsers() []domain.User {
	out := make([]domain.User, len(seedUsers))
	copy(out, seedUsers)
	return out
}
