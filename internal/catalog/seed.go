package catalog

import "tableside/internal/models"

// The static default catalog used to initialize an empty store. Seed ids use
// the zero-padded PROD namespace and are never reassigned.
var seedCategories = []string{"Starters", "Main Courses", "Desserts", "Beverages"}

var seedProducts = []models.Product{
	{ID: "PROD-001", Name: "Chicken Biryani", Price: 220, Description: "Aromatic & spicy rice dish with tender chicken", Category: "Main Courses", Type: models.TypeNonVeg, Available: true},
	{ID: "PROD-002", Name: "Paneer Butter Masala", Price: 180, Description: "Creamy & rich cottage cheese curry", Category: "Main Courses", Type: models.TypeVeg, Available: true},
	{ID: "PROD-003", Name: "Veg Noodles", Price: 150, Description: "Stir-fried noodles with fresh vegetables", Category: "Main Courses", Type: models.TypeVeg, Available: true},
	{ID: "PROD-004", Name: "Mutton Curry", Price: 250, Description: "Rich & spicy slow-cooked mutton gravy", Category: "Main Courses", Type: models.TypeNonVeg, Available: true},
	{ID: "PROD-005", Name: "Veg Salad", Price: 120, Description: "Fresh garden vegetables with light dressing", Category: "Starters", Type: models.TypeVeg, Available: true},
	{ID: "PROD-006", Name: "Butter Naan", Price: 60, Description: "Soft tandoori bread brushed with butter", Category: "Main Courses", Type: models.TypeVeg, Available: true},
	{ID: "PROD-007", Name: "Dal Tadka", Price: 160, Description: "Tempered yellow lentils with aromatic spices", Category: "Main Courses", Type: models.TypeVeg, Available: true},
	{ID: "PROD-008", Name: "Chicken Tikka Masala", Price: 240, Description: "Grilled chicken in creamy tomato sauce", Category: "Main Courses", Type: models.TypeNonVeg, Available: true},
	{ID: "PROD-009", Name: "Palak Paneer", Price: 190, Description: "Cottage cheese in creamy spinach gravy", Category: "Main Courses", Type: models.TypeVeg, Available: true},
	{ID: "PROD-010", Name: "Gulab Jamun", Price: 90, Description: "Soft fried dumplings soaked in rose syrup", Category: "Desserts", Type: models.TypeVeg, Available: true},
	{ID: "PROD-011", Name: "Mango Lassi", Price: 80, Description: "Refreshing sweet yogurt drink with mango", Category: "Beverages", Type: models.TypeVeg, Available: true},
	{ID: "PROD-012", Name: "Masala Chai", Price: 50, Description: "Spiced Indian tea with milk", Category: "Beverages", Type: models.TypeVeg, Available: true},
	{ID: "PROD-013", Name: "Fresh Lime Soda", Price: 60, Description: "Zesty lime soda, sweet or salted", Category: "Beverages", Type: models.TypeVeg, Available: true},
	{ID: "PROD-014", Name: "Vegetable Samosa", Price: 80, Description: "Crispy pastry filled with spiced potatoes and peas", Category: "Starters", Type: models.TypeVeg, Available: true},
	{ID: "PROD-015", Name: "Chicken 65", Price: 180, Description: "Spicy deep-fried chicken appetizer", Category: "Starters", Type: models.TypeNonVeg, Available: true},
	{ID: "PROD-016", Name: "Onion Bhaji", Price: 100, Description: "Crispy fried onion fritters with spices", Category: "Starters", Type: models.TypeVeg, Available: true},
	{ID: "PROD-017", Name: "Butter Chicken", Price: 260, Description: "Tender chicken in rich buttery tomato sauce", Category: "Main Courses", Type: models.TypeNonVeg, Available: true},
	{ID: "PROD-018", Name: "Lamb Rogan Josh", Price: 280, Description: "Aromatic Kashmiri lamb curry with yogurt and spices", Category: "Main Courses", Type: models.TypeNonVeg, Available: true},
	{ID: "PROD-019", Name: "Aloo Gobi", Price: 140, Description: "Spiced potato and cauliflower stir-fry", Category: "Main Courses", Type: models.TypeVeg, Available: true},
	{ID: "PROD-020", Name: "Rasmalai", Price: 120, Description: "Soft cheese patties in creamy milk syrup with pistachios", Category: "Desserts", Type: models.TypeVeg, Available: true},
	{ID: "PROD-021", Name: "Jalebi", Price: 80, Description: "Crispy pretzel-shaped sweets soaked in sugar syrup", Category: "Desserts", Type: models.TypeVeg, Available: true},
	{ID: "PROD-022", Name: "Falooda", Price: 130, Description: "Chilled rose-flavored milk drink with vermicelli and basil seeds", Category: "Beverages", Type: models.TypeVeg, Available: true},
	{ID: "PROD-023", Name: "Thandai", Price: 100, Description: "Cooling spiced milk drink with nuts and saffron", Category: "Beverages", Type: models.TypeVeg, Available: true},
}

// SeedProducts returns a fresh copy of the default catalog.
func SeedProducts() []models.Product {
	out := make([]models.Product, len(seedProducts))
	copy(out, seedProducts)
	return out
}

// SeedCategories returns a fresh copy of the default category list.
func SeedCategories() []string {
	out := make([]string, len(seedCategories))
	copy(out, seedCategories)
	return out
}
