// Package dataset ships a small demo item set so the pipeline can be tried
// without preparing an input file.
package dataset

// GroceryItems is a flat product-label collection of the kind this tool is
// meant to organize.
var GroceryItems = []string{
	"Whole Milk 1L",
	"Skim Milk 1L",
	"Oat Milk Barista Edition",
	"Greek Yogurt Plain 500g",
	"Strawberry Yogurt 4-Pack",
	"Salted Butter 250g",
	"Cheddar Cheese Block 400g",
	"Mozzarella Shredded 200g",
	"Free Range Eggs Dozen",
	"Sourdough Loaf",
	"Whole Wheat Sandwich Bread",
	"Plain Bagels 6-Pack",
	"Croissants 4-Pack",
	"Corn Tortillas 12-Pack",
	"Basmati Rice 2kg",
	"Spaghetti 500g",
	"Penne Rigate 500g",
	"Rolled Oats 1kg",
	"Granola Honey Almond",
	"Corn Flakes 750g",
	"Bananas Bunch",
	"Fuji Apples 1kg",
	"Navel Oranges 2kg",
	"Seedless Grapes 500g",
	"Blueberries 125g",
	"Hass Avocados 4-Pack",
	"Roma Tomatoes 1kg",
	"Baby Spinach 200g",
	"Romaine Hearts 3-Pack",
	"Broccoli Crown",
	"Carrots 1kg",
	"Yellow Onions 2kg",
	"Russet Potatoes 2.5kg",
	"Garlic 3-Pack",
	"Chicken Breast Fillets 1kg",
	"Ground Beef 500g",
	"Pork Sausages 6-Pack",
	"Atlantic Salmon Fillet 300g",
	"Canned Tuna in Water 4-Pack",
	"Black Beans Canned 400g",
	"Chickpeas Canned 400g",
	"Diced Tomatoes Canned 400g",
	"Tomato Paste 200g",
	"Extra Virgin Olive Oil 750ml",
	"Canola Oil 1L",
	"Soy Sauce 500ml",
	"Peanut Butter Smooth 500g",
	"Strawberry Jam 370g",
	"Honey Squeeze Bottle 400g",
	"Ground Coffee Medium Roast 500g",
	"Earl Grey Tea 50 Bags",
	"Orange Juice No Pulp 1.5L",
	"Sparkling Water Lime 12-Pack",
	"Cola 2L",
	"Dark Chocolate 70% Bar",
	"Potato Chips Sea Salt 200g",
	"Salted Mixed Nuts 400g",
	"Vanilla Ice Cream 1L",
	"Frozen Peas 500g",
	"Frozen Margherita Pizza",
	"Dish Soap Lemon 500ml",
	"Laundry Detergent 2L",
	"Paper Towels 6 Rolls",
	"Toilet Paper 12 Rolls",
	"Aluminum Foil 30m",
}
