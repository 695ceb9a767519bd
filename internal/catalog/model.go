package catalog

// Item is one sellable menu entry. Price is fixed at creation;
// there is no update operation.
type Item struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// Defaults is the seed menu loaded into an empty catalog at startup.
func Defaults() []Item {
	return []Item{
		{Name: "Beef Burger", Price: 6.5},
		{Name: "Sandwich", Price: 5.5},
		{Name: "Hainanese Chicken Rice", Price: 5},
		{Name: "French Fries", Price: 2.5},
		{Name: "Diet Coke", Price: 1.5},
	}
}
