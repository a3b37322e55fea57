package domain

// MenuItem is one entry of the menu catalog. Vegetarian classification is
// computed from the name and extras, never stored.
type MenuItem struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
	Price    int    `json:"price"`
	Image    string `json:"image"`
	Extras   string `json:"extras,omitempty"`
}

// MenuSection groups menu items under a meal heading (Breakfast, Lunch, ...).
type MenuSection struct {
	Subcategory string     `json:"subcategory"`
	Items       []MenuItem `json:"items"`
}
