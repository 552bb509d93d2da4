package domain

// Supplier Model
type Supplier struct {
	ID            int64  `json:"id"`             // Assigned by the store
	Name          string `json:"name"`           // Supplier name
	ContactNumber string `json:"contact_number"` // Contact phone number
	Email         string `json:"email"`          // Email address
}

// Category Model
type Category struct {
	ID   int64  `json:"id"`   // Assigned by the store
	Name string `json:"name"` // Category name
}

// Colour Model
type Colour struct {
	ID   int64  `json:"id"`   // Assigned by the store
	Name string `json:"name"` // Colour name
}

// Cap Model (the product)
type Cap struct {
	ID          int64   `json:"id"`          // Assigned by the store
	Name        string  `json:"name"`        // Product name
	Price       float64 `json:"price"`       // Unit price
	Description string  `json:"description"` // Long description
	ImageURL    string  `json:"image_url"`   // Image reference
	SupplierID  int64   `json:"supplier_id"` // Foreign key to Supplier
	CategoryID  int64   `json:"category_id"` // Foreign key to Category
	ColourIDs   []int64 `json:"colour_ids"`  // Colours the cap is offered in
}

// CapFields holds everything needed to add or update a cap
type CapFields struct {
	Name        string  // Product name
	Price       float64 // Unit price
	Description string  // Long description
	ImageURL    string  // Image reference
	SupplierID  int64   // Foreign key to Supplier
	CategoryID  int64   // Foreign key to Category
	ColourIDs   []int64 // Replaces the cap's colour set
}
