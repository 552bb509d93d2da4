package db

// Row models. Column names follow the persisted layout exactly; every
// query in the store package decodes into one of these types.

// SiteUser holds both user variants, discriminated by UserType
type SiteUser struct {
	ID            int64   `gorm:"column:id;primaryKey;autoIncrement"`          // Primary key
	Login         string  `gorm:"column:login;size:64;not null;uniqueIndex"`   // Unique login
	PasswordHash  string  `gorm:"column:password_hash;size:128;not null"`      // Hashed password
	UserType      string  `gorm:"column:userType;type:char(1);not null;index"` // 'C' or 'A'
	EmailAddress  string  `gorm:"column:emailAddress;size:100;not null"`       // Email address
	HomeNumber    *string `gorm:"column:homeNumber;size:11"`                   // Customer only
	WorkNumber    *string `gorm:"column:workNumber;size:11"`                   // Customer only
	MobileNumber  *string `gorm:"column:mobileNumber;size:14"`                 // Customer only
	FirstName     *string `gorm:"column:firstName;size:32"`                    // Customer only
	LastName      *string `gorm:"column:lastName;size:32"`                     // Customer only
	StreetAddress *string `gorm:"column:streetAddress;size:64"`                // Customer only
	Suburb        *string `gorm:"column:suburb;size:24"`                       // Customer only
	City          *string `gorm:"column:city;size:16"`                         // Customer only
	IsDisabled    bool    `gorm:"column:isDisabled;not null;default:false"`    // Soft delete marker
}

func (SiteUser) TableName() string { return "SiteUser" }

// CustomerOrder Model
type CustomerOrder struct {
	ID     int64    `gorm:"column:id;primaryKey;autoIncrement"`             // Primary key
	UserID int64    `gorm:"column:userId;not null;index"`                   // Foreign key to SiteUser
	Status string   `gorm:"column:status;size:16;not null;default:waiting"` // waiting, placed, fulfilled
	User   SiteUser `gorm:"foreignKey:UserID;references:ID"`                // Owning user
}

func (CustomerOrder) TableName() string { return "CustomerOrder" }

// Supplier Model
type Supplier struct {
	ID            int64  `gorm:"column:id;primaryKey;autoIncrement"`    // Primary key
	Name          string `gorm:"column:name;size:32;not null"`          // Supplier name
	ContactNumber string `gorm:"column:contactNumber;size:11;not null"` // Contact number
	EmailAddress  string `gorm:"column:emailAddress;size:64;not null"`  // Email address
}

func (Supplier) TableName() string { return "Supplier" }

// Category Model
type Category struct {
	ID   int64  `gorm:"column:id;primaryKey;autoIncrement"` // Primary key
	Name string `gorm:"column:name;size:40;not null"`       // Category name
}

func (Category) TableName() string { return "Category" }

// Colour Model
type Colour struct {
	ID   int64  `gorm:"column:id;primaryKey;autoIncrement"` // Primary key
	Name string `gorm:"column:name;size:24;not null"`       // Colour name
}

func (Colour) TableName() string { return "Colour" }

// Cap Model
type Cap struct {
	ID          int64    `gorm:"column:id;primaryKey;autoIncrement"`       // Primary key
	Name        string   `gorm:"column:name;size:40;not null"`             // Product name
	Price       float64  `gorm:"column:price;type:decimal(10,2);not null"` // Unit price
	Description string   `gorm:"column:description;size:512;not null"`     // Long description
	ImageURL    string   `gorm:"column:imageUrl;size:96;not null"`         // Image reference
	SupplierID  int64    `gorm:"column:supplierId;not null;index"`         // Foreign key to Supplier
	CategoryID  int64    `gorm:"column:categoryId;not null;index"`         // Foreign key to Category
	Supplier    Supplier `gorm:"foreignKey:SupplierID;references:ID"`      // Supplying company
	Category    Category `gorm:"foreignKey:CategoryID;references:ID"`      // Catalogue category
}

func (Cap) TableName() string { return "Cap" }

// CapColour joins Cap and Colour
type CapColour struct {
	ColourID int64  `gorm:"column:colourId;primaryKey;autoIncrement:false"` // Foreign key to Colour
	CapID    int64  `gorm:"column:capId;primaryKey;autoIncrement:false"`    // Foreign key to Cap
	Colour   Colour `gorm:"foreignKey:ColourID;references:ID"`              // Offered colour
	Cap      Cap    `gorm:"foreignKey:CapID;references:ID"`                 // Product
}

func (CapColour) TableName() string { return "CapColour" }

// OrderItem joins CustomerOrder, Cap and Colour
type OrderItem struct {
	ColourID int64         `gorm:"column:colourId;primaryKey;autoIncrement:false"` // Foreign key to Colour
	CapID    int64         `gorm:"column:capId;primaryKey;autoIncrement:false"`    // Foreign key to Cap
	OrderID  int64         `gorm:"column:orderId;primaryKey;autoIncrement:false"`  // Foreign key to CustomerOrder
	Quantity int           `gorm:"column:quantity;not null"`                       // Number of caps
	Colour   Colour        `gorm:"foreignKey:ColourID;references:ID"`              // Ordered colour
	Cap      Cap           `gorm:"foreignKey:CapID;references:ID"`                 // Ordered product
	Order    CustomerOrder `gorm:"foreignKey:OrderID;references:ID"`               // Owning order
}

func (OrderItem) TableName() string { return "OrderItem" }

// Tables lists every row model in dependency order: a table only
// references tables that appear before it.
func Tables() []any {
	return []any{
		&SiteUser{},
		&CustomerOrder{},
		&Category{},
		&Supplier{},
		&Colour{},
		&Cap{},
		&CapColour{},
		&OrderItem{},
	}
}
