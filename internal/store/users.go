package store

import (
	"context" // Per-operation contexts

	"capshop/internal/db"     // Row models
	"capshop/internal/domain" // Typed records

	"gorm.io/gorm" // GORM ORM library
)

// Both variants live in SiteUser. Every statement below filters on the
// discriminator so one variant's path never reads or rewrites the other.

var customerType = string(domain.UserTypeCustomer)
var administratorType = string(domain.UserTypeAdministrator)

// ListCustomers returns every customer, disabled ones included
func (s *Store) ListCustomers(ctx context.Context) ([]domain.Customer, error) {
	customers, _, err := s.ListCustomersPage(ctx, false, Page{})
	return customers, err
}

// ListActiveCustomers returns the customers that have not been disabled
func (s *Store) ListActiveCustomers(ctx context.Context) ([]domain.Customer, error) {
	customers, _, err := s.ListCustomersPage(ctx, true, Page{})
	return customers, err
}

// ListCustomersPage returns one page of customers and the total count.
// activeOnly leaves out disabled customers.
func (s *Store) ListCustomersPage(ctx context.Context, activeOnly bool, p Page) ([]domain.Customer, int64, error) {
	var rows []db.SiteUser
	var total int64
	err := s.withConn(ctx, func(conn *gorm.DB) error {
		query := conn.Model(&db.SiteUser{}).Where("userType = ?", customerType)
		if activeOnly {
			query = query.Where("isDisabled = ?", false)
		}
		return findPage(query, p, &total, &rows)
	})
	if err != nil {
		return nil, 0, err
	}
	customers := make([]domain.Customer, len(rows))
	for i, row := range rows {
		customers[i] = toCustomer(row)
	}
	return customers, total, nil
}

// GetCustomerByID returns the customer with id, or nil if there is none
func (s *Store) GetCustomerByID(ctx context.Context, id int64) (*domain.Customer, error) {
	return s.findCustomer(ctx, "id = ?", id)
}

// GetCustomerByLogin returns the customer with login, or nil if there is none
func (s *Store) GetCustomerByLogin(ctx context.Context, login string) (*domain.Customer, error) {
	return s.findCustomer(ctx, "login = ?", login)
}

// GetCustomerByEmail returns the first customer with email, or nil if there is none
func (s *Store) GetCustomerByEmail(ctx context.Context, email string) (*domain.Customer, error) {
	return s.findCustomer(ctx, "emailAddress = ?", email)
}

func (s *Store) findCustomer(ctx context.Context, cond string, arg any) (*domain.Customer, error) {
	var row db.SiteUser
	err := s.withConn(ctx, func(conn *gorm.DB) error {
		return conn.Where("userType = ?", customerType).Where(cond, arg).Take(&row).Error
	})
	if err != nil {
		return nil, absent(err)
	}
	customer := toCustomer(row)
	return &customer, nil
}

// AddCustomer inserts a customer and returns the assigned id. The row is
// always a customer and starts enabled. Contact numbers are not checked here.
func (s *Store) AddCustomer(ctx context.Context, c domain.NewCustomer) (int64, error) {
	row := db.SiteUser{
		Login:         c.Login,                   // Unique login
		PasswordHash:  c.PasswordHash,            // Pre-hashed password
		UserType:      customerType,              // Customer discriminator
		EmailAddress:  c.Email,                   // Email address
		HomeNumber:    nullable(c.HomeNumber),    // Home number
		WorkNumber:    nullable(c.WorkNumber),    // Work number
		MobileNumber:  nullable(c.MobileNumber),  // Mobile number
		FirstName:     nullable(c.FirstName),     // First name
		LastName:      nullable(c.LastName),      // Last name
		StreetAddress: nullable(c.StreetAddress), // Street address
		Suburb:        nullable(c.Suburb),        // Suburb
		City:          nullable(c.City),          // City
		IsDisabled:    false,                     // New customers are enabled
	}
	err := s.withConn(ctx, func(conn *gorm.DB) error {
		return conn.Create(&row).Error
	})
	if err != nil {
		return 0, err
	}
	return row.ID, nil
}

// UpdateCustomer overwrites every profile field of customer id. The
// password column is never part of this statement.
func (s *Store) UpdateCustomer(ctx context.Context, id int64, p domain.CustomerProfile) error {
	return s.withConn(ctx, func(conn *gorm.DB) error {
		return conn.Model(&db.SiteUser{}).
			Where("id = ? AND userType = ?", id, customerType).
			Updates(map[string]any{
				"login":         p.Login,
				"emailAddress":  p.Email,
				"firstName":     p.FirstName,
				"lastName":      p.LastName,
				"homeNumber":    p.HomeNumber,
				"workNumber":    p.WorkNumber,
				"mobileNumber":  p.MobileNumber,
				"streetAddress": p.StreetAddress,
				"suburb":        p.Suburb,
				"city":          p.City,
			}).Error
	})
}

// UpdateCustomerPassword replaces the stored hash of customer id
func (s *Store) UpdateCustomerPassword(ctx context.Context, id int64, passwordHash string) error {
	return s.updatePassword(ctx, id, customerType, passwordHash)
}

// DisableCustomer marks customer id as disabled. The row is kept.
func (s *Store) DisableCustomer(ctx context.Context, id int64) error {
	return s.withConn(ctx, func(conn *gorm.DB) error {
		return conn.Model(&db.SiteUser{}).
			Where("id = ? AND userType = ?", id, customerType).
			Update("isDisabled", true).Error
	})
}

// ListAdministrators returns every administrator
func (s *Store) ListAdministrators(ctx context.Context) ([]domain.Administrator, error) {
	admins, _, err := s.ListAdministratorsPage(ctx, Page{})
	return admins, err
}

// ListAdministratorsPage returns one page of administrators and the total count
func (s *Store) ListAdministratorsPage(ctx context.Context, p Page) ([]domain.Administrator, int64, error) {
	var rows []db.SiteUser
	var total int64
	err := s.withConn(ctx, func(conn *gorm.DB) error {
		query := conn.Model(&db.SiteUser{}).Where("userType = ?", administratorType)
		return findPage(query, p, &total, &rows)
	})
	if err != nil {
		return nil, 0, err
	}
	admins := make([]domain.Administrator, len(rows))
	for i, row := range rows {
		admins[i] = toAdministrator(row)
	}
	return admins, total, nil
}

// GetAdministratorByID returns the administrator with id, or nil if there is none
func (s *Store) GetAdministratorByID(ctx context.Context, id int64) (*domain.Administrator, error) {
	return s.findAdministrator(ctx, "id = ?", id)
}

// GetAdministratorByLogin returns the administrator with login, or nil if there is none
func (s *Store) GetAdministratorByLogin(ctx context.Context, login string) (*domain.Administrator, error) {
	return s.findAdministrator(ctx, "login = ?", login)
}

func (s *Store) findAdministrator(ctx context.Context, cond string, arg any) (*domain.Administrator, error) {
	var row db.SiteUser
	err := s.withConn(ctx, func(conn *gorm.DB) error {
		return conn.Where("userType = ?", administratorType).Where(cond, arg).Take(&row).Error
	})
	if err != nil {
		return nil, absent(err)
	}
	admin := toAdministrator(row)
	return &admin, nil
}

// AddAdministrator inserts an administrator and returns the assigned id
func (s *Store) AddAdministrator(ctx context.Context, login, email, passwordHash string) (int64, error) {
	row := db.SiteUser{
		Login:        login,             // Unique login
		PasswordHash: passwordHash,      // Pre-hashed password
		UserType:     administratorType, // Administrator discriminator
		EmailAddress: email,             // Email address
	}
	err := s.withConn(ctx, func(conn *gorm.DB) error {
		return conn.Create(&row).Error
	})
	if err != nil {
		return 0, err
	}
	return row.ID, nil
}

// UpdateAdministrator overwrites login and email of administrator id
func (s *Store) UpdateAdministrator(ctx context.Context, id int64, login, email string) error {
	return s.withConn(ctx, func(conn *gorm.DB) error {
		return conn.Model(&db.SiteUser{}).
			Where("id = ? AND userType = ?", id, administratorType).
			Updates(map[string]any{"login": login, "emailAddress": email}).Error
	})
}

// UpdateAdministratorPassword replaces the stored hash of administrator id
func (s *Store) UpdateAdministratorPassword(ctx context.Context, id int64, passwordHash string) error {
	return s.updatePassword(ctx, id, administratorType, passwordHash)
}

func (s *Store) updatePassword(ctx context.Context, id int64, userType, passwordHash string) error {
	return s.withConn(ctx, func(conn *gorm.DB) error {
		return conn.Model(&db.SiteUser{}).
			Where("id = ? AND userType = ?", id, userType).
			Update("password_hash", passwordHash).Error
	})
}

func toCustomer(row db.SiteUser) domain.Customer {
	return domain.Customer{
		ID:            row.ID,
		Login:         row.Login,
		PasswordHash:  row.PasswordHash,
		Email:         row.EmailAddress,
		FirstName:     deref(row.FirstName),
		LastName:      deref(row.LastName),
		HomeNumber:    deref(row.HomeNumber),
		WorkNumber:    deref(row.WorkNumber),
		MobileNumber:  deref(row.MobileNumber),
		StreetAddress: deref(row.StreetAddress),
		Suburb:        deref(row.Suburb),
		City:          deref(row.City),
		IsDisabled:    row.IsDisabled,
	}
}

func toAdministrator(row db.SiteUser) domain.Administrator {
	return domain.Administrator{
		ID:           row.ID,
		Login:        row.Login,
		PasswordHash: row.PasswordHash,
		Email:        row.EmailAddress,
	}
}
