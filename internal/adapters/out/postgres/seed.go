package postgres

import (
	"context"

	"shop/internal/adapters/out/postgres/customerrepo"
	"shop/internal/adapters/out/postgres/productrepo"
	"shop/internal/core/domain/model/customer"
	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/product"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type seedProduct struct {
	name        string
	description string
	price       string
	stock       int
	category    string
}

type seedCustomer struct {
	fullName string
	email    string
}

//nolint:gochecknoglobals // development fixtures
var (
	seedProducts = []seedProduct{
		{"Wireless Mouse", "Ergonomic wireless mouse with adjustable DPI and silent clicks", "29.99", 150, "Electronics"},
		{"Mechanical Keyboard", "Full-size mechanical keyboard with brown switches and RGB backlight", "79.99", 75, "Electronics"},
		{"USB-C Hub", "7-in-1 USB-C hub with HDMI, USB 3.0, SD card reader and power delivery", "45.00", 200, "Accessories"},
		{"Monitor Stand", "Adjustable aluminum monitor stand with cable management", "34.99", 60, "Accessories"},
		{"Webcam HD", "1080p webcam with noise-cancelling microphone and auto-focus", "54.99", 90, "Electronics"},
		{"Go in Practice", "Programming guide covering idiomatic Go services", "49.99", 30, "Books"},
	}
	seedCustomers = []seedCustomer{
		{"Alice Johnson", "alice@example.com"},
		{"Bob Smith", "bob@example.com"},
		{"Carol Davis", "carol@example.com"},
	}
)

// SeedID derives a stable identifier for a fixture so ids survive re-seeding.
func SeedID(kind, name string) kernel.UUID {
	raw := uuid.NewSHA1(uuid.NameSpaceURL, []byte("shop:"+kind+":"+name))
	id, _ := kernel.UUIDFromBytes(raw[:])
	return id
}

// Seed inserts the development catalog and customers when both tables are empty.
// It reports whether anything was inserted.
func Seed(ctx context.Context, db *gorm.DB) (bool, error) {
	seeded := false
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var products, customers int64
		if err := tx.Model(&productrepo.ProductDTO{}).Count(&products).Error; err != nil {
			return err
		}
		if err := tx.Model(&customerrepo.CustomerDTO{}).Count(&customers).Error; err != nil {
			return err
		}
		if products > 0 || customers > 0 {
			return nil
		}

		productRows := make([]productrepo.ProductDTO, 0, len(seedProducts))
		for _, s := range seedProducts {
			price, err := kernel.MoneyFromString(s.price)
			if err != nil {
				return err
			}
			p, err := product.NewProduct(SeedID("product", s.name), s.name, s.description, price, s.stock, s.category)
			if err != nil {
				return err
			}
			productRows = append(productRows, productrepo.FromDomain(p))
		}

		customerRows := make([]customerrepo.CustomerDTO, 0, len(seedCustomers))
		for _, s := range seedCustomers {
			c, err := customer.NewCustomer(SeedID("customer", s.email), s.fullName, s.email)
			if err != nil {
				return err
			}
			customerRows = append(customerRows, customerrepo.FromDomain(c))
		}

		if err := tx.Create(&productRows).Error; err != nil {
			return err
		}
		if err := tx.Create(&customerRows).Error; err != nil {
			return err
		}

		seeded = true
		return nil
	})

	return seeded, err
}
