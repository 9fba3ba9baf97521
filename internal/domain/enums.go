package domain

import "strings"

// Category is the closed set of component categories.
type Category string

const (
	CategoryMicrocontroller     Category = "Microcontroller"
	CategorySensor              Category = "Sensor"
	CategoryMotor               Category = "Motor"
	CategoryDisplay             Category = "Display"
	CategoryPowerSupply         Category = "Power Supply"
	CategoryCommunicationModule Category = "Communication Module"
	CategoryStorage             Category = "Storage"
	CategoryPassiveComponent    Category = "Passive Component"
	CategoryOther               Category = "Other"
)

func (c Category) String() string { return string(c) }

func (c Category) IsValid() bool {
	switch c {
	case CategoryMicrocontroller, CategorySensor, CategoryMotor, CategoryDisplay,
		CategoryPowerSupply, CategoryCommunicationModule, CategoryStorage,
		CategoryPassiveComponent, CategoryOther:
		return true
	}
	return false
}

// Categories returns every valid category in declaration order.
func Categories() []Category {
	return []Category{
		CategoryMicrocontroller, CategorySensor, CategoryMotor, CategoryDisplay,
		CategoryPowerSupply, CategoryCommunicationModule, CategoryStorage,
		CategoryPassiveComponent, CategoryOther,
	}
}

// CategoryNames returns the valid category labels joined for error messages.
func CategoryNames() string {
	cats := Categories()
	names := make([]string, len(cats))
	for i, c := range cats {
		names[i] = c.String()
	}
	return strings.Join(names, ", ")
}

// StockStatus is the derived stock level label.
type StockStatus string

const (
	StockStatusInStock  StockStatus = "In Stock"
	StockStatusLowStock StockStatus = "Low Stock"
)

func (s StockStatus) String() string { return string(s) }

func (s StockStatus) IsValid() bool {
	return s == StockStatusInStock || s == StockStatusLowStock
}

// DeriveStockStatus maps stock levels to a status label.
// Low Stock iff stock <= minStock.
func DeriveStockStatus(stock, minStock int) StockStatus {
	if stock <= minStock {
		return StockStatusLowStock
	}
	return StockStatusInStock
}
