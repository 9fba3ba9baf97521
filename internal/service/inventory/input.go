package inventory

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/carla-io/inventory-backend/internal/domain"
)

// Quantity is a stock amount as it arrived on the wire. Clients send both
// JSON numbers and numeric strings, so decoding is lenient and validation
// happens separately. Present reports whether the field appeared in the
// payload at all; Falsy reports whether it was null, zero, false or an
// empty string.
type Quantity struct {
	Present bool
	Falsy   bool
	Valid   bool
	Value   int
}

func (q *Quantity) UnmarshalJSON(data []byte) error {
	q.Present = true

	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	switch v := raw.(type) {
	case nil:
		q.Falsy = true
	case bool:
		q.Falsy = !v
	case float64:
		// Fractional amounts truncate toward zero, like an int() cast.
		q.Falsy = v == 0
		q.Valid = true
		q.Value = int(v)
	case string:
		q.Falsy = strings.TrimSpace(v) == ""
		if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			q.Valid = true
			q.Value = n
		}
	}
	return nil
}

// Missing reports whether the field should be treated as not provided on
// create. Falsy values count as missing so that a zero stock is rejected
// the same way an absent one is.
func (q Quantity) Missing() bool {
	return !q.Present || q.Falsy
}

// CreateComponentInput carries the fields of a new component.
type CreateComponentInput struct {
	Name           string
	Category       string
	Stock          Quantity
	MinStock       Quantity
	Specifications string
	Supplier       string
}

func (i CreateComponentInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.Name) == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "is required"})
	}
	if i.Category == "" {
		errs = append(errs, domain.FieldError{Field: "category", Message: "is required"})
	} else if !domain.Category(i.Category).IsValid() {
		errs = append(errs, domain.FieldError{Field: "category", Message: "must be one of: " + domain.CategoryNames()})
	}
	errs = appendQuantityErrors(errs, "stock", i.Stock, true)
	errs = appendQuantityErrors(errs, "min_stock", i.MinStock, true)
	if strings.TrimSpace(i.Supplier) == "" {
		errs = append(errs, domain.FieldError{Field: "supplier", Message: "is required"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// UpdateComponentInput carries a partial component update. Nil pointers and
// absent quantities mean the field keeps its stored value.
type UpdateComponentInput struct {
	Name           *string
	Category       *string
	Stock          Quantity
	MinStock       Quantity
	Specifications *string
	Supplier       *string
}

func (i UpdateComponentInput) Validate() error {
	var errs []domain.FieldError

	if i.Category != nil && !domain.Category(*i.Category).IsValid() {
		errs = append(errs, domain.FieldError{Field: "category", Message: "must be one of: " + domain.CategoryNames()})
	}
	errs = appendQuantityErrors(errs, "stock", i.Stock, false)
	errs = appendQuantityErrors(errs, "min_stock", i.MinStock, false)

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func (i UpdateComponentInput) params() domain.ComponentUpdateParams {
	p := domain.ComponentUpdateParams{
		Name:           i.Name,
		Specifications: i.Specifications,
		Supplier:       i.Supplier,
	}
	if i.Category != nil {
		c := domain.Category(*i.Category)
		p.Category = &c
	}
	if i.Stock.Present {
		v := i.Stock.Value
		p.Stock = &v
	}
	if i.MinStock.Present {
		v := i.MinStock.Value
		p.MinStock = &v
	}
	return p
}

func appendQuantityErrors(errs []domain.FieldError, field string, q Quantity, required bool) []domain.FieldError {
	if required && q.Missing() {
		return append(errs, domain.FieldError{Field: field, Message: "is required"})
	}
	if !q.Present {
		return errs
	}
	if !q.Valid {
		return append(errs, domain.FieldError{Field: field, Message: "must be a valid number"})
	}
	if q.Value < 0 {
		return append(errs, domain.FieldError{Field: field, Message: "must be non-negative"})
	}
	return errs
}
