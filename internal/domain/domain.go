// Package domain holds the persisted CRM entities. Customers own nothing;
// orders reference one customer and one-or-more products without owning
// either side.
package domain
