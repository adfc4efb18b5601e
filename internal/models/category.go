package models

// Category mirrors a row of the categories table.
type Category struct {
	CategoryID  string `db:"category_id"`
	Kind        string `db:"kind"`
	Name        string `db:"name"`
	Description string `db:"description"`
	IsActive    bool   `db:"is_active"`
	AuditFields
}
