package domain

// CategoryKind discriminates the lookup lists that share the categories table.
type CategoryKind string

const (
	CategoryHelp             CategoryKind = "HELP"
	CategoryPayable          CategoryKind = "PAYABLE"
	CategoryReceivable       CategoryKind = "RECEIVABLE"
	CategoryPaymentMethod    CategoryKind = "PAYMENT_METHOD"
	CategoryReceivableOrigin CategoryKind = "RECEIVABLE_ORIGIN"
)

// Category is a user-managed lookup value (expense categories, payment
// methods, and so on). Deactivated rather than deleted so historical records
// keep their labels.
type Category struct {
	CategoryID  string       `json:"categoryID"`
	Kind        CategoryKind `json:"kind"`
	Name        string       `json:"name"`
	Description string       `json:"description,omitempty"`
	IsActive    bool         `json:"isActive"`
	AuditFields
}
