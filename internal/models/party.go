package models

// Party mirrors a row of the parties table.
type Party struct {
	PartyID      string `db:"party_id"`
	Kind         string `db:"kind"`
	Name         string `db:"name"`
	TaxID        string `db:"tax_id"`
	PostalCode   string `db:"postal_code"`
	Street       string `db:"street"`
	StreetNumber string `db:"street_number"`
	District     string `db:"district"`
	City         string `db:"city"`
	State        string `db:"state"`
	Phone        string `db:"phone"`
	Whatsapp     string `db:"whatsapp"`
	Notes        string `db:"notes"`
	AuditFields
}

// Beneficiary mirrors a row of the beneficiaries table.
type Beneficiary struct {
	BeneficiaryID    string `db:"beneficiary_id"`
	Name             string `db:"name"`
	TaxID            string `db:"tax_id"`
	Whatsapp         string `db:"whatsapp"`
	PostalCode       string `db:"postal_code"`
	Street           string `db:"street"`
	StreetNumber     string `db:"street_number"`
	District         string `db:"district"`
	City             string `db:"city"`
	State            string `db:"state"`
	GuardianName     string `db:"guardian_name"`
	GuardianWhatsapp string `db:"guardian_whatsapp"`
	Notes            string `db:"notes"`
	AuditFields
}
