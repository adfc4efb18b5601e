package domain

// PartyKind classifies a registered party.
type PartyKind string

const (
	Supplier PartyKind = "SUPPLIER"
	Donor    PartyKind = "DONOR"
)

// Party is a supplier or donor the association does business with.
// Obligations reference a party as their counterparty.
type Party struct {
	PartyID      string    `json:"partyID"`
	Kind         PartyKind `json:"kind"`
	Name         string    `json:"name"`
	TaxID        string    `json:"taxID,omitempty"`
	PostalCode   string    `json:"postalCode,omitempty"`
	Street       string    `json:"street,omitempty"`
	StreetNumber string    `json:"streetNumber,omitempty"`
	District     string    `json:"district,omitempty"`
	City         string    `json:"city,omitempty"`
	State        string    `json:"state,omitempty"`
	Phone        string    `json:"phone,omitempty"`
	Whatsapp     string    `json:"whatsapp,omitempty"`
	Notes        string    `json:"notes,omitempty"`
	AuditFields
}

// Beneficiary is a person the association helps. Payables may optionally name
// one, which flows into the settlement movement description.
type Beneficiary struct {
	BeneficiaryID    string `json:"beneficiaryID"`
	Name             string `json:"name"`
	TaxID            string `json:"taxID,omitempty"`
	Whatsapp         string `json:"whatsapp,omitempty"`
	PostalCode       string `json:"postalCode,omitempty"`
	Street           string `json:"street,omitempty"`
	StreetNumber     string `json:"streetNumber,omitempty"`
	District         string `json:"district,omitempty"`
	City             string `json:"city,omitempty"`
	State            string `json:"state,omitempty"`
	GuardianName     string `json:"guardianName,omitempty"`
	GuardianWhatsapp string `json:"guardianWhatsapp,omitempty"`
	Notes            string `json:"notes,omitempty"`
	AuditFields
}
