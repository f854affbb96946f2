package models

import "time"

type MobileEntry struct {
	Number string `json:"number" bson:"number" db:"number"`
	Label  string `json:"label" bson:"label" db:"label"`
}

// BankAccount is printed on invoices so customers know where to pay.
type BankAccount struct {
	Holder string `json:"holder" bson:"holder"`
	Number string `json:"number" bson:"number"`
	IFSC   string `json:"ifsc" bson:"ifsc"`
	Branch string `json:"branch" bson:"branch"`
}

// InitialSetup is the company letterhead of one owner.
type InitialSetup struct {
	ID          string        `json:"id" bson:"_id,omitempty" db:"id"`
	OwnerID     string        `json:"owner_id" bson:"owner_id" db:"owner_id"`
	CompanyName string        `json:"company_name" bson:"name" db:"company_name"`
	Taglines    []string      `json:"taglines" bson:"taglines" db:"taglines"`
	Address     string        `json:"address" bson:"address" db:"address"`
	Email       string        `json:"email" bson:"email" db:"email"`
	PAN         string        `json:"pan" bson:"pan" db:"pan"`
	GSTIN       string        `json:"gstin" bson:"gstin" db:"gstin"`
	Mobile      []MobileEntry `json:"mobile" bson:"mobile" db:"mobile"`
	Bank        BankAccount   `json:"bank" bson:"bank" db:"bank"`
	Terms       []string      `json:"terms" bson:"terms" db:"terms"`
	CreatedAt   time.Time     `json:"created_at" bson:"created_at" db:"created_at"`
}
