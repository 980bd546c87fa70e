package model

import "time"

// DocumentType is the fixed taxonomy a document is filed under.
type DocumentType string

const (
	TypeTDS          DocumentType = "TDS"
	TypeESR          DocumentType = "ESR"
	TypeMSDS         DocumentType = "MSDS"
	TypeLEED         DocumentType = "LEED"
	TypeInstallation DocumentType = "Installation"
	TypeWarranty     DocumentType = "Warranty"
	TypeAcoustic     DocumentType = "Acoustic"
	TypePartSpec     DocumentType = "PartSpec"
)

// DocumentTypes lists every member of the enumeration in declaration order.
var DocumentTypes = []DocumentType{
	TypeTDS,
	TypeESR,
	TypeMSDS,
	TypeLEED,
	TypeInstallation,
	TypeWarranty,
	TypeAcoustic,
	TypePartSpec,
}

// ParseDocumentType reports whether s names a member of the enumeration.
func ParseDocumentType(s string) (DocumentType, bool) {
	for _, t := range DocumentTypes {
		if string(t) == s {
			return t, true
		}
	}
	return "", false
}

// Document is an uploaded PDF together with its metadata.
// FileData is owned by the record until it is handed to the Record Store and
// is never serialized to JSON; use the export endpoints to transport it.
type Document struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Filename    string       `json:"filename"`
	Size        int64        `json:"size"`
	Type        DocumentType `json:"type"`
	Required    bool         `json:"required"`
	Products    []string     `json:"products"`
	ProductType string       `json:"product_type"`
	FileData    []byte       `json:"-"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

// DocumentUpdate carries the fields eligible for change after creation.
// Nil fields are left untouched.
type DocumentUpdate struct {
	Name        *string       `json:"name,omitempty"`
	Description *string       `json:"description,omitempty"`
	Type        *DocumentType `json:"type,omitempty"`
	Products    []string      `json:"products,omitempty"`
}

// IsEmpty reports whether the update would change nothing.
func (u DocumentUpdate) IsEmpty() bool {
	return u.Name == nil && u.Description == nil && u.Type == nil && u.Products == nil
}
