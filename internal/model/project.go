package model

import "strings"

// NotAvailable is shown in place of missing contractor details.
const NotAvailable = "정보 없음"

// ContractorAccount carries the contractor's display fields.
// Description holds the vendor display name when one was recorded.
type ContractorAccount struct {
	Name          string
	Phone         string
	BillingStreet string
	Description   string
}

// ProjectSnapshot is the read-only project record fetched from the backend.
type ProjectSnapshot struct {
	Contractor *ContractorAccount
	ID         string
	Name       string
}

// ContractorName prefers the vendor name in Description, then the account
// name, then NotAvailable. Whitespace-only values count as blank.
func (p *ProjectSnapshot) ContractorName() string {
	if p == nil || p.Contractor == nil {
		return NotAvailable
	}
	if strings.TrimSpace(p.Contractor.Description) != "" {
		return p.Contractor.Description
	}
	if strings.TrimSpace(p.Contractor.Name) != "" {
		return p.Contractor.Name
	}
	return NotAvailable
}

// ContractorPhone returns the contractor phone or NotAvailable.
func (p *ProjectSnapshot) ContractorPhone() string {
	if p == nil || p.Contractor == nil || p.Contractor.Phone == "" {
		return NotAvailable
	}
	return p.Contractor.Phone
}

// ContractorAddress returns the contractor billing street or NotAvailable.
func (p *ProjectSnapshot) ContractorAddress() string {
	if p == nil || p.Contractor == nil || p.Contractor.BillingStreet == "" {
		return NotAvailable
	}
	return p.Contractor.BillingStreet
}
