package domain

type CustomerStatus string

const (
	CustomerStatusActive     CustomerStatus = "ACTIVE"
	CustomerStatusRestricted CustomerStatus = "RESTRICTED"
)

// SystemCustomerEmail identifies the reserved customer that kardex movements
// are attributed to when no real customer initiated the change. The record is
// created lazily the first time it is needed.
const SystemCustomerEmail = "system@toolrent.com"

type Customer struct {
	ID     int32          `json:"id"`
	Name   string         `json:"name"`
	RUT    string         `json:"rut"`
	Phone  string         `json:"phone"`
	Email  string         `json:"email"`
	Status CustomerStatus `json:"status"`
}
