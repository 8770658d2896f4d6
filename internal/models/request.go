package models

import "gorm.io/datatypes"

// RequestType enumerates what a request asks for.
type RequestType string

const (
	RequestTypeRoomBooking       RequestType = "room_booking"
	RequestTypeAccessPermission  RequestType = "access_permission"
	RequestTypeEquipmentCheckout RequestType = "equipment_checkout"
	RequestTypeOther             RequestType = "other"
)

// Valid reports whether t is one of the known request types.
func (t RequestType) Valid() bool {
	switch t {
	case RequestTypeRoomBooking, RequestTypeAccessPermission, RequestTypeEquipmentCheckout, RequestTypeOther:
		return true
	}
	return false
}

// RequestStatus is the lifecycle state of a request.
type RequestStatus string

const (
	StatusPending   RequestStatus = "PENDING"
	StatusApproved  RequestStatus = "APPROVED"
	StatusRejected  RequestStatus = "REJECTED"
	StatusEscalated RequestStatus = "ESCALATED"
)

// OpenStatuses are the states an admin decision may start from.
var OpenStatuses = []RequestStatus{StatusPending, StatusEscalated}

// IsOpen reports whether the request still awaits a decision.
func (s RequestStatus) IsOpen() bool {
	return s == StatusPending || s == StatusEscalated
}

// IsTerminal reports whether no further transition is permitted.
func (s RequestStatus) IsTerminal() bool {
	return s == StatusApproved || s == StatusRejected
}

// RiskLevel is the coarse sensitivity classification of a request.
type RiskLevel string

const (
	RiskLow    RiskLevel = "LOW"
	RiskMedium RiskLevel = "MEDIUM"
	RiskHigh   RiskLevel = "HIGH"
)

// Request is a unit of work awaiting or having received a disposition.
// Risk fields are written once at creation.
type Request struct {
	Base
	Title          string                      `gorm:"size:200;not null" json:"title"`
	Description    string                      `gorm:"type:text;not null" json:"description"`
	RequestType    RequestType                 `gorm:"size:32;not null" json:"request_type"`
	RequesterID    string                      `gorm:"not null;index" json:"requester_id"`
	RequesterEmail string                      `gorm:"not null" json:"requester_email"`
	Status         RequestStatus               `gorm:"size:16;not null;index" json:"status"`
	RiskLevel      RiskLevel                   `gorm:"size:8;not null" json:"risk_level"`
	RiskScore      int                         `gorm:"not null;default:0" json:"risk_score"`
	RiskFactors    datatypes.JSONSlice[string] `json:"risk_factors"`
	DecisionReason *string                     `json:"decision_reason"`
	DecidedBy      *string                     `json:"decided_by"`
}

// IsOwnedBy reports whether principalID submitted the request.
func (r *Request) IsOwnedBy(principalID string) bool {
	return r.RequesterID == principalID
}
