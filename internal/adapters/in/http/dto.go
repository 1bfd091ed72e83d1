package http

import (
	"time"
)

// Request bodies. Credential codes travel in requests only; no response ever
// carries one.

type newOrderItemRequest struct {
	ProductRef string `json:"product_ref"`
	Quantity   int    `json:"quantity"`
}

type newOrderRequest struct {
	CustomerRef     string                `json:"customer_ref"`
	EventName       string                `json:"event_name"`
	EventDate       time.Time             `json:"event_date"`
	SupervisorPhone string                `json:"supervisor_phone"`
	Items           []newOrderItemRequest `json:"items"`
}

type approveOrderRequest struct {
	ApprovedBy   string `json:"approved_by"`
	ApproverName string `json:"approver_name,omitempty"`
	Code         string `json:"code,omitempty"`
}

type advanceStatusRequest struct {
	Target string `json:"target"`
}

type assignDeliveryRequest struct {
	StaffRef   string `json:"staff_ref"`
	VehicleRef string `json:"vehicle_ref"`
}

type confirmDeliveryRequest struct {
	ConfirmedBy   string `json:"confirmed_by"`
	RecipientName string `json:"recipient_name"`
	Code          string `json:"code"`
}

type returnOrderRequest struct {
	ReturnedQuantities map[string]int `json:"returned_quantities"`
	DamagedNotes       string         `json:"damaged_notes,omitempty"`
	MissingNotes       string         `json:"missing_notes,omitempty"`
}

type attachPhotoRequest struct {
	Phase      string `json:"phase"`
	BlobRef    string `json:"blob_ref"`
	UploadedBy string `json:"uploaded_by"`
}

type requestCodeRequest struct {
	Phone string `json:"phone"`
}

type verifyCodeRequest struct {
	Phone string `json:"phone"`
	Code  string `json:"code"`
}

type resendCodeRequest struct {
	Phone   string `json:"phone"`
	Purpose string `json:"purpose"`
}

// Response bodies.

type errorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type shortfallResponse struct {
	ProductRef string `json:"product_ref"`
	Requested  int    `json:"requested"`
	Available  int    `json:"available"`
	Deficit    int    `json:"deficit"`
}

type shortfallErrorResponse struct {
	Code       int                 `json:"code"`
	Message    string              `json:"message"`
	Shortfalls []shortfallResponse `json:"shortfalls"`
}

type orderCreatedResponse struct {
	OrderNumber string `json:"order_number"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

type orderItemResponse struct {
	ProductRef         string `json:"product_ref"`
	QuantityRequested  int    `json:"quantity_requested"`
	QuantityDispatched int    `json:"quantity_dispatched"`
	QuantityReturned   int    `json:"quantity_returned"`
}

type orderDetailResponse struct {
	ID                 string              `json:"id"`
	OrderNumber        string              `json:"order_number"`
	CustomerRef        string              `json:"customer_ref"`
	EventName          string              `json:"event_name"`
	EventDate          time.Time           `json:"event_date"`
	SupervisorPhone    string              `json:"supervisor_phone"`
	Status             string              `json:"status"`
	AssignedStaffRef   *string             `json:"assigned_staff_ref,omitempty"`
	AssignedVehicleRef *string             `json:"assigned_vehicle_ref,omitempty"`
	RecipientName      string              `json:"recipient_name,omitempty"`
	DamagedNotes       string              `json:"damaged_notes,omitempty"`
	MissingNotes       string              `json:"missing_notes,omitempty"`
	CreatedAt          time.Time           `json:"created_at"`
	ApprovedAt         *time.Time          `json:"approved_at,omitempty"`
	DispatchedAt       *time.Time          `json:"dispatched_at,omitempty"`
	DeliveredAt        *time.Time          `json:"delivered_at,omitempty"`
	ReturnedAt         *time.Time          `json:"returned_at,omitempty"`
	Items              []orderItemResponse `json:"items"`
}

type orderSummaryResponse struct {
	ID          string    `json:"id"`
	OrderNumber string    `json:"order_number"`
	EventName   string    `json:"event_name"`
	EventDate   time.Time `json:"event_date"`
	Status      string    `json:"status"`
}

type inventoryLineResponse struct {
	ProductRef string `json:"product_ref"`
	Available  int    `json:"available"`
}
