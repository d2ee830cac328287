// Package dto - DTO cho domain checkout.
package dto

// SelectOrderTypeInput chọn order type cho phiên checkout.
type SelectOrderTypeInput struct {
	SessionID string `json:"sessionId" validate:"required"`
	OrderType string `json:"orderType" validate:"required,order_type"`
}

// ResolveInput yêu cầu resolve ngữ cảnh đơn hàng với selections hiện tại.
type ResolveInput struct {
	SessionID       string `json:"sessionId" validate:"required"`
	SelectedPartyID string `json:"selectedPartyId" validate:"omitempty,no_xss"`
	SelectedEventID string `json:"selectedEventId" validate:"omitempty,no_xss"`
}

// OrderItemInput là một dòng hàng trong request submit.
type OrderItemInput struct {
	ProductID string  `json:"productId" validate:"required"`
	Quantity  int     `json:"quantity" validate:"required,gt=0"`
	Price     float64 `json:"price" validate:"gte=0"`
}

// SubmitOrderInput gửi đơn hàng với selections đã chốt trong phiên.
type SubmitOrderInput struct {
	SessionID  string           `json:"sessionId" validate:"required"`
	OrderItems []OrderItemInput `json:"orderItems" validate:"required,min=1,dive"`
	OrderNotes string           `json:"orderNotes" validate:"omitempty,no_xss"`
}
