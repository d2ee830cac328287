package models

import (
	"sync"
)

// CheckoutSession giữ trạng thái một phiên checkout của salesman:
// order type đang chọn, các selection và attempt counter.
//
// Đổi order type sẽ xóa party/event đã chọn trước đó — dữ liệu của
// type cũ không bao giờ sống sót qua lần đổi type. Vị trí thiết bị
// không được giữ trong phiên: mỗi attempt tự acquire khi resolve
// (vị trí của visit order không được lọt vào attempt sau).
//
// Attempt counter tăng đơn điệu; kết quả resolve mang attempt id cũ
// hơn attempt hiện tại bị coi là stale và phải bỏ đi.
type CheckoutSession struct {
	ID string // uuid của phiên

	mu         sync.Mutex
	orderType  OrderType
	selections Selections
	attempt    uint64
}

// NewCheckoutSession tạo phiên checkout mới ở trạng thái Unselected.
func NewCheckoutSession(id string) *CheckoutSession {
	return &CheckoutSession{ID: id}
}

// SelectOrderType chọn order type mới. Mọi selection đã có bị xóa,
// attempt tăng lên để vô hiệu hóa các resolve đang bay.
func (s *CheckoutSession) SelectOrderType(t OrderType) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orderType = t
	s.selections = Selections{}
	s.attempt++
	return s.attempt
}

// OrderType trả về order type đang chọn.
func (s *CheckoutSession) OrderType() OrderType {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.orderType
}

// SetSelections cập nhật selection của người dùng trong type hiện tại.
func (s *CheckoutSession) SetSelections(sel Selections) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selections = sel
}

// Selections trả về selection hiện tại.
func (s *CheckoutSession) Selections() Selections {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selections
}

// NextAttempt tăng và trả về attempt id mới cho một lần resolve.
func (s *CheckoutSession) NextAttempt() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.attempt++
	return s.attempt
}

// CurrentAttempt trả về attempt id hiện tại.
func (s *CheckoutSession) CurrentAttempt() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.attempt
}

// IsAttemptCurrent kiểm tra attempt id còn hiệu lực không.
// Kết quả resolve của attempt cũ phải bị bỏ, không được ghi đè
// lên context của attempt mới hơn.
func (s *CheckoutSession) IsAttemptCurrent(attempt uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return attempt == s.attempt
}
