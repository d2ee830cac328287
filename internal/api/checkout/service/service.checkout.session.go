package checkoutsvc

import (
	"github.com/google/uuid"

	models "eyewear_commerce/internal/api/checkout/models"
	"eyewear_commerce/internal/common"
	"eyewear_commerce/internal/registry"
)

// SessionStore quản lý các phiên checkout đang mở theo session id.
// Phiên sống trong bộ nhớ; context của một attempt không bao giờ được
// persist hay tái sử dụng qua attempt khác.
type SessionStore struct {
	sessions *registry.Registry[*models.CheckoutSession]
}

// NewSessionStore tạo store rỗng.
func NewSessionStore() *SessionStore {
	return &SessionStore{
		sessions: registry.NewRegistry[*models.CheckoutSession](),
	}
}

// Create mở một phiên checkout mới với uuid làm id.
func (s *SessionStore) Create() (*models.CheckoutSession, error) {
	session := models.NewCheckoutSession(uuid.NewString())
	if _, err := s.sessions.Register(session.ID, session); err != nil {
		return nil, err
	}
	return session, nil
}

// Get lấy phiên theo id.
func (s *SessionStore) Get(id string) (*models.CheckoutSession, error) {
	session, exists := s.sessions.Get(id)
	if !exists {
		return nil, common.NewError(common.ErrCodeCheckoutSelection,
			"Phiên checkout không tồn tại hoặc đã kết thúc", common.StatusNotFound,
			map[string]interface{}{"session_id": id})
	}
	return session, nil
}

// Close kết thúc phiên sau khi submit thành công hoặc người dùng bỏ dở.
func (s *SessionStore) Close(id string) {
	s.sessions.Clear(id, nil)
}
