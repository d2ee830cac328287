// Package models - Các kiểu dữ liệu của luồng checkout:
// actor, order type, selections và OrderContext (kết quả resolve).
package models

// ActorRole là vai trò của người đặt hàng sau khi phân loại.
// RoleUnsupported vô hiệu hóa checkout (fail closed).
type ActorRole string

const (
	RoleParty       ActorRole = "party"
	RoleDistributor ActorRole = "distributor"
	RoleSalesman    ActorRole = "salesman"
	RoleUnsupported ActorRole = "unsupported"
)

// OrderType xác định tập field bắt buộc của đơn hàng.
type OrderType string

const (
	OrderTypeUnselected  OrderType = ""
	OrderTypeDirect      OrderType = "direct"
	OrderTypeDistributor OrderType = "distributor"
	OrderTypeVisit       OrderType = "visit"
	OrderTypeWhatsApp    OrderType = "whatsapp"
	OrderTypeEvent       OrderType = "event"
)

// Actor là snapshot read-only của người dùng tại thời điểm checkout.
// Các link trực tiếp (PartyID, DistributorID, ZoneID, SalesmanID) có thể
// rỗng — engine sẽ tự suy ra qua các bước fallback.
type Actor struct {
	ID            string
	Role          string // role gốc từ auth, chưa phân loại
	Phone         string
	PartyID       string
	DistributorID string
	ZoneID        string
	SalesmanID    string
	SessionToken  string // token phiên, nguồn fallback cho salesman id
}

// Selections là các lựa chọn người dùng đưa vào một lần resolve.
type Selections struct {
	SelectedPartyID string
	SelectedEventID string
}

// GeoPoint là vị trí thiết bị đã lấy được.
type GeoPoint struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// OrderContext là kết quả resolve: tập foreign key nhất quán mà
// order service yêu cầu. Field kiểu string rỗng nghĩa là vắng mặt —
// engine không bao giờ bịa ra id chưa từng thấy trong catalog.
// Latitude/Longitude dùng pointer để phân biệt "không có" với giá trị 0.
type OrderContext struct {
	OrderType     OrderType `json:"order_type"`
	PartyID       string    `json:"party_id,omitempty"`
	DistributorID string    `json:"distributor_id,omitempty"`
	ZoneID        string    `json:"zone_id,omitempty"`
	SalesmanID    string    `json:"salesman_id,omitempty"`
	EventID       string    `json:"event_id,omitempty"`
	Latitude      *float64  `json:"latitude,omitempty"`
	Longitude     *float64  `json:"longitude,omitempty"`
}

// HasLocation cho biết context đã có đủ cả hai tọa độ chưa.
func (c *OrderContext) HasLocation() bool {
	return c.Latitude != nil && c.Longitude != nil
}
