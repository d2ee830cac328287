// Package models - User thuộc domain auth (auth_users).
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User đại diện cho người dùng (actor) đăng nhập vào storefront.
// Role xác định cách checkout resolve ngữ cảnh đơn hàng:
// party, distributor hoặc salesman.
type User struct {
	ID            primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name          string             `json:"name" bson:"name"`
	Email         string             `json:"email" bson:"email,omitempty"`
	Phone         string             `json:"phone" bson:"phone,omitempty"`                 // Số điện thoại đăng ký, dùng để match party
	Role          string             `json:"role" bson:"role"`                             // party | distributor | salesman
	PartyID       string             `json:"partyId" bson:"partyId,omitempty"`             // Party gắn với user (nếu có)
	DistributorID string             `json:"distributorId" bson:"distributorId,omitempty"` // Distributor gắn với user (nếu có)
	ZoneID        string             `json:"zoneId" bson:"zoneId,omitempty"`               // Zone gắn với user (nếu có)
	SalesmanID    string             `json:"salesmanId" bson:"salesmanId,omitempty"`       // Salesman id riêng (có thể khác user id)
	Token         string             `json:"-" bson:"token,omitempty"`                     // Session token mới nhất
	IsBlock       bool               `json:"isBlock" bson:"isBlock"`
	BlockNote     string             `json:"blockNote" bson:"blockNote,omitempty"`
	CreatedAt     int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt     int64              `json:"updatedAt" bson:"updatedAt"`
}
