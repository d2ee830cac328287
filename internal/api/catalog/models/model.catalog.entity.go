// Package models - Các entity catalog của storefront
// (catalog_countries, catalog_zones, catalog_parties, catalog_distributors, catalog_events).
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Country là một quốc gia trong catalog.
type Country struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Code      string             `json:"code" bson:"code"`
	Name      string             `json:"name" bson:"name"`
	CreatedAt int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64              `json:"updatedAt" bson:"updatedAt"`
}

// Zone là một khu vực bán hàng, thuộc quốc gia gián tiếp qua party/distributor.
type Zone struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name      string             `json:"name" bson:"name"`
	CountryID primitive.ObjectID `json:"countryId" bson:"countryId,omitempty"`
	CreatedAt int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64              `json:"updatedAt" bson:"updatedAt"`
}

// Party là một cửa hàng/khách sỉ. DistributorID và ZoneID trong dữ liệu
// nguồn không đáng tin cậy — có thể thiếu dù thực tế có quan hệ.
type Party struct {
	ID              primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name            string             `json:"name" bson:"name"`
	Phone           string             `json:"phone" bson:"phone,omitempty"`
	PhoneNormalized string             `json:"-" bson:"phoneNormalized,omitempty"` // phone đã chuẩn hóa, phục vụ index
	CountryID       primitive.ObjectID `json:"countryId" bson:"countryId"`
	DistributorID   primitive.ObjectID `json:"distributorId" bson:"distributorId,omitempty"`
	ZoneID          primitive.ObjectID `json:"zoneId" bson:"zoneId,omitempty"`
	CreatedAt       int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt       int64              `json:"updatedAt" bson:"updatedAt"`
}

// Distributor là một nhà phân phối.
type Distributor struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name      string             `json:"name" bson:"name"`
	CountryID primitive.ObjectID `json:"countryId" bson:"countryId,omitempty"`
	ZoneID    primitive.ObjectID `json:"zoneId" bson:"zoneId,omitempty"`
	CreatedAt int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64              `json:"updatedAt" bson:"updatedAt"`
}

// Event là một sự kiện bán hàng có thời hạn.
type Event struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name      string             `json:"name" bson:"name"`
	StartDate int64              `json:"startDate" bson:"startDate"`
	EndDate   int64              `json:"endDate" bson:"endDate,omitempty"`
	CreatedAt int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64              `json:"updatedAt" bson:"updatedAt"`
}
