// Package database - Index cho các collection catalog và auth của storefront.
package database

import (
	"context"
	"strings"

	"eyewear_commerce/internal/global"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CreateCatalogIndexes tạo các index phục vụ resolve ngữ cảnh đơn hàng.
// Các query chính: party theo phone, party/distributor theo country,
// party theo zone, user theo token.
func CreateCatalogIndexes(ctx context.Context, db *mongo.Database) error {
	// catalog_parties: (countryId) — quét party theo quốc gia
	parties := db.Collection(global.MongoDB_ColNames.Parties)
	if _, err := parties.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "countryId", Value: 1}},
		Options: options.Index().SetName("catalog_party_country"),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// catalog_parties: (phoneNormalized) — match số điện thoại actor
	if _, err := parties.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "phoneNormalized", Value: 1}},
		Options: options.Index().SetName("catalog_party_phone").SetSparse(true),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// catalog_parties: (zoneId) — fallback distributor theo zone của party
	if _, err := parties.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "zoneId", Value: 1}},
		Options: options.Index().SetName("catalog_party_zone").SetSparse(true),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// catalog_distributors: (countryId)
	distributors := db.Collection(global.MongoDB_ColNames.Distributors)
	if _, err := distributors.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "countryId", Value: 1}},
		Options: options.Index().SetName("catalog_distributor_country"),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// catalog_events: (startDate) — liệt kê sự kiện theo thời gian
	events := db.Collection(global.MongoDB_ColNames.Events)
	if _, err := events.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "startDate", Value: -1}},
		Options: options.Index().SetName("catalog_event_start"),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// auth_users: (token) — load actor từ session token
	users := db.Collection(global.MongoDB_ColNames.Users)
	if _, err := users.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "token", Value: 1}},
		Options: options.Index().SetName("auth_user_token").SetSparse(true),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	return nil
}

func isIndexExistsError(err error) bool {
	if err == nil {
		return false
	}
	s := err.Error()
	return strings.Contains(s, "already exists") || strings.Contains(s, "duplicate")
}
