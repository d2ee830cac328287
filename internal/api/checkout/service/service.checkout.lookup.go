package checkoutsvc

import (
	"context"

	models "eyewear_commerce/internal/api/checkout/models"
)

// CatalogLookup là cổng đọc catalog mà engine resolve tiêu thụ.
// Triển khai thật nằm ở domain catalog (MongoDB); test dùng fake.
//
// Mọi hàm có thể lỗi độc lập; engine coi lỗi per-country là non-fatal
// trừ khi chúng dẫn đến lỗi terminal (ví dụ PartyNotFound sau khi quét
// hết mọi quốc gia).
type CatalogLookup interface {
	GetCountries(ctx context.Context) ([]models.CountryRecord, error)
	GetParties(ctx context.Context, countryID string) ([]models.PartyRecord, error)
	GetPartyById(ctx context.Context, id string) (*models.PartyRecord, error)
	GetDistributors(ctx context.Context, countryID string) ([]models.DistributorRecord, error)
	GetEvents(ctx context.Context) ([]models.EventRecord, error)
	GetPartiesByZoneId(ctx context.Context, zoneID string) ([]models.PartyRecord, error)
}
