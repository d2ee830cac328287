// Package catalogsvc - Lookup service đọc các collection catalog,
// triển khai cổng CatalogLookup mà engine checkout tiêu thụ.
package catalogsvc

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	basesvc "eyewear_commerce/internal/api/base/service"
	catalogmodels "eyewear_commerce/internal/api/catalog/models"
	checkoutmodels "eyewear_commerce/internal/api/checkout/models"
	"eyewear_commerce/internal/global"
	"eyewear_commerce/internal/utility"
)

// lookupTimeout là timeout mặc định cho một lần tra cứu catalog.
const lookupTimeout = 10 * time.Second

// countryCacheKey là key cache cho danh sách quốc gia (warm bởi worker).
const countryCacheKey = "catalog:countries"

// LookupService đọc catalog từ MongoDB và map sang các record mà
// checkout tiêu thụ (id dạng hex string). Mỗi call có timeout riêng,
// lỗi từng call cô lập — caller quyết định bỏ qua hay fail.
type LookupService struct {
	countryCRUD     *basesvc.BaseServiceMongoImpl[catalogmodels.Country]
	zoneCRUD        *basesvc.BaseServiceMongoImpl[catalogmodels.Zone]
	partyCRUD       *basesvc.BaseServiceMongoImpl[catalogmodels.Party]
	distributorCRUD *basesvc.BaseServiceMongoImpl[catalogmodels.Distributor]
	eventCRUD       *basesvc.BaseServiceMongoImpl[catalogmodels.Event]
	cache           *utility.Cache
	timeout         time.Duration
}

// NewLookupService tạo lookup service từ các collection đã đăng ký.
func NewLookupService() (*LookupService, error) {
	names := []string{
		global.MongoDB_ColNames.Countries,
		global.MongoDB_ColNames.Zones,
		global.MongoDB_ColNames.Parties,
		global.MongoDB_ColNames.Distributors,
		global.MongoDB_ColNames.Events,
	}
	for _, name := range names {
		if _, exists := global.RegistryCollections.Get(name); !exists {
			return nil, fmt.Errorf("collection %s not registered", name)
		}
	}

	countries, _ := global.RegistryCollections.Get(global.MongoDB_ColNames.Countries)
	zones, _ := global.RegistryCollections.Get(global.MongoDB_ColNames.Zones)
	parties, _ := global.RegistryCollections.Get(global.MongoDB_ColNames.Parties)
	distributors, _ := global.RegistryCollections.Get(global.MongoDB_ColNames.Distributors)
	events, _ := global.RegistryCollections.Get(global.MongoDB_ColNames.Events)

	timeout := lookupTimeout
	if global.ServerConfig != nil && global.ServerConfig.CatalogLookupTimeout > 0 {
		timeout = time.Duration(global.ServerConfig.CatalogLookupTimeout) * time.Second
	}

	return &LookupService{
		countryCRUD:     basesvc.NewBaseServiceMongo[catalogmodels.Country](countries),
		zoneCRUD:        basesvc.NewBaseServiceMongo[catalogmodels.Zone](zones),
		partyCRUD:       basesvc.NewBaseServiceMongo[catalogmodels.Party](parties),
		distributorCRUD: basesvc.NewBaseServiceMongo[catalogmodels.Distributor](distributors),
		eventCRUD:       basesvc.NewBaseServiceMongo[catalogmodels.Event](events),
		cache:           utility.NewCache(10*time.Minute, 30*time.Minute),
		timeout:         timeout,
	}, nil
}

// hexOrEmpty chuyển ObjectID sang hex, NilObjectID thành chuỗi rỗng
// (rỗng = không có quan hệ, engine sẽ chạy fallback).
func hexOrEmpty(id primitive.ObjectID) string {
	if id.IsZero() {
		return ""
	}
	return id.Hex()
}

func toPartyRecord(p catalogmodels.Party) checkoutmodels.PartyRecord {
	return checkoutmodels.PartyRecord{
		ID:            p.ID.Hex(),
		Name:          p.Name,
		Phone:         p.Phone,
		CountryID:     hexOrEmpty(p.CountryID),
		DistributorID: hexOrEmpty(p.DistributorID),
		ZoneID:        hexOrEmpty(p.ZoneID),
	}
}

func toDistributorRecord(d catalogmodels.Distributor) checkoutmodels.DistributorRecord {
	return checkoutmodels.DistributorRecord{
		ID:        d.ID.Hex(),
		Name:      d.Name,
		CountryID: hexOrEmpty(d.CountryID),
		ZoneID:    hexOrEmpty(d.ZoneID),
	}
}

// GetCountries trả về danh sách quốc gia, ưu tiên cache đã được
// catalog refresh worker làm nóng.
func (s *LookupService) GetCountries(ctx context.Context) ([]checkoutmodels.CountryRecord, error) {
	if cached, found := s.cache.Get(countryCacheKey); found {
		return cached.([]checkoutmodels.CountryRecord), nil
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	// Sort theo code để thứ tự liệt kê quốc gia deterministic —
	// tie-break "first match wins" của engine dựa trên thứ tự này.
	docs, err := s.countryCRUD.Find(ctx, bson.D{}, options.Find().SetSort(bson.D{{Key: "code", Value: 1}}))
	if err != nil {
		return nil, err
	}

	records := make([]checkoutmodels.CountryRecord, 0, len(docs))
	for _, doc := range docs {
		records = append(records, checkoutmodels.CountryRecord{
			ID:   doc.ID.Hex(),
			Code: doc.Code,
			Name: doc.Name,
		})
	}

	s.cache.Set(countryCacheKey, records)
	return records, nil
}

// RefreshCountries nạp lại cache quốc gia từ database (gọi bởi worker).
func (s *LookupService) RefreshCountries(ctx context.Context) error {
	s.cache.Delete(countryCacheKey)
	_, err := s.GetCountries(ctx)
	return err
}

// GetParties trả về các party của một quốc gia.
func (s *LookupService) GetParties(ctx context.Context, countryID string) ([]checkoutmodels.PartyRecord, error) {
	objID, err := primitive.ObjectIDFromHex(countryID)
	if err != nil {
		return nil, fmt.Errorf("countryId không hợp lệ: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	docs, err := s.partyCRUD.Find(ctx, bson.M{"countryId": objID}, nil)
	if err != nil {
		return nil, err
	}

	records := make([]checkoutmodels.PartyRecord, 0, len(docs))
	for _, doc := range docs {
		records = append(records, toPartyRecord(doc))
	}
	return records, nil
}

// GetPartyById trả về bản ghi party đầy đủ theo id.
func (s *LookupService) GetPartyById(ctx context.Context, id string) (*checkoutmodels.PartyRecord, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("partyId không hợp lệ: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	doc, err := s.partyCRUD.FindOneById(ctx, objID)
	if err != nil {
		return nil, err
	}

	record := toPartyRecord(doc)
	return &record, nil
}

// GetDistributors trả về các distributor của một quốc gia.
func (s *LookupService) GetDistributors(ctx context.Context, countryID string) ([]checkoutmodels.DistributorRecord, error) {
	objID, err := primitive.ObjectIDFromHex(countryID)
	if err != nil {
		return nil, fmt.Errorf("countryId không hợp lệ: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	docs, err := s.distributorCRUD.Find(ctx, bson.M{"countryId": objID}, nil)
	if err != nil {
		return nil, err
	}

	records := make([]checkoutmodels.DistributorRecord, 0, len(docs))
	for _, doc := range docs {
		records = append(records, toDistributorRecord(doc))
	}
	return records, nil
}

// GetEvents trả về danh sách sự kiện, mới nhất trước.
func (s *LookupService) GetEvents(ctx context.Context) ([]checkoutmodels.EventRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	docs, err := s.eventCRUD.Find(ctx, bson.D{}, options.Find().SetSort(bson.D{{Key: "startDate", Value: -1}}))
	if err != nil {
		return nil, err
	}

	records := make([]checkoutmodels.EventRecord, 0, len(docs))
	for _, doc := range docs {
		records = append(records, checkoutmodels.EventRecord{
			ID:        doc.ID.Hex(),
			Name:      doc.Name,
			StartDate: doc.StartDate,
			EndDate:   doc.EndDate,
		})
	}
	return records, nil
}

// GetPartiesByZoneId trả về các party trong một zone (dùng cho
// visit/whatsapp order, nơi lựa chọn party bị scope theo zone).
func (s *LookupService) GetPartiesByZoneId(ctx context.Context, zoneID string) ([]checkoutmodels.PartyRecord, error) {
	objID, err := primitive.ObjectIDFromHex(zoneID)
	if err != nil {
		return nil, fmt.Errorf("zoneId không hợp lệ: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	docs, err := s.partyCRUD.Find(ctx, bson.M{"zoneId": objID}, nil)
	if err != nil {
		return nil, err
	}

	records := make([]checkoutmodels.PartyRecord, 0, len(docs))
	for _, doc := range docs {
		records = append(records, toPartyRecord(doc))
	}
	return records, nil
}

// GetZones trả về toàn bộ zone (endpoint browse của dashboard).
func (s *LookupService) GetZones(ctx context.Context) ([]catalogmodels.Zone, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	return s.zoneCRUD.Find(ctx, bson.D{}, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
}
