package main

import (
	"context"
	"time"

	basesvc "eyewear_commerce/internal/api/base/service"
	catalogmodels "eyewear_commerce/internal/api/catalog/models"
	checkoutsvc "eyewear_commerce/internal/api/checkout/service"
	"eyewear_commerce/internal/global"
	"eyewear_commerce/internal/logger"
)

// InitDefaultData seed dữ liệu catalog tối thiểu khi chạy INITMODE=true
// trên database trống (môi trường dev/staging mới dựng). Dữ liệu thật
// được đồng bộ từ hệ thống quản trị, hàm này chỉ để engine chạy được
// ngay sau khi dựng môi trường.
func InitDefaultData() {
	log := logger.GetAppLogger()
	if !global.ServerConfig.InitMode {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	countries, _ := global.RegistryCollections.Get(global.MongoDB_ColNames.Countries)
	countryCRUD := basesvc.NewBaseServiceMongo[catalogmodels.Country](countries)

	count, err := countryCRUD.CountDocuments(ctx, nil)
	if err != nil {
		log.WithError(err).Warn("[INIT_DATA] Không đếm được catalog_countries, bỏ qua seed")
		return
	}
	if count > 0 {
		log.WithField("countries", count).Info("[INIT_DATA] Catalog đã có dữ liệu, bỏ qua seed")
		return
	}

	country, err := countryCRUD.InsertOne(ctx, catalogmodels.Country{Code: "VN", Name: "Việt Nam"})
	if err != nil {
		log.WithError(err).Warn("[INIT_DATA] Seed quốc gia mặc định thất bại")
		return
	}

	zones, _ := global.RegistryCollections.Get(global.MongoDB_ColNames.Zones)
	zoneCRUD := basesvc.NewBaseServiceMongo[catalogmodels.Zone](zones)
	zone, err := zoneCRUD.InsertOne(ctx, catalogmodels.Zone{Name: "Miền Nam", CountryID: country.ID})
	if err != nil {
		log.WithError(err).Warn("[INIT_DATA] Seed zone mặc định thất bại")
		return
	}

	distributors, _ := global.RegistryCollections.Get(global.MongoDB_ColNames.Distributors)
	distributorCRUD := basesvc.NewBaseServiceMongo[catalogmodels.Distributor](distributors)
	distributor, err := distributorCRUD.InsertOne(ctx, catalogmodels.Distributor{
		Name: "NPP Mặc Định", CountryID: country.ID, ZoneID: zone.ID,
	})
	if err != nil {
		log.WithError(err).Warn("[INIT_DATA] Seed distributor mặc định thất bại")
		return
	}

	parties, _ := global.RegistryCollections.Get(global.MongoDB_ColNames.Parties)
	partyCRUD := basesvc.NewBaseServiceMongo[catalogmodels.Party](parties)
	samplePhone := "+84901234567"
	if _, err := partyCRUD.InsertOne(ctx, catalogmodels.Party{
		Name:            "Cửa Hàng Mẫu",
		Phone:           samplePhone,
		PhoneNormalized: checkoutsvc.NormalizePhone(samplePhone),
		CountryID:       country.ID,
		DistributorID:   distributor.ID,
		ZoneID:          zone.ID,
	}); err != nil {
		log.WithError(err).Warn("[INIT_DATA] Seed party mẫu thất bại")
		return
	}

	log.WithField("country_id", country.ID.Hex()).Info("[INIT_DATA] Đã seed dữ liệu catalog mặc định")
}
