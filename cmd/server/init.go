package main

import (
	"context"
	"time"

	"eyewear_commerce/config"
	"eyewear_commerce/internal/database"
	"eyewear_commerce/internal/global"
	"eyewear_commerce/internal/logger"
)

// InitGlobal khởi tạo các biến toàn cục: config, validator và kết nối MongoDB.
func InitGlobal() {
	log := logger.GetAppLogger()

	cfg := config.NewConfig()
	if cfg == nil {
		log.Fatal("Không thể load cấu hình, dừng ứng dụng")
	}
	global.ServerConfig = cfg

	global.InitValidator()

	client, err := database.GetInstance(cfg)
	if err != nil {
		log.WithError(err).Fatal("Không thể kết nối MongoDB, dừng ứng dụng")
	}
	global.MongoDB_Session = client
}

// InitRegistry đăng ký database và các collection vào registry toàn cục,
// sau đó tạo các index cần thiết cho resolve và auth.
func InitRegistry() {
	log := logger.GetAppLogger()
	cfg := global.ServerConfig

	db := global.MongoDB_Session.Database(cfg.MongoDB_DBName)
	if _, err := global.RegistryDatabase.Register(cfg.MongoDB_DBName, db); err != nil {
		log.WithError(err).Fatal("Không thể đăng ký database vào registry")
	}

	collectionNames := []string{
		global.MongoDB_ColNames.Users,
		global.MongoDB_ColNames.Countries,
		global.MongoDB_ColNames.Zones,
		global.MongoDB_ColNames.Parties,
		global.MongoDB_ColNames.Distributors,
		global.MongoDB_ColNames.Events,
	}
	for _, name := range collectionNames {
		if _, err := global.RegistryCollections.Register(name, db.Collection(name)); err != nil {
			log.WithError(err).Fatalf("Không thể đăng ký collection %s vào registry", name)
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := database.CreateCatalogIndexes(ctx, db); err != nil {
		// Index lỗi không chặn khởi động, query vẫn chạy được (chậm hơn)
		log.WithError(err).Warn("Tạo index catalog thất bại")
	}

	log.WithField("collections", len(collectionNames)).Info("Registry initialized successfully")
}
