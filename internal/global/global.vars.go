package global

import (
	"eyewear_commerce/config"
	"eyewear_commerce/internal/registry"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoDB_Storefront_CollectionName chứa tên các collection trong MongoDB
type MongoDB_Storefront_CollectionName struct {
	Users        string // Tên collection cho người dùng (actor) của storefront
	Countries    string // Tên collection cho quốc gia
	Zones        string // Tên collection cho zone (khu vực bán hàng)
	Parties      string // Tên collection cho party (cửa hàng/khách sỉ)
	Distributors string // Tên collection cho distributor
	Events       string // Tên collection cho sự kiện bán hàng
}

// Các biến toàn cục
var Validate *validator.Validate               // Biến để xác thực dữ liệu
var MongoDB_Session *mongo.Client              // Phiên kết nối tới MongoDB
var ServerConfig *config.Configuration         // Cấu hình của server
var MongoDB_ColNames = MongoDB_Storefront_CollectionName{
	Users:        "auth_users",
	Countries:    "catalog_countries",
	Zones:        "catalog_zones",
	Parties:      "catalog_parties",
	Distributors: "catalog_distributors",
	Events:       "catalog_events",
}

// Các Registry
var RegistryCollections = registry.NewRegistry[*mongo.Collection]() // Registry chứa các collections
var RegistryDatabase = registry.NewRegistry[*mongo.Database]()      // Registry chứa các databases
