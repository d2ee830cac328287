package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env"
	"github.com/joho/godotenv"
)

// Configuration chứa thông tin tĩnh cần thiết để chạy ứng dụng storefront.
// Bao gồm cấu hình server, MongoDB, các service ngoài (order, location) và checkout.
type Configuration struct {
	InitMode              bool   `env:"INITMODE" envDefault:"false"`               // Chế độ khởi tạo dữ liệu mặc định
	Address               string `env:"ADDRESS" envDefault:":8080"`                // Địa chỉ server
	JwtSecret             string `env:"JWT_SECRET,required"`                       // Bí mật JWT cho session token
	MongoDB_ConnectionURI string `env:"MONGODB_CONNECTION_URI,required"`           // URI kết nối MongoDB
	MongoDB_DBName        string `env:"MONGODB_DBNAME,required"`                   // Tên database storefront
	CORS_Origins          string `env:"CORS_ORIGINS" envDefault:"*"`               // Các origins được phép (phân cách bởi dấu phẩy)
	CORS_AllowCredentials bool   `env:"CORS_ALLOW_CREDENTIALS" envDefault:"false"` // Cho phép gửi credentials
	RateLimit_Max         int    `env:"RATE_LIMIT_MAX" envDefault:"100"`           // Số request tối đa trong window (0 = disable)
	RateLimit_Window      int    `env:"RATE_LIMIT_WINDOW" envDefault:"60"`         // Thời gian window (giây)
	RateLimit_Enabled     bool   `env:"RATE_LIMIT_ENABLED" envDefault:"true"`      // Bật/tắt rate limiting

	// External collaborators của checkout
	OrderServiceURL    string `env:"ORDER_SERVICE_URL,required"` // Endpoint submit đơn hàng
	LocationServiceURL string `env:"LOCATION_SERVICE_URL"`       // Endpoint lấy vị trí thiết bị (visit order)

	// Timeout cho các lookup/acquisition (giây)
	CatalogLookupTimeout int `env:"CATALOG_LOOKUP_TIMEOUT" envDefault:"10"` // Timeout mỗi lần tra cứu catalog
	GeolocationTimeout   int `env:"GEOLOCATION_TIMEOUT" envDefault:"15"`    // Timeout lấy vị trí (một lần duy nhất mỗi checkout)

	// Worker làm nóng cache catalog
	CatalogRefreshMinutes int `env:"CATALOG_REFRESH_MINUTES" envDefault:"10"` // Chu kỳ refresh danh sách quốc gia

	// TLS/HTTPS Configuration
	EnableTLS   bool   `env:"ENABLE_TLS" envDefault:"false"` // Bật HTTPS
	TLSCertFile string `env:"TLS_CERT_FILE"`                 // Đường dẫn file certificate
	TLSKeyFile  string `env:"TLS_KEY_FILE"`                  // Đường dẫn file private key
}

// getEnvPath trả về đường dẫn đến file env dựa trên môi trường
func getEnvPath() string {
	// Mặc định sử dụng môi trường development
	env := os.Getenv("GO_ENV")
	if env == "" {
		env = "development"
	}

	currentDir, err := os.Getwd()
	if err != nil {
		// Sử dụng fmt.Printf vì logger có thể chưa được init ở đây
		fmt.Printf("Không thể lấy được thư mục hiện tại: %v\n", err)
		return ""
	}

	// Tìm thư mục config/env bằng cách đi lên từ thư mục hiện tại
	for {
		envDir := filepath.Join(currentDir, "config", "env")
		if _, err := os.Stat(envDir); err == nil {
			return filepath.Join(envDir, fmt.Sprintf("%s.env", env))
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			return ""
		}
		currentDir = parentDir
	}
}

// NewConfig sẽ đọc dữ liệu cấu hình từ file env được cung cấp
func NewConfig(files ...string) *Configuration {
	envPath := getEnvPath()
	if envPath == "" {
		fmt.Printf("Không tìm thấy thư mục config/env\n")
		return nil
	}

	err := godotenv.Load(envPath)
	if err != nil {
		fmt.Printf("Không thể load file env tại %s: %v\n", envPath, err)
		return nil
	}

	cfg := Configuration{}
	err = env.Parse(&cfg)
	if err != nil {
		fmt.Printf("Lỗi khi parse config: %+v\n", err)
		return nil
	}

	return &cfg
}
