package middleware

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"

	authmodels "eyewear_commerce/internal/api/auth/models"
	authsvc "eyewear_commerce/internal/api/auth/service"
	basehdl "eyewear_commerce/internal/api/base/handler"
	basesvc "eyewear_commerce/internal/api/base/service"
	"eyewear_commerce/internal/common"
	"eyewear_commerce/internal/global"
	"eyewear_commerce/internal/logger"
	"eyewear_commerce/internal/utility"
)

// AuthManager quản lý xác thực người dùng storefront
type AuthManager struct {
	UserCRUD *basesvc.BaseServiceMongoImpl[authmodels.User]
	Cache    *utility.Cache
}

var (
	authManagerInstance *AuthManager
	authManagerOnce     sync.Once
)

// GetAuthManager trả về instance duy nhất của AuthManager (singleton pattern)
func GetAuthManager() *AuthManager {
	authManagerOnce.Do(func() {
		var err error
		authManagerInstance, err = newAuthManager()
		if err != nil {
			panic(err)
		}
	})
	return authManagerInstance
}

// newAuthManager khởi tạo một instance mới của AuthManager
func newAuthManager() (*AuthManager, error) {
	collection, exists := global.RegistryCollections.Get(global.MongoDB_ColNames.Users)
	if !exists {
		return nil, fmt.Errorf("collection %s not registered", global.MongoDB_ColNames.Users)
	}

	return &AuthManager{
		UserCRUD: basesvc.NewBaseServiceMongo[authmodels.User](collection),
		// Cache user theo token, thời gian sống 5 phút, dọn dẹp mỗi 10 phút
		Cache: utility.NewCache(5*time.Minute, 10*time.Minute),
	}, nil
}

// findUserByToken tìm user theo session token, ưu tiên cache
func (am *AuthManager) findUserByToken(ctx context.Context, token string) (authmodels.User, error) {
	cacheKey := "auth_user:" + token
	if cached, found := am.Cache.Get(cacheKey); found {
		return cached.(authmodels.User), nil
	}

	user, err := am.UserCRUD.FindOne(ctx, bson.M{"token": token}, nil)
	if err != nil {
		return authmodels.User{}, err
	}

	am.Cache.Set(cacheKey, user)
	return user, nil
}

// AuthMiddleware middleware xác thực cho Fiber.
// Verify chữ ký JWT trước, sau đó load user theo token và lưu vào Locals.
func AuthMiddleware() fiber.Handler {
	authManager := GetAuthManager()

	return func(c fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			logger.GetAppLogger().WithFields(logrus.Fields{
				"path":   c.Path(),
				"method": c.Method(),
			}).Warn("[AUTH] Missing Authorization header")
			basehdl.HandleResponse(c, nil, common.ErrTokenMissing)
			return nil
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			basehdl.HandleResponse(c, nil, common.ErrTokenInvalid)
			return nil
		}

		token := parts[1]

		// Verify chữ ký và hạn token trước khi chạm database
		claims, err := authsvc.ParseSessionClaims(token, global.ServerConfig.JwtSecret)
		if err != nil {
			logger.GetAppLogger().WithFields(logrus.Fields{
				"path":  c.Path(),
				"error": err.Error(),
			}).Warn("[AUTH] Token verification failed")
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		user, err := authManager.findUserByToken(c.Context(), token)
		if err != nil {
			logger.GetAppLogger().WithFields(logrus.Fields{
				"path":  c.Path(),
				"error": err.Error(),
			}).Warn("[AUTH] Token not found in database")
			basehdl.HandleResponse(c, nil, common.ErrTokenInvalid)
			return nil
		}

		if user.IsBlock {
			basehdl.HandleResponse(c, nil, common.NewError(
				common.ErrCodeAuthCredentials,
				"Tài khoản đã bị khóa: "+user.BlockNote,
				common.StatusForbidden,
				nil,
			))
			return nil
		}

		// Lưu thông tin user và claims vào context cho handler
		c.Locals("user_id", user.ID.Hex())
		c.Locals("user", user)
		c.Locals("session_claims", claims)
		c.Locals("session_token", token)

		return c.Next()
	}
}
