// Package router đăng ký các route checkout.
package router

import (
	"github.com/gofiber/fiber/v3"

	checkouthdl "eyewear_commerce/internal/api/checkout/handler"
	checkoutsvc "eyewear_commerce/internal/api/checkout/service"
	"eyewear_commerce/internal/api/middleware"
	apirouter "eyewear_commerce/internal/api/router"
)

// Register đăng ký tất cả route checkout lên v1.
// Catalog lookup được truyền từ ngoài để dùng chung instance với domain catalog.
func Register(catalog checkoutsvc.CatalogLookup, location checkoutsvc.LocationProvider, submitter checkoutsvc.OrderSubmitter, jwtSecret string) apirouter.RegisterFunc {
	return func(v1 fiber.Router, r *apirouter.Router) error {
		sessions := checkoutsvc.NewSessionStore()
		resolver := checkoutsvc.NewResolver(catalog, location, jwtSecret)
		handler := checkouthdl.NewCheckoutHandler(sessions, resolver, submitter)

		authMiddleware := middleware.AuthMiddleware()
		middlewares := []fiber.Handler{authMiddleware}

		// POST /checkout/session — mở phiên checkout
		apirouter.RegisterRouteWithMiddleware(v1, "/checkout", "POST", "/session", middlewares, handler.HandleCreateSession)
		// POST /checkout/order-type — chọn order type (reset selection cũ)
		apirouter.RegisterRouteWithMiddleware(v1, "/checkout", "POST", "/order-type", middlewares, handler.HandleSelectOrderType)
		// POST /checkout/resolve — resolve ngữ cảnh đơn hàng
		apirouter.RegisterRouteWithMiddleware(v1, "/checkout", "POST", "/resolve", middlewares, handler.HandleResolve)
		// POST /checkout/submit — validate và gửi đơn sang order service
		apirouter.RegisterRouteWithMiddleware(v1, "/checkout", "POST", "/submit", middlewares, handler.HandleSubmit)

		return nil
	}
}
