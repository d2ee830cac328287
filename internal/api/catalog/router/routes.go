// Package router đăng ký các route browse catalog.
package router

import (
	"github.com/gofiber/fiber/v3"

	cataloghdl "eyewear_commerce/internal/api/catalog/handler"
	catalogsvc "eyewear_commerce/internal/api/catalog/service"
	"eyewear_commerce/internal/api/middleware"
	apirouter "eyewear_commerce/internal/api/router"
)

// Register đăng ký tất cả route catalog lên v1.
// Lookup service được truyền vào vì checkout dùng chung instance.
func Register(lookup *catalogsvc.LookupService) apirouter.RegisterFunc {
	return func(v1 fiber.Router, r *apirouter.Router) error {
		handler := cataloghdl.NewCatalogBrowseHandler(lookup)

		authMiddleware := middleware.AuthMiddleware()
		middlewares := []fiber.Handler{authMiddleware}

		// GET /catalog/countries
		apirouter.RegisterRouteWithMiddleware(v1, "/catalog", "GET", "/countries", middlewares, handler.HandleListCountries)
		// GET /catalog/zones
		apirouter.RegisterRouteWithMiddleware(v1, "/catalog", "GET", "/zones", middlewares, handler.HandleListZones)
		// GET /catalog/parties?countryId=...&zoneId=...
		apirouter.RegisterRouteWithMiddleware(v1, "/catalog", "GET", "/parties", middlewares, handler.HandleListParties)
		// GET /catalog/parties/:id
		apirouter.RegisterRouteWithMiddleware(v1, "/catalog", "GET", "/parties/:id", middlewares, handler.HandleGetParty)
		// GET /catalog/distributors?countryId=...
		apirouter.RegisterRouteWithMiddleware(v1, "/catalog", "GET", "/distributors", middlewares, handler.HandleListDistributors)
		// GET /catalog/events
		apirouter.RegisterRouteWithMiddleware(v1, "/catalog", "GET", "/events", middlewares, handler.HandleListEvents)

		return nil
	}
}
