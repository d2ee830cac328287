// Package cataloghdl - Handler các endpoint browse catalog (read-only).
package cataloghdl

import (
	"github.com/gofiber/fiber/v3"

	basehdl "eyewear_commerce/internal/api/base/handler"
	catalogsvc "eyewear_commerce/internal/api/catalog/service"
	"eyewear_commerce/internal/common"
)

// CatalogBrowseHandler phục vụ các endpoint tra cứu catalog cho
// storefront/dashboard: countries, zones, parties, distributors, events.
type CatalogBrowseHandler struct {
	lookup *catalogsvc.LookupService
}

// NewCatalogBrowseHandler tạo handler với lookup service.
func NewCatalogBrowseHandler(lookup *catalogsvc.LookupService) *CatalogBrowseHandler {
	return &CatalogBrowseHandler{lookup: lookup}
}

// HandleListCountries GET /catalog/countries
func (h *CatalogBrowseHandler) HandleListCountries(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		countries, err := h.lookup.GetCountries(c.Context())
		basehdl.HandleResponse(c, countries, err)
		return nil
	})
}

// HandleListZones GET /catalog/zones
func (h *CatalogBrowseHandler) HandleListZones(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		zones, err := h.lookup.GetZones(c.Context())
		basehdl.HandleResponse(c, zones, err)
		return nil
	})
}

// HandleListParties GET /catalog/parties?countryId=...&zoneId=...
// Bắt buộc một trong hai query param; zoneId thắng nếu có cả hai.
func (h *CatalogBrowseHandler) HandleListParties(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		zoneID := c.Query("zoneId")
		countryID := c.Query("countryId")

		switch {
		case zoneID != "":
			parties, err := h.lookup.GetPartiesByZoneId(c.Context(), zoneID)
			basehdl.HandleResponse(c, parties, err)
		case countryID != "":
			parties, err := h.lookup.GetParties(c.Context(), countryID)
			basehdl.HandleResponse(c, parties, err)
		default:
			basehdl.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationInput,
				"Thiếu query param countryId hoặc zoneId",
				common.StatusBadRequest, nil))
		}
		return nil
	})
}

// HandleGetParty GET /catalog/parties/:id
func (h *CatalogBrowseHandler) HandleGetParty(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		party, err := h.lookup.GetPartyById(c.Context(), c.Params("id"))
		basehdl.HandleResponse(c, party, err)
		return nil
	})
}

// HandleListDistributors GET /catalog/distributors?countryId=...
func (h *CatalogBrowseHandler) HandleListDistributors(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		countryID := c.Query("countryId")
		if countryID == "" {
			basehdl.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationInput,
				"Thiếu query param countryId",
				common.StatusBadRequest, nil))
			return nil
		}
		distributors, err := h.lookup.GetDistributors(c.Context(), countryID)
		basehdl.HandleResponse(c, distributors, err)
		return nil
	})
}

// HandleListEvents GET /catalog/events
func (h *CatalogBrowseHandler) HandleListEvents(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		events, err := h.lookup.GetEvents(c.Context())
		basehdl.HandleResponse(c, events, err)
		return nil
	})
}
