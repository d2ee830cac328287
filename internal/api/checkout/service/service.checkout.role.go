package checkoutsvc

import (
	models "eyewear_commerce/internal/api/checkout/models"
	"eyewear_commerce/internal/utility"
)

// ClassifyRole phân loại role string từ auth thành ActorRole.
// Chuẩn hóa case và whitespace; role không nhận diện được map về
// RoleUnsupported — checkout bị vô hiệu hóa (fail closed, không fail open).
func ClassifyRole(raw string) models.ActorRole {
	switch utility.NormalizeKeyword(raw) {
	case "party":
		return models.RoleParty
	case "distributor":
		return models.RoleDistributor
	case "salesman":
		return models.RoleSalesman
	default:
		return models.RoleUnsupported
	}
}
