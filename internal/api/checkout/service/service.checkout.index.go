package checkoutsvc

import (
	"context"

	models "eyewear_commerce/internal/api/checkout/models"
	"eyewear_commerce/internal/utility"
)

// DedupIndex gom các kết quả lookup chồng lặp (cùng entity trả về
// từ nhiều query quốc gia) thành một tập duy nhất theo id.
// First-seen-wins: bản ghi trùng id đến sau KHÔNG ghi đè bản ghi đầu.
// Values() trả về theo thứ tự insert đầu tiên — thứ tự quét "first
// match wins" của engine là deterministic nhờ thuộc tính này.
type DedupIndex[T any] struct {
	byID  map[string]T
	order []string
}

// NewDedupIndex tạo index rỗng.
func NewDedupIndex[T any]() *DedupIndex[T] {
	return &DedupIndex[T]{byID: make(map[string]T)}
}

// Add thêm một bản ghi nếu id chưa tồn tại. Trả về true nếu bản ghi
// được nhận, false nếu bị bỏ qua vì trùng id.
func (idx *DedupIndex[T]) Add(id string, record T) bool {
	if id == "" {
		return false
	}
	if _, exists := idx.byID[id]; exists {
		return false
	}
	idx.byID[id] = record
	idx.order = append(idx.order, id)
	return true
}

// Get lấy bản ghi theo id.
func (idx *DedupIndex[T]) Get(id string) (T, bool) {
	record, exists := idx.byID[id]
	return record, exists
}

// Values trả về các bản ghi theo thứ tự insert đầu tiên.
func (idx *DedupIndex[T]) Values() []T {
	values := make([]T, 0, len(idx.order))
	for _, id := range idx.order {
		values = append(values, idx.byID[id])
	}
	return values
}

// Len trả về số bản ghi duy nhất trong index.
func (idx *DedupIndex[T]) Len() int {
	return len(idx.order)
}

// BuildPerCountry chạy fetch cho từng quốc gia theo đúng thứ tự liệt kê
// và merge kết quả vào một DedupIndex. Quốc gia fetch lỗi được log và
// bỏ qua, không làm hỏng cả lần merge. idOf trích id từ bản ghi.
func BuildPerCountry[T any](
	ctx context.Context,
	countries []models.CountryRecord,
	fetch func(ctx context.Context, countryID string) ([]T, error),
	idOf func(T) string,
) *DedupIndex[T] {
	idx := NewDedupIndex[T]()
	for _, country := range countries {
		records, err := fetch(ctx, country.ID)
		if err != nil {
			utility.LogWarning("Bỏ qua quốc gia lỗi khi build dedup index",
				"country_id", country.ID, "error", err.Error())
			continue
		}
		for _, record := range records {
			idx.Add(idOf(record), record)
		}
	}
	return idx
}
