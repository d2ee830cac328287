package checkoutsvc

import (
	"context"
	"errors"
	"testing"

	models "eyewear_commerce/internal/api/checkout/models"
)

func TestDedupIndex_FirstSeenWins(t *testing.T) {
	idx := NewDedupIndex[models.DistributorRecord]()

	first := models.DistributorRecord{ID: "D1", Name: "Bản ghi đầu", CountryID: "C1"}
	second := models.DistributorRecord{ID: "D1", Name: "Bản ghi sau", CountryID: "C2"}

	if !idx.Add(first.ID, first) {
		t.Fatal("Add bản ghi đầu tiên phải trả về true")
	}
	if idx.Add(second.ID, second) {
		t.Error("Add bản ghi trùng id phải trả về false")
	}

	got, exists := idx.Get("D1")
	if !exists {
		t.Fatal("Get không tìm thấy bản ghi vừa Add")
	}
	if got.Name != "Bản ghi đầu" {
		t.Errorf("Bản ghi trùng id đến sau đã ghi đè bản ghi đầu: got %q", got.Name)
	}
	if idx.Len() != 1 {
		t.Errorf("Len sai: muốn 1, có %d", idx.Len())
	}
}

func TestDedupIndex_RejectsEmptyId(t *testing.T) {
	idx := NewDedupIndex[models.PartyRecord]()
	if idx.Add("", models.PartyRecord{Name: "không id"}) {
		t.Error("Add với id rỗng phải bị từ chối")
	}
	if idx.Len() != 0 {
		t.Errorf("Index phải rỗng sau khi Add id rỗng, có %d bản ghi", idx.Len())
	}
}

func TestDedupIndex_ValuesPreserveInsertOrder(t *testing.T) {
	idx := NewDedupIndex[models.PartyRecord]()
	ids := []string{"P3", "P1", "P2"}
	for _, id := range ids {
		idx.Add(id, models.PartyRecord{ID: id})
	}
	// Add trùng không được làm đổi thứ tự
	idx.Add("P1", models.PartyRecord{ID: "P1", Name: "trùng"})

	values := idx.Values()
	if len(values) != 3 {
		t.Fatalf("Values trả về %d bản ghi, muốn 3", len(values))
	}
	for i, id := range ids {
		if values[i].ID != id {
			t.Errorf("Thứ tự insert bị phá ở vị trí %d: muốn %s, có %s", i, id, values[i].ID)
		}
	}
}

func TestBuildPerCountry_SkipsFailingCountry(t *testing.T) {
	countries := []models.CountryRecord{
		{ID: "C1", Code: "IN"},
		{ID: "C2", Code: "VN"},
		{ID: "C3", Code: "TH"},
	}

	fetch := func(ctx context.Context, countryID string) ([]models.PartyRecord, error) {
		switch countryID {
		case "C1":
			return []models.PartyRecord{{ID: "P1", CountryID: "C1"}}, nil
		case "C2":
			return nil, errors.New("country service down")
		case "C3":
			return []models.PartyRecord{
				{ID: "P3", CountryID: "C3"},
				{ID: "P1", CountryID: "C3"}, // trùng id với C1, phải bị bỏ
			}, nil
		}
		return nil, nil
	}

	idx := BuildPerCountry(context.Background(), countries, fetch,
		func(p models.PartyRecord) string { return p.ID })

	if idx.Len() != 2 {
		t.Fatalf("Index phải có 2 bản ghi duy nhất, có %d", idx.Len())
	}

	values := idx.Values()
	if values[0].ID != "P1" || values[1].ID != "P3" {
		t.Errorf("Thứ tự merge sai: %v", []string{values[0].ID, values[1].ID})
	}
	if values[0].CountryID != "C1" {
		t.Errorf("Bản ghi P1 phải là bản ghi đầu tiên (từ C1), có CountryID %s", values[0].CountryID)
	}
}
