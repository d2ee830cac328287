package checkoutsvc

import (
	"context"
	"errors"
	"testing"

	authsvc "eyewear_commerce/internal/api/auth/service"
	models "eyewear_commerce/internal/api/checkout/models"
	"eyewear_commerce/internal/common"
)

const testJwtSecret = "test-secret"

// fakeCatalog là CatalogLookup in-memory cho test resolver.
type fakeCatalog struct {
	countries    []models.CountryRecord
	parties      map[string][]models.PartyRecord       // theo countryID
	partyById    map[string]*models.PartyRecord        // bản ghi đầy đủ theo id
	distributors map[string][]models.DistributorRecord // theo countryID
	events       []models.EventRecord
	failCountry  string // countryID luôn trả lỗi khi fetch parties/distributors
}

func (f *fakeCatalog) GetCountries(ctx context.Context) ([]models.CountryRecord, error) {
	return f.countries, nil
}

func (f *fakeCatalog) GetParties(ctx context.Context, countryID string) ([]models.PartyRecord, error) {
	if countryID == f.failCountry {
		return nil, errors.New("fetch parties thất bại")
	}
	return f.parties[countryID], nil
}

func (f *fakeCatalog) GetPartyById(ctx context.Context, id string) (*models.PartyRecord, error) {
	if p, ok := f.partyById[id]; ok {
		return p, nil
	}
	return nil, common.ErrNotFound
}

func (f *fakeCatalog) GetDistributors(ctx context.Context, countryID string) ([]models.DistributorRecord, error) {
	if countryID == f.failCountry {
		return nil, errors.New("fetch distributors thất bại")
	}
	return f.distributors[countryID], nil
}

func (f *fakeCatalog) GetEvents(ctx context.Context) ([]models.EventRecord, error) {
	return f.events, nil
}

func (f *fakeCatalog) GetPartiesByZoneId(ctx context.Context, zoneID string) ([]models.PartyRecord, error) {
	var result []models.PartyRecord
	for _, list := range f.parties {
		for _, p := range list {
			if p.ZoneID == zoneID {
				result = append(result, p)
			}
		}
	}
	return result, nil
}

// fakeLocation là LocationProvider trả về kết quả cố định.
type fakeLocation struct {
	point *models.GeoPoint
	err   error
}

func (f *fakeLocation) Acquire(ctx context.Context) (*models.GeoPoint, error) {
	return f.point, f.err
}

func newTestResolver(catalog *fakeCatalog, location *fakeLocation) *Resolver {
	if location == nil {
		location = &fakeLocation{err: errors.New("không có provider")}
	}
	return NewResolver(catalog, location, testJwtSecret)
}

// --- Distributor role ---

func TestResolve_DistributorRole_SelfIdentifying(t *testing.T) {
	resolver := newTestResolver(&fakeCatalog{}, nil)

	actor := models.Actor{
		ID:            "U1",
		Role:          "distributor",
		DistributorID: "D1",
		ZoneID:        "Z9",
	}
	sel := models.Selections{SelectedPartyID: "P5"}

	orderCtx, err := resolver.Resolve(context.Background(), actor, models.OrderTypeDistributor, sel)
	if err != nil {
		t.Fatalf("Resolve lỗi: %v", err)
	}

	if orderCtx.OrderType != models.OrderTypeDistributor {
		t.Errorf("OrderType sai: %s", orderCtx.OrderType)
	}
	if orderCtx.PartyID != "P5" || orderCtx.DistributorID != "D1" || orderCtx.ZoneID != "Z9" {
		t.Errorf("Context sai: %+v", orderCtx)
	}
	if orderCtx.SalesmanID != "" {
		t.Errorf("Đơn của distributor không được có salesman_id, có %q", orderCtx.SalesmanID)
	}
}

func TestResolve_DistributorRole_RequiresPartySelection(t *testing.T) {
	resolver := newTestResolver(&fakeCatalog{}, nil)

	actor := models.Actor{Role: "distributor", DistributorID: "D1"}
	_, err := resolver.Resolve(context.Background(), actor, models.OrderTypeDistributor, models.Selections{})

	if !common.IsCheckoutError(err, common.ErrCodeCheckoutSelection) {
		t.Fatalf("Muốn lỗi MissingSelection, có %v", err)
	}
}

// --- Party role ---

func partyCatalog() *fakeCatalog {
	return &fakeCatalog{
		countries: []models.CountryRecord{
			{ID: "C1", Code: "IN"},
			{ID: "C2", Code: "VN"},
		},
		parties: map[string][]models.PartyRecord{
			"C1": {
				{ID: "P1", Phone: "+911111111111", CountryID: "C1", DistributorID: "D1", ZoneID: "Z1"},
			},
			"C2": {
				{ID: "P2", Phone: "+84901234567", CountryID: "C2"},
			},
		},
		partyById: map[string]*models.PartyRecord{},
		distributors: map[string][]models.DistributorRecord{
			"C1": {{ID: "D1", CountryID: "C1"}},
			"C2": {{ID: "D2", CountryID: "C2"}},
		},
	}
}

func TestResolve_PartyRole_PhoneMatchedAcrossCountries(t *testing.T) {
	resolver := newTestResolver(partyCatalog(), nil)

	// Số của P2 (quốc gia thứ hai), viết khác định dạng
	actor := models.Actor{Role: "party", Phone: "84 901-234-567"}
	orderCtx, err := resolver.Resolve(context.Background(), actor, models.OrderTypeDirect, models.Selections{})
	if err != nil {
		t.Fatalf("Resolve lỗi: %v", err)
	}

	if orderCtx.PartyID != "P2" {
		t.Errorf("Phải match party ở quốc gia thứ hai, có party %q", orderCtx.PartyID)
	}
	if orderCtx.OrderType != models.OrderTypeDirect {
		t.Errorf("Đơn của party phải là direct, có %s", orderCtx.OrderType)
	}
}

func TestResolve_PartyRole_NotFound(t *testing.T) {
	resolver := newTestResolver(partyCatalog(), nil)

	actor := models.Actor{Role: "party", Phone: "+999999999999"}
	_, err := resolver.Resolve(context.Background(), actor, models.OrderTypeDirect, models.Selections{})

	if !errors.Is(err, common.ErrPartyNotFound) {
		t.Fatalf("Muốn ErrPartyNotFound, có %v", err)
	}
}

func TestResolve_PartyRole_DistributorFromPartyRecord(t *testing.T) {
	resolver := newTestResolver(partyCatalog(), nil)

	actor := models.Actor{Role: "party", Phone: "+911111111111"}
	orderCtx, err := resolver.Resolve(context.Background(), actor, models.OrderTypeDirect, models.Selections{})
	if err != nil {
		t.Fatalf("Resolve lỗi: %v", err)
	}

	if orderCtx.DistributorID != "D1" {
		t.Errorf("distributor_id phải lấy thẳng từ party record: %q", orderCtx.DistributorID)
	}
	if orderCtx.ZoneID != "Z1" {
		t.Errorf("zone_id phải lấy thẳng từ party record: %q", orderCtx.ZoneID)
	}
}

func TestResolve_PartyRole_DistributorFallbackInCountry(t *testing.T) {
	catalog := partyCatalog()
	resolver := newTestResolver(catalog, nil)

	// P2 không có distributorId, cũng không có bản ghi đầy đủ —
	// fallback phải lấy distributor đầu tiên của đúng quốc gia C2.
	actor := models.Actor{Role: "party", Phone: "+84901234567"}
	orderCtx, err := resolver.Resolve(context.Background(), actor, models.OrderTypeDirect, models.Selections{})
	if err != nil {
		t.Fatalf("Resolve lỗi: %v", err)
	}

	if orderCtx.DistributorID != "D2" {
		t.Errorf("Fallback phải chọn distributor cùng quốc gia (D2), có %q", orderCtx.DistributorID)
	}
}

func TestResolve_PartyRole_DistributorFallbackFullRecord(t *testing.T) {
	catalog := partyCatalog()
	// Bản ghi đầy đủ của P2 có distributorId mà bản ghi trong danh sách thiếu
	catalog.partyById["P2"] = &models.PartyRecord{
		ID: "P2", Phone: "+84901234567", CountryID: "C2", DistributorID: "D7", ZoneID: "Z7",
	}
	resolver := newTestResolver(catalog, nil)

	actor := models.Actor{Role: "party", Phone: "+84901234567"}
	orderCtx, err := resolver.Resolve(context.Background(), actor, models.OrderTypeDirect, models.Selections{})
	if err != nil {
		t.Fatalf("Resolve lỗi: %v", err)
	}

	if orderCtx.DistributorID != "D7" {
		t.Errorf("Bản ghi đầy đủ phải được ưu tiên trước fallback theo quốc gia: %q", orderCtx.DistributorID)
	}
	if orderCtx.ZoneID != "Z7" {
		t.Errorf("zone_id phải lấy từ bản ghi đầy đủ: %q", orderCtx.ZoneID)
	}
}

func TestResolve_PartyRole_DistributorFallbackAnyCountry(t *testing.T) {
	catalog := partyCatalog()
	// Quốc gia C2 không còn distributor nào — bước degraded phải lấy
	// distributor đầu tiên của toàn index (D1, từ C1).
	catalog.distributors["C2"] = nil
	resolver := newTestResolver(catalog, nil)

	actor := models.Actor{Role: "party", Phone: "+84901234567"}
	orderCtx, err := resolver.Resolve(context.Background(), actor, models.OrderTypeDirect, models.Selections{})
	if err != nil {
		t.Fatalf("Resolve lỗi: %v", err)
	}

	if orderCtx.DistributorID != "D1" {
		t.Errorf("Bước degraded phải chọn distributor đầu tiên toàn index (D1), có %q", orderCtx.DistributorID)
	}
}

func TestResolve_PartyRole_DistributorUnresolved(t *testing.T) {
	catalog := partyCatalog()
	catalog.distributors = map[string][]models.DistributorRecord{}
	resolver := newTestResolver(catalog, nil)

	actor := models.Actor{Role: "party", Phone: "+84901234567"}
	_, err := resolver.Resolve(context.Background(), actor, models.OrderTypeDirect, models.Selections{})

	if !errors.Is(err, common.ErrDistributorUnresolved) {
		t.Fatalf("Muốn ErrDistributorUnresolved, có %v", err)
	}
}

func TestResolve_PartyRole_ZoneOmittedWhenUnknown(t *testing.T) {
	resolver := newTestResolver(partyCatalog(), nil)

	// P2 không có zoneId ở bất kỳ nguồn nào — zone phải bỏ trống,
	// không được mượn zone của entity khác.
	actor := models.Actor{Role: "party", Phone: "+84901234567"}
	orderCtx, err := resolver.Resolve(context.Background(), actor, models.OrderTypeDirect, models.Selections{})
	if err != nil {
		t.Fatalf("Resolve lỗi: %v", err)
	}

	if orderCtx.ZoneID != "" {
		t.Errorf("zone_id phải rỗng khi không nguồn nào có, có %q", orderCtx.ZoneID)
	}
}

// --- Salesman role ---

func TestResolve_SalesmanRole_VisitRequiresLocation(t *testing.T) {
	location := &fakeLocation{err: errors.New("GPS timeout")}
	resolver := newTestResolver(&fakeCatalog{partyById: map[string]*models.PartyRecord{}}, location)

	actor := models.Actor{Role: "salesman", SalesmanID: "S1", ZoneID: "Z1"}
	sel := models.Selections{SelectedPartyID: "P1"}
	_, err := resolver.Resolve(context.Background(), actor, models.OrderTypeVisit, sel)

	if !errors.Is(err, common.ErrLocationRequired) {
		t.Fatalf("Visit không có vị trí phải trả ErrLocationRequired, có %v", err)
	}
}

func TestResolve_SalesmanRole_VisitWithLocation(t *testing.T) {
	location := &fakeLocation{point: &models.GeoPoint{Latitude: 10.762622, Longitude: 106.660172}}
	resolver := newTestResolver(&fakeCatalog{partyById: map[string]*models.PartyRecord{}}, location)

	actor := models.Actor{ID: "U1", Role: "salesman", SalesmanID: "S1", ZoneID: "Z1"}
	sel := models.Selections{SelectedPartyID: "P1"}
	orderCtx, err := resolver.Resolve(context.Background(), actor, models.OrderTypeVisit, sel)
	if err != nil {
		t.Fatalf("Resolve lỗi: %v", err)
	}

	if !orderCtx.HasLocation() {
		t.Fatal("Visit order phải có đủ cả hai tọa độ")
	}
	if *orderCtx.Latitude != 10.762622 || *orderCtx.Longitude != 106.660172 {
		t.Errorf("Tọa độ sai: lat=%v lng=%v", *orderCtx.Latitude, *orderCtx.Longitude)
	}
	if orderCtx.SalesmanID != "S1" || orderCtx.PartyID != "P1" || orderCtx.ZoneID != "Z1" {
		t.Errorf("Context sai: %+v", orderCtx)
	}
}

func TestResolve_SalesmanRole_VisitRequiresPartySelection(t *testing.T) {
	resolver := newTestResolver(&fakeCatalog{}, nil)

	actor := models.Actor{Role: "salesman", SalesmanID: "S1"}
	_, err := resolver.Resolve(context.Background(), actor, models.OrderTypeVisit, models.Selections{})

	if !common.IsCheckoutError(err, common.ErrCodeCheckoutSelection) {
		t.Fatalf("Visit không chọn party phải trả MissingSelection, có %v", err)
	}
}

func TestResolve_SalesmanRole_WhatsAppZoneFromSelectedParty(t *testing.T) {
	catalog := &fakeCatalog{
		partyById: map[string]*models.PartyRecord{
			"P1": {ID: "P1", ZoneID: "Z5"},
		},
	}
	resolver := newTestResolver(catalog, nil)

	// Actor không có zoneId — phải suy ra từ party đã chọn
	actor := models.Actor{Role: "salesman", SalesmanID: "S1"}
	sel := models.Selections{SelectedPartyID: "P1"}
	orderCtx, err := resolver.Resolve(context.Background(), actor, models.OrderTypeWhatsApp, sel)
	if err != nil {
		t.Fatalf("Resolve lỗi: %v", err)
	}

	if orderCtx.ZoneID != "Z5" {
		t.Errorf("zone_id phải suy ra từ party đã chọn: %q", orderCtx.ZoneID)
	}
	if orderCtx.HasLocation() {
		t.Error("WhatsApp order không được có tọa độ")
	}
}

func TestResolve_SalesmanRole_EventRequiresEventSelection(t *testing.T) {
	resolver := newTestResolver(&fakeCatalog{}, nil)

	actor := models.Actor{Role: "salesman", SalesmanID: "S1"}
	_, err := resolver.Resolve(context.Background(), actor, models.OrderTypeEvent, models.Selections{})

	if !common.IsCheckoutError(err, common.ErrCodeCheckoutSelection) {
		t.Fatalf("Event không chọn event phải trả MissingSelection, có %v", err)
	}
}

func TestResolve_SalesmanRole_EventPartyOptional(t *testing.T) {
	resolver := newTestResolver(&fakeCatalog{}, nil)

	actor := models.Actor{Role: "salesman", SalesmanID: "S1"}
	sel := models.Selections{SelectedEventID: "E1"}
	orderCtx, err := resolver.Resolve(context.Background(), actor, models.OrderTypeEvent, sel)
	if err != nil {
		t.Fatalf("Resolve lỗi: %v", err)
	}

	if orderCtx.EventID != "E1" {
		t.Errorf("event_id sai: %q", orderCtx.EventID)
	}
	if orderCtx.PartyID != "" {
		t.Errorf("Event order không chọn party thì party_id phải rỗng: %q", orderCtx.PartyID)
	}
	if orderCtx.HasLocation() {
		t.Error("Event order không được có tọa độ")
	}
}

func TestResolveSalesmanID_Chain(t *testing.T) {
	resolver := newTestResolver(&fakeCatalog{}, nil)
	ctx := context.Background()

	// 1. Field trực tiếp được ưu tiên
	id, err := resolver.resolveSalesmanID(ctx, models.Actor{ID: "U1", SalesmanID: "S1"})
	if err != nil || id != "S1" {
		t.Errorf("Ưu tiên actor.salesmanId: muốn S1, có %q (err=%v)", id, err)
	}

	// 2. Thiếu field trực tiếp thì lấy actor id
	id, err = resolver.resolveSalesmanID(ctx, models.Actor{ID: "U1"})
	if err != nil || id != "U1" {
		t.Errorf("Fallback actor.id: muốn U1, có %q (err=%v)", id, err)
	}

	// 3. Cả hai trống thì đọc claim trong session token
	token, err := authsvc.NewSessionToken(&authsvc.SessionClaims{
		UserID: "U1", Role: "salesman", SalesmanID: "S9",
	}, testJwtSecret)
	if err != nil {
		t.Fatalf("Không phát hành được token test: %v", err)
	}
	id, err = resolver.resolveSalesmanID(ctx, models.Actor{SessionToken: token})
	if err != nil || id != "S9" {
		t.Errorf("Fallback session token: muốn S9, có %q (err=%v)", id, err)
	}

	// 4. Mọi nguồn đều trống
	_, err = resolver.resolveSalesmanID(ctx, models.Actor{})
	if !errors.Is(err, common.ErrSalesmanIdUnresolved) {
		t.Errorf("Muốn ErrSalesmanIdUnresolved, có %v", err)
	}
}

// --- Role không hỗ trợ ---

func TestResolve_UnsupportedRole_FailsClosed(t *testing.T) {
	resolver := newTestResolver(&fakeCatalog{}, nil)

	actor := models.Actor{Role: "admin"}
	_, err := resolver.Resolve(context.Background(), actor, models.OrderTypeDirect, models.Selections{})
	if err == nil {
		t.Fatal("Role không hỗ trợ phải bị chặn")
	}

	var customErr *common.Error
	if !errors.As(err, &customErr) {
		t.Fatalf("Lỗi phải là *common.Error, có %T", err)
	}
	if customErr.Code.Code != common.ErrCodeAuthRole.Code {
		t.Errorf("Mã lỗi sai: %s", customErr.Code.Code)
	}
	if customErr.StatusCode != common.StatusForbidden {
		t.Errorf("Status sai: %d", customErr.StatusCode)
	}
}
