package checkoutsvc

import (
	"context"

	"github.com/sirupsen/logrus"

	authsvc "eyewear_commerce/internal/api/auth/service"
	models "eyewear_commerce/internal/api/checkout/models"
	"eyewear_commerce/internal/common"
	"eyewear_commerce/internal/logger"
)

// Resolver tính OrderContext từ role, order type và selections của
// người dùng, bằng cách cross-reference các collection catalog vốn
// không có foreign key đáng tin cậy lẫn nhau.
//
// Chính sách fallback là best-effort với degradation tường minh:
// mỗi bước fallback được khai báo thành một fieldResolver có tên,
// first-success-wins; bước degraded được log Warn khi trúng. Engine
// không bao giờ bịa ra id chưa từng quan sát thấy trong catalog.
type Resolver struct {
	catalog   CatalogLookup
	location  LocationProvider
	jwtSecret string
}

// NewResolver tạo resolver với các collaborator được inject.
func NewResolver(catalog CatalogLookup, location LocationProvider, jwtSecret string) *Resolver {
	return &Resolver{
		catalog:   catalog,
		location:  location,
		jwtSecret: jwtSecret,
	}
}

// fieldResolver là một bước trong chuỗi fallback của một field.
// fn trả về "" khi bước này không cho ra giá trị.
type fieldResolver struct {
	source   string
	degraded bool // true = bước cuối cùng bất đắc dĩ, log Warn khi dùng
	fn       func(ctx context.Context) string
}

// resolveFirst chạy chuỗi resolver theo thứ tự, trả về giá trị đầu tiên
// khác rỗng cùng tên bước đã cho ra nó.
func resolveFirst(ctx context.Context, field string, resolvers []fieldResolver) (string, string) {
	for _, r := range resolvers {
		if value := r.fn(ctx); value != "" {
			if r.degraded {
				logger.GetAppLogger().WithFields(logrus.Fields{
					"field":  field,
					"source": r.source,
					"value":  value,
				}).Warn("Resolve field bằng bước fallback degraded")
			}
			return value, r.source
		}
	}
	return "", ""
}

// Resolve là operation công khai của engine:
// resolve(actor, orderType, selections) -> OrderContext | lỗi resolve.
//
// Mỗi lần gọi độc lập và idempotent với cùng input và snapshot catalog;
// không có state chia sẻ giữa các attempt.
func (r *Resolver) Resolve(ctx context.Context, actor models.Actor, orderType models.OrderType, sel models.Selections) (*models.OrderContext, error) {
	switch ClassifyRole(actor.Role) {
	case models.RoleDistributor:
		return r.resolveDistributorRole(actor, sel)
	case models.RoleParty:
		return r.resolvePartyRole(ctx, actor)
	case models.RoleSalesman:
		return r.resolveSalesmanRole(ctx, actor, orderType, sel)
	default:
		return nil, common.NewError(common.ErrCodeAuthRole,
			"Vai trò không được hỗ trợ đặt hàng", common.StatusForbidden,
			map[string]interface{}{"role": actor.Role})
	}
}

// resolveDistributorRole: distributor tự xác định mình — distributor_id
// và zone_id lấy thẳng từ Actor, không lookup. party_id bắt buộc từ
// selection. Không phát salesman_id (loại trừ tường minh theo contract).
func (r *Resolver) resolveDistributorRole(actor models.Actor, sel models.Selections) (*models.OrderContext, error) {
	if sel.SelectedPartyID == "" {
		return nil, common.NewMissingSelectionError("party_id")
	}

	return &models.OrderContext{
		OrderType:     models.OrderTypeDistributor,
		PartyID:       sel.SelectedPartyID,
		DistributorID: actor.DistributorID,
		ZoneID:        actor.ZoneID,
	}, nil
}

// resolvePartyRole: actor không có party_id đáng tin — phải tìm party
// bằng match số điện thoại qua mọi quốc gia, rồi suy ra distributor
// và zone qua chuỗi fallback.
func (r *Resolver) resolvePartyRole(ctx context.Context, actor models.Actor) (*models.OrderContext, error) {
	countries, err := r.catalog.GetCountries(ctx)
	if err != nil {
		return nil, err
	}

	// Quét tuần tự theo thứ tự liệt kê quốc gia — tie-break "first match
	// wins" phụ thuộc thứ tự deterministic này.
	partyIndex := BuildPerCountry(ctx, countries, r.catalog.GetParties,
		func(p models.PartyRecord) string { return p.ID })

	var party *models.PartyRecord
	for _, candidate := range partyIndex.Values() {
		if PhonesMatch(actor.Phone, candidate.Phone) {
			found := candidate
			party = &found
			break
		}
	}
	if party == nil {
		return nil, common.ErrPartyNotFound
	}

	// fullParty được fetch lười: chỉ khi bản ghi từ danh sách thiếu field.
	var fullParty *models.PartyRecord
	fetchFullParty := func(ctx context.Context) *models.PartyRecord {
		if fullParty != nil {
			return fullParty
		}
		p, err := r.catalog.GetPartyById(ctx, party.ID)
		if err != nil {
			logger.GetAppLogger().WithFields(logrus.Fields{
				"party_id": party.ID,
				"error":    err.Error(),
			}).Warn("Không fetch được party đầy đủ theo id")
			return nil
		}
		fullParty = p
		return fullParty
	}

	// distributorIndex build lười: chỉ khi hai bước đầu không ra.
	var distributorIndex *DedupIndex[models.DistributorRecord]
	buildDistributorIndex := func(ctx context.Context) *DedupIndex[models.DistributorRecord] {
		if distributorIndex == nil {
			distributorIndex = BuildPerCountry(ctx, countries, r.catalog.GetDistributors,
				func(d models.DistributorRecord) string { return d.ID })
		}
		return distributorIndex
	}

	distributorID, _ := resolveFirst(ctx, "distributor_id", []fieldResolver{
		{source: "party.distributorId", fn: func(ctx context.Context) string {
			return party.DistributorID
		}},
		{source: "party_by_id.distributorId", fn: func(ctx context.Context) string {
			if p := fetchFullParty(ctx); p != nil {
				return p.DistributorID
			}
			return ""
		}},
		{source: "first_distributor_in_country", fn: func(ctx context.Context) string {
			for _, d := range buildDistributorIndex(ctx).Values() {
				if d.CountryID == party.CountryID {
					return d.ID
				}
			}
			return ""
		}},
		// Bước cuối bất đắc dĩ: distributor đầu tiên toàn index, bất kể
		// quốc gia. Nhiều khả năng là workaround cho dữ liệu thiếu hơn là
		// business rule — luôn log Warn khi dùng tới.
		{source: "first_distributor_any_country", degraded: true, fn: func(ctx context.Context) string {
			if values := buildDistributorIndex(ctx).Values(); len(values) > 0 {
				return values[0].ID
			}
			return ""
		}},
	})
	if distributorID == "" {
		return nil, common.ErrDistributorUnresolved
	}

	// zone không có fallback toàn index: không tìm ra thì bỏ trống
	// (zone không bắt buộc với đơn của party).
	zoneID, _ := resolveFirst(ctx, "zone_id", []fieldResolver{
		{source: "party.zoneId", fn: func(ctx context.Context) string {
			return party.ZoneID
		}},
		{source: "party_by_id.zoneId", fn: func(ctx context.Context) string {
			if p := fetchFullParty(ctx); p != nil {
				return p.ZoneID
			}
			return ""
		}},
	})

	return &models.OrderContext{
		OrderType:     models.OrderTypeDirect,
		PartyID:       party.ID,
		DistributorID: distributorID,
		ZoneID:        zoneID,
	}, nil
}

// resolveSalesmanRole xử lý bốn biến thể order type của salesman.
func (r *Resolver) resolveSalesmanRole(ctx context.Context, actor models.Actor, orderType models.OrderType, sel models.Selections) (*models.OrderContext, error) {
	salesmanID, err := r.resolveSalesmanID(ctx, actor)
	if err != nil {
		return nil, err
	}

	switch orderType {
	case models.OrderTypeVisit, models.OrderTypeWhatsApp:
		if sel.SelectedPartyID == "" {
			return nil, common.NewMissingSelectionError("party_id")
		}

		zoneID, _ := resolveFirst(ctx, "zone_id", []fieldResolver{
			{source: "actor.zoneId", fn: func(ctx context.Context) string {
				return actor.ZoneID
			}},
			{source: "selected_party.zoneId", fn: func(ctx context.Context) string {
				p, err := r.catalog.GetPartyById(ctx, sel.SelectedPartyID)
				if err != nil || p == nil {
					return ""
				}
				return p.ZoneID
			}},
		})

		orderCtx := &models.OrderContext{
			OrderType:  orderType,
			PartyID:    sel.SelectedPartyID,
			ZoneID:     zoneID,
			SalesmanID: salesmanID,
		}

		// Visit order bắt buộc có vị trí thiết bị; không lấy được là lỗi
		// cứng, không được âm thầm bỏ trống.
		if orderType == models.OrderTypeVisit {
			point, err := r.location.Acquire(ctx)
			if err != nil || point == nil {
				logger.GetAppLogger().WithField("error", err).Warn("Visit order không lấy được vị trí")
				return nil, common.ErrLocationRequired
			}
			orderCtx.Latitude = &point.Latitude
			orderCtx.Longitude = &point.Longitude
		}

		return orderCtx, nil

	case models.OrderTypeEvent:
		if sel.SelectedEventID == "" {
			return nil, common.NewMissingSelectionError("event_id")
		}
		// Event order không giới hạn địa lý: party (nếu chọn) lấy từ
		// danh sách đầy đủ, không scope theo zone.
		return &models.OrderContext{
			OrderType:  models.OrderTypeEvent,
			PartyID:    sel.SelectedPartyID,
			EventID:    sel.SelectedEventID,
			SalesmanID: salesmanID,
		}, nil

	default:
		// Direct hoặc chưa chọn type: chỉ cần salesman_id, party optional.
		return &models.OrderContext{
			OrderType:  models.OrderTypeDirect,
			PartyID:    sel.SelectedPartyID,
			SalesmanID: salesmanID,
		}, nil
	}
}

// resolveSalesmanID suy ra salesman id theo thứ tự ưu tiên:
// field trực tiếp trên actor, rồi actor id (trường hợp phổ biến — user
// id của salesman cũng là salesman id, chấp nhận low-confidence), cuối
// cùng là claim trong session token. Contract ưu tiên hoàn tất đơn hơn
// là chặn: chỉ fail khi cả ba nguồn đều trống, validation cuối để
// order service quyết.
func (r *Resolver) resolveSalesmanID(ctx context.Context, actor models.Actor) (string, error) {
	id, _ := resolveFirst(ctx, "salesman_id", []fieldResolver{
		{source: "actor.salesmanId", fn: func(ctx context.Context) string {
			return actor.SalesmanID
		}},
		{source: "actor.id", degraded: true, fn: func(ctx context.Context) string {
			return actor.ID
		}},
		{source: "session_token.salesmanId", fn: func(ctx context.Context) string {
			if actor.SessionToken == "" {
				return ""
			}
			claims, err := authsvc.ParseSessionClaims(actor.SessionToken, r.jwtSecret)
			if err != nil {
				return ""
			}
			return claims.SalesmanID
		}},
	})
	if id == "" {
		return "", common.ErrSalesmanIdUnresolved
	}
	return id, nil
}
