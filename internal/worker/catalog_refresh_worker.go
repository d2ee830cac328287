package worker

import (
	"context"
	"time"

	catalogsvc "eyewear_commerce/internal/api/catalog/service"
	"eyewear_commerce/internal/logger"
)

// CatalogRefreshWorker làm nóng cache danh sách quốc gia định kỳ.
// Danh sách quốc gia là đầu vào của mọi lần build dedup index khi
// resolve — giữ cache nóng giúp checkout không phải đợi query đầu tiên.
type CatalogRefreshWorker struct {
	lookup   *catalogsvc.LookupService
	interval time.Duration // Khoảng thời gian giữa các lần refresh
}

// NewCatalogRefreshWorker tạo mới CatalogRefreshWorker.
// interval dưới 1 phút được nâng lên mặc định 10 phút.
func NewCatalogRefreshWorker(lookup *catalogsvc.LookupService, interval time.Duration) *CatalogRefreshWorker {
	if interval < time.Minute {
		interval = 10 * time.Minute
	}
	return &CatalogRefreshWorker{
		lookup:   lookup,
		interval: interval,
	}
}

// Start chạy worker trong vòng lặp: refresh ngay khi khởi động rồi
// theo chu kỳ. Panic trong một lần chạy được recover, lần sau chạy tiếp.
func (w *CatalogRefreshWorker) Start(ctx context.Context) {
	log := logger.GetAppLogger()

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	log.WithField("interval", w.interval.String()).Info("[CATALOG_REFRESH] Starting Catalog Refresh Worker...")

	refresh := func() {
		defer func() {
			if r := recover(); r != nil {
				log.WithField("panic", r).Error("[CATALOG_REFRESH] Panic khi refresh catalog, sẽ tiếp tục ở lần chạy tiếp theo")
			}
		}()

		if err := w.lookup.RefreshCountries(ctx); err != nil {
			log.WithError(err).Warn("[CATALOG_REFRESH] Refresh danh sách quốc gia thất bại")
			return
		}
		log.Debug("[CATALOG_REFRESH] Đã refresh danh sách quốc gia")
	}

	refresh()

	for {
		select {
		case <-ctx.Done():
			log.Info("[CATALOG_REFRESH] Catalog Refresh Worker stopped")
			return
		case <-ticker.C:
			refresh()
		}
	}
}
