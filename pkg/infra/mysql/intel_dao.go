package mysql

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"kopik/common/entity"
	"kopik/common/model"
	"kopik/pkg/idgen"
)

// IntelDAO 经营数据访问对象
// 负责六个域的时间窗口查询（记录源）以及建议落库（建议汇）
type IntelDAO struct {
	db *gorm.DB
}

// NewIntelDAO 创建 IntelDAO 实例
func NewIntelDAO(dsn string) (*IntelDAO, error) {
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return &IntelDAO{db: db}, nil
}

// NewIntelDAOWithDB 基于已有连接创建（测试用）
func NewIntelDAOWithDB(db *gorm.DB) *IntelDAO {
	return &IntelDAO{db: db}
}

// FetchSnapshot 拉取一次分析运行所需的全部输入快照
// 各域窗口：库存取低库存商品，损耗/天气/销售取近 7 天，
// 活动取未来 14 天，销售趋势取近 30 天，订单取 pending/delayed
func (dao *IntelDAO) FetchSnapshot(ctx context.Context, now time.Time) (*model.Snapshot, error) {
	weekAgo := now.AddDate(0, 0, -7)
	monthAgo := now.AddDate(0, 0, -30)
	twoWeeksAhead := now.AddDate(0, 0, 14)

	var items []entity.InventoryItem
	if err := dao.db.WithContext(ctx).
		Where("current_stock <= reorder_point").
		Find(&items).Error; err != nil {
		return nil, fmt.Errorf("query low stock items failed: %w", err)
	}

	var waste []entity.FoodWaste
	if err := dao.db.WithContext(ctx).
		Where("waste_date >= ?", weekAgo).
		Find(&waste).Error; err != nil {
		return nil, fmt.Errorf("query food waste failed: %w", err)
	}

	var weather []entity.Weather
	if err := dao.db.WithContext(ctx).
		Where("date >= ?", weekAgo).
		Order("date DESC").
		Find(&weather).Error; err != nil {
		return nil, fmt.Errorf("query weather failed: %w", err)
	}

	var events []entity.Event
	if err := dao.db.WithContext(ctx).
		Where("start_date >= ? AND start_date <= ?", now, twoWeeksAhead).
		Find(&events).Error; err != nil {
		return nil, fmt.Errorf("query upcoming events failed: %w", err)
	}

	var sales []entity.Sale
	if err := dao.db.WithContext(ctx).
		Where("sale_date >= ?", weekAgo).
		Find(&sales).Error; err != nil {
		return nil, fmt.Errorf("query recent sales failed: %w", err)
	}

	var trends []entity.Sale
	if err := dao.db.WithContext(ctx).
		Where("sale_date >= ?", monthAgo).
		Find(&trends).Error; err != nil {
		return nil, fmt.Errorf("query sales trends failed: %w", err)
	}

	var orders []entity.PurchaseOrder
	if err := dao.db.WithContext(ctx).
		Where("status IN ?", []string{entity.PurchaseOrderStatusPending, entity.PurchaseOrderStatusDelayed}).
		Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("query pending orders failed: %w", err)
	}

	return &model.Snapshot{
		Inventory:   toInventoryRecords(items),
		Waste:       toWasteRecords(waste),
		Weather:     toWeatherRecords(weather),
		Events:      toEventRecords(events),
		Sales:       toSaleRecords(sales),
		SalesTrends: toSaleRecords(trends),
		Orders:      toOrderRecords(orders),
	}, nil
}

// StoreRecommendations 批量落库建议（单事务，整批成败）
func (dao *IntelDAO) StoreRecommendations(ctx context.Context, recs []model.FormattedRecommendation) error {
	if len(recs) == 0 {
		return nil
	}

	now := time.Now()
	pos := make([]entity.Recommendation, 0, len(recs))
	for _, rec := range recs {
		tagsJSON, err := json.Marshal(rec.Tags)
		if err != nil {
			return fmt.Errorf("marshal tags failed: %w", err)
		}
		sourcesJSON, err := json.Marshal([]string{string(rec.Category)})
		if err != nil {
			return fmt.Errorf("marshal trigger sources failed: %w", err)
		}

		pos = append(pos, entity.Recommendation{
			ID:             idgen.GenerateID(),
			Priority:       string(rec.Priority),
			Title:          rec.Title,
			Description:    rec.Description,
			ProfitImpact:   rec.ProfitImpact,
			Confidence:     rec.Confidence,
			ActionRequired: true,
			Category:       string(rec.Category),
			TriggerSources: sourcesJSON,
			Tags:           tagsJSON,
			CreatedAt:      now,
			UpdatedAt:      now,
		})
	}

	return dao.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(&pos).Error
	})
}

// ListRecommendations 查询最近落库的建议
func (dao *IntelDAO) ListRecommendations(ctx context.Context, limit int) ([]entity.Recommendation, error) {
	if limit <= 0 {
		limit = 50
	}

	var recs []entity.Recommendation
	err := dao.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&recs).Error
	if err != nil {
		return nil, fmt.Errorf("query recommendations failed: %w", err)
	}
	return recs, nil
}

// CreateInventoryItem 创建库存商品
func (dao *IntelDAO) CreateInventoryItem(ctx context.Context, item *entity.InventoryItem) error {
	item.CreatedAt = time.Now()
	item.UpdatedAt = item.CreatedAt
	return dao.db.WithContext(ctx).Create(item).Error
}

// ListInventoryItems 查询全部库存商品
func (dao *IntelDAO) ListInventoryItems(ctx context.Context) ([]entity.InventoryItem, error) {
	var items []entity.InventoryItem
	if err := dao.db.WithContext(ctx).Order("name").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("query inventory items failed: %w", err)
	}
	return items, nil
}

// ListLowStockItems 查询低库存商品
func (dao *IntelDAO) ListLowStockItems(ctx context.Context) ([]entity.InventoryItem, error) {
	var items []entity.InventoryItem
	err := dao.db.WithContext(ctx).
		Where("current_stock <= reorder_point").
		Order("current_stock").
		Find(&items).Error
	if err != nil {
		return nil, fmt.Errorf("query low stock items failed: %w", err)
	}
	return items, nil
}

// Close 关闭数据库连接
func (dao *IntelDAO) Close() error {
	sqlDB, err := dao.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// 实体 → 快照记录转换

func toInventoryRecords(items []entity.InventoryItem) []model.InventoryRecord {
	records := make([]model.InventoryRecord, 0, len(items))
	for _, it := range items {
		records = append(records, model.InventoryRecord{
			ItemID:       it.ItemID,
			Name:         it.Name,
			Category:     it.Category,
			CurrentStock: it.CurrentStock,
			Unit:         it.Unit,
			ReorderPoint: it.ReorderPoint,
			DailyUsage:   it.DailyUsage,
			CostPerUnit:  it.CostPerUnit,
			Supplier:     it.Supplier,
		})
	}
	return records
}

func toWasteRecords(waste []entity.FoodWaste) []model.WasteRecord {
	records := make([]model.WasteRecord, 0, len(waste))
	for _, w := range waste {
		records = append(records, model.WasteRecord{
			ItemID:     w.ItemID,
			Reason:     w.Reason,
			CostImpact: w.CostImpact,
			WasteDate:  w.WasteDate,
		})
	}
	return records
}

func toWeatherRecords(weather []entity.Weather) []model.WeatherRecord {
	records := make([]model.WeatherRecord, 0, len(weather))
	for _, w := range weather {
		records = append(records, model.WeatherRecord{
			Condition:           w.Condition,
			TemperatureHigh:     w.TemperatureHigh,
			TemperatureLow:      w.TemperatureLow,
			PrecipitationChance: w.PrecipitationChance,
			Date:                w.Date,
		})
	}
	return records
}

func toEventRecords(events []entity.Event) []model.EventRecord {
	records := make([]model.EventRecord, 0, len(events))
	for _, e := range events {
		records = append(records, model.EventRecord{
			Name:               e.Name,
			EventType:          e.EventType,
			StartDate:          e.StartDate,
			ExpectedAttendance: e.ExpectedAttendance,
			ImpactMultiplier:   e.ImpactMultiplier,
		})
	}
	return records
}

func toSaleRecords(sales []entity.Sale) []model.SaleRecord {
	records := make([]model.SaleRecord, 0, len(sales))
	for _, s := range sales {
		records = append(records, model.SaleRecord{
			ItemID:       s.ItemID,
			TotalAmount:  s.TotalAmount,
			QuantitySold: s.QuantitySold,
			SaleDate:     s.SaleDate,
		})
	}
	return records
}

func toOrderRecords(orders []entity.PurchaseOrder) []model.OrderRecord {
	records := make([]model.OrderRecord, 0, len(orders))
	for _, o := range orders {
		records = append(records, model.OrderRecord{
			OrderNo:          o.OrderNo,
			Supplier:         o.Supplier,
			Status:           o.Status,
			ExpectedDelivery: o.ExpectedDelivery,
			TotalCost:        o.TotalCost,
		})
	}
	return records
}
