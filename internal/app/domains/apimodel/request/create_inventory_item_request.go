package request

import (
	"encoding/json"

	"kopik/common/entity"
)

// CreateInventoryItemRequest 创建库存商品请求
type CreateInventoryItemRequest struct {
	ItemID             string              `json:"item_id" binding:"required" example:"milk-001"`
	Name               string              `json:"name" binding:"required" example:"Whole Milk"`
	Category           string              `json:"category" binding:"required" example:"dairy"`
	CurrentStock       float64             `json:"current_stock" binding:"gte=0" example:"24"`
	Unit               string              `json:"unit" binding:"required" example:"liters"`
	ReorderPoint       float64             `json:"reorder_point" binding:"gte=0" example:"10"`
	DailyUsage         float64             `json:"daily_usage" binding:"gte=0" example:"3.5"`
	CostPerUnit        float64             `json:"cost_per_unit" binding:"gte=0" example:"1.2"`
	Supplier           string              `json:"supplier" example:"Local Dairy Co"`
	SKU                string              `json:"sku" example:"MLK-001"`
	WeatherSensitivity map[string][]string `json:"weather_sensitivity"`
}

// ToEntity 转换为库存商品实体
func (r *CreateInventoryItemRequest) ToEntity() (*entity.InventoryItem, error) {
	item := &entity.InventoryItem{
		ItemID:       r.ItemID,
		Name:         r.Name,
		Category:     r.Category,
		CurrentStock: r.CurrentStock,
		Unit:         r.Unit,
		ReorderPoint: r.ReorderPoint,
		DailyUsage:   r.DailyUsage,
		CostPerUnit:  r.CostPerUnit,
		Supplier:     r.Supplier,
		SKU:          r.SKU,
	}

	if r.WeatherSensitivity != nil {
		sensJSON, err := json.Marshal(r.WeatherSensitivity)
		if err != nil {
			return nil, err
		}
		item.WeatherSensitivity = sensJSON
	}

	return item, nil
}
