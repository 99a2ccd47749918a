package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"gtm_portal/logger"
	"gtm_portal/models"
)

// MySQLProvider 从 catalog_items 表读取条目。
// facets/metrics/attrs 以JSON列存储，published_at 为DATE。
type MySQLProvider struct {
	db *sql.DB
}

func NewMySQLProvider(db *sql.DB) *MySQLProvider {
	return &MySQLProvider{db: db}
}

const listItemsQuery = `
	SELECT id, title, summary, facets, metrics, attrs, DATE_FORMAT(published_at, '%Y-%m-%d')
	FROM catalog_items
	WHERE kind = ? AND deleted = 0
	ORDER BY published_at DESC, id`

func (p *MySQLProvider) ListItems(ctx context.Context, kind models.Kind) ([]models.CatalogItem, error) {
	if _, err := models.ParseKind(string(kind)); err != nil {
		return nil, err
	}

	rows, err := p.db.QueryContext(ctx, listItemsQuery, string(kind))
	if err != nil {
		return nil, fmt.Errorf("query catalog items: %w", err)
	}
	defer rows.Close()

	items := make([]models.CatalogItem, 0)
	for rows.Next() {
		var it models.CatalogItem
		var facetsRaw, metricsRaw, attrs, date sql.NullString
		if err := rows.Scan(&it.ID, &it.Title, &it.Summary, &facetsRaw, &metricsRaw, &attrs, &date); err != nil {
			return nil, fmt.Errorf("scan catalog item: %w", err)
		}
		it.Kind = kind
		it.Date = date.String

		// 单条JSON损坏不影响整页，只记录日志
		if err := decodeJSONColumn(facetsRaw, &it.Facets); err != nil {
			logger.Warn("解析facets失败", "kind", kind, "id", it.ID, "error", err)
		}
		if err := decodeJSONColumn(metricsRaw, &it.Metrics); err != nil {
			logger.Warn("解析metrics失败", "kind", kind, "id", it.ID, "error", err)
		}
		if err := decodeJSONColumn(attrs, &it.Attrs); err != nil {
			logger.Warn("解析attrs失败", "kind", kind, "id", it.ID, "error", err)
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate catalog items: %w", err)
	}

	logger.Debug("从MySQL加载条目", "kind", kind, "count", len(items))
	return items, nil
}

func decodeJSONColumn(col sql.NullString, dst any) error {
	if !col.Valid || col.String == "" {
		return nil
	}
	return json.Unmarshal([]byte(col.String), dst)
}
