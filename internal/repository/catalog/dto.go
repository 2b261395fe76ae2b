package catalog

import (
	"database/sql"
	"fmt"

	"github.com/pgvector/pgvector-go"

	domcat "github.com/sahityapandiri3/omnishop-search/internal/domain/catalog"
)

var itemFields = []string{
	"id",
	"name",
	"description",
	"brand",
	"source",
	"price",
	"category_id",
	"product_type",
	"seating_capacity",
	"style",
	"secondary_style",
	"material",
	"color",
	"available",
	"embedding",
}

// itemRow mirrors a catalog_items row; most attribute columns are nullable.
type itemRow struct {
	id              int64
	name            string
	description     sql.NullString
	brand           sql.NullString
	source          sql.NullString
	price           float64
	categoryID      sql.NullInt64
	productType     sql.NullString
	seatingCapacity sql.NullInt64
	style           sql.NullString
	secondaryStyle  sql.NullString
	material        sql.NullString
	color           sql.NullString
	available       bool
	embedding       nullVector
}

func (r *itemRow) scanFields() []any {
	return []any{
		&r.id,
		&r.name,
		&r.description,
		&r.brand,
		&r.source,
		&r.price,
		&r.categoryID,
		&r.productType,
		&r.seatingCapacity,
		&r.style,
		&r.secondaryStyle,
		&r.material,
		&r.color,
		&r.available,
		&r.embedding,
	}
}

func (r *itemRow) toDomain() domcat.Item {
	return domcat.Item{
		ID:              r.id,
		Name:            r.name,
		Description:     r.description.String,
		Brand:           r.brand.String,
		Source:          r.source.String,
		Price:           r.price,
		CategoryID:      r.categoryID.Int64,
		ProductType:     r.productType.String,
		SeatingCapacity: int(r.seatingCapacity.Int64),
		Style:           r.style.String,
		SecondaryStyle:  r.secondaryStyle.String,
		Material:        r.material.String,
		Color:           r.color.String,
		Available:       r.available,
		Embedding:       r.embedding.slice(),
	}
}

func scanItems(rows *sql.Rows) ([]domcat.Item, error) {
	var items []domcat.Item
	for rows.Next() {
		var row itemRow
		if err := rows.Scan(row.scanFields()...); err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		items = append(items, row.toDomain())
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate items: %w", err)
	}
	return items, nil
}

// nullVector scans a nullable pgvector column.
type nullVector struct {
	vec   pgvector.Vector
	valid bool
}

func (v *nullVector) Scan(src any) error {
	if src == nil {
		v.valid = false
		return nil
	}
	if err := v.vec.Scan(src); err != nil {
		return err
	}
	v.valid = true
	return nil
}

func (v *nullVector) slice() []float32 {
	if !v.valid {
		return nil
	}
	return v.vec.Slice()
}
