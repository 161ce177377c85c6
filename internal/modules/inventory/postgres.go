package inventory

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/autandojam/inventory-backend/internal/modules/activity"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const itemColumns = `
	i.id, i.name, i.category_id, c.name, i.quantity, i.unit_price, i.total_value,
	i.description, i.location, i.sku, i.reorder_level, i.added_by, u.full_name,
	i.created_at, i.updated_at`

const itemFrom = `
	FROM inventory_items i
	JOIN categories c ON c.id = i.category_id
	JOIN users u ON u.id = i.added_by`

type postgresRepo struct{ db *sql.DB }

func NewPostgresRepository(db *sql.DB) Repository { return &postgresRepo{db: db} }

func (r *postgresRepo) Create(ctx context.Context, item *Item) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO inventory_items
		  (id, name, category_id, quantity, unit_price, total_value,
		   description, location, sku, reorder_level, added_by)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)`,
		item.ID, item.Name, item.CategoryID, item.Quantity, item.UnitPrice, item.TotalValue,
		item.Description, item.Location, item.SKU, item.ReorderLevel, item.AddedBy)
	return err
}

func scanItem(scan func(...interface{}) error) (*Item, error) {
	item := &Item{}
	err := scan(
		&item.ID, &item.Name, &item.CategoryID, &item.CategoryName,
		&item.Quantity, &item.UnitPrice, &item.TotalValue,
		&item.Description, &item.Location, &item.SKU, &item.ReorderLevel,
		&item.AddedBy, &item.AddedByName,
		&item.CreatedAt, &item.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrItemNotFound
	}
	if err != nil {
		return nil, err
	}
	return item, nil
}

func (r *postgresRepo) GetByID(ctx context.Context, id uuid.UUID) (*Item, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+itemColumns+itemFrom+` WHERE i.id = $1`, id)
	return scanItem(row.Scan)
}

func (r *postgresRepo) Update(ctx context.Context, item *Item) error {
	result, err := r.db.ExecContext(ctx, `
		UPDATE inventory_items
		SET name=$1, category_id=$2, description=$3, location=$4, sku=$5,
		    unit_price=$6, total_value=$7, reorder_level=$8, updated_at=NOW()
		WHERE id=$9`,
		item.Name, item.CategoryID, item.Description, item.Location, item.SKU,
		item.UnitPrice, item.TotalValue, item.ReorderLevel, item.ID)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return ErrItemNotFound
	}
	return nil
}

func (r *postgresRepo) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM inventory_items WHERE id = $1`, id)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return ErrItemNotFound
	}
	return nil
}

func (r *postgresRepo) List(ctx context.Context, page, size int) (*ItemPage, error) {
	return r.listPage(ctx, ``, nil, page, size)
}

func (r *postgresRepo) SearchByName(ctx context.Context, query string, page, size int) (*ItemPage, error) {
	return r.listPage(ctx, `WHERE i.name ILIKE '%' || $1 || '%'`, query, page, size)
}

func (r *postgresRepo) ListByCategory(ctx context.Context, categoryID uuid.UUID, page, size int) (*ItemPage, error) {
	return r.listPage(ctx, `WHERE i.category_id = $1`, categoryID, page, size)
}

func (r *postgresRepo) listPage(ctx context.Context, where string, arg interface{}, page, size int) (*ItemPage, error) {
	countArgs := []interface{}{}
	listArgs := []interface{}{}
	limitPos := 1
	if arg != nil {
		countArgs = append(countArgs, arg)
		listArgs = append(listArgs, arg)
		limitPos = 2
	}

	var total int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM inventory_items i `+where, countArgs...).Scan(&total)
	if err != nil {
		return nil, err
	}

	listArgs = append(listArgs, size, page*size)
	rows, err := r.db.QueryContext(ctx, fmt.Sprintf(
		`SELECT %s %s %s ORDER BY i.created_at, i.id LIMIT $%d OFFSET $%d`,
		itemColumns, itemFrom, where, limitPos, limitPos+1), listArgs...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []*Item{}
	for rows.Next() {
		item, err := scanItem(rows.Scan)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &ItemPage{
		Content:       items,
		Page:          page,
		Size:          size,
		TotalElements: total,
		TotalPages:    (total + size - 1) / size,
	}, nil
}

func (r *postgresRepo) LowStock(ctx context.Context) ([]*Item, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+itemColumns+itemFrom+` WHERE i.quantity <= i.reorder_level ORDER BY i.quantity`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []*Item{}
	for rows.Next() {
		item, err := scanItem(rows.Scan)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// AdjustStock applies one stock change as a single transaction. The item row
// is locked with SELECT ... FOR UPDATE so concurrent adjustments against the
// same item serialize, and the sufficiency check runs under that lock.
func (r *postgresRepo) AdjustStock(ctx context.Context, itemID uuid.UUID, delta int, txn *StockTransaction, entry *activity.Entry) (*Item, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var quantity int
	var unitPrice decimal.Decimal
	err = tx.QueryRowContext(ctx,
		`SELECT quantity, unit_price FROM inventory_items WHERE id = $1 FOR UPDATE`,
		itemID).Scan(&quantity, &unitPrice)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrItemNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("lock item: %w", err)
	}

	newQuantity := quantity + delta
	if newQuantity < 0 {
		return nil, ErrInsufficientStock
	}
	totalValue := unitPrice.Mul(decimal.NewFromInt(int64(newQuantity)))

	_, err = tx.ExecContext(ctx, `
		UPDATE inventory_items
		SET quantity=$1, total_value=$2, updated_at=NOW()
		WHERE id=$3`,
		newQuantity, totalValue, itemID)
	if err != nil {
		return nil, fmt.Errorf("update item: %w", err)
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO stock_transactions
		  (id, item_id, transaction_type, quantity_change, reference_number, notes, performed_by)
		VALUES ($1,$2,$3,$4,$5,$6,$7)`,
		txn.ID, txn.ItemID, txn.Type, txn.QuantityChange, txn.ReferenceNumber, txn.Notes, txn.PerformedBy)
	if err != nil {
		return nil, fmt.Errorf("insert transaction: %w", err)
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO activity_logs (id, user_id, action, entity_type, entity_id, description, ip_address)
		VALUES ($1,$2,$3,$4,$5,$6,$7)`,
		entry.ID, entry.UserID, entry.Action, entry.EntityType, entry.EntityID, entry.Description, entry.IPAddress)
	if err != nil {
		return nil, fmt.Errorf("insert activity: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}

	return r.GetByID(ctx, itemID)
}

type txnPostgresRepo struct{ db *sql.DB }

func NewTransactionPostgresRepository(db *sql.DB) TransactionRepository {
	return &txnPostgresRepo{db: db}
}

func (r *txnPostgresRepo) ListByItem(ctx context.Context, itemID uuid.UUID, page, size int) (*TransactionPage, error) {
	var total int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM stock_transactions WHERE item_id = $1`, itemID).Scan(&total)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, item_id, transaction_type, quantity_change, reference_number, notes, performed_by, created_at
		FROM stock_transactions
		WHERE item_id = $1
		ORDER BY created_at DESC, id
		LIMIT $2 OFFSET $3`,
		itemID, size, page*size)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	txns := []*StockTransaction{}
	for rows.Next() {
		t := &StockTransaction{}
		if err := rows.Scan(&t.ID, &t.ItemID, &t.Type, &t.QuantityChange,
			&t.ReferenceNumber, &t.Notes, &t.PerformedBy, &t.CreatedAt); err != nil {
			return nil, err
		}
		txns = append(txns, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &TransactionPage{
		Content:       txns,
		Page:          page,
		Size:          size,
		TotalElements: total,
		TotalPages:    (total + size - 1) / size,
	}, nil
}
