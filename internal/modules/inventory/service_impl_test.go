package inventory

import (
	"context"
	"sync"
	"testing"

	"github.com/autandojam/inventory-backend/internal/modules/activity"
	"github.com/autandojam/inventory-backend/internal/modules/user"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Mock item repository backed by a map, AdjustStock mirrors the storage
// layer's all-or-nothing contract.
type mockRepo struct {
	mu    sync.Mutex
	items map[uuid.UUID]*Item
	txns  []*StockTransaction
	logs  []*activity.Entry
}

func newMockRepo() *mockRepo {
	return &mockRepo{items: map[uuid.UUID]*Item{}}
}

func (m *mockRepo) Create(ctx context.Context, item *Item) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	copied := *item
	m.items[item.ID] = &copied
	return nil
}

func (m *mockRepo) GetByID(ctx context.Context, id uuid.UUID) (*Item, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	item, ok := m.items[id]
	if !ok {
		return nil, ErrItemNotFound
	}
	copied := *item
	return &copied, nil
}

func (m *mockRepo) Update(ctx context.Context, item *Item) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.items[item.ID]; !ok {
		return ErrItemNotFound
	}
	copied := *item
	m.items[item.ID] = &copied
	return nil
}

func (m *mockRepo) Delete(ctx context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.items[id]; !ok {
		return ErrItemNotFound
	}
	delete(m.items, id)
	return nil
}

func (m *mockRepo) List(ctx context.Context, page, size int) (*ItemPage, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	items := []*Item{}
	for _, item := range m.items {
		copied := *item
		items = append(items, &copied)
	}
	return &ItemPage{Content: items, Page: page, Size: size, TotalElements: len(items)}, nil
}

func (m *mockRepo) SearchByName(ctx context.Context, query string, page, size int) (*ItemPage, error) {
	return m.List(ctx, page, size)
}

func (m *mockRepo) ListByCategory(ctx context.Context, categoryID uuid.UUID, page, size int) (*ItemPage, error) {
	return m.List(ctx, page, size)
}

func (m *mockRepo) LowStock(ctx context.Context) ([]*Item, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	items := []*Item{}
	for _, item := range m.items {
		if item.IsLowStock() {
			copied := *item
			items = append(items, &copied)
		}
	}
	return items, nil
}

func (m *mockRepo) AdjustStock(ctx context.Context, itemID uuid.UUID, delta int, txn *StockTransaction, entry *activity.Entry) (*Item, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	item, ok := m.items[itemID]
	if !ok {
		return nil, ErrItemNotFound
	}
	if item.Quantity+delta < 0 {
		return nil, ErrInsufficientStock
	}
	item.Quantity += delta
	item.CalculateTotalValue()
	m.txns = append(m.txns, txn)
	m.logs = append(m.logs, entry)
	copied := *item
	return &copied, nil
}

type mockTxnRepo struct{ repo *mockRepo }

// ListByItem returns newest first, matching the repository contract.
func (m *mockTxnRepo) ListByItem(ctx context.Context, itemID uuid.UUID, page, size int) (*TransactionPage, error) {
	txns := []*StockTransaction{}
	for i := len(m.repo.txns) - 1; i >= 0; i-- {
		if m.repo.txns[i].ItemID == itemID {
			txns = append(txns, m.repo.txns[i])
		}
	}
	return &TransactionPage{Content: txns, Page: page, Size: size, TotalElements: len(txns)}, nil
}

type mockAudit struct {
	mu      sync.Mutex
	entries []*activity.Entry
}

func (m *mockAudit) Record(ctx context.Context, userID uuid.UUID, action, entityType string, entityID uuid.UUID, description, ipAddress string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = append(m.entries, &activity.Entry{
		UserID: userID, Action: action, EntityType: entityType,
		EntityID: entityID, Description: description, IPAddress: ipAddress,
	})
	return nil
}

func (m *mockAudit) ListByUser(ctx context.Context, userID string, page, size int) (*activity.Page, error) {
	return nil, nil
}

func (m *mockAudit) ListByAction(ctx context.Context, action string, page, size int) (*activity.Page, error) {
	return nil, nil
}

func testFixture() (Service, *mockRepo, *mockAudit, *user.User) {
	repo := newMockRepo()
	audit := &mockAudit{}
	svc := NewService(repo, &mockTxnRepo{repo: repo}, audit)
	actor := &user.User{ID: uuid.New(), Username: "clerk", Role: user.RoleStaff, IsActive: true}
	return svc, repo, audit, actor
}

func createRequest() CreateItemRequest {
	return CreateItemRequest{
		Name:       "Widget",
		CategoryID: uuid.New().String(),
		Quantity:   10,
		UnitPrice:  decimal.NewFromFloat(2.50),
	}
}

func TestCreateItem_ComputesTotalValue(t *testing.T) {
	svc, _, audit, actor := testFixture()

	item, err := svc.CreateItem(context.Background(), createRequest(), actor, "127.0.0.1")
	require.NoError(t, err)

	assert.True(t, item.TotalValue.Equal(decimal.NewFromFloat(25.0)),
		"total value should be quantity x unit price, got %s", item.TotalValue)
	assert.Equal(t, DefaultReorderLevel, item.ReorderLevel)
	require.Len(t, audit.entries, 1)
	assert.Equal(t, activity.ActionItemCreated, audit.entries[0].Action)
	assert.Equal(t, item.ID, audit.entries[0].EntityID)
}

func TestCreateItem_RejectsNegativeQuantity(t *testing.T) {
	svc, repo, _, actor := testFixture()

	req := createRequest()
	req.Quantity = -1
	_, err := svc.CreateItem(context.Background(), req, actor, "")
	assert.Error(t, err)
	assert.Empty(t, repo.items)
}

func TestCreateItem_RejectsEmptyName(t *testing.T) {
	svc, repo, _, actor := testFixture()

	req := createRequest()
	req.Name = ""
	_, err := svc.CreateItem(context.Background(), req, actor, "")
	assert.Error(t, err)
	assert.Empty(t, repo.items)
}

func TestCreateItem_RejectsNegativePrice(t *testing.T) {
	svc, _, _, actor := testFixture()

	req := createRequest()
	req.UnitPrice = decimal.NewFromInt(-3)
	_, err := svc.CreateItem(context.Background(), req, actor, "")
	assert.ErrorIs(t, err, ErrInvalidPrice)
}

func TestUpdateItem_RecomputesTotalValue(t *testing.T) {
	svc, _, audit, actor := testFixture()

	item, err := svc.CreateItem(context.Background(), createRequest(), actor, "")
	require.NoError(t, err)

	updated, err := svc.UpdateItem(context.Background(), item.ID.String(), UpdateItemRequest{
		Name:         "Widget v2",
		CategoryID:   item.CategoryID.String(),
		UnitPrice:    decimal.NewFromInt(4),
		ReorderLevel: 2,
	}, actor, "")
	require.NoError(t, err)

	assert.Equal(t, 10, updated.Quantity, "update must not touch quantity")
	assert.True(t, updated.TotalValue.Equal(decimal.NewFromInt(40)))
	require.Len(t, audit.entries, 2)
	assert.Equal(t, activity.ActionItemUpdated, audit.entries[1].Action)
}

func TestUpdateItem_NotFound(t *testing.T) {
	svc, _, _, actor := testFixture()

	_, err := svc.UpdateItem(context.Background(), uuid.New().String(), UpdateItemRequest{
		Name:       "ghost",
		CategoryID: uuid.New().String(),
	}, actor, "")
	assert.ErrorIs(t, err, ErrItemNotFound)
}

func TestDeleteItem_NotFound(t *testing.T) {
	svc, _, audit, actor := testFixture()

	err := svc.DeleteItem(context.Background(), uuid.New().String(), actor, "")
	assert.ErrorIs(t, err, ErrItemNotFound)
	assert.Empty(t, audit.entries, "failed delete must not be audited")
}

func TestDeleteItem_RecordsActivity(t *testing.T) {
	svc, repo, audit, actor := testFixture()

	item, err := svc.CreateItem(context.Background(), createRequest(), actor, "")
	require.NoError(t, err)

	require.NoError(t, svc.DeleteItem(context.Background(), item.ID.String(), actor, ""))
	assert.Empty(t, repo.items)
	require.Len(t, audit.entries, 2)
	assert.Equal(t, activity.ActionItemDeleted, audit.entries[1].Action)
	assert.Equal(t, item.ID, audit.entries[1].EntityID)
}

func TestAddStock_UpdatesQuantityAndTotalValue(t *testing.T) {
	svc, repo, _, actor := testFixture()

	item, err := svc.CreateItem(context.Background(), createRequest(), actor, "")
	require.NoError(t, err)

	require.NoError(t, svc.AddStock(context.Background(), item.ID.String(), 5, "PO-1", "", actor, ""))

	got, err := svc.GetItem(context.Background(), item.ID.String())
	require.NoError(t, err)
	assert.Equal(t, 15, got.Quantity)
	assert.True(t, got.TotalValue.Equal(decimal.NewFromFloat(37.5)))

	require.Len(t, repo.txns, 1)
	assert.Equal(t, TransactionIn, repo.txns[0].Type)
	assert.Equal(t, 5, repo.txns[0].QuantityChange)
	assert.Equal(t, "PO-1", repo.txns[0].ReferenceNumber)
	require.Len(t, repo.logs, 1)
	assert.Equal(t, activity.ActionStockAdded, repo.logs[0].Action)
	assert.Equal(t, item.ID, repo.logs[0].EntityID)
}

func TestAddStock_RejectsNonPositiveQuantity(t *testing.T) {
	svc, repo, _, actor := testFixture()

	item, err := svc.CreateItem(context.Background(), createRequest(), actor, "")
	require.NoError(t, err)

	assert.ErrorIs(t, svc.AddStock(context.Background(), item.ID.String(), 0, "", "", actor, ""), ErrInvalidQuantity)
	assert.ErrorIs(t, svc.AddStock(context.Background(), item.ID.String(), -2, "", "", actor, ""), ErrInvalidQuantity)
	assert.Empty(t, repo.txns)
}

func TestAddStock_ItemNotFound(t *testing.T) {
	svc, _, _, actor := testFixture()

	err := svc.AddStock(context.Background(), uuid.New().String(), 3, "", "", actor, "")
	assert.ErrorIs(t, err, ErrItemNotFound)
}

func TestReduceStock_InsufficientLeavesQuantityUnchanged(t *testing.T) {
	svc, repo, _, actor := testFixture()

	req := createRequest()
	req.Quantity = 5
	item, err := svc.CreateItem(context.Background(), req, actor, "")
	require.NoError(t, err)

	err = svc.ReduceStock(context.Background(), item.ID.String(), 10, "", "", actor, "")
	assert.ErrorIs(t, err, ErrInsufficientStock)

	got, err := svc.GetItem(context.Background(), item.ID.String())
	require.NoError(t, err)
	assert.Equal(t, 5, got.Quantity)
	assert.Empty(t, repo.txns, "rejected reduction must not record a transaction")
	assert.Empty(t, repo.logs)
}

func TestAddThenReduce_RestoresQuantity(t *testing.T) {
	svc, repo, _, actor := testFixture()

	item, err := svc.CreateItem(context.Background(), createRequest(), actor, "")
	require.NoError(t, err)

	require.NoError(t, svc.AddStock(context.Background(), item.ID.String(), 7, "", "", actor, ""))
	require.NoError(t, svc.ReduceStock(context.Background(), item.ID.String(), 7, "", "", actor, ""))

	got, err := svc.GetItem(context.Background(), item.ID.String())
	require.NoError(t, err)
	assert.Equal(t, 10, got.Quantity)

	require.Len(t, repo.txns, 2)
	assert.Equal(t, TransactionIn, repo.txns[0].Type)
	assert.Equal(t, TransactionOut, repo.txns[1].Type)
	assert.Equal(t, repo.txns[0].QuantityChange, repo.txns[1].QuantityChange)
}

func TestLowStock_DefaultReorderLevel(t *testing.T) {
	svc, _, _, actor := testFixture()

	req := createRequest()
	req.Quantity = 3
	item, err := svc.CreateItem(context.Background(), req, actor, "")
	require.NoError(t, err)

	low, err := svc.LowStockItems(context.Background())
	require.NoError(t, err)
	require.Len(t, low, 1)
	assert.Equal(t, item.ID, low[0].ID)
}

func TestLowStock_ExactSet(t *testing.T) {
	svc, _, _, actor := testFixture()

	reorder := 5
	reqA := createRequest()
	reqA.Name = "A"
	reqA.Quantity = 2
	reqA.ReorderLevel = &reorder
	a, err := svc.CreateItem(context.Background(), reqA, actor, "")
	require.NoError(t, err)

	reqB := createRequest()
	reqB.Name = "B"
	reqB.Quantity = 10
	reqB.ReorderLevel = &reorder
	_, err = svc.CreateItem(context.Background(), reqB, actor, "")
	require.NoError(t, err)

	low, err := svc.LowStockItems(context.Background())
	require.NoError(t, err)
	require.Len(t, low, 1)
	assert.Equal(t, a.ID, low[0].ID)
}

func TestItemTransactions_ListsByItem(t *testing.T) {
	svc, _, _, actor := testFixture()

	item, err := svc.CreateItem(context.Background(), createRequest(), actor, "")
	require.NoError(t, err)
	require.NoError(t, svc.AddStock(context.Background(), item.ID.String(), 1, "", "", actor, ""))

	page, err := svc.ItemTransactions(context.Background(), item.ID.String(), 0, 10)
	require.NoError(t, err)
	require.Len(t, page.Content, 1)
	assert.Equal(t, item.ID, page.Content[0].ItemID)
}

func TestItemTransactions_NewestFirst(t *testing.T) {
	svc, _, _, actor := testFixture()

	item, err := svc.CreateItem(context.Background(), createRequest(), actor, "")
	require.NoError(t, err)
	require.NoError(t, svc.AddStock(context.Background(), item.ID.String(), 4, "", "", actor, ""))
	require.NoError(t, svc.ReduceStock(context.Background(), item.ID.String(), 2, "", "", actor, ""))

	page, err := svc.ItemTransactions(context.Background(), item.ID.String(), 0, 10)
	require.NoError(t, err)
	require.Len(t, page.Content, 2)
	assert.Equal(t, TransactionOut, page.Content[0].Type, "most recent transaction must come first")
	assert.Equal(t, TransactionIn, page.Content[1].Type)
}
