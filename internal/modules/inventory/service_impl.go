package inventory

import (
	"context"
	"fmt"
	"log"

	"github.com/autandojam/inventory-backend/internal/modules/activity"
	"github.com/autandojam/inventory-backend/internal/modules/user"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type service struct {
	repo     Repository
	txnRepo  TransactionRepository
	audit    activity.Service
	validate *validator.Validate
}

// NewService creates a new inventory service.
func NewService(repo Repository, txnRepo TransactionRepository, audit activity.Service) Service {
	return &service{
		repo:     repo,
		txnRepo:  txnRepo,
		audit:    audit,
		validate: validator.New(),
	}
}

func (s *service) GetItems(ctx context.Context, page, size int) (*ItemPage, error) {
	page, size = normalizePage(page, size)
	return s.repo.List(ctx, page, size)
}

func (s *service) SearchItems(ctx context.Context, query string, page, size int) (*ItemPage, error) {
	page, size = normalizePage(page, size)
	return s.repo.SearchByName(ctx, query, page, size)
}

func (s *service) GetItemsByCategory(ctx context.Context, categoryID string, page, size int) (*ItemPage, error) {
	cid, err := uuid.Parse(categoryID)
	if err != nil {
		return nil, fmt.Errorf("invalid category id: %w", err)
	}
	page, size = normalizePage(page, size)
	return s.repo.ListByCategory(ctx, cid, page, size)
}

func (s *service) GetItem(ctx context.Context, id string) (*Item, error) {
	iid, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrItemNotFound
	}
	return s.repo.GetByID(ctx, iid)
}

func (s *service) LowStockItems(ctx context.Context) ([]*Item, error) {
	return s.repo.LowStock(ctx)
}

func (s *service) ItemTransactions(ctx context.Context, itemID string, page, size int) (*TransactionPage, error) {
	iid, err := uuid.Parse(itemID)
	if err != nil {
		return nil, ErrItemNotFound
	}
	page, size = normalizePage(page, size)
	return s.txnRepo.ListByItem(ctx, iid, page, size)
}

func (s *service) CreateItem(ctx context.Context, req CreateItemRequest, actor *user.User, clientIP string) (*Item, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, err
	}
	if req.UnitPrice.IsNegative() {
		return nil, ErrInvalidPrice
	}

	reorderLevel := DefaultReorderLevel
	if req.ReorderLevel != nil {
		reorderLevel = *req.ReorderLevel
	}

	item := &Item{
		ID:           uuid.New(),
		Name:         req.Name,
		CategoryID:   uuid.MustParse(req.CategoryID),
		Quantity:     req.Quantity,
		UnitPrice:    req.UnitPrice,
		Description:  req.Description,
		Location:     req.Location,
		SKU:          req.SKU,
		ReorderLevel: reorderLevel,
		AddedBy:      actor.ID,
	}
	item.CalculateTotalValue()

	if err := s.repo.Create(ctx, item); err != nil {
		return nil, err
	}

	s.logActivity(ctx, actor, activity.ActionItemCreated, item.ID, "Created item: "+item.Name, clientIP)
	return s.reload(ctx, item)
}

func (s *service) UpdateItem(ctx context.Context, id string, req UpdateItemRequest, actor *user.User, clientIP string) (*Item, error) {
	iid, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrItemNotFound
	}
	if err := s.validate.Struct(req); err != nil {
		return nil, err
	}
	if req.UnitPrice.IsNegative() {
		return nil, ErrInvalidPrice
	}

	item, err := s.repo.GetByID(ctx, iid)
	if err != nil {
		return nil, err
	}

	item.Name = req.Name
	item.CategoryID = uuid.MustParse(req.CategoryID)
	item.Description = req.Description
	item.Location = req.Location
	item.SKU = req.SKU
	item.UnitPrice = req.UnitPrice
	item.ReorderLevel = req.ReorderLevel
	item.CalculateTotalValue()

	if err := s.repo.Update(ctx, item); err != nil {
		return nil, err
	}

	s.logActivity(ctx, actor, activity.ActionItemUpdated, item.ID, "Updated item: "+item.Name, clientIP)
	return s.reload(ctx, item)
}

func (s *service) DeleteItem(ctx context.Context, id string, actor *user.User, clientIP string) error {
	iid, err := uuid.Parse(id)
	if err != nil {
		return ErrItemNotFound
	}
	if err := s.repo.Delete(ctx, iid); err != nil {
		return err
	}
	s.logActivity(ctx, actor, activity.ActionItemDeleted, iid, "Deleted item", clientIP)
	return nil
}

func (s *service) AddStock(ctx context.Context, id string, quantity int, reference, notes string, actor *user.User, clientIP string) error {
	if quantity <= 0 {
		return ErrInvalidQuantity
	}
	return s.adjustStock(ctx, id, quantity, TransactionIn, activity.ActionStockAdded,
		fmt.Sprintf("Added %d units", quantity), reference, notes, actor, clientIP)
}

func (s *service) ReduceStock(ctx context.Context, id string, quantity int, reference, notes string, actor *user.User, clientIP string) error {
	if quantity <= 0 {
		return ErrInvalidQuantity
	}
	return s.adjustStock(ctx, id, -quantity, TransactionOut, activity.ActionStockReduced,
		fmt.Sprintf("Reduced %d units", quantity), reference, notes, actor, clientIP)
}

// adjustStock funnels both stock operations through one repository call so the
// quantity change, transaction record and audit entry commit together.
func (s *service) adjustStock(ctx context.Context, id string, delta int, txnType, action, description, reference, notes string, actor *user.User, clientIP string) error {
	iid, err := uuid.Parse(id)
	if err != nil {
		return ErrItemNotFound
	}

	change := delta
	if change < 0 {
		change = -change
	}
	txn := &StockTransaction{
		ID:              uuid.New(),
		ItemID:          iid,
		Type:            txnType,
		QuantityChange:  change,
		ReferenceNumber: reference,
		Notes:           notes,
		PerformedBy:     actor.ID,
	}
	entry := &activity.Entry{
		ID:          uuid.New(),
		UserID:      actor.ID,
		Action:      action,
		EntityType:  "InventoryItem",
		EntityID:    iid,
		Description: description,
		IPAddress:   clientIP,
	}

	_, err = s.repo.AdjustStock(ctx, iid, delta, txn, entry)
	return err
}

func (s *service) logActivity(ctx context.Context, actor *user.User, action string, entityID uuid.UUID, description, clientIP string) {
	if err := s.audit.Record(ctx, actor.ID, action, "InventoryItem", entityID, description, clientIP); err != nil {
		// The mutation already committed; surface the gap in the logs only.
		log.Printf("activity log write failed: %v", err)
	}
}

// reload fetches the item back with its joined category and user names.
func (s *service) reload(ctx context.Context, item *Item) (*Item, error) {
	fresh, err := s.repo.GetByID(ctx, item.ID)
	if err != nil {
		return item, nil
	}
	return fresh, nil
}

func normalizePage(page, size int) (int, int) {
	if page < 0 {
		page = 0
	}
	if size <= 0 {
		size = 10
	}
	return page, size
}
