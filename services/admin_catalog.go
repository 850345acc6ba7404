package services

import (
	"context"

	"gift-shop/models"
)

// AdminSession identifies the authenticated admin driving the editor. It is
// populated from the verified session token, never from package-level state.
type AdminSession struct {
	Subject string
}

// AdminCatalogManager orchestrates product create/edit/delete for the admin
// panel. It tracks which record, if any, is currently being edited and routes
// SubmitDraft to create or update accordingly. On failure the draft stays
// open so the entered values are not lost.
type AdminCatalogManager struct {
	session   AdminSession
	catalog   *CatalogService
	editingID string
	draftOpen bool
}

func NewAdminCatalogManager(session AdminSession, catalog *CatalogService) *AdminCatalogManager {
	return &AdminCatalogManager{session: session, catalog: catalog}
}

// BeginCreate discards any in-progress edit target and opens an empty draft.
func (m *AdminCatalogManager) BeginCreate() {
	m.editingID = ""
	m.draftOpen = true
}

// BeginEdit loads the product into the draft. A concurrently deleted id
// surfaces as ErrNotFound and leaves the editor idle.
func (m *AdminCatalogManager) BeginEdit(ctx context.Context, productID string) (*models.Product, error) {
	product, err := m.catalog.Get(ctx, productID)
	if err != nil {
		return nil, err
	}
	m.editingID = productID
	m.draftOpen = true
	return product, nil
}

// Editing reports the current edit target, empty when a create draft is open.
func (m *AdminCatalogManager) Editing() (string, bool) {
	return m.editingID, m.draftOpen
}

// SubmitDraft routes to create or update depending on the edit target and
// closes the draft on success.
func (m *AdminCatalogManager) SubmitDraft(ctx context.Context, draft models.ProductDraft) (*models.Product, error) {
	if !m.draftOpen {
		return nil, models.NewValidationError("No draft in progress")
	}

	var product *models.Product
	var err error
	if m.editingID == "" {
		product, err = m.catalog.Create(ctx, draft)
	} else {
		product, err = m.catalog.Update(ctx, m.editingID, draft)
	}
	if err != nil {
		return nil, err
	}

	m.editingID = ""
	m.draftOpen = false
	return product, nil
}

// Remove deletes a product. Confirmation happens at the UI boundary before
// this is invoked.
func (m *AdminCatalogManager) Remove(ctx context.Context, productID string) error {
	return m.catalog.Delete(ctx, productID)
}
