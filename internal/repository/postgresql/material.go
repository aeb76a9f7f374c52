package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/gestionobras/obras-backend-go/internal/domain/material"
	"github.com/gestionobras/obras-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type materialRepositoryImpl struct {
	db *database.DB
}

func NewMaterialRepository(db *database.DB) material.MaterialRepository {
	return &materialRepositoryImpl{db: db}
}

const materialColumns = `m.id, m.code, m.name, m.description, m.category_id, m.quantity,
	   m.unit, m.unit_price, m.minimum_stock, m.location, m.supplier_id, m.active,
	   m.created_at, m.updated_at, c.name AS category_name, s.name AS supplier_name`

const materialJoins = `
	FROM materials m
	JOIN material_categories c ON m.category_id = c.id
	LEFT JOIN suppliers s ON m.supplier_id = s.id`

func scanMaterial(row pgx.Row) (material.Material, error) {
	var m material.Material
	err := row.Scan(
		&m.ID,
		&m.Code,
		&m.Name,
		&m.Description,
		&m.CategoryID,
		&m.Quantity,
		&m.Unit,
		&m.UnitPrice,
		&m.MinimumStock,
		&m.Location,
		&m.SupplierID,
		&m.Active,
		&m.CreatedAt,
		&m.UpdatedAt,
		&m.CategoryName,
		&m.SupplierName,
	)
	return m, err
}

// Create implements material.MaterialRepository.
func (r *materialRepositoryImpl) Create(ctx context.Context, m material.Material) (material.Material, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO materials (
			code, name, description, category_id, quantity, unit, unit_price,
			minimum_stock, location, supplier_id, active
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id
	`

	var id string
	err := q.QueryRow(ctx, query,
		m.Code, m.Name, m.Description, m.CategoryID, m.Quantity, m.Unit, m.UnitPrice,
		m.MinimumStock, m.Location, m.SupplierID, m.Active,
	).Scan(&id)
	if err != nil {
		if strings.Contains(err.Error(), "uk_materials_code") {
			return material.Material{}, material.ErrCodeExists
		}
		return material.Material{}, fmt.Errorf("failed to insert material: %w", err)
	}

	return r.GetByID(ctx, id)
}

// GetByID implements material.MaterialRepository.
func (r *materialRepositoryImpl) GetByID(ctx context.Context, id string) (material.Material, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + materialColumns + materialJoins + ` WHERE m.id = $1`

	m, err := scanMaterial(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return material.Material{}, material.ErrMaterialNotFound
		}
		return material.Material{}, err
	}
	return m, nil
}

// GetByCode implements material.MaterialRepository.
func (r *materialRepositoryImpl) GetByCode(ctx context.Context, code string) (material.Material, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + materialColumns + materialJoins + ` WHERE m.code = $1`

	m, err := scanMaterial(q.QueryRow(ctx, query, code))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return material.Material{}, material.ErrMaterialNotFound
		}
		return material.Material{}, err
	}
	return m, nil
}

// List implements material.MaterialRepository.
func (r *materialRepositoryImpl) List(ctx context.Context, filter material.Filter) ([]material.Material, int64, error) {
	q := GetQuerier(ctx, r.db)

	baseQuery := materialJoins + ` WHERE 1=1`
	args := []interface{}{}
	argIdx := 1

	if filter.CategoryID != nil {
		baseQuery += fmt.Sprintf(" AND m.category_id = $%d", argIdx)
		args = append(args, *filter.CategoryID)
		argIdx++
	}
	if filter.SupplierID != nil {
		baseQuery += fmt.Sprintf(" AND m.supplier_id = $%d", argIdx)
		args = append(args, *filter.SupplierID)
		argIdx++
	}
	if filter.Search != nil {
		baseQuery += fmt.Sprintf(" AND (m.name ILIKE $%d OR m.code ILIKE $%d)", argIdx, argIdx)
		args = append(args, "%"+*filter.Search+"%")
		argIdx++
	}
	if filter.LowStock != nil && *filter.LowStock {
		baseQuery += ` AND m.quantity <= m.minimum_stock`
	}
	if filter.Active != nil {
		baseQuery += fmt.Sprintf(" AND m.active = $%d", argIdx)
		args = append(args, *filter.Active)
		argIdx++
	}

	var totalCount int64
	if err := q.QueryRow(ctx, "SELECT COUNT(*) "+baseQuery, args...).Scan(&totalCount); err != nil {
		return nil, 0, fmt.Errorf("failed to count materials: %w", err)
	}

	offset := (filter.Page - 1) * filter.PageSize
	selectQuery := fmt.Sprintf(`SELECT %s %s ORDER BY m.code LIMIT $%d OFFSET $%d`,
		materialColumns, baseQuery, argIdx, argIdx+1)
	args = append(args, filter.PageSize, offset)

	rows, err := q.Query(ctx, selectQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list materials: %w", err)
	}
	defer rows.Close()

	var materials []material.Material
	for rows.Next() {
		m, err := scanMaterial(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan material: %w", err)
		}
		materials = append(materials, m)
	}

	return materials, totalCount, rows.Err()
}

// ListLowStock implements material.MaterialRepository.
func (r *materialRepositoryImpl) ListLowStock(ctx context.Context) ([]material.Material, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + materialColumns + materialJoins + `
		WHERE m.active = TRUE AND m.quantity <= m.minimum_stock
		ORDER BY m.quantity / NULLIF(m.minimum_stock, 0) NULLS FIRST`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list low stock materials: %w", err)
	}
	defer rows.Close()

	var materials []material.Material
	for rows.Next() {
		m, err := scanMaterial(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan material: %w", err)
		}
		materials = append(materials, m)
	}

	return materials, rows.Err()
}

// Update implements material.MaterialRepository.
func (r *materialRepositoryImpl) Update(ctx context.Context, m material.Material) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE materials
		SET name = $1, description = $2, category_id = $3, quantity = $4, unit = $5,
		    unit_price = $6, minimum_stock = $7, location = $8, supplier_id = $9,
		    active = $10, updated_at = NOW()
		WHERE id = $11
	`

	tag, err := q.Exec(ctx, query,
		m.Name, m.Description, m.CategoryID, m.Quantity, m.Unit,
		m.UnitPrice, m.MinimumStock, m.Location, m.SupplierID, m.Active, m.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update material: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return material.ErrMaterialNotFound
	}
	return nil
}

// Delete implements material.MaterialRepository.
func (r *materialRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM materials WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete material: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return material.ErrMaterialNotFound
	}
	return nil
}

// CreateCategory implements material.MaterialRepository.
func (r *materialRepositoryImpl) CreateCategory(ctx context.Context, c material.Category) (material.Category, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO material_categories (code, name, description, display_order, active)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, code, name, description, display_order, active, created_at, updated_at
	`

	var created material.Category
	err := q.QueryRow(ctx, query, c.Code, c.Name, c.Description, c.DisplayOrder, c.Active).Scan(
		&created.ID, &created.Code, &created.Name, &created.Description,
		&created.DisplayOrder, &created.Active, &created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		return material.Category{}, fmt.Errorf("failed to insert material category: %w", err)
	}
	return created, nil
}

// GetCategoryByID implements material.MaterialRepository.
func (r *materialRepositoryImpl) GetCategoryByID(ctx context.Context, id string) (material.Category, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, code, name, description, display_order, active, created_at, updated_at
		FROM material_categories
		WHERE id = $1
	`

	var c material.Category
	err := q.QueryRow(ctx, query, id).Scan(
		&c.ID, &c.Code, &c.Name, &c.Description,
		&c.DisplayOrder, &c.Active, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return material.Category{}, material.ErrCategoryNotFound
		}
		return material.Category{}, err
	}
	return c, nil
}

// ListCategories implements material.MaterialRepository.
func (r *materialRepositoryImpl) ListCategories(ctx context.Context) ([]material.Category, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, code, name, description, display_order, active, created_at, updated_at
		FROM material_categories
		ORDER BY display_order, name
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list material categories: %w", err)
	}
	defer rows.Close()

	var categories []material.Category
	for rows.Next() {
		var c material.Category
		if err := rows.Scan(
			&c.ID, &c.Code, &c.Name, &c.Description,
			&c.DisplayOrder, &c.Active, &c.CreatedAt, &c.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan material category: %w", err)
		}
		categories = append(categories, c)
	}

	return categories, rows.Err()
}

// UpdateCategory implements material.MaterialRepository.
func (r *materialRepositoryImpl) UpdateCategory(ctx context.Context, c material.Category) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE material_categories
		SET name = $1, description = $2, display_order = $3, active = $4, updated_at = NOW()
		WHERE id = $5
	`

	tag, err := q.Exec(ctx, query, c.Name, c.Description, c.DisplayOrder, c.Active, c.ID)
	if err != nil {
		return fmt.Errorf("failed to update material category: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return material.ErrCategoryNotFound
	}
	return nil
}

// NextCategorySequence implements material.MaterialRepository.
func (r *materialRepositoryImpl) NextCategorySequence(ctx context.Context) (int, error) {
	q := GetQuerier(ctx, r.db)

	var seq int
	err := q.QueryRow(ctx, `SELECT nextval('material_category_code_seq')`).Scan(&seq)
	if err != nil {
		return 0, fmt.Errorf("failed to advance category code sequence: %w", err)
	}
	return seq, nil
}

// CreateSupplier implements material.MaterialRepository.
func (r *materialRepositoryImpl) CreateSupplier(ctx context.Context, s material.Supplier) (material.Supplier, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO suppliers (name, contact_name, phone, email, address, active)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, name, contact_name, phone, email, address, active, created_at, updated_at
	`

	var created material.Supplier
	err := q.QueryRow(ctx, query, s.Name, s.ContactName, s.Phone, s.Email, s.Address, s.Active).Scan(
		&created.ID, &created.Name, &created.ContactName, &created.Phone,
		&created.Email, &created.Address, &created.Active, &created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		return material.Supplier{}, fmt.Errorf("failed to insert supplier: %w", err)
	}
	return created, nil
}

// GetSupplierByID implements material.MaterialRepository.
func (r *materialRepositoryImpl) GetSupplierByID(ctx context.Context, id string) (material.Supplier, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, contact_name, phone, email, address, active, created_at, updated_at
		FROM suppliers
		WHERE id = $1
	`

	var s material.Supplier
	err := q.QueryRow(ctx, query, id).Scan(
		&s.ID, &s.Name, &s.ContactName, &s.Phone,
		&s.Email, &s.Address, &s.Active, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return material.Supplier{}, material.ErrSupplierNotFound
		}
		return material.Supplier{}, err
	}
	return s, nil
}

// ListSuppliers implements material.MaterialRepository.
func (r *materialRepositoryImpl) ListSuppliers(ctx context.Context) ([]material.Supplier, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, contact_name, phone, email, address, active, created_at, updated_at
		FROM suppliers
		ORDER BY name
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list suppliers: %w", err)
	}
	defer rows.Close()

	var suppliers []material.Supplier
	for rows.Next() {
		var s material.Supplier
		if err := rows.Scan(
			&s.ID, &s.Name, &s.ContactName, &s.Phone,
			&s.Email, &s.Address, &s.Active, &s.CreatedAt, &s.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan supplier: %w", err)
		}
		suppliers = append(suppliers, s)
	}

	return suppliers, rows.Err()
}

// UpdateSupplier implements material.MaterialRepository.
func (r *materialRepositoryImpl) UpdateSupplier(ctx context.Context, s material.Supplier) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE suppliers
		SET name = $1, contact_name = $2, phone = $3, email = $4, address = $5,
		    active = $6, updated_at = NOW()
		WHERE id = $7
	`

	tag, err := q.Exec(ctx, query, s.Name, s.ContactName, s.Phone, s.Email, s.Address, s.Active, s.ID)
	if err != nil {
		return fmt.Errorf("failed to update supplier: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return material.ErrSupplierNotFound
	}
	return nil
}
