package food

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/foodhive/constant"
	"github.com/muhammadheryan/foodhive/model"
	"golang.org/x/sync/errgroup"
)

type SQL struct {
	conn *sqlx.DB
}

type FoodRepository interface {
	Create(ctx context.Context, food *model.Food) error
	GetByID(ctx context.Context, id string) (*model.Food, error)
	GetForUpdateTx(ctx context.Context, tx *sqlx.Tx, id string) (*model.Food, error)
	GetOwnedForUpdateTx(ctx context.Context, tx *sqlx.Tx, id, ownerEmail string) (*model.Food, error)
	UpdateTx(ctx context.Context, tx *sqlx.Tx, food *model.Food) error
	Delete(ctx context.Context, id, ownerEmail string) (bool, error)
	DecrementStockTx(ctx context.Context, tx *sqlx.Tx, id string, quantity int64, at time.Time) (bool, error)
	List(ctx context.Context, q *model.FoodQuery) ([]model.Food, int64, error)
	ListTop(ctx context.Context, limit int) ([]model.Food, error)
	ListCategories(ctx context.Context) ([]string, error)
}

func NewFoodRepository(conn *sqlx.DB) FoodRepository {
	return &SQL{conn: conn}
}

const (
	foodColumns = `id, name, image, category, price, quantity, origin, ingredients, description, made_by,
added_by_name AS "added_by.name", added_by_email AS "added_by.email", added_by_uid AS "added_by.uid",
purchase_count, status, date_added, created_at, updated_at`

	insertFoodQuery = `INSERT INTO food (id, name, image, category, price, quantity, origin, ingredients, description, made_by,
added_by_name, added_by_email, added_by_uid, purchase_count, status, date_added, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	getFoodQuery           = `SELECT ` + foodColumns + ` FROM food WHERE id = ?`
	getForUpdateQuery      = `SELECT ` + foodColumns + ` FROM food WHERE id = ? FOR UPDATE`
	getOwnedForUpdateQuery = `SELECT ` + foodColumns + ` FROM food WHERE id = ? AND added_by_email = ? FOR UPDATE`

	updateFoodQuery = `UPDATE food SET name = ?, image = ?, category = ?, price = ?, quantity = ?, origin = ?,
ingredients = ?, description = ?, made_by = ?, updated_at = ?
WHERE id = ? AND added_by_email = ?`

	deleteFoodQuery = `DELETE FROM food WHERE id = ? AND added_by_email = ?`

	// the quantity guard makes the decrement a single conditional write
	decrementStockQuery = `UPDATE food SET quantity = quantity - ?, purchase_count = purchase_count + ?, updated_at = ?
WHERE id = ? AND quantity >= ?`

	listTopQuery = `SELECT ` + foodColumns + ` FROM food WHERE status = ?
ORDER BY purchase_count DESC, date_added DESC, id ASC LIMIT ?`

	listCategoriesQuery = `SELECT DISTINCT category FROM food`
)

func (s *SQL) Create(ctx context.Context, f *model.Food) error {
	_, err := s.conn.ExecContext(ctx, insertFoodQuery,
		f.ID, f.Name, f.Image, f.Category, f.Price, f.Quantity, f.Origin, f.Ingredients, f.Description, f.MadeBy,
		f.AddedBy.Name, f.AddedBy.Email, f.AddedBy.UID, f.PurchaseCount, f.Status, f.DateAdded, f.CreatedAt, f.UpdatedAt)
	return err
}

// GetByID returns nil, nil when the food does not exist.
func (s *SQL) GetByID(ctx context.Context, id string) (*model.Food, error) {
	return scanFood(s.conn.QueryRowxContext(ctx, getFoodQuery, id))
}

// GetForUpdateTx locks the row until tx ends.
func (s *SQL) GetForUpdateTx(ctx context.Context, tx *sqlx.Tx, id string) (*model.Food, error) {
	return scanFood(tx.QueryRowxContext(ctx, getForUpdateQuery, id))
}

// GetOwnedForUpdateTx locks the row when it exists and belongs to ownerEmail.
func (s *SQL) GetOwnedForUpdateTx(ctx context.Context, tx *sqlx.Tx, id, ownerEmail string) (*model.Food, error) {
	return scanFood(tx.QueryRowxContext(ctx, getOwnedForUpdateQuery, id, ownerEmail))
}

func (s *SQL) UpdateTx(ctx context.Context, tx *sqlx.Tx, f *model.Food) error {
	_, err := tx.ExecContext(ctx, updateFoodQuery,
		f.Name, f.Image, f.Category, f.Price, f.Quantity, f.Origin, f.Ingredients, f.Description, f.MadeBy, f.UpdatedAt,
		f.ID, f.AddedBy.Email)
	return err
}

// Delete reports whether a row owned by ownerEmail was removed.
func (s *SQL) Delete(ctx context.Context, id, ownerEmail string) (bool, error) {
	res, err := s.conn.ExecContext(ctx, deleteFoodQuery, id, ownerEmail)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// DecrementStockTx takes quantity units off the stock only if that many are
// left. false means the guard failed and nothing was written.
func (s *SQL) DecrementStockTx(ctx context.Context, tx *sqlx.Tx, id string, quantity int64, at time.Time) (bool, error) {
	res, err := tx.ExecContext(ctx, decrementStockQuery, quantity, quantity, at, id, quantity)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n == 1, nil
}

func (s *SQL) List(ctx context.Context, q *model.FoodQuery) ([]model.Food, int64, error) {
	where, args := buildWhere(q)
	order := buildOrder(q)

	listQuery := `SELECT ` + foodColumns + ` FROM food WHERE ` + where + ` ORDER BY ` + order + ` LIMIT ? OFFSET ?`
	countQuery := `SELECT COUNT(*) FROM food WHERE ` + where

	items := make([]model.Food, 0)
	var total int64

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		listArgs := append(append([]interface{}{}, args...), q.Limit, q.Offset)
		if err := s.conn.SelectContext(gctx, &items, listQuery, listArgs...); err != nil {
			return fmt.Errorf("list foods: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		if err := s.conn.GetContext(gctx, &total, countQuery, args...); err != nil {
			return fmt.Errorf("count foods: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, 0, err
	}

	return items, total, nil
}

func (s *SQL) ListTop(ctx context.Context, limit int) ([]model.Food, error) {
	items := make([]model.Food, 0)
	if err := s.conn.SelectContext(ctx, &items, listTopQuery, constant.FoodStatusAvailable, limit); err != nil {
		return nil, err
	}
	return items, nil
}

func (s *SQL) ListCategories(ctx context.Context) ([]string, error) {
	categories := make([]string, 0)
	if err := s.conn.SelectContext(ctx, &categories, listCategoriesQuery); err != nil {
		return nil, err
	}
	return categories, nil
}

func scanFood(row *sqlx.Row) (*model.Food, error) {
	var f model.Food
	if err := row.StructScan(&f); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &f, nil
}

func buildWhere(q *model.FoodQuery) (string, []interface{}) {
	conds := []string{"1 = 1"}
	args := make([]interface{}, 0, 6)

	if q.Status != "" {
		conds = append(conds, "status = ?")
		args = append(args, q.Status)
	}
	if q.Category != "" {
		conds = append(conds, "category = ?")
		args = append(args, q.Category)
	}
	if q.OwnerEmail != "" {
		conds = append(conds, "added_by_email = ?")
		args = append(args, q.OwnerEmail)
	}
	if q.Search != "" {
		pattern := "%" + escapeLike(q.Search) + "%"
		conds = append(conds, "(name LIKE ? OR ingredients LIKE ? OR description LIKE ?)")
		args = append(args, pattern, pattern, pattern)
	}

	return strings.Join(conds, " AND "), args
}

// buildOrder only ever emits allowlisted columns; id breaks ties so pages
// never overlap.
func buildOrder(q *model.FoodQuery) string {
	column := constant.SortColumns[constant.DefaultSortBy]
	for _, allowed := range constant.SortColumns {
		if q.SortColumn == allowed {
			column = allowed
			break
		}
	}
	dir := "DESC"
	if q.Ascending {
		dir = "ASC"
	}
	return column + " " + dir + ", id ASC"
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
