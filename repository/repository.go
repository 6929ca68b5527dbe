package repository

import (
	"context"
	"database/sql"

	"salesdash/models"
)

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) PostgresRepository {
	return PostgresRepository{db: db}
}

func (r PostgresRepository) GetUserByEmail(
	ctx context.Context,
	email string,
) (models.User, error) {
	row := r.db.QueryRowContext(
		ctx,
		"SELECT id, username, email, password FROM users WHERE email=$1",
		email,
	)
	var u models.User
	err := row.Scan(&u.ID, &u.Username, &u.Email, &u.Password)
	if err != nil {
		return models.User{}, err
	}
	return u, nil
}

func (r PostgresRepository) GetUserByID(
	ctx context.Context,
	id int,
) (models.User, error) {
	row := r.db.QueryRowContext(
		ctx,
		"SELECT id, username, email, password FROM users WHERE id=$1",
		id,
	)
	var u models.User
	err := row.Scan(&u.ID, &u.Username, &u.Email, &u.Password)
	if err != nil {
		return models.User{}, err
	}
	return u, nil
}

func (r PostgresRepository) CreateUser(
	ctx context.Context,
	username, email, password string,
) (int, error) {
	var id int
	err := r.db.QueryRowContext(
		ctx,
		"INSERT INTO users (username, email, password) VALUES ($1, $2, $3) RETURNING id",
		username, email, password,
	).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (r PostgresRepository) InsertSales(
	ctx context.Context,
	records []models.SaleRecord,
) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(
		ctx,
		"INSERT INTO sales (user_id, date, category, product, quantity, unit_price, total_price) "+
			"VALUES ($1, $2, $3, $4, $5, $6, $7)",
	)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, rec := range records {
		_, err = stmt.ExecContext(
			ctx,
			rec.UserID,
			rec.Date,
			rec.Category,
			rec.Product,
			rec.Quantity,
			rec.UnitPrice,
			rec.TotalPrice,
		)
		if err != nil {
			return err
		}
	}
	return tx.Commit()
}

func (r PostgresRepository) GetSales(
	ctx context.Context,
	userID int,
) ([]models.SaleRecord, error) {
	rows, err := r.db.QueryContext(
		ctx,
		`SELECT id, user_id, date, category, product, quantity, unit_price, total_price
		 FROM sales
		 WHERE user_id=$1
		 ORDER BY date ASC, id ASC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []models.SaleRecord
	for rows.Next() {
		var rec models.SaleRecord
		if err := rows.Scan(
			&rec.ID,
			&rec.UserID,
			&rec.Date,
			&rec.Category,
			&rec.Product,
			&rec.Quantity,
			&rec.UnitPrice,
			&rec.TotalPrice,
		); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

func (r PostgresRepository) GetSalesSummary(
	ctx context.Context,
	userID int,
) (models.SalesSummary, error) {
	row := r.db.QueryRowContext(
		ctx,
		"SELECT COALESCE(SUM(total_price), 0), COUNT(*) FROM sales WHERE user_id=$1",
		userID,
	)
	var s models.SalesSummary
	if err := row.Scan(&s.Total, &s.Count); err != nil {
		return models.SalesSummary{}, err
	}
	return s, nil
}

func (r PostgresRepository) GetDailySales(
	ctx context.Context,
	userID int,
) ([]models.PeriodTotal, error) {
	rows, err := r.db.QueryContext(
		ctx,
		`SELECT to_char(date, 'YYYY-MM-DD'), SUM(total_price)
		 FROM sales
		 WHERE user_id=$1
		 GROUP BY date
		 ORDER BY date ASC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanPeriodTotals(rows)
}

func (r PostgresRepository) GetMonthlySales(
	ctx context.Context,
	userID int,
) ([]models.PeriodTotal, error) {
	rows, err := r.db.QueryContext(
		ctx,
		`SELECT to_char(date, 'YYYY-MM') AS month, SUM(total_price)
		 FROM sales
		 WHERE user_id=$1
		 GROUP BY month
		 ORDER BY month ASC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanPeriodTotals(rows)
}

func (r PostgresRepository) GetCategorySales(
	ctx context.Context,
	userID int,
) ([]models.CategoryTotal, error) {
	rows, err := r.db.QueryContext(
		ctx,
		`SELECT category, SUM(total_price)
		 FROM sales
		 WHERE user_id=$1
		 GROUP BY category
		 ORDER BY SUM(total_price) DESC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var totals []models.CategoryTotal
	for rows.Next() {
		var t models.CategoryTotal
		if err := rows.Scan(&t.Category, &t.Total); err != nil {
			return nil, err
		}
		totals = append(totals, t)
	}
	return totals, rows.Err()
}

func (r PostgresRepository) GetTopProducts(
	ctx context.Context,
	userID, limit int,
) ([]models.ProductTotal, error) {
	rows, err := r.db.QueryContext(
		ctx,
		`SELECT product, SUM(total_price)
		 FROM sales
		 WHERE user_id=$1
		 GROUP BY product
		 ORDER BY SUM(total_price) DESC
		 LIMIT $2`,
		userID, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var totals []models.ProductTotal
	for rows.Next() {
		var t models.ProductTotal
		if err := rows.Scan(&t.Product, &t.Total); err != nil {
			return nil, err
		}
		totals = append(totals, t)
	}
	return totals, rows.Err()
}

func (r PostgresRepository) AddUpload(
	ctx context.Context,
	upload models.Upload,
) error {
	_, err := r.db.ExecContext(
		ctx,
		"INSERT INTO uploads (id, user_id, filename, imported, skipped, created_at) "+
			"VALUES ($1, $2, $3, $4, $5, $6)",
		upload.ID,
		upload.UserID,
		upload.Filename,
		upload.Imported,
		upload.Skipped,
		upload.CreatedAt,
	)
	return err
}

func (r PostgresRepository) GetUserUploads(
	ctx context.Context,
	userID int,
) ([]models.Upload, error) {
	rows, err := r.db.QueryContext(
		ctx,
		`SELECT id, user_id, filename, imported, skipped, created_at
		 FROM uploads
		 WHERE user_id=$1
		 ORDER BY created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var uploads []models.Upload
	for rows.Next() {
		var u models.Upload
		if err := rows.Scan(
			&u.ID,
			&u.UserID,
			&u.Filename,
			&u.Imported,
			&u.Skipped,
			&u.CreatedAt,
		); err != nil {
			return nil, err
		}
		uploads = append(uploads, u)
	}
	return uploads, rows.Err()
}

func scanPeriodTotals(rows *sql.Rows) ([]models.PeriodTotal, error) {
	var totals []models.PeriodTotal
	for rows.Next() {
		var t models.PeriodTotal
		if err := rows.Scan(&t.Period, &t.Total); err != nil {
			return nil, err
		}
		totals = append(totals, t)
	}
	return totals, rows.Err()
}
