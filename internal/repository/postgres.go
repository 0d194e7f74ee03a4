package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/pgvector/pgvector-go"
	"go.uber.org/zap"

	"github.com/mmtukut/Propabridge/internal/model"
)

// PostgresCatalog loads the property catalog from PostgreSQL and persists
// embeddings alongside the records. It is the production-shaped alternative
// to the static loader; the matching core only sees the Loader contract.
type PostgresCatalog struct {
	db     *sqlx.DB
	logger *zap.Logger
}

// NewPostgresCatalog connects to PostgreSQL and verifies the connection.
func NewPostgresCatalog(dsn string, maxConn, maxIdleConn int, logger *zap.Logger) (*PostgresCatalog, error) {
	// Disable prepared statement caching to avoid "unnamed prepared statement does not exist" errors
	if !strings.Contains(dsn, "?") {
		dsn += "?prefer_simple_protocol=true"
	} else {
		dsn += "&prefer_simple_protocol=true"
	}

	db, err := sqlx.Connect("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	db.SetMaxOpenConns(maxConn)
	db.SetMaxIdleConns(maxIdleConn)
	db.SetConnMaxLifetime(5 * time.Minute)
	db.SetConnMaxIdleTime(2 * time.Minute)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &PostgresCatalog{db: db, logger: logger}, nil
}

// Close closes the database connection
func (r *PostgresCatalog) Close() error {
	return r.db.Close()
}

// propertyRow mirrors the properties table layout.
type propertyRow struct {
	ID            string          `db:"id"`
	Address       string          `db:"address"`
	Location      string          `db:"location"`
	Price         int64           `db:"price"`
	Currency      string          `db:"currency"`
	Bedrooms      int             `db:"bedrooms"`
	Bathrooms     float64         `db:"bathrooms"`
	SizeSqft      float64         `db:"size_sqft"`
	PropertyType  string          `db:"property_type"`
	Amenities     model.JSONArray `db:"amenities"`
	Lifestyle     model.JSONArray `db:"lifestyle"`
	IsVerified    bool            `db:"is_verified"`
	TrustScore    sql.NullInt64   `db:"trust_score"`
	CertificateID sql.NullString  `db:"certificate_id"`
	PricePerSqft  int64           `db:"price_per_sqft"`
	Trend         string          `db:"trend"`
	DaysOnMarket  int             `db:"days_on_market"`
}

func (row propertyRow) toModel() model.Property {
	p := model.Property{
		ID:        row.ID,
		Address:   row.Address,
		Location:  row.Location,
		Price:     row.Price,
		Currency:  row.Currency,
		Bedrooms:  row.Bedrooms,
		Bathrooms: row.Bathrooms,
		SizeSqft:  row.SizeSqft,
		Type:      model.PropertyType(row.PropertyType),
		Amenities: row.Amenities,
		Lifestyle: row.Lifestyle,
		Verification: model.Verification{
			IsVerified: row.IsVerified,
		},
		Market: model.MarketData{
			PricePerSqft: row.PricePerSqft,
			Trend:        model.MarketTrend(row.Trend),
			DaysOnMarket: row.DaysOnMarket,
		},
	}
	if row.TrustScore.Valid {
		p.Verification.TrustScore = int(row.TrustScore.Int64)
	}
	if row.CertificateID.Valid {
		p.Verification.CertificateID = row.CertificateID.String
	}
	return p
}

// Load fetches every listed property in insertion order. The position column
// preserves the catalog order the index relies on for stable tiebreaks.
func (r *PostgresCatalog) Load(ctx context.Context) ([]model.Property, error) {
	query := `
		SELECT
			id, address, location, price, currency, bedrooms, bathrooms,
			size_sqft, property_type, amenities, lifestyle,
			is_verified, trust_score, certificate_id,
			price_per_sqft, trend, days_on_market
		FROM properties
		WHERE is_listed = true
		ORDER BY position ASC
	`

	var rows []propertyRow
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("failed to load properties: %w", err)
	}

	properties := make([]model.Property, 0, len(rows))
	for _, row := range rows {
		properties = append(properties, row.toModel())
	}

	r.logger.Info("loaded property catalog", zap.Int("count", len(properties)))
	return properties, nil
}

// GetProperty retrieves a single property by its ID.
func (r *PostgresCatalog) GetProperty(ctx context.Context, id string) (*model.Property, error) {
	query := `
		SELECT
			id, address, location, price, currency, bedrooms, bathrooms,
			size_sqft, property_type, amenities, lifestyle,
			is_verified, trust_score, certificate_id,
			price_per_sqft, trend, days_on_market
		FROM properties
		WHERE id = $1 AND is_listed = true
	`

	var row propertyRow
	if err := r.db.GetContext(ctx, &row, query, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get property: %w", err)
	}

	p := row.toModel()
	return &p, nil
}

// SaveEmbedding persists the embedding vector for a property.
func (r *PostgresCatalog) SaveEmbedding(ctx context.Context, id string, embedding []float32) error {
	vec := pgvector.NewVector(embedding)
	query := `UPDATE properties SET embedding = $1, updated_at = NOW() WHERE id = $2`
	if _, err := r.db.ExecContext(ctx, query, vec, id); err != nil {
		return fmt.Errorf("failed to save embedding: %w", err)
	}
	return nil
}

// SaveEmbeddings persists embeddings for multiple properties in one
// transaction. Per-property failures are collected rather than aborting the
// whole batch.
func (r *PostgresCatalog) SaveEmbeddings(ctx context.Context, embeddings map[string][]float32) (int, []string) {
	success := 0
	var errs []string

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		errs = append(errs, fmt.Sprintf("failed to start transaction: %v", err))
		return success, errs
	}
	defer tx.Rollback()

	stmt, err := tx.PreparexContext(ctx, `UPDATE properties SET embedding = $1, updated_at = NOW() WHERE id = $2`)
	if err != nil {
		errs = append(errs, fmt.Sprintf("failed to prepare statement: %v", err))
		return success, errs
	}
	defer stmt.Close()

	for id, embedding := range embeddings {
		vec := pgvector.NewVector(embedding)
		if _, err := stmt.ExecContext(ctx, vec, id); err != nil {
			errs = append(errs, fmt.Sprintf("property %s: %v", id, err))
			continue
		}
		success++
	}

	if err := tx.Commit(); err != nil {
		errs = append(errs, fmt.Sprintf("failed to commit transaction: %v", err))
		return 0, errs
	}

	return success, errs
}
