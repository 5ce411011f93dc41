package repository

import (
	"database/sql"
	"encoding/json"

	"tickerbrief/internal/model"
)

type ContextRepository struct {
	db *sql.DB
}

func NewContextRepository(db *sql.DB) *ContextRepository {
	return &ContextRepository{db: db}
}

func (r *ContextRepository) SaveLookup(result *model.ContextResult) error {
	sources, err := json.Marshal(result.Sources)
	if err != nil {
		return err
	}

	_, err = r.db.Exec(`
		INSERT INTO context_lookup(symbol, sentiment, summary, sources, created_at)
		VALUES($1, $2, $3, $4, $5)
	`, result.Symbol, result.Sentiment, result.Summary, sources, result.CreatedAt)

	return err
}

func (r *ContextRepository) GetHistory(symbol string, limit, offset int) ([]model.ContextLookup, error) {
	rows, err := r.db.Query(`
		SELECT id, symbol, sentiment, summary, sources, created_at
		FROM context_lookup
		WHERE symbol = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`, symbol, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var lookups []model.ContextLookup
	for rows.Next() {
		var l model.ContextLookup
		var sourcesJSON []byte
		err := rows.Scan(&l.ID, &l.Symbol, &l.Sentiment, &l.Summary, &sourcesJSON, &l.CreatedAt)
		if err != nil {
			return nil, err
		}
		if err := json.Unmarshal(sourcesJSON, &l.Sources); err != nil {
			return nil, err
		}
		lookups = append(lookups, l)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return lookups, nil
}

func (r *ContextRepository) GetHistoryTotal(symbol string) (int, error) {
	var total int
	err := r.db.QueryRow(`
		SELECT COUNT(*) FROM context_lookup WHERE symbol = $1
	`, symbol).Scan(&total)
	return total, err
}

func (r *ContextRepository) GetLookupTotal() (int, error) {
	var total int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM context_lookup`).Scan(&total)
	return total, err
}

func (r *ContextRepository) GetLatestBySymbol(symbol string) (*model.ContextLookup, error) {
	var l model.ContextLookup
	var sourcesJSON []byte
	err := r.db.QueryRow(`
		SELECT id, symbol, sentiment, summary, sources, created_at
		FROM context_lookup
		WHERE symbol = $1
		ORDER BY created_at DESC
		LIMIT 1
	`, symbol).Scan(&l.ID, &l.Symbol, &l.Sentiment, &l.Summary, &sourcesJSON, &l.CreatedAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(sourcesJSON, &l.Sources); err != nil {
		return nil, err
	}

	return &l, nil
}
