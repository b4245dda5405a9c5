package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/yourorg/dashapi/internal/models"
)

type DashboardStore struct {
	db *sql.DB
}

func NewDashboardStore(db *sql.DB) *DashboardStore {
	return &DashboardStore{db: db}
}

const dashboardColumns = `id, title, type, description, updated_date, tags, sector, url`

// ListAll returns every dashboard ordered by id.
func (s *DashboardStore) ListAll(ctx context.Context) ([]models.Dashboard, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT `+dashboardColumns+` FROM dashboards ORDER BY id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanDashboards(rows)
}

// ListBySector returns the dashboards whose sector matches exactly, ordered by id.
func (s *DashboardStore) ListBySector(ctx context.Context, sector string) ([]models.Dashboard, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT `+dashboardColumns+` FROM dashboards WHERE sector = ? ORDER BY id
	`, sector)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanDashboards(rows)
}

func scanDashboards(rows *sql.Rows) ([]models.Dashboard, error) {
	dashboards := make([]models.Dashboard, 0)
	for rows.Next() {
		var (
			d           models.Dashboard
			description sql.NullString
			rawTags     []byte
		)
		if err := rows.Scan(&d.ID, &d.Title, &d.Type, &description, &d.UpdatedDate, &rawTags, &d.Sector, &d.URL); err != nil {
			return nil, err
		}
		if description.Valid {
			desc := description.String
			d.Description = &desc
		}
		tags, err := decodeTags(rawTags)
		if err != nil {
			return nil, fmt.Errorf("dashboard %d: %w", d.ID, err)
		}
		d.Tags = tags
		dashboards = append(dashboards, d)
	}
	return dashboards, rows.Err()
}

// decodeTags parses the JSON tags column. Tags are never nil in responses, so
// an empty or NULL column decodes to an empty slice.
func decodeTags(raw []byte) ([]string, error) {
	if len(raw) == 0 {
		return []string{}, nil
	}
	var tags []string
	if err := json.Unmarshal(raw, &tags); err != nil {
		return nil, fmt.Errorf("decode tags: %w", err)
	}
	if tags == nil {
		tags = []string{}
	}
	return tags, nil
}

// EncodeTags serializes a tag list for the JSON column. Used by the seeder.
func EncodeTags(tags []string) (string, error) {
	if tags == nil {
		tags = []string{}
	}
	raw, err := json.Marshal(tags)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}
