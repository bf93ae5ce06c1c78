package repository

import (
	"database/sql"
	"fmt"

	"geolens/internal/model"
)

// RunRepository archives agent runs. The archive is write-behind: agents do
// not depend on it and persistence failures never fail a request.
type RunRepository struct {
	db *sql.DB
}

func NewRunRepository(db *sql.DB) *RunRepository {
	return &RunRepository{db: db}
}

func (r *RunRepository) saveRun(sessionID, agent, location, summary string) (int64, error) {
	var id int64
	err := r.db.QueryRow(`
		INSERT INTO agent_run(session_id, agent, location, summary)
		VALUES($1, $2, $3, $4)
		RETURNING id
	`, sessionID, agent, location, summary).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (r *RunRepository) SaveNewsRun(sessionID string, res *model.NewsResult) (int64, error) {
	id, err := r.saveRun(sessionID, model.AgentNews, res.Location, res.Insight)
	if err != nil {
		return 0, err
	}

	for _, rec := range res.Records {
		_, err := r.db.Exec(`
			INSERT INTO news_record(run_id, title, description, url, source, published_at, summary, entities)
			VALUES($1, $2, $3, $4, $5, $6, $7, $8)
		`, id, rec.Title, rec.Description, rec.URL, rec.Source, rec.PublishedAt, rec.Summary, rec.Entities)
		if err != nil {
			return 0, err
		}
	}
	return id, nil
}

func (r *RunRepository) SaveUploadRun(sessionID string, res *model.UploadResult) (int64, error) {
	id, err := r.saveRun(sessionID, model.AgentUploads, res.Location, res.Summary)
	if err != nil {
		return 0, err
	}

	for _, rec := range res.Records {
		_, err := r.db.Exec(`
			INSERT INTO upload_record(run_id, kind, filename, lat, lon, description)
			VALUES($1, $2, $3, $4, $5, $6)
		`, id, string(rec.Kind), rec.Filename, rec.Lat, rec.Lon, rec.Description)
		if err != nil {
			return 0, err
		}
	}
	return id, nil
}

func (r *RunRepository) SaveOfficialRun(sessionID string, res *model.OfficialResult) (int64, error) {
	var summary string
	switch res.Kind {
	case model.OfficialSeries:
		summary = fmt.Sprintf("%s: %d points (%s)", res.Indicator, len(res.Series), res.Origin)
	case model.OfficialLayer:
		summary = fmt.Sprintf("%s: geo layer", res.Indicator)
	default:
		summary = fmt.Sprintf("%s: no data", res.Indicator)
	}
	return r.saveRun(sessionID, model.AgentOfficial, res.Geo.DisplayName, summary)
}

func (r *RunRepository) SaveContrast(sessionID, location, narrative string) (int64, error) {
	return r.saveRun(sessionID, model.AgentContrast, location, narrative)
}

func (r *RunRepository) RecentRuns(limit int) ([]model.AgentRun, error) {
	rows, err := r.db.Query(`
		SELECT id, session_id, agent, location, summary, created_at
		FROM agent_run
		ORDER BY created_at DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []model.AgentRun
	for rows.Next() {
		var run model.AgentRun
		if err := rows.Scan(&run.ID, &run.SessionID, &run.Agent, &run.Location, &run.Summary, &run.CreatedAt); err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}
