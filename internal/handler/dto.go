package handler

import (
	"encoding/json"
	"time"

	"geolens/internal/model"
)

type NewsRequest struct {
	Location  string `json:"location" binding:"required"`
	Keywords  string `json:"keywords"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

type OfficialRequest struct {
	Location  string `json:"location" binding:"required"`
	Indicator string `json:"indicator" binding:"required"`
	Period    int    `json:"period"`
}

type ContrastRequest struct {
	Location string `json:"location" binding:"required"`
}

type GeoResponse struct {
	Lat         float64 `json:"lat"`
	Lon         float64 `json:"lon"`
	DisplayName string  `json:"display_name"`
}

type NewsRecordResponse struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	URL         string `json:"url"`
	Source      string `json:"source"`
	PublishedAt string `json:"published_at"`
	Summary     string `json:"summary"`
	Entities    string `json:"entities"`
}

type TrendPointResponse struct {
	Day   string `json:"day"`
	Count int    `json:"count"`
}

type NewsResponse struct {
	Location string               `json:"location"`
	Keywords string               `json:"keywords"`
	Insight  string               `json:"insight"`
	Articles []NewsRecordResponse `json:"articles"`
	Trend    []TrendPointResponse `json:"trend"`
}

type UploadRecordResponse struct {
	Kind        string   `json:"kind"`
	Filename    string   `json:"filename"`
	Lat         *float64 `json:"lat"`
	Lon         *float64 `json:"lon"`
	Description string   `json:"description"`
}

type UploadResponse struct {
	Location string                 `json:"location"`
	Summary  string                 `json:"summary"`
	Records  []UploadRecordResponse `json:"records"`
}

type SeriesPointResponse struct {
	Year  int     `json:"year"`
	Value float64 `json:"value"`
}

type ViewStateResponse struct {
	Lat  float64 `json:"lat"`
	Lon  float64 `json:"lon"`
	Zoom int     `json:"zoom"`
}

type GeoLayerResponse struct {
	GeoJSON json.RawMessage   `json:"geojson"`
	View    ViewStateResponse `json:"view"`
}

type OfficialResponse struct {
	Indicator string                `json:"indicator"`
	Kind      string                `json:"kind"`
	Origin    string                `json:"origin,omitempty"`
	Geo       GeoResponse           `json:"geo"`
	Chart     string                `json:"chart,omitempty"`
	Series    []SeriesPointResponse `json:"series,omitempty"`
	Layer     *GeoLayerResponse     `json:"layer,omitempty"`
}

type ContrastResponse struct {
	Location  string `json:"location"`
	Narrative string `json:"narrative"`
}

type RunResponse struct {
	ID        int64  `json:"id"`
	SessionID string `json:"session_id"`
	Agent     string `json:"agent"`
	Location  string `json:"location"`
	Summary   string `json:"summary"`
	CreatedAt string `json:"created_at"`
}

type RunsResponse struct {
	Runs  []RunResponse `json:"runs"`
	Limit int           `json:"limit"`
}

func newsResponse(res *model.NewsResult) NewsResponse {
	articles := make([]NewsRecordResponse, len(res.Records))
	for i, rec := range res.Records {
		articles[i] = NewsRecordResponse{
			Title:       rec.Title,
			Description: rec.Description,
			URL:         rec.URL,
			Source:      rec.Source,
			PublishedAt: rec.PublishedAt.Format(time.RFC3339),
			Summary:     rec.Summary,
			Entities:    rec.Entities,
		}
	}
	trend := make([]TrendPointResponse, len(res.Trend))
	for i, pt := range res.Trend {
		trend[i] = TrendPointResponse{Day: pt.Day, Count: pt.Count}
	}
	return NewsResponse{
		Location: res.Location,
		Keywords: res.Keywords,
		Insight:  res.Insight,
		Articles: articles,
		Trend:    trend,
	}
}

func uploadResponse(res *model.UploadResult) UploadResponse {
	records := make([]UploadRecordResponse, len(res.Records))
	for i, rec := range res.Records {
		records[i] = UploadRecordResponse{
			Kind:        string(rec.Kind),
			Filename:    rec.Filename,
			Lat:         rec.Lat,
			Lon:         rec.Lon,
			Description: rec.Description,
		}
	}
	return UploadResponse{Location: res.Location, Summary: res.Summary, Records: records}
}

func officialResponse(res *model.OfficialResult) OfficialResponse {
	out := OfficialResponse{
		Indicator: string(res.Indicator),
		Kind:      string(res.Kind),
		Origin:    res.Origin,
		Geo: GeoResponse{
			Lat:         res.Geo.Lat,
			Lon:         res.Geo.Lon,
			DisplayName: res.Geo.DisplayName,
		},
		Chart: string(res.Chart),
	}
	if len(res.Series) > 0 {
		out.Series = make([]SeriesPointResponse, len(res.Series))
		for i, pt := range res.Series {
			out.Series[i] = SeriesPointResponse{Year: pt.Year, Value: pt.Value}
		}
	}
	if res.Layer != nil {
		out.Layer = &GeoLayerResponse{
			GeoJSON: res.Layer.GeoJSON,
			View: ViewStateResponse{
				Lat:  res.Layer.View.Lat,
				Lon:  res.Layer.View.Lon,
				Zoom: res.Layer.View.Zoom,
			},
		}
	}
	return out
}

func runsResponse(runs []model.AgentRun, limit int) RunsResponse {
	out := RunsResponse{Runs: make([]RunResponse, len(runs)), Limit: limit}
	for i, run := range runs {
		out.Runs[i] = RunResponse{
			ID:        run.ID,
			SessionID: run.SessionID,
			Agent:     run.Agent,
			Location:  run.Location,
			Summary:   run.Summary,
			CreatedAt: run.CreatedAt.Format(time.RFC3339),
		}
	}
	return out
}
