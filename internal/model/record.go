package model

import "time"

// GeoResult is a resolved location. The zero value means "no geodata":
// geocoding failures degrade to it instead of erroring, and callers are
// expected to skip geo-dependent steps when Empty reports true.
type GeoResult struct {
	Lat         float64
	Lon         float64
	DisplayName string
}

func (g GeoResult) Empty() bool {
	return g.Lat == 0 && g.Lon == 0 && g.DisplayName == ""
}

type NewsRecord struct {
	Title       string
	Description string
	URL         string
	Source      string
	PublishedAt time.Time
	Summary     string
	Entities    string
}

// TrendPoint counts articles published on one day.
type TrendPoint struct {
	Day   string
	Count int
}

type NewsResult struct {
	Location string
	Keywords string
	Insight  string
	Records  []NewsRecord
	Trend    []TrendPoint
}

func (r *NewsResult) HasData() bool {
	return r != nil && len(r.Records) > 0
}

type UploadKind string

const (
	UploadImage UploadKind = "image"
	UploadAudio UploadKind = "audio"
	UploadText  UploadKind = "text"
)

// UploadRecord describes one uploaded artifact. Lat and Lon are either both
// set or both nil; the pair is parsed once per batch from a single
// "lat, lon" input string.
type UploadRecord struct {
	Kind        UploadKind
	Filename    string
	Lat         *float64
	Lon         *float64
	Description string
}

type UploadResult struct {
	Location string
	Summary  string
	Records  []UploadRecord
}

func (r *UploadResult) HasData() bool {
	return r != nil && len(r.Records) > 0
}

// Snapshot is the immutable per-request view the contrast agent reads.
// Each source is independently optional; the caller assembles it from
// whatever agent outputs the session currently holds.
type Snapshot struct {
	News     *NewsResult
	Uploads  *UploadResult
	Official *OfficialResult
}

func (s Snapshot) HasData() bool {
	return s.News.HasData() || s.Uploads.HasData() || s.Official.HasData()
}
