package stats

import "time"

// Summary is the response of the summary endpoint: worldwide totals plus
// one entry per country.
type Summary struct {
	Global    GlobalStats    `json:"Global"`
	Countries []CountryStats `json:"Countries"`
	Date      time.Time      `json:"Date"`
}

// GlobalStats holds worldwide case counts.
type GlobalStats struct {
	NewConfirmed   int64 `json:"NewConfirmed"`
	TotalConfirmed int64 `json:"TotalConfirmed"`
	NewDeaths      int64 `json:"NewDeaths"`
	TotalDeaths    int64 `json:"TotalDeaths"`
	NewRecovered   int64 `json:"NewRecovered"`
	TotalRecovered int64 `json:"TotalRecovered"`
}

// CountryStats holds one country's case counts.
type CountryStats struct {
	Country        string    `json:"Country"`
	CountryCode    string    `json:"CountryCode"`
	Slug           string    `json:"Slug"`
	NewConfirmed   int64     `json:"NewConfirmed"`
	TotalConfirmed int64     `json:"TotalConfirmed"`
	NewDeaths      int64     `json:"NewDeaths"`
	TotalDeaths    int64     `json:"TotalDeaths"`
	NewRecovered   int64     `json:"NewRecovered"`
	TotalRecovered int64     `json:"TotalRecovered"`
	Date           time.Time `json:"Date"`
}

// Country is an entry of the countries endpoint.
type Country struct {
	Country string `json:"Country"`
	Slug    string `json:"Slug"`
	ISO2    string `json:"ISO2"`
}

// FindCountry scans the summary for the entry whose Slug equals slug.
func (s *Summary) FindCountry(slug string) (*CountryStats, bool) {
	for i := range s.Countries {
		if s.Countries[i].Slug == slug {
			return &s.Countries[i], true
		}
	}
	return nil, false
}
