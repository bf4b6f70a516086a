package dblp

// Config holds the scraper settings.
type Config struct {
	// ListingURL is the DBLP author page to scrape.
	ListingURL string `mapstructure:"listing_url" default:""`
	// HighlightAuthor is stamped on every scraped record.
	HighlightAuthor string `mapstructure:"highlight_author" default:""`
	// TimeoutSeconds bounds the listing request.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
	// DetailTimeoutSeconds bounds each conference detail request.
	DetailTimeoutSeconds int `mapstructure:"detail_timeout_seconds" default:"10"`
	// RequestsPerSecond paces outbound requests to the DBLP host.
	RequestsPerSecond float64 `mapstructure:"requests_per_second" default:"1"`
	UserAgent         string  `mapstructure:"user_agent" default:"lab-admin/1.0"`
}
