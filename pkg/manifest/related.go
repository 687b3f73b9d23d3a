package manifest

// Related is an entry of related_applications: a native application,
// installable by or accessible to the underlying platform, that provides
// functionality equivalent to the website.
//
// Example output:
//
//	{"platform": "play", "url": "https://play.google.com/store/apps/details?id=cheeaun.hackerweb"}
type Related struct {
	platform string
	url      string
}

// NewRelated creates a Related entry. platform names the store or platform
// ("play", "itunes", "windows", ...) and url points at the application there.
func NewRelated(platform, url string) Related {
	return Related{platform: platform, url: url}
}

// Platform returns the platform identifier.
func (r Related) Platform() string { return r.platform }

// URL returns the application URL.
func (r Related) URL() string { return r.url }

// MarshalJSON encodes the entry as {"platform", "url"}.
func (r Related) MarshalJSON() ([]byte, error) {
	return marshalCompact(r.wire())
}

type relatedJSON struct {
	Platform string `json:"platform"`
	URL      string `json:"url"`
}

func (r Related) wire() relatedJSON {
	return relatedJSON{Platform: r.platform, URL: r.url}
}
