package models

import (
	"net/url"
)

// SyncPage is a single response of the sync endpoint.
//
// Exactly one of NextPageURL and NextSyncURL is set by a well-behaved server:
// NextPageURL while the chain has more pages, NextSyncURL on the last page.
// Both carry the token for the following request in their sync_token query
// parameter.
type SyncPage struct {
	Items       []Resource `json:"items"`
	NextPageURL string     `json:"nextPageUrl,omitempty"`
	NextSyncURL string     `json:"nextSyncUrl,omitempty"`

	// Raw is the undecoded response body. It is not serialised.
	Raw []byte `json:"-"`
}

// HasMorePages reports whether the server announced another page.
func (p SyncPage) HasMorePages() bool {
	return p.NextPageURL != ""
}

// SyncToken extracts the token the next request has to carry.
// Returns "" when neither URL is present or the URL carries no token.
func (p SyncPage) SyncToken() string {
	next := p.NextSyncURL
	if p.HasMorePages() {
		next = p.NextPageURL
	}
	if next == "" {
		return ""
	}

	u, err := url.Parse(next)
	if err != nil {
		return ""
	}
	return u.Query().Get(ParamSyncToken)
}
