package site

import "context"

// SiteRepository defines read access to registered sites. Sites are managed
// by an external administrative process and are read-only here.
type SiteRepository interface {
	// List returns every registered site
	List(ctx context.Context) ([]Site, error)
}
