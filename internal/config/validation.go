package config

import (
	"regexp"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"git.home.luguber.info/inful/docnav/internal/navtree"
	"git.home.luguber.info/inful/docnav/internal/sources"
)

var versionPattern = regexp.MustCompile(`^[0-9]+$`)

// Validate checks the whole configuration.
func (c Config) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Category, validation.Required, validation.In(sources.CategoryDocs, sources.CategoryUser)),
		validation.Field(&c.Content),
		validation.Field(&c.API),
		validation.Field(&c.Nav),
		validation.Field(&c.Server),
		validation.Field(&c.Sources),
	)
}

// Validate implements validation.Validatable.
func (c ContentConfig) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Root, validation.When(c.ReposDir == "", validation.Required)),
		validation.Field(&c.Roots, validation.Each(validation.Required)),
	)
}

// Validate implements validation.Validatable.
func (a APIConfig) Validate() error {
	return validation.ValidateStruct(&a,
		validation.Field(&a.LookupURL, validation.Required, validation.Match(regexp.MustCompile(`^https?://`)).Error("must be an http(s) URL")),
	)
}

// Validate implements validation.Validatable.
func (n NavConfig) Validate() error {
	return validation.ValidateStruct(&n,
		validation.Field(&n.Order, validation.Required, validation.In(navtree.OrderSource, navtree.OrderTitle)),
	)
}

// Validate implements validation.Validatable.
func (s ServerConfig) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.Addr, validation.Required),
		validation.Field(&s.RefreshInterval, validation.Min(time.Duration(0))),
		validation.Field(&s.WatchDebounce, validation.Min(time.Duration(0))),
	)
}

// Validate implements validation.Validatable.
func (e SourceEntry) Validate() error {
	return validation.ValidateStruct(&e,
		validation.Field(&e.Version, validation.Required, validation.Match(versionPattern).Error("must be a major version number")),
		validation.Field(&e.Owner, validation.Required),
		validation.Field(&e.Repo, validation.Required),
		validation.Field(&e.Branch, validation.Required),
	)
}
