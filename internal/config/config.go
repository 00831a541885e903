// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
)

// Configuration is the resolved set of runtime settings consumed by the
// Pathways web application. A Configuration is built once per resolution
// call and is never modified afterwards.
//
// DatabaseURI is always derived from DB by [newConfiguration]; no code path
// assigns it independently.
type Configuration struct {
	// Environment is the name of the selected environment: the upper-case
	// kind name for [Resolver.Resolve] and the literal JSON key for
	// [LoadFromFile].
	Environment string `json:"environment"`

	// BaseURL is the external endpoint of the application
	// (e.g. "http://0.0.0.0:8000").
	BaseURL string `json:"base_url"`

	// DB holds the PostgreSQL credentials.
	DB DB `json:"db"`

	// DatabaseURI is the connection string built from DB,
	// "postgresql://{user}:{password}@{hostname}:{port}/{database}".
	DatabaseURI string `json:"database_uri"`

	Debug   bool `json:"debug"`
	Testing bool `json:"testing"`

	// TrackModifications mirrors the ORM modification-tracking switch of the
	// web application. It is false for every environment.
	TrackModifications bool `json:"track_modifications"`

	// Container describes the disposable PostgreSQL container used by
	// integration tests. Set only for the Testing kind.
	Container *Container `json:"container,omitempty"`
}

// DB holds the five PostgreSQL connection fields. Port is kept as a string
// because it is copied verbatim from environment variables and JSON.
type DB struct {
	User     string `json:"psql_user"`
	Password string `json:"psql_password"`
	Hostname string `json:"psql_hostname"`
	Port     string `json:"psql_port"`
	Database string `json:"psql_database"`
}

// Container names the docker image backing the testing database.
type Container struct {
	Name         string `json:"container_name"`
	Image        string `json:"image_name"`
	ImageVersion string `json:"image_version"`
}

// FormatDatabaseURI renders db as a postgresql:// connection string. Values
// are inserted verbatim, without URL escaping.
func FormatDatabaseURI(db DB) string {
	return fmt.Sprintf("postgresql://%s:%s@%s:%s/%s",
		db.User,
		db.Password,
		db.Hostname,
		db.Port,
		db.Database,
	)
}

// newConfiguration is the only constructor of Configuration; it derives
// DatabaseURI from db.
func newConfiguration(environment, baseURL string, db DB, debug, testing bool, container *Container) *Configuration {
	return &Configuration{
		Environment:        environment,
		BaseURL:            baseURL,
		DB:                 db,
		DatabaseURI:        FormatDatabaseURI(db),
		Debug:              debug,
		Testing:            testing,
		TrackModifications: false,
		Container:          container,
	}
}

// MissingFields returns the JSON names of required fields that are empty.
// Production reads every field from the environment and silently defaults
// to "", so callers use this to warn about an incomplete deployment.
func (c *Configuration) MissingFields() []string {
	fields := []struct {
		name  string
		value string
	}{
		{"base_url", c.BaseURL},
		{"psql_user", c.DB.User},
		{"psql_password", c.DB.Password},
		{"psql_hostname", c.DB.Hostname},
		{"psql_port", c.DB.Port},
		{"psql_database", c.DB.Database},
	}

	var missing []string
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			missing = append(missing, f.name)
		}
	}

	return missing
}

const maskedValue = "******"

// MarshalZerologObject implements zerolog.LogObjectMarshaler. The password
// is masked both as a field and inside database_uri.
func (c *Configuration) MarshalZerologObject(e *zerolog.Event) {
	masked := c.DB
	if masked.Password != "" {
		masked.Password = maskedValue
	}

	e.Str("environment", c.Environment).
		Str("base_url", c.BaseURL).
		Str("psql_user", masked.User).
		Str("psql_password", masked.Password).
		Str("psql_hostname", masked.Hostname).
		Str("psql_port", masked.Port).
		Str("psql_database", masked.Database).
		Str("database_uri", FormatDatabaseURI(masked)).
		Bool("debug", c.Debug).
		Bool("testing", c.Testing).
		Bool("track_modifications", c.TrackModifications)

	if c.Container != nil {
		e.Dict("container", zerolog.Dict().
			Str("container_name", c.Container.Name).
			Str("image_name", c.Container.Image).
			Str("image_version", c.Container.ImageVersion))
	}
}
