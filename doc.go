// Package compose loads typed Go values from directory trees.
//
// A value is either read from a single document (JSON, YAML, or any
// registered format) or assembled from a folder: the folder's own
// marker document holds the inline fields, and every field tagged as
// external lives next to it as a sibling file or subdirectory.
//
//	app/
//	  object.yaml        # Name, Version
//	  Settings.json      # Settings
//	  Services/          # Services, one element per file
//	    api.yaml
//	    web.json
//
// The matching type declares which fields are stored outside the
// marker with the "compose" struct tag:
//
//	type App struct {
//		Name     string    `yaml:"name"`
//		Version  string    `yaml:"version"`
//		Settings *Settings `yaml:"-" compose:"external"`
//		Services []Service `yaml:"-" compose:"external,collection"`
//	}
//
//	app, err := compose.Load[App]("./app")
//
// Loading is one-way. Serialize writes a single flattened document and
// never recreates the folder layout.
package compose
