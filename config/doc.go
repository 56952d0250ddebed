// Package config loads and validates the felzseg driver's YAML
// configuration, mirroring the structure of the teacher's pkg/config
// package: a plain struct with yaml tags, a DefaultConfig constructor,
// and Load/Save functions built on gopkg.in/yaml.v3. A missing config
// file is not an error, LoadConfig simply returns the defaults, the
// same convention the teacher's LoadConfig follows.
package config
