// Package config defines the format-agnostic settings model that can be read
// from a settings file, along with the Loader interface implemented by the
// concrete file formats. The HCL implementation lives in internal/hcl.
package config
