/*
Package config provides the configuration of an Arabic reshaper.

A [Config] is a strongly typed record of all options the reshaper understands,
plus the set of enabled ligatures. Configurations are usually assembled by
[Load] from several layers, each one a schuko.Configuration:

  - the default configuration bundled with this package (default-config.ini),
  - an ini file named by the environment variable ARSHAPE_CONFIGURATION_FILE,
    or an ini file given explicitly with [WithFile],
  - additional schuko configurations handed in with [WithSource],
  - in-memory [Overrides].

Later layers take precedence. Ini documents must contain a section named
[Section]. Keys are case-insensitive; boolean values may be written as
yes/no, true/false, on/off or 1/0.

Loading validates everything up front: unknown keys, malformed values and
missing sections are reported as [*ConfigError] and no configuration is
returned.

A configuration handed to a reshaper is copied; changing it afterwards does
not affect the reshaper.
*/
package config

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'arshape.config'.
func tracer() tracing.Trace {
	return tracing.Select("arshape.config")
}
