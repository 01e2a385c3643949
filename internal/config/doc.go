// Package config manages user-level settings stored at ~/.aamad/config.yaml.
// Every key can also be supplied through an AAMAD_-prefixed environment
// variable (AAMAD_IDE, AAMAD_RULE_STYLE, ...). The CLI uses these values as
// flag defaults for the default target IDE, the rule output style, settings
// merging and logging.
package config
