// Package config locates and loads the proton.conf TOML file.
package config
