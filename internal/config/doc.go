// Package config defines the tool configuration: input and output locations,
// derivative geometry, encoding quality, and build execution settings.
//
// Configuration is loaded from an optional TOML file merged over compiled-in
// defaults, validated once, and then passed by value into each component.
// Nothing in the pipeline reads ambient state after startup.
package config
