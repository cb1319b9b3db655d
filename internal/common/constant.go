// Package common contains shared constants, sentinel errors and small
// helpers used across fort components.
package common

// AppName is used as the domain-separation prefix for every derivation step.
const AppName = "fort"

// DefaultAlgorithm is the hash algorithm used when none is configured.
const DefaultAlgorithm = "Sha512"

// DefaultTemplate is the template applied to sites without a profile.
const DefaultTemplate = "All"
