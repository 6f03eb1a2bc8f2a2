// Package installer provides functionality for installing and uninstalling
// Actions Runner Controller components.
//
// This package defines the Installer interface and provides implementations
// for the controller and for runner scale sets.
package installer
