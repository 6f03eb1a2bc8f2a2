// Package cmd wires up the arcctl command tree.
package cmd
