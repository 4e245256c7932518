// Package core defines the identifier types shared by slotgo and its internal packages.
package core
