// Package types holds the data model shared by the dotstash packages: the
// filesystem interface, tracked entries and sets, link states and the
// per-entry outcome values produced by collect, restore and status.
package types
