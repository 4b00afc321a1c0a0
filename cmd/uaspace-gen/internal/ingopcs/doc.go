// Copyright 2021 Converter Systems LLC. All rights reserved.

// Package ingopcs holds the Go rendering of the nodeset/testdata/ingopcs.xml test nodeset,
// kept in the tree so the generated source is compiled with the module.
package ingopcs

//go:generate go run ../.. --nodeset ../../../../nodeset/testdata/ingopcs.xml --go ingopcs.go --pkg ingopcs --log-level error
