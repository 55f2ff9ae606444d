// Package iomock mocks io interfaces.
package iomock

//go:generate go tool mockgen -typed -package iomock -destination ./readermock.gen.go io Reader
