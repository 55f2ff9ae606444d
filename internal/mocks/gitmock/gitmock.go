// Package gitmock mocks git.Repository.
package gitmock

//go:generate go tool mockgen -typed -package gitmock -destination ./gitmock.gen.go github.com/act3-ai/gitconnect/internal/git Repository
