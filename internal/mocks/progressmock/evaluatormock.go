// Package progressmock mocks progress.Evaluator.
package progressmock

//go:generate go tool mockgen -typed -package progressmock -destination ./evaluatormock.gen.go github.com/act3-ai/gitconnect/internal/progress Evaluator
