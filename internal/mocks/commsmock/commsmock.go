// Package commsmock mocks comms.Communicator.
package commsmock

//go:generate go tool mockgen -typed -package commsmock -destination ./commsmock.gen.go github.com/act3-ai/gitconnect/pkg/protocol/git/comms Communicator
