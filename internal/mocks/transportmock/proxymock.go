// Package transportmock mocks transport.Proxy.
package transportmock

//go:generate go tool mockgen -typed -package transportmock -destination ./proxymock.gen.go github.com/act3-ai/gitconnect/pkg/transport Proxy
