// Package v1alpha1 defines the v1alpha1 schema.
//
// +kubebuilder:object:generate=true
package v1alpha1

import (
	"time"

	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// Defaults applied to an empty Configuration.
const (
	DefaultSSHCommand  = "ssh"
	DefaultPort        = "9418"
	DefaultDialTimeout = 30 * time.Second
)

// +kubebuilder:object:root=true

// Configuration type is used to store a user's current configuration settings.
type Configuration struct {
	metav1.TypeMeta `json:",inline"`

	ConfigurationSpec `json:",inline"`
}

// ConfigurationSpec is the actual configuration values.
type ConfigurationSpec struct {
	// SSH configures the remote shell used for ssh transports.
	SSH SSHConfig `json:"ssh,omitempty"`

	// Proxy configures how git daemons are reached through a proxy.
	Proxy ProxyConfig `json:"proxy,omitempty"`

	// Network configures git daemon connections.
	Network NetworkConfig `json:"network,omitempty"`
}

// SSHConfig configures the remote shell.
type SSHConfig struct {
	// Command is the remote shell program. The GIT_SSH environment
	// variable takes precedence.
	Command string `json:"command,omitempty"`
}

// ProxyConfig configures the git daemon proxy.
type ProxyConfig struct {
	// Command is run as "<command> <host> <port>" to reach a git daemon.
	// The GIT_PROXY_COMMAND environment variable takes precedence.
	Command string `json:"command,omitempty"`

	// NoProxy lists host suffixes dialed directly.
	NoProxy []string `json:"noProxy,omitempty"`
}

// NetworkConfig configures git daemon connections.
type NetworkConfig struct {
	// DialTimeout bounds each connection attempt.
	DialTimeout *metav1.Duration `json:"dialTimeout,omitempty"`

	// DefaultPort is used when a git:// locator does not name a port.
	DefaultPort string `json:"defaultPort,omitempty"`
}

// ConfigurationDefault the fields in Configuration.  The argument must be a Configuration.
func ConfigurationDefault(obj *Configuration) {
	if obj == nil {
		return
	}

	// Default the TypeMeta
	obj.APIVersion = GroupVersion.String()
	obj.Kind = "Configuration"

	if obj.SSH.Command == "" {
		obj.SSH.Command = DefaultSSHCommand
	}
	if obj.Network.DialTimeout == nil {
		obj.Network.DialTimeout = &metav1.Duration{Duration: DefaultDialTimeout}
	}
	if obj.Network.DefaultPort == "" {
		obj.Network.DefaultPort = DefaultPort
	}
}
