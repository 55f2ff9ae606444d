package v1alpha1

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	v1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

func TestConfigurationDefault(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		expected := &Configuration{
			TypeMeta: v1.TypeMeta{
				Kind:       "Configuration",
				APIVersion: GroupVersion.String(),
			},
			ConfigurationSpec: ConfigurationSpec{
				SSH: SSHConfig{Command: DefaultSSHCommand},
				Network: NetworkConfig{
					DialTimeout: &v1.Duration{Duration: DefaultDialTimeout},
					DefaultPort: DefaultPort,
				},
			},
		}

		in := &Configuration{}
		ConfigurationDefault(in)
		assert.Equal(t, expected, in)
	})

	t.Run("Keep Values", func(t *testing.T) {
		in := &Configuration{
			ConfigurationSpec: ConfigurationSpec{
				SSH: SSHConfig{Command: "plink"},
				Proxy: ProxyConfig{
					Command: "corkscrew",
					NoProxy: []string{".internal"},
				},
				Network: NetworkConfig{
					DialTimeout: &v1.Duration{Duration: 5 * time.Second},
					DefaultPort: "1234",
				},
			},
		}
		expected := in.DeepCopy()
		expected.Kind = "Configuration"
		expected.APIVersion = GroupVersion.String()

		ConfigurationDefault(in)
		assert.Equal(t, expected, in)
	})

	t.Run("Nil", func(t *testing.T) {
		assert.NotPanics(t, func() { ConfigurationDefault(nil) })
	})
}

func TestConfiguration_DeepCopy(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		in := &Configuration{
			ConfigurationSpec: ConfigurationSpec{
				Proxy: ProxyConfig{NoProxy: []string{".internal"}},
				Network: NetworkConfig{
					DialTimeout: &v1.Duration{Duration: time.Second},
				},
			},
		}

		out := in.DeepCopy()
		assert.Equal(t, in, out)

		// ensure nothing is shared
		out.Proxy.NoProxy[0] = ".example.com"
		out.Network.DialTimeout.Duration = time.Minute
		assert.Equal(t, ".internal", in.Proxy.NoProxy[0])
		assert.Equal(t, time.Second, in.Network.DialTimeout.Duration)

		assert.Nil(t, (*Configuration)(nil).DeepCopy())
	})
}
