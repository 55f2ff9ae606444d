// Package apis defines api schemas.
package apis

import (
	"k8s.io/apimachinery/pkg/runtime"
	utilruntime "k8s.io/apimachinery/pkg/util/runtime"

	"github.com/act3-ai/gitconnect/pkg/apis/gitconnect.act3-ai.io/v1alpha1"
)

// NewScheme creates a new scheme with all configuration types registered.
func NewScheme() *runtime.Scheme {
	scheme := runtime.NewScheme()
	utilruntime.Must(v1alpha1.AddToScheme(scheme))
	return scheme
}
