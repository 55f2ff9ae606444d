// Package main writes the JSON Schema of the gitconnect configuration.
package main

import (
	"log"
	"os"

	"github.com/act3-ai/go-common/pkg/genschema"

	"github.com/act3-ai/gitconnect/pkg/apis"
	"github.com/act3-ai/gitconnect/pkg/apis/gitconnect.act3-ai.io/v1alpha1"
)

func main() {
	if len(os.Args) != 2 {
		log.Fatalf("usage: %s OUTPUT_DIR", os.Args[0])
	}
	dir := os.Args[1]

	if err := os.MkdirAll(dir, 0o755); err != nil {
		log.Fatalf("creating schema directory: %v", err)
	}

	groups := []string{v1alpha1.Group}
	if err := genschema.GenerateGroupSchemas(dir, apis.NewScheme(), groups, v1alpha1.Repository); err != nil {
		log.Fatalf("generating %s configuration schema: %v", v1alpha1.Group, err)
	}
}
