/*
Copyright 2024 The Kubernetes Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package pso

import (
	"fmt"
	"os"

	"k8s.io/apimachinery/pkg/runtime"
	utilruntime "k8s.io/apimachinery/pkg/util/runtime"
	"k8s.io/utils/ptr"
	"sigs.k8s.io/yaml"

	"github.com/mihai-snyk/pso-dashboard/pkg/api/v1alpha1"
	"github.com/mihai-snyk/pso-dashboard/pkg/framework/plugins/pso/algorithms"
)

const argsKind = "PSOArgs"

var scheme = runtime.NewScheme()

func init() {
	utilruntime.Must(v1alpha1.AddToScheme(scheme))
	utilruntime.Must(addDefaultingFuncs(scheme))
}

// NewDefaultArgs returns PSOArgs with every default applied
func NewDefaultArgs() *v1alpha1.PSOArgs {
	args := &v1alpha1.PSOArgs{}
	args.SetGroupVersionKind(v1alpha1.SchemeGroupVersion.WithKind(argsKind))
	scheme.Default(args)
	return args
}

// LoadArgs reads, defaults and validates PSOArgs from a YAML or JSON file
func LoadArgs(path string) (*v1alpha1.PSOArgs, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read PSO args: %w", err)
	}
	args, err := DecodeArgs(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return args, nil
}

// DecodeArgs parses, defaults and validates PSOArgs. Unknown fields are rejected.
func DecodeArgs(data []byte) (*v1alpha1.PSOArgs, error) {
	args := &v1alpha1.PSOArgs{}
	if err := yaml.UnmarshalStrict(data, args); err != nil {
		return nil, fmt.Errorf("failed to decode PSO args: %w", err)
	}

	gvk := args.GroupVersionKind()
	if gvk.Kind != "" && gvk.Kind != argsKind {
		return nil, fmt.Errorf("want kind %s, got %s", argsKind, gvk.Kind)
	}
	if args.APIVersion != "" && args.APIVersion != v1alpha1.SchemeGroupVersion.String() {
		return nil, fmt.Errorf("want apiVersion %s, got %s", v1alpha1.SchemeGroupVersion, args.APIVersion)
	}
	args.SetGroupVersionKind(v1alpha1.SchemeGroupVersion.WithKind(argsKind))

	scheme.Default(args)
	if err := ValidatePSOArgs(args); err != nil {
		return nil, err
	}
	return args, nil
}

// EncodeArgs renders args as YAML
func EncodeArgs(args *v1alpha1.PSOArgs) ([]byte, error) {
	return yaml.Marshal(args)
}

// EngineConfig converts args into an engine configuration using the given seed
func EngineConfig(args *v1alpha1.PSOArgs, seed uint64) algorithms.PSOConfig {
	mode := algorithms.Synchronous
	if args.UpdateMode == v1alpha1.UpdateModeAsynchronous {
		mode = algorithms.Asynchronous
	}
	return algorithms.PSOConfig{
		PopulationSize: int(args.PopulationSize),
		VectorLength:   int(args.VectorLength),
		NumInformants:  int(*args.NumInformants),
		UpdateMode:     mode,
		VelocityRange:  algorithms.DefaultVelocityRange,
		Seed:           seed,
	}
}

// EngineWeights extracts the velocity update weights from args
func EngineWeights(args *v1alpha1.PSOArgs) algorithms.Weights {
	return algorithms.Weights{
		Current:         ptr.Deref(args.Weights.Current, 0),
		Personal:        ptr.Deref(args.Weights.PersonalBest, 0),
		Social:          ptr.Deref(args.Weights.SocialBest, 0),
		Global:          ptr.Deref(args.Weights.GlobalBest, 0),
		ScaleUpdateStep: *args.ScaleUpdateStep,
	}
}
