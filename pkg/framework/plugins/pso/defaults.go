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
	"time"

	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/runtime"
	"k8s.io/klog/v2"
	"k8s.io/utils/ptr"

	"github.com/mihai-snyk/pso-dashboard/pkg/api/v1alpha1"
)

const (
	DefaultFitness         = "Paraboloid"
	DefaultPopulationSize  = 25
	DefaultVectorLength    = 2
	DefaultNumInformants   = 6
	DefaultScaleUpdateStep = 0.7
	DefaultEvolveDuration  = 5 * time.Second
	DefaultTickInterval    = 5 * time.Millisecond
)

// DefaultWeights are the initial velocity update weights
func DefaultWeights() v1alpha1.WeightConfig {
	return v1alpha1.WeightConfig{
		Current:      ptr.To(0.7),
		PersonalBest: ptr.To(2.0),
		SocialBest:   ptr.To(0.9),
		GlobalBest:   ptr.To(0.0),
	}
}

func addDefaultingFuncs(scheme *runtime.Scheme) error {
	return RegisterDefaults(scheme)
}

func RegisterDefaults(scheme *runtime.Scheme) error {
	klog.V(5).InfoS("Registering defaults", "pluginName", PluginName)
	scheme.AddTypeDefaultingFunc(&v1alpha1.PSOArgs{}, func(obj interface{}) {
		SetDefaults_PSOArgs(obj.(*v1alpha1.PSOArgs))
	})
	return nil
}

func SetDefaults_PSOArgs(obj runtime.Object) {
	args := obj.(*v1alpha1.PSOArgs)

	if args.Fitness == "" {
		args.Fitness = DefaultFitness
	}
	if args.PopulationSize == 0 {
		args.PopulationSize = DefaultPopulationSize
	}
	if args.VectorLength == 0 {
		args.VectorLength = DefaultVectorLength
	}
	if args.NumInformants == nil {
		args.NumInformants = ptr.To[int32](DefaultNumInformants)
	}
	if args.Weights == nil {
		args.Weights = &v1alpha1.WeightConfig{}
	}
	setDefaultWeights(args.Weights)
	if args.ScaleUpdateStep == nil {
		args.ScaleUpdateStep = ptr.To(DefaultScaleUpdateStep)
	}
	if args.UpdateMode == "" {
		args.UpdateMode = v1alpha1.UpdateModeSynchronous
	}
	if args.EvolveDuration == nil {
		args.EvolveDuration = &metav1.Duration{Duration: DefaultEvolveDuration}
	}
	if args.TickInterval == nil {
		args.TickInterval = &metav1.Duration{Duration: DefaultTickInterval}
	}
}

func setDefaultWeights(w *v1alpha1.WeightConfig) {
	defaults := DefaultWeights()
	if w.Current == nil {
		w.Current = defaults.Current
	}
	if w.PersonalBest == nil {
		w.PersonalBest = defaults.PersonalBest
	}
	if w.SocialBest == nil {
		w.SocialBest = defaults.SocialBest
	}
	if w.GlobalBest == nil {
		w.GlobalBest = defaults.GlobalBest
	}
}

// resetParameters restores the values controlled by the dashboard's reset
// button. Fitness, update mode, tick interval and seed are kept.
func resetParameters(args *v1alpha1.PSOArgs) {
	w := DefaultWeights()
	args.Weights = &w
	args.ScaleUpdateStep = ptr.To(DefaultScaleUpdateStep)
	args.PopulationSize = DefaultPopulationSize
	args.EvolveDuration = &metav1.Duration{Duration: DefaultEvolveDuration}
	args.NumInformants = ptr.To[int32](DefaultNumInformants)
}
