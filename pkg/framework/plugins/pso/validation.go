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
	"math"

	"k8s.io/apimachinery/pkg/runtime"
	"k8s.io/apimachinery/pkg/util/validation/field"

	"github.com/mihai-snyk/pso-dashboard/pkg/api/v1alpha1"
	"github.com/mihai-snyk/pso-dashboard/pkg/framework/plugins/pso/benchmarks"
)

// ValidatePSOArgs validates the PSO session arguments. Defaults are expected
// to have been applied.
func ValidatePSOArgs(obj runtime.Object) error {
	args := obj.(*v1alpha1.PSOArgs)
	var allErrs field.ErrorList

	if _, err := benchmarks.ByName(args.Fitness); err != nil {
		allErrs = append(allErrs, field.NotSupported(field.NewPath("fitness"), args.Fitness, benchmarks.Names()))
	}
	if args.PopulationSize < 1 {
		allErrs = append(allErrs, field.Invalid(field.NewPath("populationSize"), args.PopulationSize, "must be at least 1"))
	}
	if args.VectorLength != DefaultVectorLength {
		allErrs = append(allErrs, field.Invalid(field.NewPath("vectorLength"), args.VectorLength, "only two dimensional landscapes are supported"))
	}
	if args.NumInformants != nil && *args.NumInformants < 0 {
		allErrs = append(allErrs, field.Invalid(field.NewPath("numInformants"), *args.NumInformants, "must not be negative"))
	}

	if args.Weights != nil {
		weightsPath := field.NewPath("weights")
		for _, w := range []struct {
			name  string
			value *float64
		}{
			{"current", args.Weights.Current},
			{"personalBest", args.Weights.PersonalBest},
			{"socialBest", args.Weights.SocialBest},
			{"globalBest", args.Weights.GlobalBest},
		} {
			if w.value == nil {
				continue
			}
			if err := validateWeight(weightsPath.Child(w.name), *w.value); err != nil {
				allErrs = append(allErrs, err)
			}
		}
	}
	if args.ScaleUpdateStep != nil {
		if err := validateWeight(field.NewPath("scaleUpdateStep"), *args.ScaleUpdateStep); err != nil {
			allErrs = append(allErrs, err)
		}
	}

	switch args.UpdateMode {
	case "", v1alpha1.UpdateModeSynchronous, v1alpha1.UpdateModeAsynchronous:
	default:
		allErrs = append(allErrs, field.NotSupported(field.NewPath("updateMode"), args.UpdateMode,
			[]v1alpha1.UpdateMode{v1alpha1.UpdateModeSynchronous, v1alpha1.UpdateModeAsynchronous}))
	}

	if args.EvolveDuration != nil && args.EvolveDuration.Duration < 0 {
		allErrs = append(allErrs, field.Invalid(field.NewPath("evolveDuration"), args.EvolveDuration.String(), "must not be negative"))
	}
	if args.TickInterval != nil && args.TickInterval.Duration <= 0 {
		allErrs = append(allErrs, field.Invalid(field.NewPath("tickInterval"), args.TickInterval.String(), "must be positive"))
	}

	return allErrs.ToAggregate()
}

func validateWeight(path *field.Path, w float64) *field.Error {
	if math.IsNaN(w) || math.IsInf(w, 0) {
		return field.Invalid(path, w, "must be a finite number")
	}
	if w < 0 {
		return field.Invalid(path, w, "must not be negative")
	}
	return nil
}
