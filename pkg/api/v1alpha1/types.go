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

package v1alpha1

import (
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// UpdateMode selects how personal bests are observed during one swarm update
type UpdateMode string

const (
	// UpdateModeSynchronous moves every particle from the state before the update
	UpdateModeSynchronous UpdateMode = "Synchronous"
	// UpdateModeAsynchronous moves particles in order, mutating the swarm in place
	UpdateModeAsynchronous UpdateMode = "Asynchronous"
)

// +k8s:deepcopy-gen:interfaces=k8s.io/apimachinery/pkg/runtime.Object

// PSOArgs holds the hyperparameters of a swarm session. Every field mirrors a
// dashboard control.
type PSOArgs struct {
	metav1.TypeMeta `json:",inline"`

	// Fitness is the display name of the landscape to minimize
	Fitness string `json:"fitness,omitempty"`

	// PopulationSize is the number of particles in a new swarm
	PopulationSize int32 `json:"populationSize,omitempty"`

	// VectorLength is the dimensionality of positions and velocities
	VectorLength int32 `json:"vectorLength,omitempty"`

	// NumInformants is the size of each particle's informant neighbourhood.
	// Zero is valid and disables the social term.
	NumInformants *int32 `json:"numInformants,omitempty"`

	// Weights are the velocity update coefficients
	Weights *WeightConfig `json:"weights,omitempty"`

	// ScaleUpdateStep scales the velocity before it is added to the position
	ScaleUpdateStep *float64 `json:"scaleUpdateStep,omitempty"`

	// UpdateMode selects synchronous or asynchronous swarm updates
	UpdateMode UpdateMode `json:"updateMode,omitempty"`

	// EvolveDuration is how long Begin keeps improving the swarm
	EvolveDuration *metav1.Duration `json:"evolveDuration,omitempty"`

	// TickInterval is the period between two improvements while evolving
	TickInterval *metav1.Duration `json:"tickInterval,omitempty"`

	// Seed for the swarm's random source. Zero seeds from the clock.
	Seed uint64 `json:"seed,omitempty"`
}

// WeightConfig holds the weights of the velocity update terms. Each weight
// left unset is defaulted on its own, so a partial config only overrides the
// weights it names.
type WeightConfig struct {
	// Current weighs the particle's own velocity (inertia)
	Current *float64 `json:"current,omitempty"`

	// PersonalBest weighs the pull towards the particle's best position
	PersonalBest *float64 `json:"personalBest,omitempty"`

	// SocialBest weighs the pull towards the best informant
	SocialBest *float64 `json:"socialBest,omitempty"`

	// GlobalBest weighs the pull towards the swarm's best position
	GlobalBest *float64 `json:"globalBest,omitempty"`
}
