package util

import (
	"testing"

	"github.com/mihai-snyk/pso-dashboard/pkg/framework/plugins/pso/algorithms"
	"github.com/mihai-snyk/pso-dashboard/pkg/framework/plugins/pso/framework"
)

func TestArrowRotation(t *testing.T) {
	tests := []struct {
		name     string
		velocity framework.Vector
		want     int
	}{
		{name: "right", velocity: framework.Vector{1, 0}, want: -90},
		{name: "up", velocity: framework.Vector{0, 2}, want: 0},
		{name: "left", velocity: framework.Vector{-3, 0}, want: 90},
		{name: "upRight", velocity: framework.Vector{1, 1}, want: -45},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, angle := algorithms.ParticleState{Velocity: tc.velocity}.Heading()
			if got := arrowRotation(angle); got != tc.want {
				t.Errorf("arrowRotation for velocity %v = %d, want %d", tc.velocity, got, tc.want)
			}
		})
	}
}
