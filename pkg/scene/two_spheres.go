package scene

import (
	"github.com/df07/go-weekend-raytracer/pkg/core"
	"github.com/df07/go-weekend-raytracer/pkg/material"
	"github.com/df07/go-weekend-raytracer/pkg/renderer"
)

// NewTwoSpheresScene creates a gray diffuse sphere resting on a huge gray ground sphere,
// viewed from the origin
func NewTwoSpheresScene(cameraOverrides ...renderer.CameraConfig) *Scene {
	s := newScene(renderer.DefaultCameraConfig(), core.DefaultSamplingConfig(), cameraOverrides...)

	gray := material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))
	s.AddSphere(core.NewVec3(0, 0, -1), 0.5, gray)
	s.AddSphere(core.NewVec3(0, -100.5, -1), 100, gray)

	return s
}
