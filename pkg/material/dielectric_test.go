package material

import (
	"math"
	"math/rand"
	"testing"

	"github.com/df07/go-weekend-raytracer/pkg/core"
)

func TestDielectricBasicBehavior(t *testing.T) {
	// Create a glass material (refractive index of 1.5)
	glass := NewDielectric(1.5)

	rayDirection := core.NewVec3(1, -1, 0).Normalize() // 45-degree angle
	ray := core.Ray{Origin: core.NewVec3(0, 1, 0), Direction: rayDirection}

	hit := HitRecord{
		Point:     core.NewVec3(0, 0, 0),
		Normal:    core.NewVec3(0, 1, 0), // Normal pointing up
		T:         1.0,
		FrontFace: true,
		Material:  glass,
	}

	sampler := core.NewRandomSampler(rand.New(rand.NewSource(42)))
	result, scattered := glass.Scatter(ray, hit, sampler)

	if !scattered {
		t.Error("Dielectric should always scatter")
	}

	// Check that attenuation is white (no color absorption)
	expectedAttenuation := core.NewVec3(1.0, 1.0, 1.0)
	if result.Attenuation != expectedAttenuation {
		t.Errorf("Expected attenuation %v, got %v", expectedAttenuation, result.Attenuation)
	}

	// Verify that both reflection and refraction can occur
	hasReflection := false
	hasRefraction := false

	for seed := int64(0); seed < 1000 && (!hasReflection || !hasRefraction); seed++ {
		sampler := core.NewRandomSampler(rand.New(rand.NewSource(seed)))
		result, ok := glass.Scatter(ray, hit, sampler)
		if !ok {
			t.Fatalf("Dielectric should always scatter (seed %d)", seed)
		}

		// Reflection leaves the surface, refraction enters it
		if result.Scattered.Direction.Y > 0 {
			hasReflection = true
		} else {
			hasRefraction = true
		}
	}

	if !hasRefraction {
		t.Error("Expected to see refraction in at least some cases")
	}
	if !hasReflection {
		t.Error("Expected to see Fresnel reflection in at least some cases")
	}
}

func TestDielectricTotalInternalReflection(t *testing.T) {
	glass := NewDielectric(1.5)

	// Create a ray going from glass to air at a steep angle (should cause total internal reflection)
	rayDirection := core.NewVec3(1, 0.1, 0).Normalize()
	ray := core.Ray{Origin: core.NewVec3(0, 0, 0), Direction: rayDirection}

	// Back face hit: the stored normal faces against the ray
	hit := HitRecord{
		Point:     core.NewVec3(0, 0, 0),
		Normal:    core.NewVec3(0, -1, 0),
		T:         1.0,
		FrontFace: false,
	}

	// A draw of 0.999 would always refract if refraction were possible
	sampler := &constantSampler{value: 0.999}
	result, scattered := glass.Scatter(ray, hit, sampler)
	if !scattered {
		t.Fatal("Dielectric should always scatter")
	}

	expected := core.Reflect(rayDirection, hit.Normal)
	if result.Scattered.Direction.Subtract(expected).Length() > 1e-12 {
		t.Errorf("Expected total internal reflection %v, got %v", expected, result.Scattered.Direction)
	}
}

func TestDielectricNormalIncidenceRefraction(t *testing.T) {
	glass := NewDielectric(1.5)
	ray := core.NewRay(core.NewVec3(0, 0, 1), core.NewVec3(0, 0, -2))
	hit := HitRecord{
		Point:     core.NewVec3(0, 0, 0),
		Normal:    core.NewVec3(0, 0, 1),
		FrontFace: true,
	}

	// Draw above the 4% reflectance: the ray refracts straight through
	sampler := &constantSampler{value: 0.5}
	result, _ := glass.Scatter(ray, hit, sampler)

	expected := core.NewVec3(0, 0, -1)
	if result.Scattered.Direction.Subtract(expected).Length() > 1e-12 {
		t.Errorf("Expected straight refraction %v, got %v", expected, result.Scattered.Direction)
	}

	// Draw below the 4% reflectance: the ray reflects straight back
	sampler = &constantSampler{value: 0.01}
	result, _ = glass.Scatter(ray, hit, sampler)

	expected = core.NewVec3(0, 0, 1)
	if result.Scattered.Direction.Subtract(expected).Length() > 1e-12 {
		t.Errorf("Expected reflection %v, got %v", expected, result.Scattered.Direction)
	}
}

func TestReflectance(t *testing.T) {
	tests := []struct {
		name     string
		cosine   float64
		ratio    float64
		expected float64
	}{
		{"Normal incidence entering glass", 1.0, 1.0 / 1.5, 0.04},
		{"Normal incidence exiting glass", 1.0, 1.5, 0.04},
		{"Grazing incidence", 0.0, 1.0 / 1.5, 1.0},
		{"Matched media", 1.0, 1.0, 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Reflectance(tt.cosine, tt.ratio)
			if math.Abs(got-tt.expected) > 1e-9 {
				t.Errorf("Expected reflectance %f, got %f", tt.expected, got)
			}
		})
	}
}

func TestReflectance_Monotonic(t *testing.T) {
	prev := Reflectance(1.0, 1.0/1.5)
	for cos := 0.95; cos >= 0; cos -= 0.05 {
		r := Reflectance(cos, 1.0/1.5)
		if r < prev {
			t.Errorf("Reflectance should grow toward grazing angles: R(%f)=%f < %f", cos, r, prev)
		}
		prev = r
	}
}
