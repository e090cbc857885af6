package lights

// LightSampler picks one light out of a scene's full light list to draw a
// next-event-estimation sample from. The sampler built by
// NewUniformLightSampler selects uniformly regardless of power, matching the reference renderer's policy -- power-
// weighted importance sampling is not implemented.
type LightSampler struct {
	lights []Light
}

// NewUniformLightSampler builds a sampler over the given lights.
func NewUniformLightSampler(lights []Light) *LightSampler {
	return &LightSampler{lights: lights}
}

// Sample returns the light chosen for u in [0,1) and its selection
// probability (1/len(lights)), or ok=false if there are no lights.
func (s *LightSampler) Sample(u float64) (light Light, pdf float64, ok bool) {
	n := len(s.lights)
	if n == 0 {
		return nil, 0, false
	}
	idx := int(u * float64(n))
	if idx >= n {
		idx = n - 1
	}
	return s.lights[idx], 1 / float64(n), true
}

// Pdf returns the selection probability of any light under this policy.
func (s *LightSampler) Pdf(light Light) float64 {
	if len(s.lights) == 0 {
		return 0
	}
	return 1 / float64(len(s.lights))
}
