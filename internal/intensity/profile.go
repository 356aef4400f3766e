package intensity

import (
	"fmt"

	"github.com/Harshitk-cp/emgine/internal/appraisal"
)

// Profile holds one Intensity per emotion channel. A Profile is never
// modified after construction; Apply returns a fresh copy.
type Profile struct {
	levels map[appraisal.Channel]Intensity
}

// NewProfile returns a profile with every channel at zero.
func NewProfile() Profile {
	return Profile{levels: map[appraisal.Channel]Intensity{}}
}

// ProfileFromMap builds a profile from stored levels. Unknown channel names fail.
func ProfileFromMap(m map[string]float64) (Profile, error) {
	p := NewProfile()
	for name, v := range m {
		c, err := appraisal.ParseChannel(name)
		if err != nil {
			return Profile{}, fmt.Errorf("profile: %w", err)
		}
		p.levels[c] = Intensity(v)
	}
	return p, nil
}

// Get returns the intensity of c, zero when unset.
func (p Profile) Get(c appraisal.Channel) Intensity {
	return p.levels[c]
}

// Apply returns a copy of p with chg added to channel c.
func (p Profile) Apply(c appraisal.Channel, chg Change) Profile {
	out := Profile{levels: make(map[appraisal.Channel]Intensity, len(p.levels)+1)}
	for k, v := range p.levels {
		out.levels[k] = v
	}
	out.levels[c] = p.levels[c].Update(chg)
	return out
}

// Map returns the levels keyed by channel name, including zero channels.
func (p Profile) Map() map[string]float64 {
	out := make(map[string]float64, len(appraisal.AllChannels()))
	for _, c := range appraisal.AllChannels() {
		out[string(c)] = p.levels[c].Real()
	}
	return out
}

// Vector returns the levels in appraisal.AllChannels order.
func (p Profile) Vector() []float32 {
	channels := appraisal.AllChannels()
	out := make([]float32, len(channels))
	for i, c := range channels {
		out[i] = float32(p.levels[c])
	}
	return out
}
