package apiversion

// Descriptor describes one published API version as seen by documentation
// generators.
type Descriptor struct {
	Version    Version
	GroupName  string
	Deprecated bool
}

// NewDescriptor builds a descriptor whose group name derives from the version.
func NewDescriptor(v Version, deprecated bool) Descriptor {
	return Descriptor{Version: v, GroupName: v.GroupName(), Deprecated: deprecated}
}

// Provider reports the currently configured API versions.
type Provider interface {
	Descriptions() []Descriptor
}

// StaticProvider is a fixed list of descriptors.
type StaticProvider []Descriptor

// Descriptions returns a copy of the list.
func (p StaticProvider) Descriptions() []Descriptor {
	if len(p) == 0 {
		return nil
	}
	out := make([]Descriptor, len(p))
	copy(out, p)
	return out
}
