package host

import "fmt"

// ColorSpace identifies the color space of source frames and render
// targets.
type ColorSpace int

const (
	// SpaceSRGB is 8-bit sRGB.
	SpaceSRGB ColorSpace = iota

	// SpaceSRGB16F is sRGB with 16-bit float components.
	SpaceSRGB16F

	// SpaceRec709Extended is extended-range Rec. 709.
	SpaceRec709Extended

	// SpaceRec709SCRGB is scRGB (Rec. 709 primaries, linear, 80-nit
	// reference white).
	SpaceRec709SCRGB
)

// String returns a human-readable name for the color space.
func (s ColorSpace) String() string {
	switch s {
	case SpaceSRGB:
		return "sRGB"
	case SpaceSRGB16F:
		return "sRGB16F"
	case SpaceRec709Extended:
		return "Rec709Extended"
	case SpaceRec709SCRGB:
		return "Rec709SCRGB"
	default:
		return fmt.Sprintf("Unknown(%d)", int(s))
	}
}

// PreferredSpaces returns the color spaces the pipeline can ingest,
// in preference order. scRGB is excluded: the ingress conversion pass
// tonemaps it down rather than ingesting it directly.
func PreferredSpaces() []ColorSpace {
	return []ColorSpace{SpaceSRGB, SpaceSRGB16F, SpaceRec709Extended}
}

// Negotiate picks the working space given the source's space and the
// caller's preference list: the source space when the caller accepts it,
// otherwise the caller's last (least preferred) entry. An empty
// preference list yields the source space unchanged.
func Negotiate(source ColorSpace, preferred []ColorSpace) ColorSpace {
	space := source
	for _, p := range preferred {
		space = p
		if space == source {
			break
		}
	}
	return space
}
