// Package texture defines texture data and the image loader contract.
//
// The engine does not decode images itself: the embedding application
// supplies an ImageLoader, and the renderer uploads whatever pixels it
// returns. A TGA decoder is included for embedders that want one.
package texture

import (
	"github.com/Faultbox/skr/internal/engine/errstate"
)

// Role is the semantic role a texture plays in a material.
type Role int

const (
	RoleDiffuse    Role = iota // base color / albedo
	RoleSpecular               // specular intensity
	RoleNormal                 // tangent-space normal map
	RoleHeight                 // height/displacement
	RoleEmissive               // emissive (glow)
	RoleAmbient                // ambient occlusion
	RoleMetallic               // metallic (PBR)
	RoleRoughness              // roughness (PBR)
	RoleReflection             // reflection/environment
	RoleUnknown                // unknown/unsupported
)

// String returns the role name as used in shader uniform conventions.
func (r Role) String() string {
	switch r {
	case RoleDiffuse:
		return "diffuse"
	case RoleSpecular:
		return "specular"
	case RoleNormal:
		return "normal"
	case RoleHeight:
		return "height"
	case RoleEmissive:
		return "emissive"
	case RoleAmbient:
		return "ambient"
	case RoleMetallic:
		return "metallic"
	case RoleRoughness:
		return "roughness"
	case RoleReflection:
		return "reflection"
	default:
		return "unknown"
	}
}

// Texture is a GPU texture object plus where it came from. ID is zero
// until the texture is created and reset to zero on teardown.
type Texture struct {
	ID   uint32
	Role Role
	Path string
}

// Image is raw decoded pixel data as produced by an ImageLoader. The
// channel layout (packing, order) is the loader's contract.
type Image struct {
	Pixels   []byte
	Width    int
	Height   int
	Channels int
}

// ImageLoader is the decoding contract the embedding application
// fulfills. Load returns the decoded image or an error; Free releases
// the pixel memory once the renderer has uploaded it. Loaders backed
// by Go allocations can make Free a no-op; the hook exists for loaders
// that hand out C memory.
type ImageLoader interface {
	Load(path string) (*Image, error)
	Free(img *Image)
}

// LoadError builds the external-load error reported when a loader
// returns no data.
func LoadError(path string) error {
	return errstate.New(errstate.KindExternalLoad, "failed to load texture %s", path)
}
