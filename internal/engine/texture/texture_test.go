package texture

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Faultbox/skr/internal/engine/errstate"
)

func TestRoleString(t *testing.T) {
	tests := []struct {
		role Role
		want string
	}{
		{RoleDiffuse, "diffuse"},
		{RoleSpecular, "specular"},
		{RoleNormal, "normal"},
		{RoleHeight, "height"},
		{RoleEmissive, "emissive"},
		{RoleAmbient, "ambient"},
		{RoleMetallic, "metallic"},
		{RoleRoughness, "roughness"},
		{RoleReflection, "reflection"},
		{RoleUnknown, "unknown"},
		{Role(42), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.role.String(); got != tt.want {
			t.Errorf("Role(%d).String() = %q, want %q", tt.role, got, tt.want)
		}
	}
}

// buildTGA builds a minimal uncompressed 24-bit TGA with the given
// solid BGR color, stored bottom-up (descriptor 0).
func buildTGA(width, height int, b, g, r byte) []byte {
	header := make([]byte, 18)
	header[2] = TGATypeUncompressed
	header[12] = byte(width)
	header[13] = byte(width >> 8)
	header[14] = byte(height)
	header[15] = byte(height >> 8)
	header[16] = 24

	data := header
	for i := 0; i < width*height; i++ {
		data = append(data, b, g, r)
	}
	return data
}

func TestDecodeTGAUncompressed(t *testing.T) {
	img, err := DecodeTGA(buildTGA(2, 2, 10, 20, 30))
	if err != nil {
		t.Fatalf("DecodeTGA failed: %v", err)
	}

	if img.Width != 2 || img.Height != 2 || img.Channels != 4 {
		t.Fatalf("unexpected dimensions: %dx%d ch=%d", img.Width, img.Height, img.Channels)
	}
	if len(img.Pixels) != 2*2*4 {
		t.Fatalf("expected 16 pixel bytes, got %d", len(img.Pixels))
	}
	// BGR source becomes RGBA, alpha forced opaque for 24-bit
	if img.Pixels[0] != 30 || img.Pixels[1] != 20 || img.Pixels[2] != 10 || img.Pixels[3] != 255 {
		t.Errorf("unexpected first pixel: %v", img.Pixels[:4])
	}
}

func TestDecodeTGARLE(t *testing.T) {
	header := make([]byte, 18)
	header[2] = TGATypeRLE
	header[12] = 2
	header[14] = 1
	header[16] = 32

	// one RLE packet: repeat the same BGRA pixel twice
	data := append(header, 0x81, 1, 2, 3, 128)

	img, err := DecodeTGA(data)
	if err != nil {
		t.Fatalf("DecodeTGA failed: %v", err)
	}
	for px := 0; px < 2; px++ {
		i := px * 4
		if img.Pixels[i] != 3 || img.Pixels[i+1] != 2 || img.Pixels[i+2] != 1 || img.Pixels[i+3] != 128 {
			t.Errorf("pixel %d = %v, want [3 2 1 128]", px, img.Pixels[i:i+4])
		}
	}
}

func TestDecodeTGAErrors(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"too short", []byte{1, 2, 3}},
		{"color mapped", func() []byte {
			d := buildTGA(1, 1, 0, 0, 0)
			d[1] = 1
			return d
		}()},
		{"unsupported type", func() []byte {
			d := buildTGA(1, 1, 0, 0, 0)
			d[2] = 3
			return d
		}()},
		{"unsupported depth", func() []byte {
			d := buildTGA(1, 1, 0, 0, 0)
			d[16] = 16
			return d
		}()},
		{"truncated pixels", buildTGA(4, 4, 0, 0, 0)[:30]},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := DecodeTGA(tt.data); err == nil {
				t.Error("expected decode error")
			}
		})
	}
}

func TestTGALoader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tex.tga")
	if err := os.WriteFile(path, buildTGA(2, 2, 1, 2, 3), 0644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}

	var loader TGALoader
	img, err := loader.Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if img.Width != 2 || img.Height != 2 {
		t.Errorf("unexpected size %dx%d", img.Width, img.Height)
	}
	loader.Free(img) // no-op, must not panic
}

func TestTGALoaderMissing(t *testing.T) {
	var loader TGALoader
	_, err := loader.Load("/nonexistent/tex.tga")
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if kind, ok := errstate.KindOf(err); !ok || kind != errstate.KindIO {
		t.Errorf("expected IO error, got %v", err)
	}
}
