package shader

import (
	"fmt"

	"github.com/gogpu/naga"
	"github.com/gogpu/wgpu/hal"
)

// convertWGSL is the conversion shader. One fullscreen triangle; the
// fragment entry points mirror the technique names so the host can bind
// the variant ConvertTechnique selected. Tonemapping uses the same
// maxRGB reinhard the compositor applies elsewhere so converted frames
// match passthrough frames.
const convertWGSL = `
struct VertexOutput {
    @builtin(position) position: vec4<f32>,
    @location(0) uv: vec2<f32>,
};

@group(0) @binding(0) var src: texture_2d<f32>;
@group(0) @binding(1) var smp: sampler;

struct Params {
    multiplier: f32,
};
@group(0) @binding(2) var<uniform> params: Params;

@vertex
fn vs_main(@builtin(vertex_index) index: u32) -> VertexOutput {
    var out: VertexOutput;
    let x = f32(i32(index) / 2) * 4.0 - 1.0;
    let y = f32(i32(index) & 1) * 4.0 - 1.0;
    out.position = vec4<f32>(x, y, 0.0, 1.0);
    out.uv = vec2<f32>((x + 1.0) * 0.5, 1.0 - (y + 1.0) * 0.5);
    return out;
}

fn tonemap(rgb: vec3<f32>) -> vec3<f32> {
    let peak = max(rgb.r, max(rgb.g, rgb.b));
    return rgb / (1.0 + max(peak - 1.0, 0.0));
}

@fragment
fn fs_convert(in: VertexOutput) -> @location(0) vec4<f32> {
    return textureSample(src, smp, in.uv);
}

@fragment
fn fs_convert_tonemap(in: VertexOutput) -> @location(0) vec4<f32> {
    let c = textureSample(src, smp, in.uv);
    return vec4<f32>(tonemap(c.rgb), c.a);
}

@fragment
fn fs_convert_multiply_tonemap(in: VertexOutput) -> @location(0) vec4<f32> {
    let c = textureSample(src, smp, in.uv);
    return vec4<f32>(tonemap(c.rgb * params.multiplier), c.a);
}
`

// CompileToSPIRV compiles WGSL source to a SPIR-V word slice.
func CompileToSPIRV(wgslSource string) ([]uint32, error) {
	spirvBytes, err := naga.Compile(wgslSource)
	if err != nil {
		return nil, fmt.Errorf("shader: compile failed: %w", err)
	}

	// SPIR-V is little-endian 32-bit words.
	spirvCode := make([]uint32, len(spirvBytes)/4)
	for i := range spirvCode {
		spirvCode[i] = uint32(spirvBytes[i*4]) |
			uint32(spirvBytes[i*4+1])<<8 |
			uint32(spirvBytes[i*4+2])<<16 |
			uint32(spirvBytes[i*4+3])<<24
	}

	return spirvCode, nil
}

// NewConvertModule compiles the conversion shader and creates its module
// on the host's device.
func NewConvertModule(device hal.Device) (hal.ShaderModule, error) {
	spirv, err := CompileToSPIRV(convertWGSL)
	if err != nil {
		return nil, err
	}

	return device.CreateShaderModule(&hal.ShaderModuleDescriptor{
		Label: "vfx-convert-unorm",
		Source: hal.ShaderSource{
			SPIRV: spirv,
		},
	})
}
