// Package shaders holds the GLSL sources for the road scene.
package shaders

// RibbonVertexShader transforms the road mesh. Attribute layout matches
// road.MeshData.Interleaved: position, normal, uv.
const RibbonVertexShader = `#version 410 core

layout (location = 0) in vec3 aPosition;
layout (location = 1) in vec3 aNormal;
layout (location = 2) in vec2 aUV;

uniform mat4 uViewProj;
uniform mat4 uModel;

out vec3 vNormal;
out vec2 vUV;
out vec3 vWorldPos;

void main() {
    vec4 world = uModel * vec4(aPosition, 1.0);
    vWorldPos = world.xyz;
    vNormal = mat3(uModel) * aNormal;
    vUV = aUV;
    gl_Position = uViewProj * world;
}
`

// RibbonFragmentShader shades the road with a single directional light.
const RibbonFragmentShader = `#version 410 core

in vec3 vNormal;
in vec2 vUV;
in vec3 vWorldPos;

uniform sampler2D uTexture;
uniform bool uUseTexture;
uniform vec3 uColor;
uniform vec3 uLightDir;
uniform vec3 uAmbient;
uniform vec3 uDiffuse;

out vec4 FragColor;

void main() {
    vec3 base = uUseTexture ? texture(uTexture, vUV).rgb : uColor;
    // The ribbon is single sided; light the back face too.
    vec3 n = normalize(gl_FrontFacing ? vNormal : -vNormal);
    float diff = max(dot(n, normalize(uLightDir)), 0.0);
    FragColor = vec4(base * (uAmbient + uDiffuse * diff), 1.0);
}
`

// LineVertexShader draws coloured debug lines.
const LineVertexShader = `#version 410 core

layout (location = 0) in vec3 aPosition;
layout (location = 1) in vec3 aColor;

uniform mat4 uViewProj;
uniform mat4 uModel;

out vec3 vColor;

void main() {
    vColor = aColor;
    gl_Position = uViewProj * uModel * vec4(aPosition, 1.0);
}
`

// LineFragmentShader outputs the interpolated line colour.
const LineFragmentShader = `#version 410 core

in vec3 vColor;
out vec4 FragColor;

void main() {
    FragColor = vec4(vColor, 1.0);
}
`
