package game

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v3.3-core/gl"
)

// Terrain vertex shader: per-vertex position+color, world position passed
// through for fog.
const terrainVertSrc = `#version 330 core

layout (location = 0) in vec3 aPos;
layout (location = 1) in vec3 aColor;

uniform mat4 model;
uniform mat4 view;
uniform mat4 projection;

out vec3 Color;
out float Height;
out vec3 FragPos;

void main() {
    vec4 worldPos = model * vec4(aPos, 1.0);
    gl_Position = projection * view * worldPos;
    FragPos = worldPos.xyz;
    Color = aColor;
    Height = aPos.y;
}
` + "\x00"

// Terrain fragment shader: fixed diffuse, slight height fade, exponential fog.
const terrainFragSrc = `#version 330 core

in vec3 Color;
in float Height;
in vec3 FragPos;
out vec4 FragColor;

uniform vec3 cameraPos;
uniform vec3 fogColor;
uniform float fogDensity;

void main() {
    vec3 color = Color;
    vec3 lightDir = normalize(vec3(0.5, 1.0, 0.3));
    float diff = max(dot(vec3(0, 1, 0), lightDir), 0.0);
    color *= (0.4 + 0.6 * diff);

    float factor = 1.0 - (Height / 30.0) * 0.2;
    color *= factor;

    float dist = length(cameraPos - FragPos);
    float fogFactor = 1.0 - exp(-fogDensity * dist);
    fogFactor = clamp(fogFactor, 0.0, 1.0);
    color = mix(color, fogColor, fogFactor);

    FragColor = vec4(color, 1.0);
}
` + "\x00"

// Entity vertex shader: flat uniform color for cars, buildings, bullets,
// and puddle discs.
const entityVertSrc = `#version 330 core

layout (location = 0) in vec3 aPos;

uniform mat4 model;
uniform mat4 view;
uniform mat4 projection;
uniform vec3 entityColor;

out vec3 Color;
out vec3 FragPos;

void main() {
    vec4 worldPos = model * vec4(aPos, 1.0);
    gl_Position = projection * view * worldPos;
    FragPos = worldPos.xyz;
    Color = entityColor;
}
` + "\x00"

const entityFragSrc = `#version 330 core

in vec3 Color;
in vec3 FragPos;
out vec4 FragColor;

uniform vec3 cameraPos;
uniform vec3 fogColor;
uniform float fogDensity;
uniform float alpha;

void main() {
    vec3 color = Color;
    vec3 lightDir = normalize(vec3(0.5, 1.0, 0.3));
    float diff = max(dot(vec3(0, 1, 0), lightDir), 0.0);
    color *= (0.5 + 0.5 * diff);

    float dist = length(cameraPos - FragPos);
    float fogFactor = 1.0 - exp(-fogDensity * dist);
    color = mix(color, fogColor, fogFactor);

    FragColor = vec4(color, alpha);
}
` + "\x00"

func compileShader(src string, kind uint32) (uint32, error) {
	shader := gl.CreateShader(kind)
	csrc, free := gl.Strs(src)
	gl.ShaderSource(shader, 1, csrc, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLen)
		buf := strings.Repeat("\x00", int(logLen+1))
		gl.GetShaderInfoLog(shader, logLen, nil, gl.Str(buf))
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("compile shader: %s", strings.TrimRight(buf, "\x00"))
	}
	return shader, nil
}

func linkProgram(vertSrc, fragSrc string) (uint32, error) {
	vs, err := compileShader(vertSrc, gl.VERTEX_SHADER)
	if err != nil {
		return 0, err
	}
	fs, err := compileShader(fragSrc, gl.FRAGMENT_SHADER)
	if err != nil {
		gl.DeleteShader(vs)
		return 0, err
	}

	program := gl.CreateProgram()
	gl.AttachShader(program, vs)
	gl.AttachShader(program, fs)
	gl.LinkProgram(program)

	gl.DetachShader(program, vs)
	gl.DetachShader(program, fs)
	gl.DeleteShader(vs)
	gl.DeleteShader(fs)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLen)
		buf := strings.Repeat("\x00", int(logLen+1))
		gl.GetProgramInfoLog(program, logLen, nil, gl.Str(buf))
		gl.DeleteProgram(program)
		return 0, fmt.Errorf("link program: %s", strings.TrimRight(buf, "\x00"))
	}
	return program, nil
}
