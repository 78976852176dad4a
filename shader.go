// seehuhn.de/go/linemesh - antialiased line meshes
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package linemesh

import "strconv"

// FeatherAlpha returns the opacity of a fragment whose interpolated normal
// has length normalLen.  lineWidth is the geometry width handed to the
// shader as u_lineWidth, and feather the width of the falloff band.
//
// This is the CPU equivalent of [FragmentShader].
func FeatherAlpha(normalLen, lineWidth, feather float64) float64 {
	lw := lineWidth + FragmentWidthPadding
	dist := normalLen * lw
	if dist < lw-2*feather {
		return 1
	}
	return max(0, min(1, (lw-dist)/(2*feather)))
}

var featherDefine = "#define feather " + strconv.FormatFloat(DefaultFeather, 'f', 1, 64) + "\n"
var paddingDefine = "#define widthPadding " + strconv.FormatFloat(FragmentWidthPadding, 'f', 1, 64) + "\n"

// featherFunc must stay in sync with FeatherAlpha.
const featherFunc = `
float featherAlpha(vec2 normal) {
    float lineWidth = u_lineWidth + widthPadding;
    float dist = length(normal) * lineWidth;
    if (dist < lineWidth - 2.0 * feather) {
        return 1.0;
    }
    return clamp((lineWidth - dist) / (2.0 * feather), 0.0, 1.0);
}
`

// VertexShader is the GLSL vertex stage for meshes without the
// direction attribute (stride 4).
const VertexShader = `#version 330 core

layout(location = 0) in vec2 a_Position;
layout(location = 1) in vec2 a_Normal;

out vec2 vNormal;

uniform mat4 modelView;
uniform mat4 project;

void main() {
    gl_Position = project * modelView * vec4(a_Position, 0.0, 1.0);
    vNormal = a_Normal;
}
`

// FragmentShader is the GLSL fragment stage matching [VertexShader].
var FragmentShader = `#version 330 core

` + featherDefine + paddingDefine + `
in vec2 vNormal;
out vec4 fColor;

uniform float u_lineWidth;
uniform vec4 u_color;
` + featherFunc + `
void main() {
    fColor = vec4(u_color.rgb, u_color.a * featherAlpha(vNormal));
}
`

// VertexShaderDirection is the GLSL vertex stage for meshes with the
// direction attribute (stride 6).
const VertexShaderDirection = `#version 330 core

layout(location = 0) in vec2 a_Position;
layout(location = 1) in vec2 a_Normal;
layout(location = 2) in vec2 a_Direction;

out vec2 vNormal;
out vec2 vDirection;

uniform mat4 modelView;
uniform mat4 project;

void main() {
    gl_Position = project * modelView * vec4(a_Position, 0.0, 1.0);
    vNormal = a_Normal;
    vDirection = a_Direction;
}
`

// FragmentShaderDirection is the GLSL fragment stage matching
// [VertexShaderDirection].  In addition to the edge feather it fades out
// the last u_capFeather fraction of the interpolated direction length,
// which softens the line ends.
var FragmentShaderDirection = `#version 330 core

` + featherDefine + paddingDefine + `
in vec2 vNormal;
in vec2 vDirection;
out vec4 fColor;

uniform float u_lineWidth;
uniform float u_capFeather;
uniform vec4 u_color;
` + featherFunc + `
void main() {
    float cap = 1.0 - smoothstep(1.0 - u_capFeather, 1.0, length(vDirection));
    fColor = vec4(u_color.rgb, u_color.a * featherAlpha(vNormal) * cap);
}
`
