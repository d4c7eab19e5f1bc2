package opengl

// All four shading variants share one vertex shader that moves lighting into
// tangent space. The rigid inverse of the model-view matrix carries the
// eye-space light and the eye point back into object space, where the
// tangent frame lives; the fragment shaders then work entirely in height
// map space.
const surfaceVertSrc = `
#version 410 core

layout(location = 0) in vec3 inPosition;
layout(location = 1) in vec2 inUV;
layout(location = 2) in vec3 inNormal;
layout(location = 3) in vec4 inTangent;

uniform mat4 mvp;
uniform mat4 modelViewInv;
uniform vec3 lightPosEye;

out vec2 fragUV;
out vec3 tsLightDir;
out vec3 tsViewDir;

void main() {
	vec3 eyeObj   = (modelViewInv * vec4(0.0, 0.0, 0.0, 1.0)).xyz;
	vec3 lightObj = (modelViewInv * vec4(lightPosEye, 1.0)).xyz;

	vec3 N = normalize(inNormal);
	vec3 T = normalize(inTangent.xyz);
	T = normalize(T - N * dot(N, T));
	vec3 B = cross(N, T) * inTangent.w;

	vec3 L = lightObj - inPosition;
	vec3 V = eyeObj - inPosition;

	tsLightDir = vec3(dot(L, T), dot(L, B), dot(L, N));
	tsViewDir  = vec3(dot(V, T), dot(V, B), dot(V, N));
	fragUV     = inUV;

	gl_Position = mvp * vec4(inPosition, 1.0);
}
` + "\x00"

// Basic variant: single-step parallax offset plus Blinn-Phong normal mapping.
const basicFragSrc = `
#version 410 core

in vec2 fragUV;
in vec3 tsLightDir;
in vec3 tsViewDir;

uniform sampler2D diffuseMap;
uniform sampler2D normalMap;
uniform sampler2D heightMap;

uniform vec3  lightColor;
uniform float lightIntensity;
uniform float bumpScale;
uniform bool  parallaxEnabled;
uniform bool  showNormals;

out vec4 outColor;

void main() {
	vec3 V = normalize(tsViewDir);

	vec2 uv = fragUV;
	if (parallaxEnabled) {
		float h = texture(heightMap, uv).r;
		uv += (h * 2.0 - 1.0) * bumpScale * V.xy / max(V.z, 0.1);
	}

	vec3 N = normalize(texture(normalMap, uv).rgb * 2.0 - 1.0);
	if (showNormals) {
		outColor = vec4(N * 0.5 + 0.5, 1.0);
		return;
	}

	vec3 L = normalize(tsLightDir);
	vec3 H = normalize(L + V);

	float diff = max(dot(N, L), 0.0);
	float spec = pow(max(dot(N, H), 0.0), 32.0);

	vec3 albedo = texture(diffuseMap, uv).rgb;
	vec3 color = lightColor * lightIntensity * (albedo * (0.15 + diff) + spec * 0.3);
	outColor = vec4(color, 1.0);
}
` + "\x00"

// Steep variant: layered ray march through the height field with optional
// self shadowing toward the light.
const steepFragSrc = `
#version 410 core

in vec2 fragUV;
in vec3 tsLightDir;
in vec3 tsViewDir;

uniform sampler2D diffuseMap;
uniform sampler2D normalMap;
uniform sampler2D heightMap;

uniform vec3  lightColor;
uniform float lightIntensity;
uniform float bumpScale;
uniform bool  parallaxEnabled;
uniform bool  selfShadowing;
uniform bool  showNormals;

out vec4 outColor;

vec2 steepMarch(vec2 uv, vec3 V) {
	float layers = mix(32.0, 8.0, abs(V.z));
	float step = 1.0 / layers;
	vec2 delta = V.xy * bumpScale / (V.z * layers);

	float depth = 0.0;
	float h = 1.0 - texture(heightMap, uv).r;
	while (depth < h) {
		uv -= delta;
		h = 1.0 - texture(heightMap, uv).r;
		depth += step;
	}

	// one secant step between the last two layers
	vec2 prev = uv + delta;
	float after = h - depth;
	float before = (1.0 - texture(heightMap, prev).r) - depth + step;
	float w = after / (after - before);
	return mix(uv, prev, w);
}

float shadowFactor(vec2 uv, vec3 L) {
	if (L.z <= 0.0) {
		return 0.0;
	}
	float layers = 16.0;
	float h0 = 1.0 - texture(heightMap, uv).r;
	float step = h0 / layers;
	vec2 delta = L.xy * bumpScale / (L.z * layers) * h0;

	float depth = h0 - step;
	vec2 p = uv + delta;
	while (depth > 0.0) {
		if (1.0 - texture(heightMap, p).r < depth) {
			return 0.35;
		}
		p += delta;
		depth -= step;
	}
	return 1.0;
}

void main() {
	vec3 V = normalize(tsViewDir);
	vec3 L = normalize(tsLightDir);

	vec2 uv = fragUV;
	if (parallaxEnabled) {
		uv = steepMarch(uv, V);
	}

	vec3 N = normalize(texture(normalMap, uv).rgb * 2.0 - 1.0);
	if (showNormals) {
		outColor = vec4(N * 0.5 + 0.5, 1.0);
		return;
	}

	float diff = max(dot(N, L), 0.0);
	float spec = pow(max(dot(N, normalize(L + V)), 0.0), 48.0);

	float shadow = 1.0;
	if (selfShadowing && diff > 0.0) {
		shadow = shadowFactor(uv, L);
	}

	vec3 albedo = texture(diffuseMap, uv).rgb;
	vec3 color = lightColor * lightIntensity *
		(albedo * (0.15 + diff * shadow) + spec * shadow * 0.4);
	outColor = vec4(color, 1.0);
}
` + "\x00"

// Enhanced variant: the steep march plus the toggleable extras - relief
// style refinement, procedural surface noise, distance attenuation, height
// fog tint and filmic tone mapping.
const enhancedFragSrc = `
#version 410 core

in vec2 fragUV;
in vec3 tsLightDir;
in vec3 tsViewDir;

uniform sampler2D diffuseMap;
uniform sampler2D normalMap;
uniform sampler2D heightMap;

uniform vec3  lightColor;
uniform float lightIntensity;
uniform float bumpScale;
uniform float time;

uniform bool parallaxEnabled;
uniform bool selfShadowing;
uniform bool reliefMapping;
uniform bool proceduralNoise;
uniform bool toneMapping;
uniform bool heightFog;
uniform bool caustics;
uniform bool showNormals;
uniform bool showTangents;

out vec4 outColor;

float hash(vec2 p) {
	return fract(sin(dot(p, vec2(127.1, 311.7))) * 43758.5453);
}

float noise(vec2 p) {
	vec2 i = floor(p);
	vec2 f = fract(p);
	f = f * f * (3.0 - 2.0 * f);
	return mix(mix(hash(i), hash(i + vec2(1, 0)), f.x),
	           mix(hash(i + vec2(0, 1)), hash(i + vec2(1, 1)), f.x), f.y);
}

float surfaceHeight(vec2 uv) {
	float h = texture(heightMap, uv).r;
	if (proceduralNoise) {
		h = clamp(h + (noise(uv * 24.0) - 0.5) * 0.15, 0.0, 1.0);
	}
	return h;
}

vec2 steepMarch(vec2 uv, vec3 V) {
	float layers = mix(48.0, 12.0, abs(V.z));
	float step = 1.0 / layers;
	vec2 delta = V.xy * bumpScale / (V.z * layers);

	float depth = 0.0;
	float h = 1.0 - surfaceHeight(uv);
	while (depth < h) {
		uv -= delta;
		h = 1.0 - surfaceHeight(uv);
		depth += step;
	}

	if (reliefMapping) {
		// binary search refinement between the straddling layers
		vec2 lo = uv;
		vec2 hi = uv + delta;
		float dlo = depth;
		float dhi = depth - step;
		for (int i = 0; i < 5; i++) {
			vec2 mid = (lo + hi) * 0.5;
			float dm = (dlo + dhi) * 0.5;
			if (1.0 - surfaceHeight(mid) < dm) {
				lo = mid; dlo = dm;
			} else {
				hi = mid; dhi = dm;
			}
		}
		return (lo + hi) * 0.5;
	}

	vec2 prev = uv + delta;
	float after = h - depth;
	float before = (1.0 - surfaceHeight(prev)) - depth + step;
	return mix(uv, prev, after / (after - before));
}

float shadowFactor(vec2 uv, vec3 L) {
	if (L.z <= 0.0) {
		return 0.0;
	}
	float layers = 24.0;
	float h0 = 1.0 - surfaceHeight(uv);
	float step = h0 / layers;
	vec2 delta = L.xy * bumpScale / (L.z * layers) * h0;

	float depth = h0 - step;
	vec2 p = uv + delta;
	float factor = 1.0;
	while (depth > 0.0) {
		float h = 1.0 - surfaceHeight(p);
		if (h < depth) {
			factor = min(factor, 0.3 + 0.7 * (depth - h) * 8.0);
		}
		p += delta;
		depth -= step;
	}
	return clamp(factor, 0.3, 1.0);
}

vec3 filmic(vec3 x) {
	x = max(vec3(0.0), x - 0.004);
	return (x * (6.2 * x + 0.5)) / (x * (6.2 * x + 1.7) + 0.06);
}

void main() {
	vec3 V = normalize(tsViewDir);
	vec3 L = normalize(tsLightDir);

	vec2 uv = fragUV;
	if (parallaxEnabled) {
		uv = steepMarch(uv, V);
	}

	vec3 N = normalize(texture(normalMap, uv).rgb * 2.0 - 1.0);
	if (showNormals) {
		outColor = vec4(N * 0.5 + 0.5, 1.0);
		return;
	}
	if (showTangents) {
		outColor = vec4(uv, surfaceHeight(uv), 1.0);
		return;
	}

	float dist = length(tsLightDir);
	float atten = lightIntensity / (1.0 + 0.002 * dist * dist);

	float diff = max(dot(N, L), 0.0);
	float spec = pow(max(dot(N, normalize(L + V)), 0.0), 64.0);

	float shadow = 1.0;
	if (selfShadowing && diff > 0.0) {
		shadow = shadowFactor(uv, L);
	}

	vec3 albedo = texture(diffuseMap, uv).rgb;
	if (caustics) {
		float c = noise(uv * 12.0 + vec2(time * 0.4, time * 0.3));
		albedo += vec3(0.1, 0.15, 0.2) * pow(c, 3.0) * 2.0;
	}

	vec3 color = lightColor * atten * (albedo * (0.12 + diff * shadow) + spec * shadow * 0.5);
	if (heightFog) {
		float fog = 1.0 - surfaceHeight(uv);
		color = mix(color, vec3(0.55, 0.6, 0.7), fog * 0.35);
	}
	if (toneMapping) {
		color = filmic(color);
	}
	outColor = vec4(color, 1.0);
}
` + "\x00"

// PBR variant: Cook-Torrance GGX on top of the steep parallax march.
const pbrFragSrc = `
#version 410 core

in vec2 fragUV;
in vec3 tsLightDir;
in vec3 tsViewDir;

uniform sampler2D diffuseMap;
uniform sampler2D normalMap;
uniform sampler2D heightMap;

uniform vec3  lightColor;
uniform float lightIntensity;
uniform float bumpScale;
uniform float metallic;
uniform float roughness;
uniform bool  parallaxEnabled;
uniform bool  toneMapping;
uniform bool  showNormals;

out vec4 outColor;

const float PI = 3.14159265359;

vec2 steepMarch(vec2 uv, vec3 V) {
	float layers = mix(32.0, 8.0, abs(V.z));
	float step = 1.0 / layers;
	vec2 delta = V.xy * bumpScale / (V.z * layers);

	float depth = 0.0;
	float h = 1.0 - texture(heightMap, uv).r;
	while (depth < h) {
		uv -= delta;
		h = 1.0 - texture(heightMap, uv).r;
		depth += step;
	}
	return uv;
}

float distributionGGX(vec3 N, vec3 H, float rough) {
	float a2 = rough * rough * rough * rough;
	float NdotH = max(dot(N, H), 0.0);
	float d = NdotH * NdotH * (a2 - 1.0) + 1.0;
	return a2 / (PI * d * d);
}

float geometrySchlickGGX(float NdotV, float rough) {
	float k = (rough + 1.0) * (rough + 1.0) / 8.0;
	return NdotV / (NdotV * (1.0 - k) + k);
}

vec3 fresnelSchlick(float cosTheta, vec3 F0) {
	return F0 + (1.0 - F0) * pow(clamp(1.0 - cosTheta, 0.0, 1.0), 5.0);
}

void main() {
	vec3 V = normalize(tsViewDir);
	vec3 L = normalize(tsLightDir);

	vec2 uv = fragUV;
	if (parallaxEnabled) {
		uv = steepMarch(uv, V);
	}

	vec3 N = normalize(texture(normalMap, uv).rgb * 2.0 - 1.0);
	if (showNormals) {
		outColor = vec4(N * 0.5 + 0.5, 1.0);
		return;
	}

	vec3 H = normalize(L + V);
	vec3 albedo = texture(diffuseMap, uv).rgb;
	vec3 F0 = mix(vec3(0.04), albedo, metallic);

	float NdotL = max(dot(N, L), 0.0);
	float NdotV = max(dot(N, V), 0.0);

	float D = distributionGGX(N, H, roughness);
	float G = geometrySchlickGGX(NdotV, roughness) * geometrySchlickGGX(NdotL, roughness);
	vec3  F = fresnelSchlick(max(dot(H, V), 0.0), F0);

	vec3 specular = (D * G * F) / max(4.0 * NdotV * NdotL, 0.001);
	vec3 kD = (vec3(1.0) - F) * (1.0 - metallic);

	vec3 radiance = lightColor * lightIntensity;
	vec3 color = (kD * albedo / PI + specular) * radiance * NdotL + albedo * 0.03;

	if (toneMapping) {
		color = color / (color + vec3(1.0));
	}
	outColor = vec4(color, 1.0);
}
` + "\x00"

// Flat-color shader for the light marker sphere.
const markerVertSrc = `
#version 410 core
layout(location = 0) in vec3 inPosition;
uniform mat4 mvp;
void main() {
	gl_Position = mvp * vec4(inPosition, 1.0);
}
` + "\x00"

const markerFragSrc = `
#version 410 core
uniform vec3 markerColor;
out vec4 outColor;
void main() {
	outColor = vec4(markerColor, 1.0);
}
` + "\x00"

// Overlay shader: screen-space quads in pixel coordinates with a solid color.
const overlayVertSrc = `
#version 410 core
layout(location = 0) in vec2 inPosition;
uniform mat4 projection;
void main() {
	gl_Position = projection * vec4(inPosition, 0.0, 1.0);
}
` + "\x00"

const overlayFragSrc = `
#version 410 core
uniform vec4 overlayColor;
out vec4 outColor;
void main() {
	outColor = overlayColor;
}
` + "\x00"
