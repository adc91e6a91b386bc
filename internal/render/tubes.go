package render

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"strokeview/internal/geom"
	"strokeview/internal/mesh"
)

// tubeSlices controls the roundness of stroke tubes.
const tubeSlices = 12

// Tubes draws stroke segments as lit unit cylinders scaled and rotated into place. The mesh and
// shader are created on first Draw so GPU resources are allocated after the window exists.
type Tubes struct {
	ready    bool
	mesh     rl.Mesh
	mtl      rl.Material
	lit      bool
	viewPos  [3]float32
	lightDir [3]float32
}

// NewTubes returns a tube renderer lit from above-right.
func NewTubes() *Tubes {
	return &Tubes{lightDir: [3]float32{0.5, 1, 0.5}}
}

func (t *Tubes) ensure() {
	if t.ready {
		return
	}
	// Radius 0.5, height 1: scaling by (2r, length, 2r) gives the segment's tube.
	t.mesh = rl.GenMeshCylinder(0.5, 1, tubeSlices)
	t.mtl = rl.LoadMaterialDefault()
	if shader := rl.LoadShaderFromMemory(litVS, litFS); rl.IsShaderValid(shader) {
		t.mtl.Shader = shader
		t.lit = true
	}
	t.ready = true
}

// SetView sets the camera position and direction-to-light for this frame.
func (t *Tubes) SetView(viewPos, lightDir [3]float32) {
	t.viewPos = viewPos
	t.lightDir = lightDir
}

// Draw draws segs under the drawing group transform. Must be called between BeginMode3D and
// EndMode3D.
func (t *Tubes) Draw(segs []mesh.Segment, group rl.Matrix) {
	if len(segs) == 0 {
		return
	}
	t.ensure()
	if t.lit {
		t.setLightUniforms()
	}
	albedo := t.mtl.GetMap(rl.MapAlbedo)
	for _, s := range segs {
		if s.Length == 0 {
			continue
		}
		if albedo != nil {
			albedo.Color = rl.ColorFromNormalized(rl.NewVector4(s.Color.R, s.Color.G, s.Color.B, s.Color.Alpha()))
		}
		rl.DrawMesh(t.mesh, t.mtl, segmentMatrix(s, group))
	}
}

// segmentMatrix places the unit cylinder: its base sits at y=0, so it is first shifted to be
// centered, then scaled, rotated onto the segment direction, moved to the midpoint, and finally
// carried by the group transform.
func segmentMatrix(s mesh.Segment, group rl.Matrix) rl.Matrix {
	d := 2 * s.Radius
	m := rl.MatrixTranslate(0, -0.5, 0)
	m = rl.MatrixMultiply(m, rl.MatrixScale(d, s.Length, d))
	m = rl.MatrixMultiply(m, rl.QuaternionToMatrix(toQuaternion(s.Rotation)))
	m = rl.MatrixMultiply(m, rl.MatrixTranslate(s.Position.X, s.Position.Y, s.Position.Z))
	return rl.MatrixMultiply(m, group)
}

func toQuaternion(q geom.Quat) rl.Quaternion {
	return rl.NewQuaternion(q.X, q.Y, q.Z, q.W)
}

func toVector3(v geom.Vec3) rl.Vector3 {
	return rl.NewVector3(v.X, v.Y, v.Z)
}

// Unload frees the GPU resources.
func (t *Tubes) Unload() {
	if !t.ready {
		return
	}
	rl.UnloadMesh(&t.mesh)
	rl.UnloadMaterial(t.mtl)
	t.ready = false
}

var (
	ambientColor   = [4]float32{0.35, 0.35, 0.38, 1.0}
	lightColor     = [3]float32{1.0, 0.98, 0.95}
	lightIntensity = float32(0.8)
	specularPower  = float32(32.0)
	specularAmount = float32(0.25)
)

// setLightUniforms passes the frame's light and camera to the lit shader (cgo-safe: local arrays).
func (t *Tubes) setLightUniforms() {
	shader := t.mtl.Shader
	viewPos := t.viewPos
	lightDir := t.lightDir
	amb := ambientColor
	col := lightColor
	if loc := rl.GetShaderLocation(shader, "viewPos"); loc >= 0 {
		rl.SetShaderValueV(shader, loc, viewPos[:], rl.ShaderUniformVec3, 1)
	}
	if loc := rl.GetShaderLocation(shader, "lightDir"); loc >= 0 {
		rl.SetShaderValueV(shader, loc, lightDir[:], rl.ShaderUniformVec3, 1)
	}
	if loc := rl.GetShaderLocation(shader, "ambient"); loc >= 0 {
		rl.SetShaderValueV(shader, loc, amb[:], rl.ShaderUniformVec4, 1)
	}
	if loc := rl.GetShaderLocation(shader, "lightColor"); loc >= 0 {
		rl.SetShaderValueV(shader, loc, col[:], rl.ShaderUniformVec3, 1)
	}
	if loc := rl.GetShaderLocation(shader, "lightIntensity"); loc >= 0 {
		rl.SetShaderValue(shader, loc, []float32{lightIntensity}, rl.ShaderUniformFloat)
	}
	if loc := rl.GetShaderLocation(shader, "specularPower"); loc >= 0 {
		rl.SetShaderValue(shader, loc, []float32{specularPower}, rl.ShaderUniformFloat)
	}
	if loc := rl.GetShaderLocation(shader, "specularStrength"); loc >= 0 {
		rl.SetShaderValue(shader, loc, []float32{specularAmount}, rl.ShaderUniformFloat)
	}
}

// Directional light plus ambient, with a small specular highlight so tubes read as round.
const (
	litVS = `#version 330
in vec3 vertexPosition;
in vec3 vertexNormal;
uniform mat4 matProjection;
uniform mat4 matView;
uniform mat4 matModel;
out vec3 fragPosition;
out vec3 fragNormal;
void main() {
  vec4 worldPos = matModel * vec4(vertexPosition, 1.0);
  fragPosition = worldPos.xyz;
  fragNormal = mat3(transpose(inverse(matModel))) * vertexNormal;
  gl_Position = matProjection * matView * worldPos;
}
`
	litFS = `#version 330
in vec3 fragPosition;
in vec3 fragNormal;
uniform vec4 colDiffuse;
uniform vec3 viewPos;
uniform vec3 lightDir;
uniform vec4 ambient;
uniform vec3 lightColor;
uniform float lightIntensity;
uniform float specularPower;
uniform float specularStrength;
out vec4 finalColor;
void main() {
  vec3 N = normalize(fragNormal);
  vec3 L = normalize(lightDir);
  vec3 V = normalize(viewPos - fragPosition);
  float NdotL = max(dot(N, L), 0.0);
  vec3 diffuse = colDiffuse.rgb * NdotL * lightColor * lightIntensity;
  vec3 amb = ambient.rgb * colDiffuse.rgb;
  vec3 H = normalize(L + V);
  float spec = pow(max(dot(N, H), 0.0), specularPower) * specularStrength;
  vec3 specular = lightColor * spec * (NdotL > 0.0 ? 1.0 : 0.0);
  finalColor = vec4(amb + diffuse + specular, colDiffuse.a);
}
`
)
