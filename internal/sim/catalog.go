package sim

import "github.com/go-gl/mathgl/mgl32"

// Material is a Phong reflectance profile shared by every object of a
// category.
type Material struct {
	Ambient   mgl32.Vec3
	Diffuse   mgl32.Vec3
	Specular  mgl32.Vec3
	Shininess float32
}

// Fixed material table, one profile per object category.
var (
	TerrainMaterial = &Material{
		Ambient:   mgl32.Vec3{0.15, 0.25, 0.1},
		Diffuse:   mgl32.Vec3{0.4, 0.6, 0.3},
		Specular:  mgl32.Vec3{0.05, 0.05, 0.05},
		Shininess: 4,
	}
	TrunkMaterial = &Material{
		Ambient:   mgl32.Vec3{0.15, 0.1, 0.05},
		Diffuse:   mgl32.Vec3{0.45, 0.3, 0.15},
		Specular:  mgl32.Vec3{0.05, 0.05, 0.05},
		Shininess: 4,
	}
	LeavesMaterial = &Material{
		Ambient:   mgl32.Vec3{0.05, 0.15, 0.05},
		Diffuse:   mgl32.Vec3{0.15, 0.5, 0.15},
		Specular:  mgl32.Vec3{0.1, 0.1, 0.1},
		Shininess: 8,
	}
	StoneMaterial = &Material{
		Ambient:   mgl32.Vec3{0.2, 0.2, 0.2},
		Diffuse:   mgl32.Vec3{0.5, 0.5, 0.52},
		Specular:  mgl32.Vec3{0.3, 0.3, 0.3},
		Shininess: 16,
	}
	WallMaterial = &Material{
		Ambient:   mgl32.Vec3{0.25, 0.2, 0.15},
		Diffuse:   mgl32.Vec3{0.8, 0.7, 0.55},
		Specular:  mgl32.Vec3{0.1, 0.1, 0.1},
		Shininess: 8,
	}
	RoofMaterial = &Material{
		Ambient:   mgl32.Vec3{0.2, 0.08, 0.05},
		Diffuse:   mgl32.Vec3{0.6, 0.2, 0.15},
		Specular:  mgl32.Vec3{0.1, 0.1, 0.1},
		Shininess: 8,
	}
	CloudMaterial = &Material{
		Ambient:   mgl32.Vec3{0.9, 0.9, 0.95},
		Diffuse:   mgl32.Vec3{1.0, 1.0, 1.0},
		Specular:  mgl32.Vec3{0, 0, 0},
		Shininess: 1,
	}
	StarMaterial = &Material{
		Ambient:   mgl32.Vec3{1.0, 1.0, 0.95},
		Diffuse:   mgl32.Vec3{1.0, 1.0, 0.95},
		Specular:  mgl32.Vec3{0, 0, 0},
		Shininess: 1,
	}
	SunMaterial = &Material{
		Ambient:   mgl32.Vec3{1.0, 0.9, 0.5},
		Diffuse:   mgl32.Vec3{1.0, 0.9, 0.5},
		Specular:  mgl32.Vec3{0, 0, 0},
		Shininess: 1,
	}
	MoonMaterial = &Material{
		Ambient:   mgl32.Vec3{0.85, 0.9, 1.0},
		Diffuse:   mgl32.Vec3{0.85, 0.9, 1.0},
		Specular:  mgl32.Vec3{0, 0, 0},
		Shininess: 1,
	}
)

// Part is one box of a category template, in local units that are
// multiplied by the instance scale.
type Part struct {
	Offset   mgl32.Vec3
	Scale    mgl32.Vec3
	Material *Material
}

// Object is a placed decoration composed of template parts.
type Object struct {
	Position mgl32.Vec3
	Scale    float32
	Parts    []Part
}

// WorldPart is a part resolved to world-space transform values.
type WorldPart struct {
	Position mgl32.Vec3
	Scale    mgl32.Vec3
	Material *Material
}

// WorldParts resolves the template parts against the object placement.
func (o *Object) WorldParts() []WorldPart {
	parts := make([]WorldPart, len(o.Parts))
	for i, p := range o.Parts {
		parts[i] = WorldPart{
			Position: o.Position.Add(p.Offset.Mul(o.Scale)),
			Scale:    p.Scale.Mul(o.Scale),
			Material: p.Material,
		}
	}
	return parts
}

// Category templates. Offsets place part centers relative to the ground
// point of the object.
var (
	treeParts = []Part{
		{Offset: mgl32.Vec3{0, 1.0, 0}, Scale: mgl32.Vec3{0.4, 2.0, 0.4}, Material: TrunkMaterial},
		{Offset: mgl32.Vec3{0, 2.8, 0}, Scale: mgl32.Vec3{1.6, 1.6, 1.6}, Material: LeavesMaterial},
	}
	stoneParts = []Part{
		{Offset: mgl32.Vec3{0, 0.4, 0}, Scale: mgl32.Vec3{1.2, 0.8, 1.0}, Material: StoneMaterial},
		{Offset: mgl32.Vec3{0.5, 0.9, 0.2}, Scale: mgl32.Vec3{0.6, 0.4, 0.5}, Material: StoneMaterial},
	}
	houseParts = []Part{
		{Offset: mgl32.Vec3{0, 1.25, 0}, Scale: mgl32.Vec3{3.0, 2.5, 3.0}, Material: WallMaterial},
		{Offset: mgl32.Vec3{0, 3.1, 0}, Scale: mgl32.Vec3{3.4, 1.2, 3.4}, Material: RoofMaterial},
	}
)

// NewTree places a tree instance.
func NewTree(position mgl32.Vec3, scale float32) Object {
	return Object{Position: position, Scale: scale, Parts: treeParts}
}

// NewStone places a stone instance.
func NewStone(position mgl32.Vec3, scale float32) Object {
	return Object{Position: position, Scale: scale, Parts: stoneParts}
}

// NewHouse places a house instance.
func NewHouse(position mgl32.Vec3, scale float32) Object {
	return Object{Position: position, Scale: scale, Parts: houseParts}
}

// BuildCatalog returns the fixed scene decorations: 5 trees, 4 stones
// and 3 houses at hand-placed positions.
func BuildCatalog() []Object {
	return []Object{
		NewTree(mgl32.Vec3{-12, 0, -8}, 1.0),
		NewTree(mgl32.Vec3{8, 0, -15}, 1.4),
		NewTree(mgl32.Vec3{-20, 0, 14}, 0.8),
		NewTree(mgl32.Vec3{18, 0, 10}, 1.2),
		NewTree(mgl32.Vec3{2, 0, 22}, 1.0),

		NewStone(mgl32.Vec3{-6, 0, 4}, 1.0),
		NewStone(mgl32.Vec3{14, 0, -4}, 0.7),
		NewStone(mgl32.Vec3{-16, 0, -18}, 1.3),
		NewStone(mgl32.Vec3{6, 0, 12}, 0.9),

		NewHouse(mgl32.Vec3{-10, 0, 25}, 1.0),
		NewHouse(mgl32.Vec3{22, 0, -20}, 1.2),
		NewHouse(mgl32.Vec3{-28, 0, -6}, 0.9),
	}
}
