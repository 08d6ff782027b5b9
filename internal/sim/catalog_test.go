package sim

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestBuildCatalogComposition(t *testing.T) {
	catalog := BuildCatalog()

	if len(catalog) != 12 {
		t.Fatalf("expected 12 objects (5 trees, 4 stones, 3 houses), got %d", len(catalog))
	}

	counts := map[*Material]int{}
	for _, obj := range catalog {
		if len(obj.Parts) < 2 {
			t.Errorf("object at %v has %d parts, want at least 2", obj.Position, len(obj.Parts))
		}
		if obj.Scale <= 0 {
			t.Errorf("object at %v has non-positive scale %f", obj.Position, obj.Scale)
		}
		for _, p := range obj.Parts {
			if p.Material == nil {
				t.Errorf("object at %v has a part without material", obj.Position)
			}
			counts[p.Material]++
		}
	}

	if counts[TrunkMaterial] != 5 || counts[LeavesMaterial] != 5 {
		t.Errorf("expected 5 trunks and 5 leaf crowns, got %d and %d",
			counts[TrunkMaterial], counts[LeavesMaterial])
	}
	if counts[StoneMaterial] != 8 {
		t.Errorf("expected 8 stone parts (4 stones x 2 boxes), got %d", counts[StoneMaterial])
	}
	if counts[WallMaterial] != 3 || counts[RoofMaterial] != 3 {
		t.Errorf("expected 3 walls and 3 roofs, got %d and %d",
			counts[WallMaterial], counts[RoofMaterial])
	}
}

func TestWorldPartsScaling(t *testing.T) {
	tree := NewTree(mgl32.Vec3{10, 0, -5}, 2.0)
	parts := tree.WorldParts()

	if len(parts) != 2 {
		t.Fatalf("expected 2 tree parts, got %d", len(parts))
	}

	trunk := parts[0]
	if trunk.Position != (mgl32.Vec3{10, 2, -5}) {
		t.Errorf("trunk position = %v, want (10,2,-5)", trunk.Position)
	}
	if trunk.Scale != (mgl32.Vec3{0.8, 4, 0.8}) {
		t.Errorf("trunk scale = %v, want (0.8,4,0.8)", trunk.Scale)
	}
	if trunk.Material != TrunkMaterial {
		t.Error("trunk should use the trunk material")
	}

	leaves := parts[1]
	if leaves.Position != (mgl32.Vec3{10, 5.6, -5}) {
		t.Errorf("leaves position = %v, want (10,5.6,-5)", leaves.Position)
	}
	if leaves.Material != LeavesMaterial {
		t.Error("crown should use the leaves material")
	}
}

func TestMaterialsShared(t *testing.T) {
	a := NewTree(mgl32.Vec3{0, 0, 0}, 1)
	b := NewTree(mgl32.Vec3{5, 0, 5}, 2)

	if a.Parts[0].Material != b.Parts[0].Material {
		t.Error("trees should share the trunk material by reference")
	}
}
