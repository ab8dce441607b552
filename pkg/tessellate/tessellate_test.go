package tessellate

import (
	"testing"

	"github.com/chazu/dovetail/pkg/joint"
	"github.com/chazu/dovetail/pkg/kernel"
	"github.com/chazu/dovetail/pkg/kernel/sdfx"
)

func buildMedium(t *testing.T, variant joint.Variant) joint.BuildResult {
	t.Helper()
	l, err := joint.ComputeLayout(joint.WorkpieceSpec{Width: 100, Height: 15}, joint.DivisionMedium, 2)
	if err != nil {
		t.Fatalf("ComputeLayout: %v", err)
	}
	res, err := joint.BuildParts(l, 100, 15, 20, variant)
	if err != nil {
		t.Fatalf("BuildParts: %v", err)
	}
	return res
}

// maxY returns the largest vertex y coordinate in a mesh.
func maxY(m *kernel.Mesh) float32 {
	best := float32(-1e30)
	for i := 1; i < len(m.Vertices); i += 3 {
		if m.Vertices[i] > best {
			best = m.Vertices[i]
		}
	}
	return best
}

func TestBoardsStraight(t *testing.T) {
	parts := buildMedium(t, joint.VariantStraight)
	k := sdfx.New()

	meshes, err := Boards(parts, 100, 15, 20, 0, joint.VariantStraight, k)
	if err != nil {
		t.Fatalf("Boards: %v", err)
	}
	if len(meshes) != 2 {
		t.Fatalf("expected 2 meshes, got %d", len(meshes))
	}
	if meshes[0].Name != PinBoardName {
		t.Errorf("mesh 0 name = %q, want %q", meshes[0].Name, PinBoardName)
	}
	if meshes[1].Name != TailBoardName {
		t.Errorf("mesh 1 name = %q, want %q", meshes[1].Name, TailBoardName)
	}
	for _, m := range meshes {
		if m.IsEmpty() {
			t.Errorf("mesh %q is empty", m.Name)
		}
		if len(m.Vertices) != len(m.Normals) {
			t.Errorf("mesh %q: vertices length %d != normals length %d", m.Name, len(m.Vertices), len(m.Normals))
		}
	}
}

// TestBoardsExplodedOffset: the assembly offset moves the tail board
// along +y and leaves the pin board alone.
func TestBoardsExplodedOffset(t *testing.T) {
	parts := buildMedium(t, joint.VariantStraight)
	k := sdfx.New()

	assembled, err := Boards(parts, 100, 15, 20, 0, joint.VariantStraight, k)
	if err != nil {
		t.Fatalf("Boards assembled: %v", err)
	}
	exploded, err := Boards(parts, 100, 15, 20, 60, joint.VariantStraight, k)
	if err != nil {
		t.Fatalf("Boards exploded: %v", err)
	}

	shift := maxY(exploded[1]) - maxY(assembled[1])
	if shift < 55 || shift > 65 {
		t.Errorf("tail board shifted by %f, want ~60", shift)
	}
	pinShift := maxY(exploded[0]) - maxY(assembled[0])
	if pinShift < -2 || pinShift > 2 {
		t.Errorf("pin board shifted by %f, want ~0", pinShift)
	}
}

func TestBoardsDegenerate(t *testing.T) {
	l, err := joint.ComputeLayout(joint.WorkpieceSpec{Width: 10, Height: 40}, joint.DivisionCoarse, 2)
	if err != nil {
		t.Fatalf("ComputeLayout: %v", err)
	}
	parts, err := joint.BuildParts(l, 10, 40, 12, joint.VariantStraight)
	if err != nil {
		t.Fatalf("BuildParts: %v", err)
	}

	meshes, err := Boards(parts, 10, 40, 12, 0, joint.VariantStraight, sdfx.New())
	if err != nil {
		t.Fatalf("Boards: %v", err)
	}
	// Both boards still tessellate: a full-width pin end and a plain
	// tail board body with no tails.
	for _, m := range meshes {
		if m.IsEmpty() {
			t.Errorf("mesh %q is empty", m.Name)
		}
	}
}

func TestBoardsRejectsBadDimensions(t *testing.T) {
	parts := buildMedium(t, joint.VariantStraight)
	if _, err := Boards(parts, 0, 15, 20, 0, joint.VariantStraight, sdfx.New()); err == nil {
		t.Error("expected error for zero board width")
	}
	if _, err := Boards(joint.BuildResult{}, 100, 15, 20, 0, joint.VariantStraight, sdfx.New()); err == nil {
		t.Error("expected error for empty part set")
	}
}
