package testing

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-drift/joystick/pkg/layout"
	"github.com/go-drift/joystick/pkg/stick"
)

// UpdateSnapshotsEnv names the variable that rewrites golden files instead of
// comparing against them.
const UpdateSnapshotsEnv = "JOYSTICK_UPDATE_SNAPSHOTS"

// TestingT is the subset of *testing.T used by MatchesFile.
type TestingT interface {
	Helper()
	Fatalf(format string, args ...any)
	Errorf(format string, args ...any)
	Name() string
}

// Snapshot is a golden record of the mounted tree: its layout, the state of
// every stick in it, and the ops a fresh paint produces.
type Snapshot struct {
	Surface    [2]float64  `json:"surface"`
	RenderTree *RenderNode `json:"renderTree,omitempty"`
	DisplayOps []DisplayOp `json:"displayOps,omitempty"`
}

// RenderNode is one render object in a Snapshot.
type RenderNode struct {
	ID       string        `json:"id"`
	Type     string        `json:"type"`
	Size     [2]float64    `json:"size"`
	Offset   [2]float64    `json:"offset"`
	Stick    *StickRecord  `json:"stick,omitempty"`
	Children []*RenderNode `json:"children,omitempty"`
}

// StickRecord is the observable state of a stick render object. Pointer is
// only set while dragging.
type StickRecord struct {
	Density   float64    `json:"density"`
	Phase     string     `json:"phase"`
	Pointer   int64      `json:"pointer,omitempty"`
	Thumb     [2]float64 `json:"thumb"`
	Direction [2]float64 `json:"direction"`
}

// stickObject is the read side of a stick render object.
type stickObject interface {
	Density() float64
	GeometryKnown() bool
	State() stick.State
	Direction() stick.Direction
}

// CaptureSnapshot records the mounted tree as it is now. Sticks that have not
// been laid out carry no StickRecord.
func (t *WidgetTester) CaptureSnapshot() *Snapshot {
	size := t.Size()
	snap := &Snapshot{Surface: [2]float64{round2(size.Width), round2(size.Height)}}
	root := t.surface.Root()
	if root == nil {
		return snap
	}
	ids := make(map[string]int)
	snap.RenderTree = captureNode(root, ids)

	canvas := &serializingCanvas{size: size}
	root.Paint(&layout.PaintContext{Canvas: canvas})
	snap.DisplayOps = canvas.ops
	return snap
}

func captureNode(ro layout.RenderObject, ids map[string]int) *RenderNode {
	typeName := fmt.Sprintf("%T", ro)
	if i := strings.LastIndexByte(typeName, '.'); i >= 0 {
		typeName = typeName[i+1:]
	}
	id := fmt.Sprintf("%s#%d", typeName, ids[typeName])
	ids[typeName]++

	size := ro.Size()
	node := &RenderNode{
		ID:   id,
		Type: typeName,
		Size: [2]float64{round2(size.Width), round2(size.Height)},
	}
	if pd, ok := ro.ParentData().(*layout.BoxParentData); ok {
		node.Offset = [2]float64{round2(pd.Offset.X), round2(pd.Offset.Y)}
	}
	if s, ok := ro.(stickObject); ok && s.GeometryKnown() {
		node.Stick = captureStick(s)
	}
	if visitor, ok := ro.(layout.ChildVisitor); ok {
		visitor.VisitChildren(func(child layout.RenderObject) {
			node.Children = append(node.Children, captureNode(child, ids))
		})
	}
	return node
}

func captureStick(s stickObject) *StickRecord {
	state := s.State()
	dir := s.Direction()
	rec := &StickRecord{
		Density:   round2(s.Density()),
		Phase:     state.Phase.String(),
		Thumb:     [2]float64{round2(state.Thumb.X), round2(state.Thumb.Y)},
		Direction: [2]float64{round2(dir.X), round2(dir.Y)},
	}
	if state.Phase == stick.Dragging {
		rec.Pointer = state.Pointer
	}
	return rec
}

// MatchesFile compares the snapshot with the golden file at path and reports
// the differing lines. With JOYSTICK_UPDATE_SNAPSHOTS=1 the file is rewritten.
func (s *Snapshot) MatchesFile(t TestingT, path string) {
	t.Helper()

	if os.Getenv(UpdateSnapshotsEnv) == "1" {
		if err := s.UpdateFile(path); err != nil {
			t.Fatalf("failed to update snapshot: %v", err)
		}
		return
	}

	expected, err := LoadSnapshot(path)
	if err != nil {
		if os.IsNotExist(err) {
			t.Fatalf("snapshot file missing: %s\n\nTo create: %s=1 go test -run %s", path, UpdateSnapshotsEnv, t.Name())
			return
		}
		t.Fatalf("failed to load snapshot: %v", err)
		return
	}
	if diff := s.Diff(expected); diff != "" {
		t.Errorf("snapshot mismatch: %s\n%s\nTo update: %s=1 go test -run %s", path, diff, UpdateSnapshotsEnv, t.Name())
	}
}

// UpdateFile writes the snapshot to path, creating directories as needed.
func (s *Snapshot) UpdateFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := s.MarshalIndent()
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Diff lists the lines that differ between the indented JSON of want and s.
// It is empty when they are equal.
func (s *Snapshot) Diff(want *Snapshot) string {
	got, _ := s.MarshalIndent()
	exp, _ := want.MarshalIndent()
	if bytes.Equal(got, exp) {
		return ""
	}
	gotLines := strings.Split(string(got), "\n")
	expLines := strings.Split(string(exp), "\n")

	var b strings.Builder
	b.WriteString("--- expected\n+++ actual\n")
	for i := 0; i < max(len(gotLines), len(expLines)); i++ {
		var e, g string
		if i < len(expLines) {
			e = expLines[i]
		}
		if i < len(gotLines) {
			g = gotLines[i]
		}
		if e == g {
			continue
		}
		fmt.Fprintf(&b, "@%d\n-%s\n+%s\n", i+1, e, g)
	}
	return b.String()
}

// MarshalIndent encodes the snapshot in the golden file format.
func (s *Snapshot) MarshalIndent() ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// LoadSnapshot reads a golden file.
func LoadSnapshot(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("invalid snapshot %s: %w", path, err)
	}
	return &snap, nil
}
