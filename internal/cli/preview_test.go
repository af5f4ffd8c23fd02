package cli

import (
	"math"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/matzehuels/ringlayout/pkg/circle"
	"github.com/matzehuels/ringlayout/pkg/scene"
)

func previewScene() *scene.Scene {
	three, two := 3, 2
	r := 100.0
	return &scene.Scene{
		Name:     "preview",
		Center:   &circle.Point{X: 200, Y: 200},
		Radius:   &r,
		Sections: []scene.Section{{Name: "a", Count: &three}, {Name: "b", Count: &two}},
	}
}

func press(m previewModel, keys ...tea.KeyMsg) previewModel {
	for _, k := range keys {
		next, _ := m.Update(k)
		m = next.(previewModel)
	}
	return m
}

var (
	keyRight = tea.KeyMsg{Type: tea.KeyRight}
	keyLeft  = tea.KeyMsg{Type: tea.KeyLeft}
	keyUp    = tea.KeyMsg{Type: tea.KeyUp}
	keyDown  = tea.KeyMsg{Type: tea.KeyDown}
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestPreviewClustering(t *testing.T) {
	m := newPreviewModel(previewScene())
	if m.layout.Params.Clustering != 0 {
		t.Fatalf("initial clustering = %v", m.layout.Params.Clustering)
	}

	m = press(m, keyRight, keyRight)
	if got := m.layout.Params.Clustering; math.Abs(got-0.1) > 1e-9 {
		t.Errorf("clustering after two steps = %v, want 0.1", got)
	}

	m = press(m, keyLeft, keyLeft, keyLeft)
	if got := m.layout.Params.Clustering; got != 0 {
		t.Errorf("clustering below zero = %v, want 0", got)
	}

	for range 30 {
		m = press(m, keyRight)
	}
	if got := m.layout.Params.Clustering; got != 1 {
		t.Errorf("clustering above one = %v, want 1", got)
	}
	// Fully clustered sections collapse to one angle each.
	a0, _ := m.layout.Item(0, 0)
	a2, _ := m.layout.Item(0, 2)
	if math.Abs(a0.Angle-a2.Angle) > 1e-9 {
		t.Errorf("section 0 not collapsed: %v vs %v", a0.Angle, a2.Angle)
	}
}

func TestPreviewRadius(t *testing.T) {
	m := newPreviewModel(previewScene())

	m = press(m, keyUp)
	if got := m.layout.Params.Radius; got != 105 {
		t.Errorf("radius after up = %v, want 105", got)
	}
	for range 200 {
		m = press(m, keyDown)
	}
	if got := m.layout.Params.Radius; got != 0 {
		t.Errorf("radius floor = %v, want 0", got)
	}
	for _, it := range m.layout.Items {
		if it.Center != (circle.Point{X: 200, Y: 200}) {
			t.Errorf("item %v not at center with radius 0: %+v", it.ID, it.Center)
		}
	}
}

func TestPreviewReset(t *testing.T) {
	sc := previewScene()
	m := press(newPreviewModel(sc), keyRight, keyUp, runeKey('r'))
	if !m.layout.Params.Equal(sc.Params()) {
		t.Errorf("params after reset = %+v, want %+v", m.layout.Params, sc.Params())
	}
	if *sc.Radius != 100 || sc.Clustering != 0 {
		t.Error("preview modified the caller's scene")
	}
}

func TestPreviewQuit(t *testing.T) {
	for _, k := range []tea.KeyMsg{runeKey('q'), {Type: tea.KeyEsc}, {Type: tea.KeyCtrlC}} {
		t.Run(k.String(), func(t *testing.T) {
			_, cmd := newPreviewModel(previewScene()).Update(k)
			if cmd == nil {
				t.Fatal("expected quit command")
			}
			if _, ok := cmd().(tea.QuitMsg); !ok {
				t.Error("command is not tea.Quit")
			}
		})
	}
}

func TestPreviewWindowSize(t *testing.T) {
	next, _ := newPreviewModel(previewScene()).Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	m := next.(previewModel)
	if m.cols != 98 || m.rows != 40-previewChrome {
		t.Errorf("grid = %dx%d", m.cols, m.rows)
	}

	next, _ = m.Update(tea.WindowSizeMsg{Width: 4, Height: 4})
	m = next.(previewModel)
	if m.cols < 16 || m.rows < 8 {
		t.Errorf("grid below minimum: %dx%d", m.cols, m.rows)
	}
}

func TestPreviewView(t *testing.T) {
	m := newPreviewModel(previewScene())
	view := m.View()

	for _, want := range []string{"preview", "Clustering", "Radius", "Overlaps", "A", "B"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
	if got := strings.Count(m.canvas(), "\n"); got != m.rows-1 {
		t.Errorf("canvas has %d lines, want %d", got+1, m.rows)
	}
}

func TestPreviewEmptyScene(t *testing.T) {
	zero := 0
	sc := &scene.Scene{Name: "empty", Sections: []scene.Section{{Count: &zero}}}
	m := newPreviewModel(sc)
	if m.layout.Len() != 0 {
		t.Fatalf("items = %d", m.layout.Len())
	}
	if !strings.Contains(m.View(), "Items") {
		t.Error("empty scene view missing stats")
	}
}
