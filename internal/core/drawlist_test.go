package core

import (
	"encoding/json"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestDrawListClearStartsFrame(t *testing.T) {
	d := NewDrawList()
	d.FillRect(NewRect(0, 0, 10, 10), ColorRed)
	d.FillCircle(NewCircle(5, 5, 2), ColorBlue)
	d.Clear(ColorDarkGray)

	if d.Len() != 1 {
		t.Fatalf("Len() = %d, expected 1", d.Len())
	}
	if d.Ops[0].Kind != OpClear || d.Ops[0].Color != "#333333" {
		t.Errorf("Ops[0] = %+v, expected clear #333333", d.Ops[0])
	}
}

func TestDrawListRecordsInOrder(t *testing.T) {
	d := NewDrawList()
	d.Clear(ColorBlack)
	d.FillRect(NewRect(1, 2, 3, 4), ColorGray)
	d.StrokeLine(mgl64.Vec2{0, 0}, mgl64.Vec2{10, 10}, ColorWhite, 2)
	d.FillPath([]mgl64.Vec2{{0, 0}, {1, 0}, {0, 1}}, ColorGreen)
	d.Text(mgl64.Vec2{400, 300}, "Click to Start!", TextStyle{Color: ColorWhite, Size: 30, Align: AlignCenter})

	kinds := []OpKind{OpClear, OpFillRect, OpStrokeLine, OpFillPath, OpText}
	if d.Len() != len(kinds) {
		t.Fatalf("Len() = %d, expected %d", d.Len(), len(kinds))
	}
	for i, k := range kinds {
		if d.Ops[i].Kind != k {
			t.Errorf("Ops[%d].Kind = %s, expected %s", i, d.Ops[i].Kind, k)
		}
	}

	if d.Count(OpText) != 1 {
		t.Errorf("Count(text) = %d, expected 1", d.Count(OpText))
	}
	texts := d.Texts()
	if len(texts) != 1 || texts[0] != "Click to Start!" {
		t.Errorf("Texts() = %v", texts)
	}
	if d.Ops[4].Align != "center" || d.Ops[4].Paint != ColorWhite {
		t.Errorf("text op = %+v", d.Ops[4])
	}
}

func TestDrawListJSON(t *testing.T) {
	d := NewDrawList()
	d.FillCircle(NewCircle(10, 20, 5), ColorRed)

	data, err := json.Marshal(d.Ops[0])
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	var got map[string]any
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if got["op"] != "fillCircle" || got["color"] != "#ff0000" || got["r"] != 5.0 {
		t.Errorf("JSON = %s", data)
	}
	if _, ok := got["Paint"]; ok {
		t.Errorf("Paint should not be serialized: %s", data)
	}
	if _, ok := got["text"]; ok {
		t.Errorf("unused fields should be omitted: %s", data)
	}
}
