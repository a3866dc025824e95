// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import "testing"

func TestNew(t *testing.T) {
	tests := []struct {
		kind string
		want any
	}{
		{kind: "image", want: (*ImageSurface)(nil)},
		{kind: "svg", want: (*SVGSurface)(nil)},
		{kind: "script", want: (*ScriptSurface)(nil)},
	}
	for _, tt := range tests {
		t.Run(tt.kind, func(t *testing.T) {
			c, err := New(tt.kind, 10, 20)
			if err != nil {
				t.Fatalf("New(%q): %v", tt.kind, err)
			}
			w, h := c.Size()
			if w != 10 || h != 20 {
				t.Errorf("Size() = %dx%d, want 10x20", w, h)
			}
		})
	}

	if _, err := New("hologram", 1, 1); err == nil {
		t.Error("New(unknown) = nil error")
	}
}

func TestKinds(t *testing.T) {
	kinds := Kinds()
	want := map[string]bool{"image": false, "svg": false, "script": false}
	for _, k := range kinds {
		if _, ok := want[k]; ok {
			want[k] = true
		}
	}
	for k, seen := range want {
		if !seen {
			t.Errorf("Kinds() missing %q: %v", k, kinds)
		}
	}
}

func TestRegisterFactory_Panics(t *testing.T) {
	t.Run("nil factory", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Error("RegisterFactory(nil) did not panic")
			}
		}()
		RegisterFactory("broken", nil)
	})

	t.Run("duplicate name", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Error("duplicate RegisterFactory did not panic")
			}
		}()
		RegisterFactory("image", func(w, h int) Canvas { return NewImageSurface(w, h) })
	})
}
