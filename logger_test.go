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

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"seehuhn.de/go/geom/vec"
)

func TestLogger(t *testing.T) {
	if Logger() == nil {
		t.Fatal("default logger is nil")
	}

	buf := &bytes.Buffer{}
	SetLogger(slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	defer SetLogger(nil)

	// a sharp corner exceeding the miter limit
	pts := []vec.Vec2{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 0, Y: 0.1}}
	if _, err := BuildMesh(pts, 1); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "miter limit exceeded") {
		t.Errorf("missing log message, got %q", buf.String())
	}

	SetLogger(nil)
	buf.Reset()
	if _, err := BuildMesh(pts, 1); err != nil {
		t.Fatal(err)
	}
	if buf.Len() != 0 {
		t.Errorf("unexpected output after reset: %q", buf.String())
	}
}
