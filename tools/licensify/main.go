// seehuhn.de/go/ease - easing functions and interpolation curves
// Copyright (C) 2025  Jochen Voss <voss@seehuhn.de>
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

// Licensify adds the GPL licence header to all Go source files below the
// current directory which do not carry it yet.
package main

import (
	"bytes"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
)

const header = `// seehuhn.de/go/ease - easing functions and interpolation curves
// Copyright (C) 2025  Jochen Voss <voss@seehuhn.de>
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

`

func main() {
	err := filepath.WalkDir(".", visit)
	if err != nil {
		log.Fatal(err)
	}
}

func visit(path string, d fs.DirEntry, err error) error {
	if err != nil {
		return err
	}
	if d.IsDir() {
		// the go tool ignores directories starting with "_" or ".",
		// and so do we
		name := d.Name()
		if path != "." && (strings.HasPrefix(name, "_") || strings.HasPrefix(name, ".") || name == "testdata") {
			return fs.SkipDir
		}
		return nil
	}
	if !strings.HasSuffix(path, ".go") {
		return nil
	}

	body, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	newBody, changed := addHeader(body)
	if !changed {
		if !bytes.HasPrefix(body, []byte(header)) {
			fmt.Println("ATTENTION " + path)
		}
		return nil
	}

	fmt.Println("updating " + path)
	return os.WriteFile(path, newBody, 0o644)
}

// addHeader prepends the licence header to a Go source file which starts
// with the package clause.  Files which already have a header, or which
// start with a comment of some other form, are left unchanged.
func addHeader(body []byte) ([]byte, bool) {
	if bytes.HasPrefix(body, []byte(header)) {
		return body, false
	}
	if !bytes.HasPrefix(body, []byte("package ")) {
		return body, false
	}
	res := make([]byte, 0, len(header)+len(body))
	res = append(res, header...)
	res = append(res, body...)
	return res, true
}
