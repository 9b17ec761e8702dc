// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scene has the geometry and colors of the objects drawn by
// the demo, and the pulse that animates them.
package scene
