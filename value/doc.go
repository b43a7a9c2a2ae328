// Copyright 2026 The Knight-Bytecode Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package value implements the Knight value representation, its heap cells,
// and the mark-and-sweep collector that owns them.
//
// A Value is a small discriminated union: null, boolean, integer, block (a
// bytecode offset) or a pointer to a heap Cell holding a string or a list.
// Cells are never individually freed back to the host; the Collector hands
// out cells from fixed-size arenas and reclaims them in place during
// collect(), which keeps every *Cell ever handed out by the Collector valid for the
// life of the Collector.
package value
