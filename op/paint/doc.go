// SPDX-License-Identifier: Unlicense OR MIT

/*
Package paint describes what a frame draws.

A user interface emits a list of ClippedShape values in logical
points. A tessellator turns them into ClippedPrimitive values: indexed
triangle meshes in physical pixels, each restricted to a clip rectangle,
ready for a renderer to upload.
*/
package paint
