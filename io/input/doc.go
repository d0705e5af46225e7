// SPDX-License-Identifier: Unlicense OR MIT

/*
Package input defines the contract between a platform integration and an
immediate-mode user interface.

A platform collects native events into a [RawInput] and starts a pass
with [Context.BeginPass]. The user interface then builds its widgets,
after which [Context.EndPass] returns a [FullOutput] holding the shapes
to draw and the [PlatformOutput] side effects (cursor, clipboard writes)
for the platform to apply.

The [Router] is a reference [Context]. Widgets read the pass input from
it and feed it shapes, a cursor and commands.
*/
package input
