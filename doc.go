/*
Package ase decodes Aseprite sprite files (.ase/.aseprite).

An Aseprite file stores a 128-byte header followed by frames. Every frame
carries a list of self-sized, type-tagged chunks: layers, cels, cel extras,
palettes (legacy and current), tags, a color profile and user data. Cel
pixels may be zlib compressed.

The package decodes a whole file into a Document: the layer list with its
nesting levels resolved into parents, per-frame cel stacks, the palette,
tags and user data attached to the object it describes. Decoding is
all-or-nothing: any structural problem yields an error and no Document.

Turning the Document into pixels on a canvas (blending, palette lookup,
channel order) is left to the caller.
*/
package ase
