/*
Package texture writes images as DDS or Enfusion EDDS textures.

EDDS stores a DDS header followed by a block table and block bodies per
mipmap level (smallest to largest). Blocks are either uncompressed (COPY)
or an LZ4 chunk stream of independently compressed 64KB chunks.
*/
package texture
