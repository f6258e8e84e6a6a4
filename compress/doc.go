// Package compress provides the entropy codecs used by the stegano
// pipeline and its auxiliary surfaces.
//
// The carrier wire format is pinned to zlib at maximum level (the level
// affects only the encode side, so maximum level is free compatibility-wise
// and shrinks the payload that has to survive the channel). The Zstandard
// and no-op codecs are reachable through NewCodec; no pipeline stage and
// no other package of the module uses them.
package compress
