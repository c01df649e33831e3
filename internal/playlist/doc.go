// Package playlist implements the extended-m3u parse/shuffle/serialize pipeline.
//
// The pipeline is three pure stages operating on a shared data model:
//
//  1. [Parse] : reads lines from an input source and builds a [Playlist]
//  2. [Playlist.Shuffle] : reorders tracks uniformly at random
//  3. [Playlist.WriteTo] / [Playlist.String] : serializes back to text
//
// The format is the minimal extended-m3u dialect: a mandatory #EXTM3U header
// line, optional #EXTINF directive lines attached to the path line that
// follows them, and one path or URL per line. Both markers are recognized by
// prefix, not whole-line equality. Blank lines are skipped on parse and never
// reproduced on output; Windows line endings are normalized to "\n".
package playlist
