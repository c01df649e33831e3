package playlist

import "math/rand/v2"

// Shuffle reorders the tracks as a uniformly random permutation. The
// process-wide generator is used, which math/rand/v2 seeds from OS entropy
// at startup; runs are not reproducible. Track values are only swapped,
// never copied into or out of the playlist, and playlists with fewer than
// two tracks are left unchanged.
func (p *Playlist) Shuffle() {
	rand.Shuffle(len(p.Tracks), func(i, j int) {
		p.Tracks[i], p.Tracks[j] = p.Tracks[j], p.Tracks[i]
	})
}
