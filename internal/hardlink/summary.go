package hardlink

// Summary aggregates the registry across every recorded inode, after a
// walk has finished. "Exclusive" entries are ones where every link the
// filesystem reports for that inode was discovered inside the measured
// tree; see Entry.
type Summary struct {
	Inodes              int
	ExclusiveInodes     int
	AllLinks            uint64
	DetectedLinks       uint64
	ExclusiveLinks      uint64
	SharedSize          uint64
	ExclusiveSharedSize uint64
}

// Summarize computes a Summary from a registry snapshot.
func Summarize(entries map[InodeNumber]Entry) Summary {
	var s Summary
	for _, e := range entries {
		s.Inodes++
		detected := uint64(len(e.Paths))
		exclusive := detected == e.Nlink

		s.AllLinks += e.Nlink
		s.DetectedLinks += detected
		s.SharedSize += e.Size.Uint64()

		if exclusive {
			s.ExclusiveInodes++
			s.ExclusiveLinks += detected
			s.ExclusiveSharedSize += e.Size.Uint64()
		}
	}
	return s
}
