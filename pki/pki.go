package pki

// PackFileRef names one archive within a pack index, by its path
// relative to the installation.
type PackFileRef struct {
	Path string
}

// FileRef is the metadata a pack-index keeps per file: which archive it
// lives in, and whether it's stored compressed. The original packs this
// into one u32 (category) whose low byte is the compression flag and the
// index of the owning archive into a separate field; this port splits
// that into two named fields since Go has no reason to keep them packed.
type FileRef struct {
	PackFile   uint32
	Compressed bool
}

// Index is a parsed PKI file: the list of archives it references, plus
// a CRC-keyed binary tree resolving a file's hash to its FileRef.
type Index struct {
	Archives []PackFileRef
	Nodes    []TreeNode[FileRef]
	Root     int32
}

// Lookup resolves crc to its FileRef, if the index has an entry for it.
func (idx Index) Lookup(crc uint32) (FileRef, bool) {
	return Lookup(idx.Nodes, idx.Root, crc)
}

// Resolve is a convenience wrapper hashing path with PathCRC before
// looking it up.
func (idx Index) Resolve(path string) (FileRef, bool) {
	return idx.Lookup(PathCRC(path))
}

// ArchivePath returns the path of the archive ref.PackFile identifies, or
// ok=false if the index is out of range.
func (idx Index) ArchivePath(ref FileRef) (string, bool) {
	if int(ref.PackFile) >= len(idx.Archives) {
		return "", false
	}
	return idx.Archives[ref.PackFile].Path, true
}
