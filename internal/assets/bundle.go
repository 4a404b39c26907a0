package assets

// Bundle groups the files belonging to one logical game, or the companion
// files describing a like-named subfolder. Every slot holds at most one
// path; all member paths are siblings inside Folder.
type Bundle struct {
	Basename string
	Folder   string

	slots map[Kind]string
	Other []string
}

// NewBundle creates an empty bundle rooted at folder.
func NewBundle(basename, folder string) *Bundle {
	return &Bundle{
		Basename: basename,
		Folder:   folder,
		slots:    make(map[Kind]string),
	}
}

// Path returns the file owning the given slot, or "" when the slot is empty.
func (b *Bundle) Path(kind Kind) string {
	return b.slots[kind]
}

// Set assigns path to the kind's slot. A second ROM for the same basename is
// resolved through the classifier's deterministic tie-break; for any other
// kind a duplicate can only arise from case-variant filenames, and the
// same tie-break applies so the winner does not depend on walk order.
func (b *Bundle) Set(kind Kind, path string, c *Classifier) {
	switch kind {
	case KindNone:
		return
	case KindOther:
		b.Other = append(b.Other, path)
		return
	}

	if existing := b.slots[kind]; existing != "" {
		path = c.ChooseRom(existing, path)
	}
	b.slots[kind] = path
}

// Files returns every slot-owned path in presentation order. Other files
// are not included.
func (b *Bundle) Files() []string {
	files := make([]string, 0, len(b.slots))
	for _, k := range Kinds {
		if p := b.slots[k]; p != "" {
			files = append(files, p)
		}
	}
	return files
}

// Empty reports whether the bundle owns no files at all.
func (b *Bundle) Empty() bool {
	return len(b.slots) == 0 && len(b.Other) == 0
}
