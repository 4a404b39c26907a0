// Package assets defines the asset roles a game file can play and the
// filename convention that maps files to roles. A logical game is a set of
// sibling files sharing one basename: a ROM, an optional config, JSON
// metadata, and up to ten image variants.
package assets

// Kind identifies the role a file plays within an asset bundle
type Kind int

const (
	KindNone Kind = iota // not a recognized asset
	KindRom
	KindConfig
	KindMetadata
	KindBox
	KindBoxSmall
	KindOverlay
	KindOverlay2
	KindOverlay3
	KindOverlayBig
	KindQrCode
	KindSnap1
	KindSnap2
	KindSnap3
	KindOther
)

// String returns a human-readable kind name
func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindRom:
		return "rom"
	case KindConfig:
		return "config"
	case KindMetadata:
		return "metadata"
	case KindBox:
		return "box"
	case KindBoxSmall:
		return "box_small"
	case KindOverlay:
		return "overlay"
	case KindOverlay2:
		return "overlay2"
	case KindOverlay3:
		return "overlay3"
	case KindOverlayBig:
		return "overlay_big"
	case KindQrCode:
		return "qrcode"
	case KindSnap1:
		return "snap1"
	case KindSnap2:
		return "snap2"
	case KindSnap3:
		return "snap3"
	case KindOther:
		return "other"
	default:
		return "unknown"
	}
}

// Kinds lists every slot a bundle can own, in presentation order.
// KindNone and KindOther are not slots.
var Kinds = []Kind{
	KindRom,
	KindConfig,
	KindMetadata,
	KindBox,
	KindBoxSmall,
	KindOverlay,
	KindOverlay2,
	KindOverlay3,
	KindOverlayBig,
	KindQrCode,
	KindSnap1,
	KindSnap2,
	KindSnap3,
}

// FolderKind reports whether the kind is meaningful for a folder-companion
// bundle. ROMs and configs describe a playable game, never a folder.
func FolderKind(k Kind) bool {
	return k != KindRom && k != KindConfig
}
