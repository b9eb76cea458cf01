package models

// avatarCatalog is the fixed set of avatar choices offered at
// registration. Accounts reference one of these by index.
var avatarCatalog = []string{
	"https://i.pravatar.cc/150?img=1",
	"https://i.pravatar.cc/150?img=2",
	"https://i.pravatar.cc/150?img=3",
	"https://i.pravatar.cc/150?img=4",
	"https://i.pravatar.cc/150?img=5",
	"https://i.pravatar.cc/150?img=6",
	"https://i.pravatar.cc/150?img=7",
	"https://i.pravatar.cc/150?img=8",
}

// Avatars returns a copy of the avatar catalog.
func Avatars() []string {
	out := make([]string, len(avatarCatalog))
	copy(out, avatarCatalog)
	return out
}

// AvatarByIndex resolves an avatar selection, reporting whether the index
// is within the catalog.
func AvatarByIndex(i int) (string, bool) {
	if i < 0 || i >= len(avatarCatalog) {
		return "", false
	}
	return avatarCatalog[i], true
}
