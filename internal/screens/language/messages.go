package language

// pictureMsg carries the artwork for a naming item, or the reason it could
// not be loaded.
type pictureMsg struct {
	Ref string
	Art string
	Err error
}
