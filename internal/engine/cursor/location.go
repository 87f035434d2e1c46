package cursor

// Location is the current edit location: exactly one of Cursor or
// Selection. It is a sealed sum, only the two types in this package
// implement it, and consumers dispatch with exhaustive type switches.
// Commands replace the location wholesale; it is never partially mutated.
type Location interface {
	editLocation()
}

func (Cursor) editLocation()    {}
func (Selection) editLocation() {}
